package datastores

import (
	"context"
	"errors"
	"time"
)

type (
	ContactID = string
	Contact   struct {
		ID        ContactID
		First     string
		Last      string
		Twitter   string
		Avatar    string
		Notes     string
		Favorite  bool
		CreatedAt time.Time
	}
)

// ContactUpdate holds the fields of a partial update. Nil fields are left untouched.
type ContactUpdate struct {
	First    *string
	Last     *string
	Twitter  *string
	Avatar   *string
	Notes    *string
	Favorite *bool
}

func (u *ContactUpdate) apply(c *Contact) {
	if u == nil {
		return
	}
	set(&c.First, u.First)
	set(&c.Last, u.Last)
	set(&c.Twitter, u.Twitter)
	set(&c.Avatar, u.Avatar)
	set(&c.Notes, u.Notes)
	set(&c.Favorite, u.Favorite)
}

func set[T any](dst, src *T) {
	if src != nil {
		*dst = *src
	}
}

// HasName reports whether either name field is set.
func (c *Contact) HasName() bool { return c.First != "" || c.Last != "" }

func (c *Contact) clone() *Contact { cc := *c; return &cc }

type ContactsStore interface {
	// List returns the contacts whose first or last name contains query,
	// case-insensitively. An empty query matches every contact.
	List(ctx context.Context, query string) ([]*Contact, error)
	Get(ctx context.Context, id ContactID) (*Contact, error)
	Create(ctx context.Context) (*Contact, error)
	Update(ctx context.Context, id ContactID, u *ContactUpdate) (*Contact, error)
	Delete(ctx context.Context, id ContactID) error
}

var ErrObjectNotFound = errors.New("store: object not found")
