package datastores

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"
)

// ContactsInmem implements [ContactsStore].
type ContactsInmem struct {
	mu       sync.Mutex
	index    map[ContactID]int
	issued   map[ContactID]struct{} // every id ever handed out, deleted ones included
	contacts []*Contact
	now      func() time.Time
}

var _ ContactsStore = (*ContactsInmem)(nil)

// NewContactsInmem returns a store holding copies of cs. Contacts without an
// ID get a fresh one, contacts without a creation time get the current time.
func NewContactsInmem(cs ...*Contact) *ContactsInmem {
	s := &ContactsInmem{now: time.Now}
	s.replace(cs)
	return s
}

func (s *ContactsInmem) replace(cs []*Contact) {
	s.index = make(map[ContactID]int, len(cs))
	s.contacts = make([]*Contact, 0, len(cs))
	if s.issued == nil {
		s.issued = make(map[ContactID]struct{}, len(cs))
	}
	for _, c := range cs {
		c = c.clone()
		if _, dup := s.index[c.ID]; c.ID == "" || dup {
			c.ID = s.newID()
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = s.now()
		}
		s.issued[c.ID] = struct{}{}
		s.index[c.ID] = len(s.contacts)
		s.contacts = append(s.contacts, c)
	}
}

// newID must be called with s.mu held.
func (s *ContactsInmem) newID() ContactID {
retry:
	id := newContactID()
	if _, loaded := s.issued[id]; loaded {
		goto retry
	}
	return id
}

// Replace swaps the whole collection for copies of cs.
func (s *ContactsInmem) Replace(cs []*Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replace(cs)
}

// Snapshot returns copies of every contact in insertion order.
func (s *ContactsInmem) Snapshot() []*Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs := make([]*Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		cs = append(cs, c.clone())
	}
	return cs
}

func (s *ContactsInmem) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contacts)
}

func (s *ContactsInmem) List(_ context.Context, query string) ([]*Contact, error) {
	query = strings.ToLower(query)

	s.mu.Lock()
	contacts := make([]*Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if matches(c, query) {
			contacts = append(contacts, c.clone())
		}
	}
	s.mu.Unlock()

	slices.SortStableFunc(contacts, func(a, b *Contact) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Last), strings.ToLower(b.Last)),
			a.CreatedAt.Compare(b.CreatedAt),
			strings.Compare(a.ID, b.ID),
		)
	})
	return contacts, nil
}

// matches expects query to be lowercase already.
func matches(c *Contact, query string) bool {
	return query == "" ||
		strings.Contains(strings.ToLower(c.First), query) ||
		strings.Contains(strings.ToLower(c.Last), query)
}

func (s *ContactsInmem) Get(_ context.Context, id ContactID) (*Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index, ok := s.index[id]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return s.contacts[index].clone(), nil
}

func (s *ContactsInmem) Create(_ context.Context) (*Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := &Contact{ID: s.newID(), CreatedAt: s.now()}
	s.issued[c.ID] = struct{}{}
	s.index[c.ID] = len(s.contacts)
	s.contacts = append(s.contacts, c)
	return c.clone(), nil
}

func (s *ContactsInmem) Update(_ context.Context, id ContactID, u *ContactUpdate) (*Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index, ok := s.index[id]
	if !ok {
		return nil, ErrObjectNotFound
	}
	u.apply(s.contacts[index])
	return s.contacts[index].clone(), nil
}

func (s *ContactsInmem) Delete(_ context.Context, id ContactID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	index, ok := s.index[id]
	if !ok {
		return ErrObjectNotFound
	}
	delete(s.index, id)
	s.contacts = slices.Delete(s.contacts, index, index+1)
	for i := index; i < len(s.contacts); i++ {
		s.index[s.contacts[i].ID] = i
	}
	return nil
}
