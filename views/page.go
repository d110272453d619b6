package views

import (
	"net/url"

	ds "github.com/oaiiae/huma-contacts/datastores"
	"github.com/oaiiae/huma-contacts/navigation"
)

const (
	DefaultTitle   = "Contacts"
	StylesheetPath = "/app.css"
	ConfirmMessage = "Please confirm you want to delete this record."
)

func ContactPath(id ds.ContactID) string { return "/contacts/" + url.PathEscape(id) }
func EditPath(id ds.ContactID) string    { return ContactPath(id) + "/edit" }
func DestroyPath(id ds.ContactID) string { return ContactPath(id) + "/destroy" }

// Page is everything a page render depends on.
type Page struct {
	Title    string
	Contacts []*ds.Contact // sidebar
	Query    string        // current search, shown in the search field
	Current  ds.ContactID  // contact shown in the outlet, if any
	Nav      navigation.Navigation
	Outlet   Outlet
}

// Outlet is the content of the detail panel.
type Outlet interface{ outlet() }

type (
	// Index is shown when no contact is selected.
	Index struct{}

	// Detail shows a contact. PendingFavorite, when set, takes precedence
	// over Contact.Favorite while a favorite submission is in flight.
	Detail struct {
		Contact         *ds.Contact
		PendingFavorite *bool
	}

	Edit struct{ Contact *ds.Contact }

	// ConfirmDelete asks before deleting Contact when scripts are unavailable.
	ConfirmDelete struct{ Contact *ds.Contact }
)

func (Index) outlet()         {}
func (Detail) outlet()        {}
func (Edit) outlet()          {}
func (ConfirmDelete) outlet() {}

// Favorite returns the favorite state to display.
func (d Detail) Favorite() bool {
	if d.PendingFavorite != nil {
		return *d.PendingFavorite
	}
	return d.Contact.Favorite
}
