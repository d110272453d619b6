package views

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	ds "github.com/oaiiae/huma-contacts/datastores"
	"github.com/oaiiae/huma-contacts/navigation"
)

// Render returns the document for p. It has no side effects.
func Render(p *Page) *html.Node {
	title := p.Title
	if title == "" {
		title = DefaultTitle
	}

	panel := el(atom.Div, attrs("id", "detail"), outlet(p.Outlet))
	if p.Nav.Loading() {
		with(panel, "class", loadingClass)
	}

	return document(el(atom.Html, attrs("lang", "en"),
		head(title),
		el(atom.Body, nil,
			sidebar(p),
			panel,
			navStates(),
			el(atom.Script, nil, text(script)),
		),
	))
}

// RenderError returns a standalone document describing an error response.
func RenderError(status int, title, detail string) *html.Node {
	if title == "" {
		title = "Error " + strconv.Itoa(status)
	}
	var p *html.Node
	if detail != "" {
		p = el(atom.P, nil, text(detail))
	}
	return document(el(atom.Html, attrs("lang", "en"),
		head(title),
		el(atom.Body, nil,
			el(atom.Div, attrs("id", "error", "data-status", strconv.Itoa(status)),
				el(atom.H1, nil, text(title)),
				p,
				el(atom.P, nil, el(atom.A, attrs("href", "/"), text("Back to contacts"))),
			),
		),
	))
}

// RenderPre returns a standalone document showing preformatted content.
func RenderPre(title, content string) *html.Node {
	return document(el(atom.Html, attrs("lang", "en"),
		head(title),
		el(atom.Body, nil, el(atom.Pre, nil, text(content))),
	))
}

func head(title string) *html.Node {
	return el(atom.Head, nil,
		el(atom.Meta, attrs("charset", "utf-8")),
		el(atom.Meta, attrs("name", "viewport", "content", "width=device-width, initial-scale=1")),
		el(atom.Title, nil, text(title)),
		el(atom.Link, attrs("rel", "stylesheet", "href", StylesheetPath)),
	)
}

func sidebar(p *Page) *html.Node {
	searching := p.Nav.Searching()

	input := el(atom.Input, attrs(
		"id", "q",
		"aria-label", "Search contacts",
		"placeholder", "Search",
		"type", "search",
		"name", navigation.SearchParam,
		"value", p.Query,
	))
	if searching {
		with(input, "class", loadingClass)
	}
	spinner := flag(el(atom.Div, attrs("id", "search-spinner", "aria-hidden", "true")), "hidden", !searching)

	return el(atom.Div, attrs("id", "sidebar"),
		el(atom.H1, nil, text(DefaultTitle)),
		el(atom.Div, nil,
			el(atom.Form, attrs("id", "search-form", "role", "search", "action", "/"), input, spinner),
			el(atom.Form, attrs("method", "post", "action", "/"),
				el(atom.Button, attrs("type", "submit"), text("New")),
			),
		),
		el(atom.Nav, nil, contactList(p)),
	)
}

func contactList(p *Page) *html.Node {
	if len(p.Contacts) == 0 {
		return el(atom.P, nil, el(atom.I, nil, text("No contacts")))
	}

	ul := el(atom.Ul, nil)
	for _, c := range p.Contacts {
		href := ContactPath(c.ID)
		a := el(atom.A, attrs("href", href), name(c))
		switch {
		case c.ID == p.Current:
			with(a, "class", "active")
		case p.Nav.Pending(href):
			with(a, "class", pendingClass)
		}
		if c.Favorite {
			a.AppendChild(text(" "))
			a.AppendChild(el(atom.Span, nil, text("★")))
		}
		ul.AppendChild(el(atom.Li, nil, a))
	}
	return ul
}

// name renders the contact's full name, or an italic placeholder.
func name(c *ds.Contact) *html.Node {
	if !c.HasName() {
		return el(atom.I, nil, text("No Name"))
	}
	return text(strings.TrimSpace(c.First + " " + c.Last))
}

func outlet(o Outlet) *html.Node {
	switch o := o.(type) {
	case Detail:
		return detail(o)
	case Edit:
		return edit(o.Contact)
	case ConfirmDelete:
		return confirmDelete(o.Contact)
	default:
		return el(atom.P, attrs("id", "index-page"), text("Select a contact, or create a new one."))
	}
}

func detail(d Detail) *html.Node {
	c := d.Contact

	h1 := el(atom.H1, nil, name(c), text(" "), favorite(c.ID, d.Favorite()))

	var twitter, notes *html.Node
	if c.Twitter != "" {
		twitter = el(atom.P, nil, el(atom.A, attrs("href", "https://twitter.com/"+c.Twitter), text(c.Twitter)))
	}
	if c.Notes != "" {
		notes = el(atom.P, nil, text(c.Notes))
	}

	return el(atom.Div, attrs("id", "contact"),
		el(atom.Div, nil,
			with(el(atom.Img, attrs("alt", c.First+" "+c.Last+" avatar")), "src", c.Avatar),
		),
		el(atom.Div, nil,
			h1,
			twitter,
			notes,
			el(atom.Div, nil,
				el(atom.Form, attrs("action", EditPath(c.ID)),
					el(atom.Button, attrs("type", "submit"), text("Edit")),
				),
				el(atom.Form, attrs(
					"class", "destroy",
					"action", DestroyPath(c.ID),
					"method", "post",
					"data-confirm", ConfirmMessage,
				),
					el(atom.Input, attrs("type", "hidden", "name", "confirmed", "value", "false")),
					el(atom.Button, attrs("type", "submit"), text("Delete")),
				),
			),
		),
	)
}

func favorite(id ds.ContactID, on bool) *html.Node {
	label, value, mark := "Add to favorites", "true", "☆"
	if on {
		label, value, mark = "Remove from favorites", "false", "★"
	}
	return el(atom.Form, attrs("class", "favorite", "method", "post", "action", ContactPath(id)),
		el(atom.Button, attrs("aria-label", label, "name", "favorite", "value", value), text(mark)),
	)
}

func edit(c *ds.Contact) *html.Node {
	field := func(key, label, placeholder, value string) *html.Node {
		return with(el(atom.Input, attrs(
			"name", key,
			"placeholder", placeholder,
			"type", "text",
			"value", value,
		)), "aria-label", label)
	}

	return el(atom.Form, attrs("id", "contact-form", "method", "post", "action", EditPath(c.ID)),
		el(atom.P, nil,
			el(atom.Span, nil, text("Name")),
			field("first", "First name", "First", c.First),
			field("last", "Last name", "Last", c.Last),
		),
		el(atom.Label, nil,
			el(atom.Span, nil, text("Twitter")),
			field("twitter", "", "@jack", c.Twitter),
		),
		el(atom.Label, nil,
			el(atom.Span, nil, text("Avatar URL")),
			field("avatar", "Avatar URL", "https://example.com/avatar.jpg", c.Avatar),
		),
		el(atom.Label, nil,
			el(atom.Span, nil, text("Notes")),
			el(atom.Textarea, attrs("name", "notes", "rows", "6"), text(c.Notes)),
		),
		el(atom.P, nil,
			el(atom.Button, attrs("type", "submit"), text("Save")),
			el(atom.A, attrs("class", "button", "href", ContactPath(c.ID), "data-action", "back"), text("Cancel")),
		),
	)
}

func confirmDelete(c *ds.Contact) *html.Node {
	return el(atom.Div, attrs("id", "confirm"),
		el(atom.P, nil, text(ConfirmMessage)),
		el(atom.P, nil, el(atom.B, nil, name(c))),
		el(atom.Form, attrs("method", "post", "action", DestroyPath(c.ID)),
			el(atom.Input, attrs("type", "hidden", "name", "confirmed", "value", "true")),
			el(atom.Button, attrs("type", "submit"), text("Delete")),
		),
		el(atom.P, nil, el(atom.A, attrs("href", ContactPath(c.ID)), text("Cancel"))),
	)
}
