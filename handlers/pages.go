package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	ds "github.com/oaiiae/huma-contacts/datastores"
	"github.com/oaiiae/huma-contacts/views"
)

const (
	htmlContentType = "text/html; charset=utf-8"
	cssContentType  = "text/css; charset=utf-8"
)

// Pages serves the HTML interface. Every page re-reads the contact list
// from Store, so the sidebar reflects mutations made by the request.
type Pages struct {
	Store        ds.ContactsStore
	ErrorHandler func(context.Context, error)
}

type PageOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type RedirectOutput struct {
	Status   int
	Location string `header:"Location"`
}

func seeOther(location string) *RedirectOutput {
	return &RedirectOutput{Status: http.StatusSeeOther, Location: location}
}

type AssetOutput struct {
	ContentType  string `header:"Content-Type"`
	CacheControl string `header:"Cache-Control"`
	Body         []byte
}

// render writes a full page with the sidebar filtered by query.
func (h *Pages) render(ctx context.Context, query string, current ds.ContactID, outlet views.Outlet) (*PageOutput, error) {
	contacts, err := h.Store.List(ctx, query)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = views.Write(&buf, views.Render(&views.Page{
		Contacts: contacts,
		Query:    query,
		Current:  current,
		Outlet:   outlet,
	}))
	if err != nil {
		return nil, err
	}
	return &PageOutput{ContentType: htmlContentType, Body: buf.Bytes()}, nil
}

func parseForm(body []byte) (url.Values, error) {
	form, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, huma.Error400BadRequest("invalid form", err)
	}
	return form, nil
}

// formUpdate turns the submitted fields into a partial update, leaving
// fields absent from the form untouched.
func formUpdate(form url.Values) *ds.ContactUpdate {
	field := func(key string) *string {
		if !form.Has(key) {
			return nil
		}
		v := form.Get(key)
		return &v
	}

	u := &ds.ContactUpdate{
		First:   field("first"),
		Last:    field("last"),
		Twitter: field("twitter"),
		Avatar:  field("avatar"),
		Notes:   field("notes"),
	}
	if form.Has("favorite") {
		favorite := form.Get("favorite") == "true"
		u.Favorite = &favorite
	}
	return u
}

func (h *Pages) RegisterIndex(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/",
		handlerWithErrorHandler(h.index, h.ErrorHandler),
		opID("index-page", "pages"),
		opExactPath(api, "/"),
		opErrors(http.StatusNotFound, http.StatusInternalServerError),
	)
}

func (h *Pages) index(ctx context.Context, input *struct {
	Query string `query:"q" doc:"search contacts by first or last name"`
}) (*PageOutput, error) {
	return h.render(ctx, input.Query, "", views.Index{})
}

func (h *Pages) RegisterNew(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/",
		handlerWithErrorHandler(h.create, h.ErrorHandler),
		opID("new-contact-action", "pages"),
		opExactPath(api, "/"),
		opStatus(http.StatusSeeOther),
		opErrors(http.StatusNotFound, http.StatusInternalServerError),
	)
}

func (h *Pages) create(ctx context.Context, _ *struct{}) (*RedirectOutput, error) {
	contact, err := h.Store.Create(ctx)
	if err != nil {
		return nil, err
	}
	return seeOther(views.EditPath(contact.ID)), nil
}

func (h *Pages) RegisterShow(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/contacts/{id}",
		handlerWithErrorHandler(h.show, h.ErrorHandler),
		opID("contact-page", "pages"),
		opErrors(http.StatusNotFound, http.StatusInternalServerError),
	)
}

func (h *Pages) show(ctx context.Context, input *struct {
	ID    ds.ContactID `path:"id"  doc:"ID of the contact to show"`
	Query string       `query:"q" doc:"search contacts by first or last name"`
}) (*PageOutput, error) {
	contact, err := h.Store.Get(ctx, input.ID)
	if err != nil {
		return nil, storeError(err)
	}
	return h.render(ctx, input.Query, contact.ID, views.Detail{Contact: contact})
}

func (h *Pages) RegisterFavorite(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/contacts/{id}",
		handlerWithErrorHandler(h.favorite, h.ErrorHandler),
		opID("favorite-action", "pages"),
		opStatus(http.StatusOK),
		opErrors(http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError),
	)
}

// favorite updates the flag and renders the same page again, no redirect.
func (h *Pages) favorite(ctx context.Context, input *struct {
	ID      ds.ContactID `path:"id"  doc:"ID of the contact to update"`
	Query   string       `query:"q" doc:"search contacts by first or last name"`
	RawBody []byte       `contentType:"application/x-www-form-urlencoded"`
}) (*PageOutput, error) {
	form, err := parseForm(input.RawBody)
	if err != nil {
		return nil, err
	}

	favorite := form.Get("favorite") == "true"
	contact, err := h.Store.Update(ctx, input.ID, &ds.ContactUpdate{Favorite: &favorite})
	if err != nil {
		return nil, storeError(err)
	}
	return h.render(ctx, input.Query, contact.ID, views.Detail{Contact: contact, PendingFavorite: &favorite})
}

func (h *Pages) RegisterEdit(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/contacts/{id}/edit",
		handlerWithErrorHandler(h.edit, h.ErrorHandler),
		opID("edit-contact-page", "pages"),
		opErrors(http.StatusNotFound, http.StatusInternalServerError),
	)
}

func (h *Pages) edit(ctx context.Context, input *struct {
	ID    ds.ContactID `path:"id"  doc:"ID of the contact to edit"`
	Query string       `query:"q" doc:"search contacts by first or last name"`
}) (*PageOutput, error) {
	contact, err := h.Store.Get(ctx, input.ID)
	if err != nil {
		return nil, storeError(err)
	}
	return h.render(ctx, input.Query, contact.ID, views.Edit{Contact: contact})
}

func (h *Pages) RegisterUpdate(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/contacts/{id}/edit",
		handlerWithErrorHandler(h.update, h.ErrorHandler),
		opID("update-contact-action", "pages"),
		opStatus(http.StatusSeeOther),
		opErrors(http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError),
	)
}

func (h *Pages) update(ctx context.Context, input *struct {
	ID      ds.ContactID `path:"id" doc:"ID of the contact to update"`
	RawBody []byte       `contentType:"application/x-www-form-urlencoded"`
}) (*RedirectOutput, error) {
	form, err := parseForm(input.RawBody)
	if err != nil {
		return nil, err
	}

	contact, err := h.Store.Update(ctx, input.ID, formUpdate(form))
	if err != nil {
		return nil, storeError(err)
	}
	return seeOther(views.ContactPath(contact.ID)), nil
}

func (h *Pages) RegisterConfirmDestroy(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/contacts/{id}/destroy",
		handlerWithErrorHandler(h.confirmDestroy, h.ErrorHandler),
		opID("destroy-contact-page", "pages"),
		opErrors(http.StatusNotFound, http.StatusInternalServerError),
	)
}

func (h *Pages) confirmDestroy(ctx context.Context, input *struct {
	ID ds.ContactID `path:"id" doc:"ID of the contact to delete"`
}) (*PageOutput, error) {
	contact, err := h.Store.Get(ctx, input.ID)
	if err != nil {
		return nil, storeError(err)
	}
	return h.render(ctx, "", contact.ID, views.ConfirmDelete{Contact: contact})
}

func (h *Pages) RegisterDestroy(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/contacts/{id}/destroy",
		handlerWithErrorHandler(h.destroy, h.ErrorHandler),
		opID("destroy-contact-action", "pages"),
		opStatus(http.StatusSeeOther),
		opErrors(http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError),
	)
}

// destroy only deletes once the form carries the confirmation, otherwise
// it sends the browser to the confirmation page.
func (h *Pages) destroy(ctx context.Context, input *struct {
	ID      ds.ContactID `path:"id" doc:"ID of the contact to delete"`
	RawBody []byte       `contentType:"application/x-www-form-urlencoded"`
}) (*RedirectOutput, error) {
	form, err := parseForm(input.RawBody)
	if err != nil {
		return nil, err
	}

	if form.Get("confirmed") != "true" {
		if _, err := h.Store.Get(ctx, input.ID); err != nil {
			return nil, storeError(err)
		}
		return seeOther(views.DestroyPath(input.ID)), nil
	}

	if err := h.Store.Delete(ctx, input.ID); err != nil {
		return nil, storeError(err)
	}
	return seeOther("/"), nil
}

func (h *Pages) RegisterStylesheet(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, views.StylesheetPath,
		func(context.Context, *struct{}) (*AssetOutput, error) {
			return &AssetOutput{
				ContentType:  cssContentType,
				CacheControl: "public, max-age=3600",
				Body:         views.Stylesheet,
			}, nil
		},
		opID("stylesheet", "pages"),
	)
}
