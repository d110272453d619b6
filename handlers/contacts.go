package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	ds "github.com/oaiiae/huma-contacts/datastores"
)

// Contacts is the JSON API over a [ds.ContactsStore].
type Contacts struct {
	Store        ds.ContactsStore
	ErrorHandler func(context.Context, error)
}

type ContactModel struct {
	ID ds.ContactID `json:"id" readOnly:"true"`

	First     string    `json:"first"     example:"ada"`
	Last      string    `json:"last"      example:"lovelace"`
	Twitter   string    `json:"twitter"   example:"@ada"`
	Avatar    string    `json:"avatar"    example:"https://example.com/avatar.jpg"`
	Notes     string    `json:"notes"`
	Favorite  bool      `json:"favorite"`
	CreatedAt time.Time `json:"createdAt" readOnly:"true"`
}

func contactModel(c *ds.Contact) ContactModel {
	return ContactModel{
		ID:        c.ID,
		First:     c.First,
		Last:      c.Last,
		Twitter:   c.Twitter,
		Avatar:    c.Avatar,
		Notes:     c.Notes,
		Favorite:  c.Favorite,
		CreatedAt: c.CreatedAt,
	}
}

// ContactPatch only changes the fields it carries.
type ContactPatch struct {
	First    *string `json:"first,omitempty"    example:"ada"`
	Last     *string `json:"last,omitempty"     example:"lovelace"`
	Twitter  *string `json:"twitter,omitempty"  example:"@ada"`
	Avatar   *string `json:"avatar,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Favorite *bool   `json:"favorite,omitempty"`
}

func (h *Contacts) RegisterList(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/",
		handlerWithErrorHandler(h.list, h.ErrorHandler),
		opID("list-contacts", "contacts"),
		opErrors(http.StatusInternalServerError),
	)
}

type ContactsListOutput struct {
	Body []ContactModel
}

func (h *Contacts) list(ctx context.Context, input *struct {
	Query string `query:"q" doc:"filter on first or last name, case-insensitive"`
}) (*ContactsListOutput, error) {
	contacts, err := h.Store.List(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	body := make([]ContactModel, 0, len(contacts))
	for _, contact := range contacts {
		body = append(body, contactModel(contact))
	}

	return &ContactsListOutput{Body: body}, nil
}

func (h *Contacts) RegisterGet(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/{id}",
		handlerWithErrorHandler(h.get, h.ErrorHandler),
		opID("get-contact", "contacts"),
		opErrors(http.StatusNotFound, http.StatusInternalServerError),
	)
}

type ContactOutput struct {
	Body ContactModel
}

func (h *Contacts) get(ctx context.Context, input *struct {
	ID ds.ContactID `path:"id" doc:"ID of the contact to get"`
}) (*ContactOutput, error) {
	contact, err := h.Store.Get(ctx, input.ID)
	if err != nil {
		return nil, storeError(err)
	}
	return &ContactOutput{Body: contactModel(contact)}, nil
}

func (h *Contacts) RegisterCreate(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/",
		handlerWithErrorHandler(h.create, h.ErrorHandler),
		opID("create-contact", "contacts"),
		opStatus(http.StatusCreated),
		opErrors(http.StatusInternalServerError),
	)
}

func (h *Contacts) create(ctx context.Context, _ *struct{}) (*ContactOutput, error) {
	contact, err := h.Store.Create(ctx)
	if err != nil {
		return nil, err
	}
	return &ContactOutput{Body: contactModel(contact)}, nil
}

func (h *Contacts) RegisterPatch(api huma.API) { // called by [huma.AutoRegister]
	huma.Patch(api, "/{id}",
		handlerWithErrorHandler(h.patch, h.ErrorHandler),
		opID("patch-contact", "contacts"),
		opErrors(http.StatusNotFound, http.StatusUnprocessableEntity, http.StatusInternalServerError),
	)
}

func (h *Contacts) patch(ctx context.Context, input *struct {
	ID   ds.ContactID `path:"id" doc:"ID of the contact to patch"`
	Body ContactPatch
}) (*ContactOutput, error) {
	contact, err := h.Store.Update(ctx, input.ID, &ds.ContactUpdate{
		First:    input.Body.First,
		Last:     input.Body.Last,
		Twitter:  input.Body.Twitter,
		Avatar:   input.Body.Avatar,
		Notes:    input.Body.Notes,
		Favorite: input.Body.Favorite,
	})
	if err != nil {
		return nil, storeError(err)
	}
	return &ContactOutput{Body: contactModel(contact)}, nil
}

func (h *Contacts) RegisterDelete(api huma.API) { // called by [huma.AutoRegister]
	huma.Delete(api, "/{id}",
		handlerWithErrorHandler(h.del, h.ErrorHandler),
		opID("delete-contact", "contacts"),
		opErrors(http.StatusNotFound, http.StatusInternalServerError),
	)
}

func (h *Contacts) del(ctx context.Context, input *struct {
	ID ds.ContactID `path:"id" doc:"ID of the contact to delete"`
}) (*struct{}, error) {
	return nil, storeError(h.Store.Delete(ctx, input.ID))
}
