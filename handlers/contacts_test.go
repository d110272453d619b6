package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ds "github.com/oaiiae/huma-contacts/datastores"
)

func newContactsAPI(t *testing.T, contacts ...*ds.Contact) (humatest.TestAPI, *ds.ContactsInmem) {
	t.Helper()
	_, api := humatest.New(t)
	store := ds.NewContactsInmem(contacts...)
	huma.AutoRegister(huma.NewGroup(api, "/contacts"), &Contacts{Store: store})
	return api, store
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

func TestContactsList(t *testing.T) {
	api, _ := newContactsAPI(t,
		&ds.Contact{First: "Alex", Last: "Anderson"},
		&ds.Contact{First: "Glenn", Last: "Reyes", Favorite: true},
	)

	resp := api.Get("/contacts/")
	require.Equal(t, http.StatusOK, resp.Code)
	all := decode[[]ContactModel](t, resp.Body.Bytes())
	require.Len(t, all, 2)
	assert.Equal(t, "Anderson", all[0].Last)
	assert.True(t, all[1].Favorite)

	resp = api.Get("/contacts/?q=rey")
	require.Equal(t, http.StatusOK, resp.Code)
	filtered := decode[[]ContactModel](t, resp.Body.Bytes())
	require.Len(t, filtered, 1)
	assert.Equal(t, "Glenn", filtered[0].First)
}

func TestContactsCRUD(t *testing.T) {
	api, store := newContactsAPI(t)

	resp := api.Post("/contacts/")
	require.Equal(t, http.StatusCreated, resp.Code)
	created := decode[ContactModel](t, resp.Body.Bytes())
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Favorite)
	assert.Empty(t, created.First)

	resp = api.Patch("/contacts/"+created.ID, map[string]any{"first": "Ada", "favorite": true})
	require.Equal(t, http.StatusOK, resp.Code)
	patched := decode[ContactModel](t, resp.Body.Bytes())
	assert.Equal(t, "Ada", patched.First)
	assert.True(t, patched.Favorite)
	assert.Empty(t, patched.Last)

	resp = api.Get("/contacts/" + created.ID)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, patched, decode[ContactModel](t, resp.Body.Bytes()))

	resp = api.Delete("/contacts/" + created.ID)
	assert.Equal(t, http.StatusNoContent, resp.Code)
	_, err := store.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ds.ErrObjectNotFound)
}

func TestContactsNotFound(t *testing.T) {
	api, _ := newContactsAPI(t)
	assert.Equal(t, http.StatusNotFound, api.Get("/contacts/unknown").Code)
	assert.Equal(t, http.StatusNotFound, api.Patch("/contacts/unknown", map[string]any{"first": "x"}).Code)
	assert.Equal(t, http.StatusNotFound, api.Delete("/contacts/unknown").Code)
}
