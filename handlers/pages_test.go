package handlers

import (
	"context"
	"maps"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ds "github.com/oaiiae/huma-contacts/datastores"
)

const formContentType = "Content-Type: application/x-www-form-urlencoded"

func newPagesAPI(t *testing.T, contacts ...*ds.Contact) (humatest.TestAPI, *ds.ContactsInmem, *[]error) {
	t.Helper()
	config := huma.DefaultConfig("Test API", "1.0.0")
	config.Formats = maps.Clone(config.Formats)
	config.Formats[HTMLContentType] = HTMLFormat

	_, api := humatest.New(t, config)
	store := ds.NewContactsInmem(contacts...)
	var errs []error
	huma.AutoRegister(api, &Pages{
		Store:        store,
		ErrorHandler: func(_ context.Context, err error) { errs = append(errs, err) },
	})
	return api, store, &errs
}

func firstID(t *testing.T, store *ds.ContactsInmem) ds.ContactID {
	t.Helper()
	cs := store.Snapshot()
	require.NotEmpty(t, cs)
	return cs[0].ID
}

func TestPagesIndex(t *testing.T) {
	api, _, _ := newPagesAPI(t,
		&ds.Contact{First: "Alex", Last: "Anderson"},
		&ds.Contact{First: "Glenn", Last: "Reyes"},
	)

	resp := api.Get("/")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, htmlContentType, resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Body.String(), "Alex Anderson")
	assert.Contains(t, resp.Body.String(), "Glenn Reyes")

	resp = api.Get("/?q=ANDER")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Alex Anderson")
	assert.NotContains(t, resp.Body.String(), "Glenn Reyes")
	assert.Contains(t, resp.Body.String(), `value="ANDER"`)

	resp = api.Get("/?q=nobody")
	assert.Contains(t, resp.Body.String(), "No contacts")
}

func TestPagesNew(t *testing.T) {
	api, store, _ := newPagesAPI(t, &ds.Contact{First: "Alex"})

	resp := api.Post("/")
	require.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, 2, store.Len())

	created := store.Snapshot()[1]
	assert.Equal(t, "/contacts/"+created.ID+"/edit", resp.Header().Get("Location"))
	assert.False(t, created.HasName())
	assert.False(t, created.Favorite)

	resp = api.Get(resp.Header().Get("Location"))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `id="contact-form"`)
}

func TestPagesNotFound(t *testing.T) {
	api, _, errs := newPagesAPI(t)

	for _, path := range []string{"/contacts/unknown", "/contacts/unknown/edit", "/contacts/unknown/destroy"} {
		t.Run("GET "+path, func(t *testing.T) {
			assert.Equal(t, http.StatusNotFound, api.Get(path).Code)
		})
	}
	for _, path := range []string{"/contacts/unknown", "/contacts/unknown/edit", "/contacts/unknown/destroy"} {
		t.Run("POST "+path, func(t *testing.T) {
			resp := api.Post(path, formContentType, strings.NewReader("favorite=true&confirmed=true"))
			assert.Equal(t, http.StatusNotFound, resp.Code)
		})
	}
	require.NotEmpty(t, *errs)
	assert.ErrorIs(t, (*errs)[0], ds.ErrObjectNotFound)
}

func TestPagesNotFoundHTML(t *testing.T) {
	api, _, _ := newPagesAPI(t)

	resp := api.Get("/contacts/unknown", "Accept: text/html")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, resp.Body.String(), `id="error"`)
	assert.Contains(t, resp.Body.String(), "Not Found")
}

func TestPagesShow(t *testing.T) {
	api, store, _ := newPagesAPI(t, &ds.Contact{First: "Ada", Last: "Lovelace", Twitter: "@ada", Notes: "notes"})
	id := firstID(t, store)

	resp := api.Get("/contacts/" + id)
	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, `class="active"`)
	assert.Contains(t, body, "https://twitter.com/@ada")
	assert.Contains(t, body, "Add to favorites")
}

func TestPagesUpdate(t *testing.T) {
	api, store, _ := newPagesAPI(t, &ds.Contact{Avatar: "https://example.com/a.jpg", Notes: "keep me"})
	id := firstID(t, store)

	resp := api.Post("/contacts/"+id+"/edit", formContentType,
		strings.NewReader("first=Ada&last=Lovelace&twitter=%40ada"))
	require.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, "/contacts/"+id, resp.Header().Get("Location"))

	c, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ada", c.First)
	assert.Equal(t, "Lovelace", c.Last)
	assert.Equal(t, "@ada", c.Twitter)
	assert.Equal(t, "https://example.com/a.jpg", c.Avatar)
	assert.Equal(t, "keep me", c.Notes)
	assert.False(t, c.Favorite)

	resp = api.Get(resp.Header().Get("Location"))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Ada Lovelace")
}

func TestPagesUpdateClearsSubmittedEmptyFields(t *testing.T) {
	api, store, _ := newPagesAPI(t, &ds.Contact{First: "Ada", Notes: "old"})
	id := firstID(t, store)

	resp := api.Post("/contacts/"+id+"/edit", formContentType, strings.NewReader("first=Ada&notes="))
	require.Equal(t, http.StatusSeeOther, resp.Code)

	c, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, c.Notes)
}

func TestPagesFavorite(t *testing.T) {
	api, store, _ := newPagesAPI(t, &ds.Contact{First: "Ada"})
	id := firstID(t, store)

	resp := api.Post("/contacts/"+id, formContentType, strings.NewReader("favorite=true"))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, resp.Header().Get("Location"))
	assert.Contains(t, resp.Body.String(), "Remove from favorites")
	assert.Contains(t, resp.Body.String(), "<span>★</span>", "sidebar is revalidated")

	c, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, c.Favorite)

	resp = api.Post("/contacts/"+id, formContentType, strings.NewReader("favorite=false"))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Add to favorites")

	c, err = store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, c.Favorite)
}

func TestPagesDestroy(t *testing.T) {
	api, store, _ := newPagesAPI(t, &ds.Contact{First: "Ada"})
	id := firstID(t, store)

	t.Run("unconfirmed asks first", func(t *testing.T) {
		resp := api.Post("/contacts/"+id+"/destroy", formContentType, strings.NewReader("confirmed=false"))
		require.Equal(t, http.StatusSeeOther, resp.Code)
		assert.Equal(t, "/contacts/"+id+"/destroy", resp.Header().Get("Location"))
		assert.Equal(t, 1, store.Len())

		resp = api.Get(resp.Header().Get("Location"))
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `id="confirm"`)
	})

	t.Run("confirmed deletes", func(t *testing.T) {
		resp := api.Post("/contacts/"+id+"/destroy", formContentType, strings.NewReader("confirmed=true"))
		require.Equal(t, http.StatusSeeOther, resp.Code)
		assert.Equal(t, "/", resp.Header().Get("Location"))
		assert.Zero(t, store.Len())
		assert.Equal(t, http.StatusNotFound, api.Get("/contacts/"+id).Code)
	})
}

func TestPagesStylesheet(t *testing.T) {
	api, _, _ := newPagesAPI(t)
	resp := api.Get("/app.css")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, cssContentType, resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Body.String(), "#sidebar")
}

func TestFormUpdate(t *testing.T) {
	form, err := parseForm([]byte("first=Ada&favorite=true&unknown=x"))
	require.NoError(t, err)
	u := formUpdate(form)
	require.NotNil(t, u.First)
	assert.Equal(t, "Ada", *u.First)
	require.NotNil(t, u.Favorite)
	assert.True(t, *u.Favorite)
	assert.Nil(t, u.Last)
	assert.Nil(t, u.Twitter)
	assert.Nil(t, u.Avatar)
	assert.Nil(t, u.Notes)

	_, err = parseForm([]byte("%zz"))
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.GetStatus())
}
