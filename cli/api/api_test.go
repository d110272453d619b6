package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ds "github.com/oaiiae/huma-contacts/datastores"
)

var discard = slog.New(slog.DiscardHandler)

func serve(h http.Handler, method, target string, headers ...string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		r.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func newTestRouter(t *testing.T, store ds.ContactsStore) http.Handler {
	t.Helper()
	h, _ := NewRouter(&RouterOptions{EndpointsPrefix: "/api"}, "Test", "1.0.0", "abc", "today", store, discard)
	return h
}

func TestNewRouterPagesAndAPI(t *testing.T) {
	h := newTestRouter(t, ds.NewContactsInmem(&ds.Contact{First: "Ada", Last: "Lovelace"}))

	resp := serve(h, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, resp.Body.String(), "Ada Lovelace")

	resp = serve(h, http.MethodGet, "/api/contacts/")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "json")
	assert.Contains(t, resp.Body.String(), `"first":"Ada"`)

	resp = serve(h, http.MethodGet, "/nowhere", "Accept", "text/html")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, resp.Body.String(), `id="error"`)

	resp = serve(h, http.MethodGet, "/nowhere")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "json")
}

func TestNewRouterOperationalEndpoints(t *testing.T) {
	h := newTestRouter(t, ds.NewContactsInmem(&ds.Contact{First: "Ada"}, &ds.Contact{First: "Alan"}))

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/liveness").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/readiness").Code)
	require.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/").Code)

	resp := serve(h, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, `build_info{goversion="`)
	assert.Contains(t, body, `revision="abc"`)
	assert.Contains(t, body, "contacts_total 2")
	assert.Contains(t, body, `http_requests_total{op="index-page",method="GET",path="/",status="200"} 1`)
	assert.Contains(t, body, "http_request_duration_seconds_bucket")
	assert.Contains(t, body, "process_")
}

type failingStore struct{ ds.ContactsStore }

func (failingStore) List(context.Context, string) ([]*ds.Contact, error) {
	return nil, errors.New("backend down")
}

func TestNewRouterReadinessFailure(t *testing.T) {
	h := newTestRouter(t, failingStore{ds.NewContactsInmem()})
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, http.MethodGet, "/readiness").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(h, http.MethodGet, "/").Code)
	assert.Contains(t, serve(h, http.MethodGet, "/metrics").Body.String(), "contacts_total 0")
}

func TestNewRouterOpenAPI(t *testing.T) {
	_, api := NewRouter(&RouterOptions{EndpointsPrefix: "/v2"}, "Test", "1.0.0", "", "", ds.NewContactsInmem(), discard)
	paths := api.OpenAPI().Paths
	for _, path := range []string{"/", "/contacts/{id}", "/contacts/{id}/edit", "/contacts/{id}/destroy", "/v2/contacts/", "/v2/contacts/{id}"} {
		assert.Contains(t, paths, path)
	}

	b, err := api.OpenAPI().YAML()
	require.NoError(t, err)
	assert.Contains(t, string(b), "operationId: destroy-contact-action")
}

func TestNewConfigKeepsDefaultFormats(t *testing.T) {
	config := NewConfig("Test", "1.0.0")
	assert.Contains(t, config.Formats, "text/html")
	assert.NotContains(t, huma.DefaultFormats, "text/html")
}

func TestNewStoreInmem(t *testing.T) {
	store, watch, err := NewStore(&StoreOptions{StoreSeed: true, StoreWatch: true}, discard)
	require.NoError(t, err)
	assert.Nil(t, watch)
	cs, err := store.List(t.Context(), "")
	require.NoError(t, err)
	assert.Len(t, cs, len(ds.SeedContacts()))

	store, _, err = NewStore(&StoreOptions{}, discard)
	require.NoError(t, err)
	cs, err = store.List(t.Context(), "")
	require.NoError(t, err)
	assert.Empty(t, cs)
}

func TestNewStoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.yaml")

	store, watch, err := NewStore(&StoreOptions{StoreFile: path, StoreSeed: true, StoreWatch: true}, discard)
	require.NoError(t, err)
	require.NotNil(t, watch)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "contacts:"))

	c, err := store.Create(t.Context())
	require.NoError(t, err)

	// reopening keeps the stored contacts instead of seeding again
	store, _, err = NewStore(&StoreOptions{StoreFile: path, StoreSeed: true}, discard)
	require.NoError(t, err)
	cs, err := store.List(t.Context(), "")
	require.NoError(t, err)
	assert.Len(t, cs, len(ds.SeedContacts())+1)
	_, err = store.Get(t.Context(), c.ID)
	assert.NoError(t, err)
}

func TestNewStoreFileUnseeded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.yaml")
	_, _, err := NewStore(&StoreOptions{StoreFile: path}, discard)
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewStoreLatency(t *testing.T) {
	store, _, err := NewStore(&StoreOptions{StoreLatency: 20 * time.Millisecond}, discard)
	require.NoError(t, err)
	assert.IsType(t, &ds.ContactsDelayed{}, store)

	start := time.Now()
	_, err = store.List(t.Context(), "")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
