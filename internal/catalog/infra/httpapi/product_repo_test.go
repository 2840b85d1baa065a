package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/pkg/apiclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, mux *http.ServeMux) *ProductRepo {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	api, err := apiclient.New(srv.URL, srv.Client(), nil)
	require.NoError(t, err)
	return NewProductRepo(api)
}

func TestList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /items", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"), "catalog is public")
		_, _ = w.Write([]byte(`{"data":[
			{"id":1,"name":"Widget","status":"available","created_at":"2024-05-01T10:00:00Z"},
			{"id":2,"name":"Gadget","status":"available","created_at":"2024-05-02T10:00:00Z"}
		]}`))
	})

	got, err := newRepo(t, mux).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.Product{
		ID:        1,
		Name:      "Widget",
		Status:    "available",
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}, got[0])
}

func TestListEmptyStore(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /items", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":null}`))
	})

	got, err := newRepo(t, mux).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := newRepo(t, mux).List(context.Background())
	require.Error(t, err)
}

func TestCreate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /items", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Lamp", body["name"])
		assert.Equal(t, "available", body["status"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":12,"name":"Lamp","status":"available"}}`))
	})

	got, err := newRepo(t, mux).Create(context.Background(), domain.Product{Name: "Lamp", Status: domain.StatusAvailable})
	require.NoError(t, err)
	assert.Equal(t, uint64(12), got.ID)
}
