package httpapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dwikikusuma/storefront/pkg/apiclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, mux *http.ServeMux) *OrderRepo {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	api, err := apiclient.New(srv.URL, srv.Client(), nil)
	require.NoError(t, err)
	return NewOrderRepo(api)
}

func TestCreate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{}`, string(body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Order created successfully","order":{"id":8,"cart_id":3,"created_at":"2024-06-01T09:30:00Z"}}`))
	})

	got, err := newRepo(t, mux).Create(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(8), got.ID)
	assert.Equal(t, uint64(3), got.CartID)
}

func TestCreateWithoutCart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"User has no active cart to order"}`))
	})

	_, err := newRepo(t, mux).Create(context.Background())
	msg, ok := apiclient.MessageOf(err)
	require.True(t, ok)
	assert.Equal(t, "User has no active cart to order", msg)
}

func TestListMine(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /my-orders", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{
			"id":4,"cart_id":2,"user_id":1,
			"created_at":"2024-06-01T09:30:00Z",
			"user":{"id":1,"username":"ana"},
			"cart":{"id":2,"status":"ordered","items":[
				{"CartID":2,"ItemID":1,"Quantity":2,"Item":{"id":1,"name":"Widget"}}
			]}
		}]}`))
	})

	got, err := newRepo(t, mux).ListMine(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	o := got[0]
	assert.Equal(t, uint64(4), o.ID)
	assert.Equal(t, "ana", o.User.Username)
	assert.Equal(t, time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC), o.CreatedAt)
	assert.Equal(t, 2, o.TotalQuantity())
	assert.Equal(t, "Widget", o.Cart.Lines[0].Item.Name)
}
