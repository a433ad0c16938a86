package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cartflow/pkg/order"
)

func TestSubmit(t *testing.T) {
	var got createRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/order/create", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	items := []order.Item{{Name: "bacon", UnitPrice: 10.99, Quantity: 10}}
	err := New(srv.URL, nil).Submit(context.Background(), items)
	require.NoError(t, err)
	assert.Equal(t, items, got.Items)
}

func TestSubmitRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "order has no items", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := New(srv.URL, nil).Submit(context.Background(), nil)
	require.ErrorIs(t, err, ErrRejected)
}

func TestSubmitTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := New(srv.URL, nil).Submit(context.Background(), []order.Item{{Name: "bacon", UnitPrice: 10.99, Quantity: 1}})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRejected)
}
