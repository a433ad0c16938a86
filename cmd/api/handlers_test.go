package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cartflow/pkg/catalog"
	"cartflow/pkg/order"
	ordermemory "cartflow/pkg/order/memory"
	usermemory "cartflow/pkg/user/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cat = catalog.Default()
	repo = ordermemory.New()
	users = usermemory.New(demoUsers()...)
	log = zap.NewNop()
	cartStorage = nil
	publisher = nil
	m = nil
	tracer = nil

	srv := httptest.NewServer(newRouter())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCreateOrder(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/order/create", `{"items":[{"name":"bacon","unitPrice":10.99,"quantity":10}]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var o order.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&o))
	assert.NotEmpty(t, o.ID)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "bacon", o.Items[0].Name)

	// The stored order is retrievable.
	got, err := http.Get(srv.URL + "/orders/" + o.ID)
	require.NoError(t, err)
	defer got.Body.Close()
	assert.Equal(t, http.StatusOK, got.StatusCode)
}

func TestCreateOrderEmptyItems(t *testing.T) {
	srv := newTestServer(t)
	resp := postJSON(t, srv.URL+"/order/create", `{"items":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateOrderNegativeValues(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/order/create", `{"items":[{"name":"bacon","unitPrice":-1,"quantity":1}]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/order/create", `{"items":[{"name":"bacon","unitPrice":1,"quantity":-1}]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateOrderRejectsUnknownFields(t *testing.T) {
	srv := newTestServer(t)
	resp := postJSON(t, srv.URL+"/order/create", `{"items":[{"name":"bacon","unitPrice":10.99,"quantity":1}],"coupon":"X"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteOrder(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/order/create", `{"items":[{"name":"eggs","unitPrice":3.99,"quantity":2}]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var o order.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&o))

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/orders/"+o.ID, nil)
	require.NoError(t, err)
	del, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer del.Body.Close()
	assert.Equal(t, http.StatusNoContent, del.StatusCode)

	again, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer again.Body.Close()
	assert.Equal(t, http.StatusNotFound, again.StatusCode)
}

func TestListProducts(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/products")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []catalog.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	assert.Len(t, products, 10)
}

func TestGetUser(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/users/1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	missing, err := http.Get(srv.URL + "/users/99")
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestGetCartWithoutStorage(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/cart")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
