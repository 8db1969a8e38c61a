package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arshopsy/arshopsy/internal/checkout"
	"github.com/arshopsy/arshopsy/internal/common"
	"github.com/arshopsy/arshopsy/internal/feedback"
)

func newClientWithServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestLogin_InstallsToken(t *testing.T) {
	c := newClientWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/login", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-1",
			"user":  map[string]string{"id": "u-1", "name": "Alice", "email": "alice@example.com"},
		})
	})

	user, err := c.Login(context.Background(), "alice@example.com", []byte("s3cret"))
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "tok-1", c.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	c := newClientWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
	})

	_, err := c.Login(context.Background(), "alice@example.com", []byte("wrong"))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	c := newClientWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "email already registered"})
	})

	_, err := c.Register(context.Background(), "Alice", "alice@example.com", []byte("s3cret"))
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestPlaceOrder_SendsTokenAndDecodesOrder(t *testing.T) {
	c := newClientWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		var req CheckoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "card", req.Method)

		json.NewEncoder(w).Encode(Order{
			ID: "o-1", Method: req.Method, AmountINR: 2000,
			ItemIDs: req.ItemIDs, Reference: "PAY-1",
		})
	})
	c.SetToken("tok-1")

	order, err := c.PlaceOrder(context.Background(), CheckoutRequest{
		Method:  "card",
		Card:    CardDetails{Number: "4111111111111111", Name: "Alice", Expiry: "09/27", CVC: "123"},
		ItemIDs: []string{"sofa-01", "lamp-03"},
	})
	require.NoError(t, err)
	assert.Equal(t, "PAY-1", order.Reference)
	assert.Equal(t, 2000, order.AmountINR)
}

func TestPlaceOrder_Declined(t *testing.T) {
	c := newClientWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]string{"error": "payment declined"})
	})

	_, err := c.PlaceOrder(context.Background(), CheckoutRequest{Method: "card"})
	assert.ErrorIs(t, err, common.ErrPaymentDeclined)
}

func TestPlaceOrder_ValidationErrorCarriesField(t *testing.T) {
	c := newClientWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "card number must be 16 digits", "field": "cardNumber",
		})
	})

	_, err := c.PlaceOrder(context.Background(), CheckoutRequest{Method: "card"})

	var vErr *checkout.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "cardNumber", vErr.Field)
}

func TestCatalog_DecodesItems(t *testing.T) {
	c := newClientWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{"id": "sofa-01", "name": "Velvet Sofa", "price_inr": 1000},
			},
		})
	})

	items, err := c.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "sofa-01", items[0].ID)
	assert.Equal(t, 1000, items[0].PriceINR)
}

func TestModelURL_PassesPlatform(t *testing.T) {
	c := newClientWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "ios", r.URL.Query().Get("platform"))
		json.NewEncoder(w).Encode(map[string]string{"url": "http://example.com/sofa.usdz?signed"})
	})

	url, err := c.ModelURL(context.Background(), "sofa-01", "ios")
	require.NoError(t, err)
	assert.Contains(t, url, "usdz")
}

func TestSendFeedback_NoContent(t *testing.T) {
	var got feedback.Message
	c := newClientWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.SendFeedback(context.Background(), feedback.Message{Name: "Alice", Liked: "AR view"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}

func TestDo_ServerUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", time.Second)

	err := c.Ping(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
