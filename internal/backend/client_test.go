package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"user": map[string]string{"_id": "u1"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("tok-123"))
	_, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientOmitsAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"products": []interface{}{}})
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken(""))
	_, err := client.Products(context.Background(), ProductQuery{})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientExtractsBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "Email already registered"})
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken(""))
	_, err := client.Signup(context.Background(), SignupRequest{Name: "A", Email: "a@b.c", Password: "pw"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Email already registered", apiErr.Message)
}

func TestClientFallsBackToStatusMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream error</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken(""))
	_, err := client.Cart(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Request failed with status 502", apiErr.Message)
}

func TestIsAuthFailure(t *testing.T) {
	assert.True(t, IsAuthFailure(&APIError{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"}))
	assert.True(t, IsAuthFailure(&APIError{StatusCode: http.StatusBadRequest, Message: "Invalid token provided"}))
	assert.False(t, IsAuthFailure(&APIError{StatusCode: http.StatusNotFound, Message: "Product not found"}))
	assert.False(t, IsAuthFailure(nil))
}

func TestVerifyPaymentPayloadShape(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"order": map[string]interface{}{"_id": "o1", "paymentStatus": "SUCCESS"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("tok"))
	order, err := client.VerifyPayment(context.Background(), VerifyPaymentRequest{
		RazorpayOrderID:   "rzp_order_1",
		RazorpayPaymentID: "rzp_pay_1",
		RazorpaySignature: "sig",
	})
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, "rzp_order_1", got["razorpay_order_id"])
	assert.Equal(t, "rzp_pay_1", got["razorpay_payment_id"])
	assert.Equal(t, "sig", got["razorpay_signature"])
}
