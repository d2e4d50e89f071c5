package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VeriPay/VeriPay-Backend/services/monitoring/logging"
	"github.com/stretchr/testify/require"
)

func dojahForURL(url string) *DojahProvider {
	return NewDojahProvider(&DojahConfig{
		DojahBaseUrl: url + "/",
		DojahAppID:   "test-app",
		DojahKey:     "test-key",
	}, logging.NewLogger())
}

func TestDojahVerifySuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "test-app", r.Header.Get("AppId"))
		require.Equal(t, "test-key", r.Header.Get("Authorization"))
		require.Equal(t, "/api/v1/kyc/bvn/full", r.URL.Path)
		require.Equal(t, "22212345678", r.URL.Query().Get("bvn"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"entity": {
				"bvn": "22212345678",
				"first_name": "AMAKA",
				"last_name": "OKAFOR",
				"date_of_birth": "1988-07-02",
				"phone_number1": "08098765432"
			}
		}`))
	}))
	defer server.Close()

	p := dojahForURL(server.URL)
	require.True(t, p.IsConfigured())

	result := p.Verify(context.Background(), VerificationRequest{Kind: KindBVN, Value: "22212345678"})
	require.True(t, result.Success)
	require.Equal(t, "DOJAH", result.Provider)
	require.Equal(t, "22212345678", result.Record.IDNumber)
	require.Equal(t, "AMAKA", result.Record.FirstName)
	require.Equal(t, "OKAFOR", result.Record.LastName)
	require.Equal(t, "08098765432", result.Record.PhoneNumber, "phone_number1 covers the missing phone_number")
}

func TestDojahVerifyErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "NIN not found"}`))
	}))
	defer server.Close()

	p := dojahForURL(server.URL)

	result := p.Verify(context.Background(), VerificationRequest{Kind: KindNIN, Value: "12345678901"})
	require.False(t, result.Success)
	require.Equal(t, http.StatusNotFound, result.StatusCode)
	require.Equal(t, "NIN not found", result.RawMessage)
}

func TestDojahUnconfigured(t *testing.T) {
	// Dojah needs both the key and the app id to be usable.
	p := NewDojahProvider(&DojahConfig{DojahBaseUrl: "https://api.dojah.io/", DojahKey: "k"}, logging.NewLogger())
	require.False(t, p.IsConfigured())
}
