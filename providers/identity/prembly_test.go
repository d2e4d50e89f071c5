package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VeriPay/VeriPay-Backend/services/monitoring/logging"
	"github.com/stretchr/testify/require"
)

func premblyForURL(url string) *PremblyProvider {
	return NewPremblyProvider(&PremblyConfig{
		PremblyBaseUrl: url + "/",
		PremblyAppID:   "test-app",
		PremblyKey:     "test-key",
	}, logging.NewLogger())
}

func TestPremblyVerifySuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-key", r.Header.Get("x-api-key"))
		require.Equal(t, "test-app", r.Header.Get("app-id"))
		require.Equal(t, "/identitypass/verification/nin_wo_face", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": true,
			"detail": "Verification Successful",
			"response_code": "00",
			"data": {
				"nin": "12345678901",
				"firstname": "JOHN",
				"surname": "DOE",
				"birthdate": "1990-01-15",
				"gender": "M",
				"telephoneno": "08012345678"
			}
		}`))
	}))
	defer server.Close()

	p := premblyForURL(server.URL)
	require.True(t, p.IsConfigured())

	result := p.Verify(context.Background(), VerificationRequest{Kind: KindNIN, Value: "12345678901"})
	require.True(t, result.Success)
	require.Equal(t, "PREMBLY", result.Provider)
	require.Equal(t, "12345678901", result.Record.IDNumber)
	require.Equal(t, "JOHN", result.Record.FirstName)
	require.Equal(t, "DOE", result.Record.LastName, "surname maps into last name")
	require.Equal(t, "1990-01-15", result.Record.DateOfBirth, "birthdate maps into date of birth")
	require.Equal(t, "08012345678", result.Record.PhoneNumber)
}

func TestPremblyVerifyNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": false, "detail": "Verification Unsuccessful", "response_code": "01"}`))
	}))
	defer server.Close()

	p := premblyForURL(server.URL)

	result := p.Verify(context.Background(), VerificationRequest{Kind: KindNIN, Value: "12345678901"})
	require.False(t, result.Success)
	require.Equal(t, "01", result.ResponseCode)
	require.Equal(t, "Verification Unsuccessful", result.RawMessage)
}

func TestPremblyVerifyTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	p := premblyForURL(server.URL)

	result := p.Verify(context.Background(), VerificationRequest{Kind: KindNIN, Value: "12345678901"})
	require.False(t, result.Success)
	require.NotEmpty(t, result.RawMessage)
}

func TestPremblyVerifyMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer server.Close()

	p := premblyForURL(server.URL)

	result := p.Verify(context.Background(), VerificationRequest{Kind: KindNIN, Value: "12345678901"})
	require.False(t, result.Success, "malformed payloads come back as failed results, not panics")
}

func TestPremblyUnconfigured(t *testing.T) {
	p := NewPremblyProvider(&PremblyConfig{}, logging.NewLogger())
	require.False(t, p.IsConfigured())
}
