package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VeriPay/VeriPay-Backend/services/monitoring/logging"
	"github.com/stretchr/testify/require"
)

func qoreidForURL(url string) *QoreIDProvider {
	return NewQoreIDProvider(&QoreIDConfig{
		QoreIDBaseUrl: url + "/",
		QoreIDToken:   "test-token",
	}, logging.NewLogger())
}

func TestQoreIDVerifySuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.Equal(t, "/v1/ng/identities/nin/12345678901", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 981,
			"status": {"state": "complete", "status": "verified"},
			"nin": {
				"nin": "12345678901",
				"firstname": "TUNDE",
				"lastname": "ADEYEMI",
				"birthdate": "1979-11-30"
			}
		}`))
	}))
	defer server.Close()

	p := qoreidForURL(server.URL)
	require.True(t, p.IsConfigured())

	result := p.Verify(context.Background(), VerificationRequest{Kind: KindNIN, Value: "12345678901"})
	require.True(t, result.Success)
	require.Equal(t, "QOREID", result.Provider)
	require.Equal(t, "12345678901", result.Record.IDNumber)
	require.Equal(t, "TUNDE", result.Record.FirstName)
	require.Equal(t, "1979-11-30", result.Record.DateOfBirth)
}

func TestQoreIDVerifyUnverifiedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 982,
			"status": {"state": "complete", "status": "id_mismatch"},
			"nin": {"nin": "12345678901", "firstname": "TUNDE"}
		}`))
	}))
	defer server.Close()

	p := qoreidForURL(server.URL)

	result := p.Verify(context.Background(), VerificationRequest{Kind: KindNIN, Value: "12345678901"})
	require.False(t, result.Success, "a 200 with an unverified status is still a failed lookup")
	require.Equal(t, "id_mismatch", result.ResponseCode)
}

func TestQoreIDVerifyServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"code": "503", "message": "service temporarily unavailable"}`))
	}))
	defer server.Close()

	p := qoreidForURL(server.URL)

	result := p.Verify(context.Background(), VerificationRequest{Kind: KindNIN, Value: "12345678901"})
	require.False(t, result.Success)
	require.Equal(t, http.StatusServiceUnavailable, result.StatusCode)
	require.Equal(t, "service temporarily unavailable", result.RawMessage)
}
