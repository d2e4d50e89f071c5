package verification

import (
	"context"
	"net/http"
	"testing"

	"github.com/VeriPay/VeriPay-Backend/providers/identity"
	"github.com/VeriPay/VeriPay-Backend/services/monitoring/logging"
	"github.com/stretchr/testify/require"
)

// fakeProvider scripts one adapter in the chain and counts how often
// it is actually called.
type fakeProvider struct {
	name       string
	configured bool
	result     identity.Result
	calls      int
}

func (f *fakeProvider) Name() string       { return f.name }
func (f *fakeProvider) IsConfigured() bool { return f.configured }

func (f *fakeProvider) Verify(ctx context.Context, req identity.VerificationRequest) identity.Result {
	f.calls++
	result := f.result
	result.Provider = f.name
	return result
}

func validRecord() *identity.Record {
	return &identity.Record{
		IDNumber:    "12345678901",
		FirstName:   "JOHN",
		LastName:    "DOE",
		DateOfBirth: "1990-01-15",
	}
}

func timeoutResult() identity.Result {
	return identity.Result{
		Success:    false,
		RawMessage: "context deadline exceeded",
	}
}

func testRequest() identity.VerificationRequest {
	return identity.VerificationRequest{Kind: identity.KindNIN, Value: "12345678901"}
}

func TestOrchestratorFirstSuccessWins(t *testing.T) {
	a := &fakeProvider{name: "A", configured: true, result: identity.Result{Success: true, Record: validRecord()}}
	b := &fakeProvider{name: "B", configured: true, result: identity.Result{Success: true, Record: validRecord()}}

	o := NewOrchestrator(logging.NewLogger(), a, b)

	result, verr := o.Verify(context.Background(), testRequest())
	require.Nil(t, verr)
	require.Equal(t, "A", result.Provider)
	require.Equal(t, 1, a.calls)
	require.Equal(t, 0, b.calls, "later providers must not be called after a success")
}

func TestOrchestratorFallsBackOnFailure(t *testing.T) {
	a := &fakeProvider{name: "A", configured: true, result: timeoutResult()}
	b := &fakeProvider{name: "B", configured: true, result: identity.Result{Success: true, Record: validRecord()}}

	o := NewOrchestrator(logging.NewLogger(), a, b)

	result, verr := o.Verify(context.Background(), testRequest())
	require.Nil(t, verr)
	require.Equal(t, "B", result.Provider)
	require.Equal(t, 1, a.calls)
	require.Equal(t, 1, b.calls)
}

func TestOrchestratorEmptySuccessContinues(t *testing.T) {
	// HTTP 200 with placeholder-only data must be treated as a
	// failure, not accepted.
	empty := &identity.Record{FirstName: "N/A", LastName: "N/A", DateOfBirth: "N/A"}
	a := &fakeProvider{name: "A", configured: true, result: identity.Result{Success: true, Record: empty}}
	b := &fakeProvider{name: "B", configured: true, result: identity.Result{Success: true, Record: validRecord()}}

	o := NewOrchestrator(logging.NewLogger(), a, b)

	result, verr := o.Verify(context.Background(), testRequest())
	require.Nil(t, verr)
	require.Equal(t, "B", result.Provider)
	require.Equal(t, 1, a.calls)
}

func TestOrchestratorAllFailReturnsLastError(t *testing.T) {
	a := &fakeProvider{name: "A", configured: true, result: timeoutResult()}
	b := &fakeProvider{name: "B", configured: true, result: identity.Result{
		Success:    false,
		StatusCode: http.StatusNotFound,
		RawMessage: "record not found",
	}}

	o := NewOrchestrator(logging.NewLogger(), a, b)

	_, verr := o.Verify(context.Background(), testRequest())
	require.NotNil(t, verr)
	require.Equal(t, ErrKindNotFound, verr.Kind, "the last error wins, not the first")
}

func TestOrchestratorSkipsUnconfiguredProviders(t *testing.T) {
	a := &fakeProvider{name: "A", configured: false, result: timeoutResult()}
	b := &fakeProvider{name: "B", configured: true, result: identity.Result{Success: true, Record: validRecord()}}

	o := NewOrchestrator(logging.NewLogger(), a, b)
	require.Equal(t, []string{"B"}, o.ProviderNames())

	result, verr := o.Verify(context.Background(), testRequest())
	require.Nil(t, verr)
	require.Equal(t, "B", result.Provider)
	require.Equal(t, 0, a.calls, "unconfigured providers are never attempted")
}

func TestOrchestratorNoProvidersConfigured(t *testing.T) {
	a := &fakeProvider{name: "A", configured: false}

	o := NewOrchestrator(logging.NewLogger(), a)

	_, verr := o.Verify(context.Background(), testRequest())
	require.NotNil(t, verr)
	require.Equal(t, ErrKindUnconfigured, verr.Kind)
}
