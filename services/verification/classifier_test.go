package verification

import (
	"net/http"
	"testing"

	"github.com/VeriPay/VeriPay-Backend/providers"
	"github.com/VeriPay/VeriPay-Backend/providers/identity"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		result identity.Result
		want   ErrorKind
	}{
		{
			name: "prembly not-found code beats message text",
			result: identity.Result{
				Provider:     providers.Prembly,
				StatusCode:   http.StatusOK,
				ResponseCode: "01",
				RawMessage:   "Verification Unsuccessful",
			},
			want: ErrKindNotFound,
		},
		{
			name: "http 404 is not found",
			result: identity.Result{
				Provider:   providers.Dojah,
				StatusCode: http.StatusNotFound,
				RawMessage: "some opaque body",
			},
			want: ErrKindNotFound,
		},
		{
			name: "http 402 is provider credit exhaustion",
			result: identity.Result{
				Provider:   providers.Dojah,
				StatusCode: http.StatusPaymentRequired,
				RawMessage: "upgrade your plan",
			},
			want: ErrKindServiceUnavailable,
		},
		{
			name: "context deadline is timeout",
			result: identity.Result{
				Provider:   providers.QoreID,
				RawMessage: `Post "https://api.qoreid.com": context deadline exceeded`,
			},
			want: ErrKindTimeout,
		},
		{
			name: "client timeout is timeout",
			result: identity.Result{
				Provider:   providers.Dojah,
				RawMessage: "Client.Timeout exceeded while awaiting headers",
			},
			want: ErrKindTimeout,
		},
		{
			name: "no record text",
			result: identity.Result{
				Provider:   providers.Dojah,
				StatusCode: http.StatusBadRequest,
				RawMessage: "No record found for this lookup",
			},
			want: ErrKindNotFound,
		},
		{
			name: "qoreid id mismatch",
			result: identity.Result{
				Provider:   providers.QoreID,
				StatusCode: http.StatusOK,
				RawMessage: "id_mismatch",
			},
			want: ErrKindNotFound,
		},
		{
			name: "provider wallet exhausted",
			result: identity.Result{
				Provider:   providers.Prembly,
				StatusCode: http.StatusBadRequest,
				RawMessage: "Insufficient credit on this service",
			},
			want: ErrKindServiceUnavailable,
		},
		{
			name: "invalid identifier",
			result: identity.Result{
				Provider:   providers.Dojah,
				StatusCode: http.StatusBadRequest,
				RawMessage: "Invalid NIN format supplied",
			},
			want: ErrKindInvalidFormat,
		},
		{
			name: "unrecognized passes raw message through",
			result: identity.Result{
				Provider:   providers.Dojah,
				StatusCode: http.StatusInternalServerError,
				RawMessage: "kaboom",
			},
			want: ErrKindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.result)
			require.Equal(t, tt.want, got.Kind)
			if tt.want == ErrKindUnknown {
				require.Equal(t, tt.result.RawMessage, got.Message)
			} else {
				// Classified messages are the human-readable taxonomy
				// text, never the raw provider body.
				require.NotContains(t, got.Message, tt.result.RawMessage)
			}
		})
	}
}
