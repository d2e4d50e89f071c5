package verification

import (
	"net/http"
	"strings"

	"github.com/VeriPay/VeriPay-Backend/providers"
	"github.com/VeriPay/VeriPay-Backend/providers/identity"
)

// Prembly response codes that always mean the registry has no record,
// whatever the accompanying text says.
var premblyNotFoundCodes = map[string]bool{
	"01": true,
	"02": true,
}

// Classify maps a failed adapter result into the error taxonomy.
// Provider response codes are checked first, then case-insensitive
// substring matching against the raw message. Anything unrecognized
// passes through as Unknown with the raw text intact.
func Classify(result identity.Result) *VerificationError {
	// Provider-specific short-circuits
	if result.Provider == providers.Prembly && premblyNotFoundCodes[result.ResponseCode] {
		return newError(ErrKindNotFound, msgNotFound)
	}
	if result.StatusCode == http.StatusNotFound {
		return newError(ErrKindNotFound, msgNotFound)
	}
	if result.StatusCode == http.StatusTooManyRequests ||
		result.StatusCode == http.StatusServiceUnavailable ||
		result.StatusCode == http.StatusPaymentRequired {
		return newError(ErrKindServiceUnavailable, msgServiceUnavailable)
	}

	raw := strings.ToLower(result.RawMessage)

	switch {
	case strings.Contains(raw, "context deadline exceeded"),
		strings.Contains(raw, "timeout"),
		strings.Contains(raw, "timed out"):
		return newError(ErrKindTimeout, msgTimeout)

	case strings.Contains(raw, "not found"),
		strings.Contains(raw, "no record"),
		strings.Contains(raw, "does not exist"),
		strings.Contains(raw, "id_mismatch"),
		strings.Contains(raw, "not_found"):
		return newError(ErrKindNotFound, msgNotFound)

	case strings.Contains(raw, "insufficient"),
		strings.Contains(raw, "low wallet"),
		strings.Contains(raw, "credit"),
		strings.Contains(raw, "unavailable"),
		strings.Contains(raw, "try again later"):
		return newError(ErrKindServiceUnavailable, msgServiceUnavailable)

	case strings.Contains(raw, "invalid"),
		strings.Contains(raw, "malformed"),
		strings.Contains(raw, "format"):
		return newError(ErrKindInvalidFormat, msgInvalidFormat)
	}

	return newError(ErrKindUnknown, result.RawMessage)
}
