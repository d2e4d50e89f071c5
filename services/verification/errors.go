package verification

// ErrorKind is the small failure taxonomy every provider error
// vocabulary collapses into.
type ErrorKind string

const (
	ErrKindInsufficientFunds  ErrorKind = "insufficient_funds"
	ErrKindNotFound           ErrorKind = "not_found"
	ErrKindInvalidFormat      ErrorKind = "invalid_format"
	ErrKindServiceUnavailable ErrorKind = "service_unavailable"
	ErrKindTimeout            ErrorKind = "timeout"
	ErrKindUnconfigured       ErrorKind = "unconfigured"
	ErrKindUnknown            ErrorKind = "unknown"
)

// VerificationError is what callers see. Message is always the
// classified human-readable text, never a raw provider payload, except
// for ErrKindUnknown which passes the raw message through.
type VerificationError struct {
	Kind    ErrorKind `json:"error_kind"`
	Message string    `json:"message"`
}

func (e *VerificationError) Error() string {
	return e.Message
}

const (
	msgInsufficientFunds  = "insufficient wallet balance for this verification"
	msgNotFound           = "no record found for the supplied identifier"
	msgInvalidFormat      = "the supplied identifier is malformed, please check and try again"
	msgServiceUnavailable = "verification service is temporarily unavailable, please try again later"
	msgTimeout            = "verification timed out, please try again"
	msgUnconfigured       = "no verification provider is configured"
)

func newError(kind ErrorKind, message string) *VerificationError {
	return &VerificationError{Kind: kind, Message: message}
}
