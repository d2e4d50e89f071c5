package verification

import (
	"strings"

	"github.com/VeriPay/VeriPay-Backend/providers/identity"
)

// Values some providers send in place of genuinely absent data. A
// field carrying one of these is treated as empty.
var placeholderValues = map[string]bool{
	"":          true,
	"n/a":       true,
	"unknown":   true,
	"null":      true,
	"undefined": true,
	"none":      true,
}

func isPlaceholder(value string) bool {
	return placeholderValues[strings.ToLower(strings.TrimSpace(value))]
}

// HasValidData decides whether a transport-successful provider
// response actually carries a usable identity: a real name AND (a date
// of birth OR an id number). Empty-but-200 responses fail this check
// and must not be charged for.
func HasValidData(record *identity.Record) bool {
	if record == nil {
		return false
	}

	hasName := !isPlaceholder(record.FirstName) || !isPlaceholder(record.LastName)
	hasDOB := !isPlaceholder(record.DateOfBirth)
	hasID := !isPlaceholder(record.IDNumber)

	return hasName && (hasDOB || hasID)
}
