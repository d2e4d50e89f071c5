package identity

import (
	"context"
	"encoding/json"
)

// VerificationKind is the lookup registry an identifier belongs to.
type VerificationKind string

const (
	KindNIN   VerificationKind = "nin"
	KindBVN   VerificationKind = "bvn"
	KindVNIN  VerificationKind = "vnin"
	KindPhone VerificationKind = "phone"
)

// VerificationRequest is built once per lookup and handed to each
// adapter in turn.
type VerificationRequest struct {
	Kind  VerificationKind
	Value string
}

// Record is the canonical identity shape every provider response is
// mapped into.
type Record struct {
	IDNumber           string `json:"id_number"`
	FirstName          string `json:"first_name"`
	MiddleName         string `json:"middle_name"`
	LastName           string `json:"last_name"`
	DateOfBirth        string `json:"date_of_birth"`
	Gender             string `json:"gender"`
	PhoneNumber        string `json:"phone_number"`
	Email              string `json:"email"`
	Address            string `json:"address"`
	StateOfResidence   string `json:"state_of_residence"`
	LGAOfResidence     string `json:"lga_of_residence"`
	StateOfOrigin      string `json:"state_of_origin"`
	LGAOfOrigin        string `json:"lga_of_origin"`
	Nationality        string `json:"nationality"`
	Photo              string `json:"photo"`
	MaritalStatus      string `json:"marital_status"`
	EmploymentStatus   string `json:"employment_status"`
}

// Result is what an adapter hands back to the orchestrator. Adapters
// never return Go errors; transport failures, non-2xx codes and
// malformed payloads all surface here as Success=false with the raw
// message preserved for classification.
type Result struct {
	Success      bool
	Provider     string
	StatusCode   int
	ResponseCode string
	RawMessage   string
	Record       *Record
	RawPayload   json.RawMessage
}

// Provider is implemented once per upstream identity vendor.
type Provider interface {
	Name() string
	IsConfigured() bool
	Verify(ctx context.Context, req VerificationRequest) Result
}

func failedResult(provider string, statusCode int, responseCode, raw string) Result {
	return Result{
		Success:      false,
		Provider:     provider,
		StatusCode:   statusCode,
		ResponseCode: responseCode,
		RawMessage:   raw,
	}
}

// firstNonEmpty picks the first populated value out of the known
// alternate field names providers use for the same datum.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
