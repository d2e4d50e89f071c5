package verification

import (
	"time"

	db "github.com/VeriPay/VeriPay-Backend/db"
	"github.com/VeriPay/VeriPay-Backend/providers/identity"
	"github.com/VeriPay/VeriPay-Backend/services/provisioning"
	"github.com/shopspring/decimal"
)

// VerifyInput is the pipeline boundary input.
type VerifyInput struct {
	UserID int64
	Kind   identity.VerificationKind
	Value  string
	Layout SlipLayout
}

// VerifyOutput is the pipeline boundary output on success.
type VerifyOutput struct {
	ProviderUsed   string                     `json:"provider_used"`
	Reference      string                     `json:"reference"`
	Record         *identity.Record           `json:"record"`
	Slip           *DocumentArtifact          `json:"slip"`
	VirtualAccount *provisioning.AccountModel `json:"virtual_account"`
	PriceCharged   decimal.Decimal            `json:"price_charged"`
}

// HistoryItem is a persisted verification outcome, without the raw
// canonical payload.
type HistoryItem struct {
	Reference   string    `json:"reference"`
	Kind        string    `json:"kind"`
	IDNumber    string    `json:"id_number"`
	Provider    string    `json:"provider"`
	Status      string    `json:"status"`
	SlipLayout  string    `json:"slip_layout"`
	DocumentRef string    `json:"document_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toHistoryItem(v db.VerificationRecord) HistoryItem {
	item := HistoryItem{
		Reference:  v.Reference,
		Kind:       v.Kind,
		IDNumber:   v.IDNumber,
		Provider:   v.Provider,
		Status:     v.Status,
		SlipLayout: v.SlipLayout,
		CreatedAt:  v.CreatedAt,
	}
	if v.DocumentRef.Valid {
		item.DocumentRef = v.DocumentRef.String
	}
	return item
}
