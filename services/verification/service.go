package verification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	db "github.com/VeriPay/VeriPay-Backend/db"
	"github.com/VeriPay/VeriPay-Backend/providers/identity"
	"github.com/VeriPay/VeriPay-Backend/services/monitoring/logging"
	"github.com/VeriPay/VeriPay-Backend/services/provisioning"
	"github.com/VeriPay/VeriPay-Backend/services/wallet"
	"github.com/VeriPay/VeriPay-Backend/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sqlc-dev/pqtype"
)

// VerificationStore is the slice of storage the pipeline writes to.
// *db.Store satisfies it.
type VerificationStore interface {
	CreateVerificationRecord(ctx context.Context, arg db.CreateVerificationRecordParams) (db.VerificationRecord, error)
	AttachDocumentRef(ctx context.Context, arg db.AttachDocumentRefParams) error
	ListVerificationRecordsByUserID(ctx context.Context, arg db.ListVerificationRecordsParams) ([]db.VerificationRecord, error)
}

// Ledger is the charge gate. *wallet.WalletService satisfies it.
type Ledger interface {
	CheckAffordable(ctx context.Context, userID int64, amount decimal.Decimal) error
	Debit(ctx context.Context, userID int64, amount decimal.Decimal, reason string, category string) (*wallet.WalletModel, error)
}

// Pricer resolves the charge for a verification kind and never fails;
// *pricing.PricingService satisfies it.
type Pricer interface {
	PriceFor(ctx context.Context, kind identity.VerificationKind) decimal.Decimal
}

// Provisioner best-effort creates the user's virtual account.
// *provisioning.ProvisioningService satisfies it.
type Provisioner interface {
	EnsureVirtualAccount(ctx context.Context, userID int64) (*provisioning.AccountModel, error)
}

const debitCategory = "identity_verification"

// VerificationService runs the whole charge-gated pipeline: price the
// lookup, gate on the wallet, walk the provider chain, debit only on a
// data-valid success, persist the outcome, then best-effort provision
// a virtual account and render the slip.
type VerificationService struct {
	store        VerificationStore
	orchestrator *Orchestrator
	ledger       Ledger
	pricer       Pricer
	provisioner  Provisioner
	logger       *logging.Logger
}

func NewVerificationService(
	store VerificationStore,
	orchestrator *Orchestrator,
	ledger Ledger,
	pricer Pricer,
	provisioner Provisioner,
	logger *logging.Logger,
) *VerificationService {
	return &VerificationService{
		store:        store,
		orchestrator: orchestrator,
		ledger:       ledger,
		pricer:       pricer,
		provisioner:  provisioner,
		logger:       logger,
	}
}

func (s *VerificationService) Verify(ctx context.Context, input VerifyInput) (*VerifyOutput, *VerificationError) {
	price := s.pricer.PriceFor(ctx, input.Kind)

	// Gate on the wallet before any billable provider call.
	if err := s.ledger.CheckAffordable(ctx, input.UserID, price); err != nil {
		if errors.Is(err, wallet.ErrInsufficientFunds) {
			return nil, newError(ErrKindInsufficientFunds, msgInsufficientFunds)
		}
		return nil, newError(ErrKindUnknown, err.Error())
	}

	result, verr := s.orchestrator.Verify(ctx, identity.VerificationRequest{
		Kind:  input.Kind,
		Value: input.Value,
	})
	if verr != nil {
		return nil, verr
	}

	// Debit only now, after a data-valid success. A failed lookup
	// never produces a ledger entry.
	reason := fmt.Sprintf("%s verification", input.Kind)
	if _, err := s.ledger.Debit(ctx, input.UserID, price, reason, debitCategory); err != nil {
		if errors.Is(err, wallet.ErrInsufficientFunds) {
			return nil, newError(ErrKindInsufficientFunds, msgInsufficientFunds)
		}
		return nil, newError(ErrKindUnknown, err.Error())
	}

	reference := utils.GenerateReference(string(input.Kind))
	layout := input.Layout
	if layout == "" {
		layout = LayoutRegular
	}

	recordJSON, err := json.Marshal(result.Record)
	if err != nil {
		recordJSON = nil
	}

	if _, err := s.store.CreateVerificationRecord(ctx, db.CreateVerificationRecordParams{
		UserID:     input.UserID,
		Reference:  reference,
		Kind:       string(input.Kind),
		IDNumber:   result.Record.IDNumber,
		Provider:   result.Provider,
		Status:     "completed",
		Record:     pqtype.NullRawMessage{RawMessage: recordJSON, Valid: recordJSON != nil},
		SlipLayout: string(layout),
	}); err != nil {
		// The user has been charged; surface the reference anyway and
		// leave reconciliation to the explicit credit path.
		s.logger.WithFields(logrus.Fields{
			"reference": reference,
			"user_id":   input.UserID,
		}).Error(fmt.Sprintf("unable to persist verification record: %v", err))
	}

	slip := RenderSlip(result.Record, layout)

	docRef := utils.GenerateReference("DOC")
	if err := s.store.AttachDocumentRef(ctx, db.AttachDocumentRefParams{
		Reference:   reference,
		DocumentRef: docRef,
	}); err != nil {
		s.logger.WithFields(logrus.Fields{"reference": reference}).Warn("unable to attach document reference")
	}

	// Best-effort: provisioning failures are logged and the response
	// simply carries no account.
	var virtualAccount *provisioning.AccountModel
	if s.provisioner != nil {
		account, err := s.provisioner.EnsureVirtualAccount(ctx, input.UserID)
		if err != nil {
			s.logger.WithFields(logrus.Fields{
				"user_id": input.UserID,
			}).Warn(fmt.Sprintf("virtual account provisioning skipped: %v", err))
		} else {
			virtualAccount = account
		}
	}

	return &VerifyOutput{
		ProviderUsed:   result.Provider,
		Reference:      reference,
		Record:         result.Record,
		Slip:           slip,
		VirtualAccount: virtualAccount,
		PriceCharged:   price,
	}, nil
}

// History lists the caller's own persisted verification outcomes.
func (s *VerificationService) History(ctx context.Context, userID int64, limit int32) ([]HistoryItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	records, err := s.store.ListVerificationRecordsByUserID(ctx, db.ListVerificationRecordsParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}
	items := make([]HistoryItem, 0, len(records))
	for _, r := range records {
		items = append(items, toHistoryItem(r))
	}
	return items, nil
}
