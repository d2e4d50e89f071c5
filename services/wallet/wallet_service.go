package wallet

import (
	"context"
	"database/sql"
	"fmt"

	db "github.com/VeriPay/VeriPay-Backend/db"
	"github.com/VeriPay/VeriPay-Backend/services/monitoring/logging"
	"github.com/VeriPay/VeriPay-Backend/utils"
	"github.com/shopspring/decimal"
)

// WalletStore is the slice of the storage layer the ledger needs.
// *db.Store satisfies it.
type WalletStore interface {
	GetWalletByUserID(ctx context.Context, userID int64) (db.Wallet, error)
	AdjustWalletTx(ctx context.Context, arg db.AdjustWalletTxParams) (db.AdjustWalletTxResult, error)
}

type WalletService struct {
	store  WalletStore
	logger *logging.Logger
}

func NewWalletService(store WalletStore, logger *logging.Logger) *WalletService {
	return &WalletService{
		store:  store,
		logger: logger,
	}
}

func (w *WalletService) GetWallet(ctx context.Context, userID int64) (*WalletModel, error) {
	dbWallet, err := w.store.GetWalletByUserID(ctx, userID)
	if err == sql.ErrNoRows {
		return nil, ErrWalletNotFound
	} else if err != nil {
		return nil, err
	}
	return ToWalletModel(dbWallet), nil
}

// CheckAffordable is the cheap pre-flight before any billable provider
// call. It does not reserve funds; the debit itself re-checks the
// balance atomically.
func (w *WalletService) CheckAffordable(ctx context.Context, userID int64, amount decimal.Decimal) error {
	wallet, err := w.GetWallet(ctx, userID)
	if err != nil {
		return err
	}
	if wallet.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// Debit charges the wallet and appends exactly one ledger entry, both
// inside one transaction. The balance guard lives in the UPDATE
// statement, so two requests racing past CheckAffordable cannot
// overdraw.
func (w *WalletService) Debit(ctx context.Context, userID int64, amount decimal.Decimal, reason string, category string) (*WalletModel, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("debit amount must be positive, got %s", amount)
	}

	result, err := w.store.AdjustWalletTx(ctx, db.AdjustWalletTxParams{
		UserID:    userID,
		Amount:    amount,
		Direction: "debit",
		Reason:    reason,
		Category:  category,
		Reference: utils.GenerateReference("TXN"),
	})
	if err == sql.ErrNoRows {
		// Either no wallet, or the guard refused the debit
		if _, lookupErr := w.store.GetWalletByUserID(ctx, userID); lookupErr == sql.ErrNoRows {
			return nil, ErrWalletNotFound
		}
		return nil, ErrInsufficientFunds
	} else if err != nil {
		return nil, err
	}

	w.logger.Info("wallet debited", result.Entry.Reference)

	return ToWalletModel(result.Wallet), nil
}

// Credit funds the wallet. It is also the explicit compensation path;
// nothing in the pipeline refunds automatically.
func (w *WalletService) Credit(ctx context.Context, userID int64, amount decimal.Decimal, reason string, category string) (*WalletModel, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("credit amount must be positive, got %s", amount)
	}

	result, err := w.store.AdjustWalletTx(ctx, db.AdjustWalletTxParams{
		UserID:    userID,
		Amount:    amount,
		Direction: "credit",
		Reason:    reason,
		Category:  category,
		Reference: utils.GenerateReference("TXN"),
	})
	if err == sql.ErrNoRows {
		return nil, ErrWalletNotFound
	} else if err != nil {
		return nil, err
	}

	w.logger.Info("wallet credited", result.Entry.Reference)

	return ToWalletModel(result.Wallet), nil
}
