package wallet

import (
	"context"
	"database/sql"
	"testing"

	db "github.com/VeriPay/VeriPay-Backend/db"
	"github.com/VeriPay/VeriPay-Backend/services/monitoring/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fakeWalletStore mimics the conditional-decrement semantics of the
// real AdjustWalletTx transaction.
type fakeWalletStore struct {
	wallet  *db.Wallet
	entries []db.AdjustWalletTxParams
}

func (f *fakeWalletStore) GetWalletByUserID(ctx context.Context, userID int64) (db.Wallet, error) {
	if f.wallet == nil || f.wallet.UserID != userID {
		return db.Wallet{}, sql.ErrNoRows
	}
	return *f.wallet, nil
}

func (f *fakeWalletStore) AdjustWalletTx(ctx context.Context, arg db.AdjustWalletTxParams) (db.AdjustWalletTxResult, error) {
	if f.wallet == nil || f.wallet.UserID != arg.UserID {
		return db.AdjustWalletTxResult{}, sql.ErrNoRows
	}
	if arg.Direction == "debit" {
		if f.wallet.Balance.LessThan(arg.Amount) {
			return db.AdjustWalletTxResult{}, sql.ErrNoRows
		}
		f.wallet.Balance = f.wallet.Balance.Sub(arg.Amount)
	} else {
		f.wallet.Balance = f.wallet.Balance.Add(arg.Amount)
	}
	f.entries = append(f.entries, arg)
	return db.AdjustWalletTxResult{
		Wallet: *f.wallet,
		Entry:  db.LedgerEntry{Reference: arg.Reference, BalanceAfter: f.wallet.Balance},
	}, nil
}

func newFundedStore(userID int64, balance int64) *fakeWalletStore {
	return &fakeWalletStore{
		wallet: &db.Wallet{
			ID:       uuid.New(),
			UserID:   userID,
			Currency: "NGN",
			Balance:  decimal.NewFromInt(balance),
			Status:   "active",
		},
	}
}

func TestCheckAffordable(t *testing.T) {
	store := newFundedStore(1, 100)
	svc := NewWalletService(store, logging.NewLogger())

	require.NoError(t, svc.CheckAffordable(context.Background(), 1, decimal.NewFromInt(100)))
	require.ErrorIs(t, svc.CheckAffordable(context.Background(), 1, decimal.NewFromInt(101)), ErrInsufficientFunds)
	require.ErrorIs(t, svc.CheckAffordable(context.Background(), 2, decimal.NewFromInt(1)), ErrWalletNotFound)
}

func TestDebit(t *testing.T) {
	store := newFundedStore(1, 250)
	svc := NewWalletService(store, logging.NewLogger())

	model, err := svc.Debit(context.Background(), 1, decimal.NewFromInt(100), "nin verification", "identity_verification")
	require.NoError(t, err)
	require.True(t, model.Balance.Equal(decimal.NewFromInt(150)))

	require.Len(t, store.entries, 1)
	entry := store.entries[0]
	require.Equal(t, "debit", entry.Direction)
	require.True(t, entry.Amount.Equal(decimal.NewFromInt(100)))
	require.Equal(t, "identity_verification", entry.Category)
	require.NotEmpty(t, entry.Reference)
}

func TestDebitInsufficientFunds(t *testing.T) {
	store := newFundedStore(1, 50)
	svc := NewWalletService(store, logging.NewLogger())

	_, err := svc.Debit(context.Background(), 1, decimal.NewFromInt(100), "nin verification", "identity_verification")
	require.ErrorIs(t, err, ErrInsufficientFunds)
	require.Empty(t, store.entries, "a refused debit writes no ledger entry")
	require.True(t, store.wallet.Balance.Equal(decimal.NewFromInt(50)))
}

func TestDebitWalletMissing(t *testing.T) {
	store := &fakeWalletStore{}
	svc := NewWalletService(store, logging.NewLogger())

	_, err := svc.Debit(context.Background(), 9, decimal.NewFromInt(10), "nin verification", "identity_verification")
	require.ErrorIs(t, err, ErrWalletNotFound)
}

func TestDebitRejectsNonPositiveAmount(t *testing.T) {
	store := newFundedStore(1, 100)
	svc := NewWalletService(store, logging.NewLogger())

	_, err := svc.Debit(context.Background(), 1, decimal.Zero, "x", "y")
	require.Error(t, err)
	require.Empty(t, store.entries)
}

func TestCredit(t *testing.T) {
	store := newFundedStore(1, 100)
	svc := NewWalletService(store, logging.NewLogger())

	model, err := svc.Credit(context.Background(), 1, decimal.NewFromInt(40), "wallet funding", "wallet_funding")
	require.NoError(t, err)
	require.True(t, model.Balance.Equal(decimal.NewFromInt(140)))

	require.Len(t, store.entries, 1)
	require.Equal(t, "credit", store.entries[0].Direction)
}
