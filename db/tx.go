package db

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

type AdjustWalletTxParams struct {
	UserID    int64
	Amount    decimal.Decimal
	Direction string
	Reason    string
	Category  string
	Reference string
}

type AdjustWalletTxResult struct {
	Wallet Wallet
	Entry  LedgerEntry
}

// AdjustWalletTx moves money and records the ledger entry in one
// transaction, so a balance change without its entry cannot be
// observed. A debit refused by the balance guard surfaces as
// sql.ErrNoRows.
func (s *Store) AdjustWalletTx(ctx context.Context, arg AdjustWalletTxParams) (AdjustWalletTxResult, error) {
	var result AdjustWalletTxResult

	err := s.ExecTx(ctx, func(q *Queries) error {
		var err error

		params := AdjustWalletBalanceParams{
			UserID: arg.UserID,
			Amount: arg.Amount,
		}

		switch arg.Direction {
		case "debit":
			result.Wallet, err = q.DebitWalletBalance(ctx, params)
		case "credit":
			result.Wallet, err = q.CreditWalletBalance(ctx, params)
		default:
			return fmt.Errorf("unknown ledger direction: %s", arg.Direction)
		}
		if err != nil {
			return err
		}

		result.Entry, err = q.CreateLedgerEntry(ctx, CreateLedgerEntryParams{
			WalletID:     result.Wallet.ID,
			UserID:       arg.UserID,
			Direction:    arg.Direction,
			Amount:       arg.Amount,
			BalanceAfter: result.Wallet.Balance,
			Reason:       arg.Reason,
			Category:     arg.Category,
			Reference:    arg.Reference,
		})
		return err
	})

	return result, err
}
