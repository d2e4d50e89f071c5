package wallet

import (
	"time"

	db "github.com/VeriPay/VeriPay-Backend/db"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WalletModel struct {
	ID        uuid.UUID       `json:"id"`
	UserID    int64           `json:"user_id"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func ToWalletModel(wallet db.Wallet) *WalletModel {
	return &WalletModel{
		ID:        wallet.ID,
		UserID:    wallet.UserID,
		Currency:  wallet.Currency,
		Balance:   wallet.Balance,
		Status:    wallet.Status,
		CreatedAt: wallet.CreatedAt,
		UpdatedAt: wallet.UpdatedAt,
	}
}
