package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sqlc-dev/pqtype"
)

type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type Wallet struct {
	ID        uuid.UUID       `json:"id"`
	UserID    int64           `json:"user_id"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type LedgerEntry struct {
	ID           int64           `json:"id"`
	WalletID     uuid.UUID       `json:"wallet_id"`
	UserID       int64           `json:"user_id"`
	Direction    string          `json:"direction"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Reason       string          `json:"reason"`
	Category     string          `json:"category"`
	Reference    string          `json:"reference"`
	CreatedAt    time.Time       `json:"created_at"`
}

type VerificationRecord struct {
	ID          int64                 `json:"id"`
	UserID      int64                 `json:"user_id"`
	Reference   string                `json:"reference"`
	Kind        string                `json:"kind"`
	IDNumber    string                `json:"id_number"`
	Provider    string                `json:"provider"`
	Status      string                `json:"status"`
	Record      pqtype.NullRawMessage `json:"record"`
	SlipLayout  string                `json:"slip_layout"`
	DocumentRef sql.NullString        `json:"document_ref"`
	CreatedAt   time.Time             `json:"created_at"`
}

type VirtualAccount struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Provider      string    `json:"provider"`
	AccountNumber string    `json:"account_number"`
	AccountName   string    `json:"account_name"`
	BankName      string    `json:"bank_name"`
	BankCode      string    `json:"bank_code"`
	Reference     string    `json:"reference"`
	CreatedAt     time.Time `json:"created_at"`
}

type ServicePricing struct {
	ID          int64           `json:"id"`
	ServiceKind string          `json:"service_kind"`
	Price       decimal.Decimal `json:"price"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
