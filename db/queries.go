package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sqlc-dev/pqtype"
)

const getUser = `
SELECT id, first_name, last_name, email, phone, created_at
FROM users
WHERE id = $1
`

func (q *Queries) GetUser(ctx context.Context, id int64) (User, error) {
	row := q.db.QueryRowContext(ctx, getUser, id)
	var u User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.CreatedAt)
	return u, err
}

const getWalletByUserID = `
SELECT id, user_id, currency, balance, status, created_at, updated_at
FROM wallets
WHERE user_id = $1
`

func (q *Queries) GetWalletByUserID(ctx context.Context, userID int64) (Wallet, error) {
	row := q.db.QueryRowContext(ctx, getWalletByUserID, userID)
	var w Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Currency, &w.Balance, &w.Status, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

const createWallet = `
INSERT INTO wallets (user_id, currency, balance, status)
VALUES ($1, $2, $3, 'active')
RETURNING id, user_id, currency, balance, status, created_at, updated_at
`

type CreateWalletParams struct {
	UserID   int64
	Currency string
	Balance  decimal.Decimal
}

func (q *Queries) CreateWallet(ctx context.Context, arg CreateWalletParams) (Wallet, error) {
	row := q.db.QueryRowContext(ctx, createWallet, arg.UserID, arg.Currency, arg.Balance)
	var w Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Currency, &w.Balance, &w.Status, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

const debitWalletBalance = `
UPDATE wallets
SET balance = balance - $2, updated_at = now()
WHERE user_id = $1 AND balance >= $2
RETURNING id, user_id, currency, balance, status, created_at, updated_at
`

type AdjustWalletBalanceParams struct {
	UserID int64
	Amount decimal.Decimal
}

// DebitWalletBalance only debits when the balance covers the amount;
// sql.ErrNoRows signals insufficient funds. The guard in the UPDATE
// keeps concurrent check-then-debit sequences from overdrawing.
func (q *Queries) DebitWalletBalance(ctx context.Context, arg AdjustWalletBalanceParams) (Wallet, error) {
	row := q.db.QueryRowContext(ctx, debitWalletBalance, arg.UserID, arg.Amount)
	var w Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Currency, &w.Balance, &w.Status, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

const creditWalletBalance = `
UPDATE wallets
SET balance = balance + $2, updated_at = now()
WHERE user_id = $1
RETURNING id, user_id, currency, balance, status, created_at, updated_at
`

func (q *Queries) CreditWalletBalance(ctx context.Context, arg AdjustWalletBalanceParams) (Wallet, error) {
	row := q.db.QueryRowContext(ctx, creditWalletBalance, arg.UserID, arg.Amount)
	var w Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Currency, &w.Balance, &w.Status, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

const createLedgerEntry = `
INSERT INTO ledger_entries (wallet_id, user_id, direction, amount, balance_after, reason, category, reference)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, wallet_id, user_id, direction, amount, balance_after, reason, category, reference, created_at
`

type CreateLedgerEntryParams struct {
	WalletID     uuid.UUID
	UserID       int64
	Direction    string
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	Reason       string
	Category     string
	Reference    string
}

func (q *Queries) CreateLedgerEntry(ctx context.Context, arg CreateLedgerEntryParams) (LedgerEntry, error) {
	row := q.db.QueryRowContext(ctx, createLedgerEntry,
		arg.WalletID, arg.UserID, arg.Direction, arg.Amount, arg.BalanceAfter, arg.Reason, arg.Category, arg.Reference)
	var e LedgerEntry
	err := row.Scan(&e.ID, &e.WalletID, &e.UserID, &e.Direction, &e.Amount, &e.BalanceAfter, &e.Reason, &e.Category, &e.Reference, &e.CreatedAt)
	return e, err
}

const createVerificationRecord = `
INSERT INTO verification_records (user_id, reference, kind, id_number, provider, status, record, slip_layout)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, user_id, reference, kind, id_number, provider, status, record, slip_layout, document_ref, created_at
`

type CreateVerificationRecordParams struct {
	UserID     int64
	Reference  string
	Kind       string
	IDNumber   string
	Provider   string
	Status     string
	Record     pqtype.NullRawMessage
	SlipLayout string
}

func (q *Queries) CreateVerificationRecord(ctx context.Context, arg CreateVerificationRecordParams) (VerificationRecord, error) {
	row := q.db.QueryRowContext(ctx, createVerificationRecord,
		arg.UserID, arg.Reference, arg.Kind, arg.IDNumber, arg.Provider, arg.Status, arg.Record, arg.SlipLayout)
	var v VerificationRecord
	err := row.Scan(&v.ID, &v.UserID, &v.Reference, &v.Kind, &v.IDNumber, &v.Provider, &v.Status, &v.Record, &v.SlipLayout, &v.DocumentRef, &v.CreatedAt)
	return v, err
}

const attachDocumentRef = `
UPDATE verification_records
SET document_ref = $2
WHERE reference = $1 AND document_ref IS NULL
`

type AttachDocumentRefParams struct {
	Reference   string
	DocumentRef string
}

func (q *Queries) AttachDocumentRef(ctx context.Context, arg AttachDocumentRefParams) error {
	_, err := q.db.ExecContext(ctx, attachDocumentRef, arg.Reference, arg.DocumentRef)
	return err
}

const listVerificationRecordsByUserID = `
SELECT id, user_id, reference, kind, id_number, provider, status, record, slip_layout, document_ref, created_at
FROM verification_records
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2
`

type ListVerificationRecordsParams struct {
	UserID int64
	Limit  int32
}

func (q *Queries) ListVerificationRecordsByUserID(ctx context.Context, arg ListVerificationRecordsParams) ([]VerificationRecord, error) {
	rows, err := q.db.QueryContext(ctx, listVerificationRecordsByUserID, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []VerificationRecord
	for rows.Next() {
		var v VerificationRecord
		if err := rows.Scan(&v.ID, &v.UserID, &v.Reference, &v.Kind, &v.IDNumber, &v.Provider, &v.Status, &v.Record, &v.SlipLayout, &v.DocumentRef, &v.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

const getVirtualAccountByUserID = `
SELECT id, user_id, provider, account_number, account_name, bank_name, bank_code, reference, created_at
FROM virtual_accounts
WHERE user_id = $1
`

func (q *Queries) GetVirtualAccountByUserID(ctx context.Context, userID int64) (VirtualAccount, error) {
	row := q.db.QueryRowContext(ctx, getVirtualAccountByUserID, userID)
	var a VirtualAccount
	err := row.Scan(&a.ID, &a.UserID, &a.Provider, &a.AccountNumber, &a.AccountName, &a.BankName, &a.BankCode, &a.Reference, &a.CreatedAt)
	return a, err
}

const upsertVirtualAccount = `
INSERT INTO virtual_accounts (user_id, provider, account_number, account_name, bank_name, bank_code, reference)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id) DO UPDATE SET user_id = virtual_accounts.user_id
RETURNING id, user_id, provider, account_number, account_name, bank_name, bank_code, reference, created_at
`

type UpsertVirtualAccountParams struct {
	UserID        int64
	Provider      string
	AccountNumber string
	AccountName   string
	BankName      string
	BankCode      string
	Reference     string
}

// UpsertVirtualAccount is a no-op on conflict so a user who already has
// an account keeps the original row untouched.
func (q *Queries) UpsertVirtualAccount(ctx context.Context, arg UpsertVirtualAccountParams) (VirtualAccount, error) {
	row := q.db.QueryRowContext(ctx, upsertVirtualAccount,
		arg.UserID, arg.Provider, arg.AccountNumber, arg.AccountName, arg.BankName, arg.BankCode, arg.Reference)
	var a VirtualAccount
	err := row.Scan(&a.ID, &a.UserID, &a.Provider, &a.AccountNumber, &a.AccountName, &a.BankName, &a.BankCode, &a.Reference, &a.CreatedAt)
	return a, err
}

const getServicePricing = `
SELECT id, service_kind, price, updated_at
FROM service_pricing
WHERE service_kind = $1
`

func (q *Queries) GetServicePricing(ctx context.Context, serviceKind string) (ServicePricing, error) {
	row := q.db.QueryRowContext(ctx, getServicePricing, serviceKind)
	var p ServicePricing
	err := row.Scan(&p.ID, &p.ServiceKind, &p.Price, &p.UpdatedAt)
	return p, err
}
