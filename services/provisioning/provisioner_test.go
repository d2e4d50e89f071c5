package provisioning

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	db "github.com/VeriPay/VeriPay-Backend/db"
	"github.com/VeriPay/VeriPay-Backend/providers/gateway"
	"github.com/VeriPay/VeriPay-Backend/services/monitoring/logging"
	"github.com/stretchr/testify/require"
)

type fakeProvisioningStore struct {
	user     db.User
	account  *db.VirtualAccount
	upserted int
}

func (f *fakeProvisioningStore) GetUser(ctx context.Context, id int64) (db.User, error) {
	if f.user.ID != id {
		return db.User{}, sql.ErrNoRows
	}
	return f.user, nil
}

func (f *fakeProvisioningStore) GetVirtualAccountByUserID(ctx context.Context, userID int64) (db.VirtualAccount, error) {
	if f.account == nil || f.account.UserID != userID {
		return db.VirtualAccount{}, sql.ErrNoRows
	}
	return *f.account, nil
}

func (f *fakeProvisioningStore) UpsertVirtualAccount(ctx context.Context, arg db.UpsertVirtualAccountParams) (db.VirtualAccount, error) {
	f.upserted++
	if f.account != nil {
		return *f.account, nil
	}
	f.account = &db.VirtualAccount{
		UserID:        arg.UserID,
		Provider:      arg.Provider,
		AccountNumber: arg.AccountNumber,
		AccountName:   arg.AccountName,
		BankName:      arg.BankName,
		BankCode:      arg.BankCode,
		Reference:     arg.Reference,
	}
	return *f.account, nil
}

type fakeGateway struct {
	name       string
	configured bool
	details    *gateway.VirtualAccountDetails
	err        error
	calls      int
}

func (f *fakeGateway) Name() string       { return f.name }
func (f *fakeGateway) IsConfigured() bool { return f.configured }

func (f *fakeGateway) CreateVirtualAccount(ctx context.Context, customer gateway.CustomerDetails) (*gateway.VirtualAccountDetails, error) {
	f.calls++
	return f.details, f.err
}

func testUser() db.User {
	return db.User{ID: 42, FirstName: "John", LastName: "Doe", Email: "john@example.com", Phone: "08012345678"}
}

func paystackDetails() *gateway.VirtualAccountDetails {
	return &gateway.VirtualAccountDetails{
		Provider:      "PAYSTACK",
		AccountNumber: "0123456789",
		AccountName:   "JOHN DOE",
		BankName:      "Wema Bank",
		BankCode:      "wema-bank",
	}
}

func TestEnsureVirtualAccountCreatesViaPrimary(t *testing.T) {
	store := &fakeProvisioningStore{user: testUser()}
	primary := &fakeGateway{name: "PAYSTACK", configured: true, details: paystackDetails()}
	secondary := &fakeGateway{name: "FLUTTERWAVE", configured: true}

	svc := NewProvisioningService(store, logging.NewLogger(), primary, secondary)

	account, err := svc.EnsureVirtualAccount(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, "0123456789", account.AccountNumber)
	require.Equal(t, 1, primary.calls)
	require.Equal(t, 0, secondary.calls)
	require.Equal(t, 1, store.upserted)
}

func TestEnsureVirtualAccountFallsBackToSecondary(t *testing.T) {
	store := &fakeProvisioningStore{user: testUser()}
	primary := &fakeGateway{name: "PAYSTACK", configured: true, err: fmt.Errorf("dedicated account not created")}
	secondary := &fakeGateway{name: "FLUTTERWAVE", configured: true, details: &gateway.VirtualAccountDetails{
		Provider:      "FLUTTERWAVE",
		AccountNumber: "9876543210",
		AccountName:   "JOHN DOE",
		BankName:      "Sterling Bank",
	}}

	svc := NewProvisioningService(store, logging.NewLogger(), primary, secondary)

	account, err := svc.EnsureVirtualAccount(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, "FLUTTERWAVE", account.Provider)
	require.Equal(t, 1, primary.calls)
	require.Equal(t, 1, secondary.calls)
}

func TestEnsureVirtualAccountAllGatewaysFail(t *testing.T) {
	store := &fakeProvisioningStore{user: testUser()}
	primary := &fakeGateway{name: "PAYSTACK", configured: true, err: fmt.Errorf("boom")}
	secondary := &fakeGateway{name: "FLUTTERWAVE", configured: true, err: fmt.Errorf("kaboom")}

	svc := NewProvisioningService(store, logging.NewLogger(), primary, secondary)

	_, err := svc.EnsureVirtualAccount(context.Background(), 42)
	require.Error(t, err)
	require.Equal(t, 0, store.upserted)
}

func TestEnsureVirtualAccountIdempotent(t *testing.T) {
	store := &fakeProvisioningStore{user: testUser()}
	primary := &fakeGateway{name: "PAYSTACK", configured: true, details: paystackDetails()}

	svc := NewProvisioningService(store, logging.NewLogger(), primary)

	first, err := svc.EnsureVirtualAccount(context.Background(), 42)
	require.NoError(t, err)

	second, err := svc.EnsureVirtualAccount(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, first, second, "re-provisioning returns the existing account unchanged")
	require.Equal(t, 1, primary.calls, "no additional provider calls for an already-provisioned user")
	require.Equal(t, 1, store.upserted)
}

func TestEnsureVirtualAccountSkipsUnconfiguredGateway(t *testing.T) {
	store := &fakeProvisioningStore{user: testUser()}
	primary := &fakeGateway{name: "PAYSTACK", configured: false}
	secondary := &fakeGateway{name: "FLUTTERWAVE", configured: true, details: paystackDetails()}

	svc := NewProvisioningService(store, logging.NewLogger(), primary, secondary)

	_, err := svc.EnsureVirtualAccount(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, 0, primary.calls)
	require.Equal(t, 1, secondary.calls)
}
