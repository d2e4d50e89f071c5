package gateway

import "context"

// CustomerDetails is the minimum a gateway needs to open a dedicated
// account for a user.
type CustomerDetails struct {
	UserID    int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// VirtualAccountDetails is the normalized shape both gateways map into.
type VirtualAccountDetails struct {
	Provider      string
	AccountNumber string
	AccountName   string
	BankName      string
	BankCode      string
	Reference     string
}

// Provider is implemented once per payment gateway capable of
// provisioning virtual accounts.
type Provider interface {
	Name() string
	IsConfigured() bool
	CreateVirtualAccount(ctx context.Context, customer CustomerDetails) (*VirtualAccountDetails, error)
}
