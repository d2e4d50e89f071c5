package provisioning

import (
	"context"
	"database/sql"
	"fmt"

	db "github.com/VeriPay/VeriPay-Backend/db"
	"github.com/VeriPay/VeriPay-Backend/providers/gateway"
	"github.com/VeriPay/VeriPay-Backend/services/monitoring/logging"
	"github.com/sirupsen/logrus"
)

// ProvisioningStore is the slice of storage the provisioner needs.
// *db.Store satisfies it.
type ProvisioningStore interface {
	GetUser(ctx context.Context, id int64) (db.User, error)
	GetVirtualAccountByUserID(ctx context.Context, userID int64) (db.VirtualAccount, error)
	UpsertVirtualAccount(ctx context.Context, arg db.UpsertVirtualAccountParams) (db.VirtualAccount, error)
}

type AccountModel struct {
	Provider      string `json:"provider"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

func toAccountModel(a db.VirtualAccount) *AccountModel {
	return &AccountModel{
		Provider:      a.Provider,
		BankName:      a.BankName,
		AccountNumber: a.AccountNumber,
		AccountName:   a.AccountName,
	}
}

// ProvisioningService lazily creates one virtual bank account per user
// through its own two-level gateway fallback. It runs after a charged
// verification and its failures never fail the parent request.
type ProvisioningService struct {
	store    ProvisioningStore
	gateways []gateway.Provider
	logger   *logging.Logger
}

func NewProvisioningService(store ProvisioningStore, logger *logging.Logger, gatewayChain ...gateway.Provider) *ProvisioningService {
	configured := make([]gateway.Provider, 0, len(gatewayChain))
	for _, g := range gatewayChain {
		if g.IsConfigured() {
			configured = append(configured, g)
		} else {
			logger.WithFields(logrus.Fields{"gateway": g.Name()}).Warn("payment gateway not configured, excluded from chain")
		}
	}
	return &ProvisioningService{
		store:    store,
		gateways: configured,
		logger:   logger,
	}
}

// EnsureVirtualAccount returns the user's existing account unchanged,
// or walks the gateway chain to create one. Existing accounts cost
// zero provider calls.
func (s *ProvisioningService) EnsureVirtualAccount(ctx context.Context, userID int64) (*AccountModel, error) {
	existing, err := s.store.GetVirtualAccountByUserID(ctx, userID)
	if err == nil {
		return toAccountModel(existing), nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("virtual account lookup: %w", err)
	}

	if len(s.gateways) == 0 {
		return nil, fmt.Errorf("no payment gateway configured for virtual account provisioning")
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user lookup: %w", err)
	}

	customer := gateway.CustomerDetails{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
	}

	var lastErr error
	for _, g := range s.gateways {
		details, err := g.CreateVirtualAccount(ctx, customer)
		if err != nil {
			lastErr = err
			s.logger.WithFields(logrus.Fields{
				"gateway": g.Name(),
				"user_id": userID,
			}).Warn(fmt.Sprintf("virtual account provisioning failed, trying next: %v", err))
			continue
		}

		saved, err := s.store.UpsertVirtualAccount(ctx, db.UpsertVirtualAccountParams{
			UserID:        userID,
			Provider:      details.Provider,
			AccountNumber: details.AccountNumber,
			AccountName:   details.AccountName,
			BankName:      details.BankName,
			BankCode:      details.BankCode,
			Reference:     details.Reference,
		})
		if err != nil {
			return nil, fmt.Errorf("virtual account save: %w", err)
		}

		s.logger.WithFields(logrus.Fields{
			"gateway": g.Name(),
			"user_id": userID,
		}).Info("virtual account provisioned")

		return toAccountModel(saved), nil
	}

	return nil, fmt.Errorf("all payment gateways failed: %w", lastErr)
}
