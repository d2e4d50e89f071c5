package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/VeriPay/VeriPay-Backend/providers"
	"github.com/VeriPay/VeriPay-Backend/services/monitoring/logging"
)

type PaystackProvider struct {
	providers.BaseProvider
	config *PaystackConfig
}

type PaystackConfig struct {
	PaystackBaseUrl       string `mapstructure:"PAYSTACK_BASE_URL"`
	PaystackKey           string `mapstructure:"PAYSTACK_KEY"`
	PaystackPreferredBank string `mapstructure:"PAYSTACK_PREFERRED_BANK"`
}

func NewPaystackProvider(c *PaystackConfig, logger *logging.Logger) *PaystackProvider {
	return &PaystackProvider{
		BaseProvider: providers.BaseProvider{
			Name:    providers.Paystack,
			BaseURL: c.PaystackBaseUrl,
			APIKey:  c.PaystackKey,
			Client: &http.Client{
				Timeout: time.Second * 30,
			},
			Logger: logger,
		},
		config: c,
	}
}

func (p *PaystackProvider) Name() string {
	return providers.Paystack
}

func (p *PaystackProvider) IsConfigured() bool {
	return p.config.PaystackBaseUrl != "" && p.config.PaystackKey != ""
}

// CreateVirtualAccount registers the user as a Paystack customer, then
// requests a dedicated NUBAN against that customer.
func (p *PaystackProvider) CreateVirtualAccount(ctx context.Context, customer CustomerDetails) (*VirtualAccountDetails, error) {
	customerCode, err := p.createCustomer(ctx, customer)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(p.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %v", err)
	}
	base.Path += "dedicated_account"

	preferredBank := p.config.PaystackPreferredBank
	if preferredBank == "" {
		preferredBank = "wema-bank"
	}

	request := CreateDedicatedAccountRequest{
		Customer:      customerCode,
		PreferredBank: preferredBank,
	}

	resp, err := p.MakeRequest(ctx, "POST", base.String(), request, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status code: %d \nURL: %s", resp.StatusCode, resp.Request.URL)
	}

	var response Response[DedicatedAccount]
	decoder := json.NewDecoder(resp.Body)
	err = decoder.Decode(&response)
	if err != nil {
		return nil, fmt.Errorf("error decoding response body: %w", err)
	}

	if !response.Status {
		return nil, fmt.Errorf("dedicated account not created: %s", response.Message)
	}

	return &VirtualAccountDetails{
		Provider:      p.Name(),
		AccountNumber: response.Data.AccountNumber,
		AccountName:   response.Data.AccountName,
		BankName:      response.Data.Bank.Name,
		BankCode:      response.Data.Bank.Slug,
		Reference:     customerCode,
	}, nil
}

func (p *PaystackProvider) createCustomer(ctx context.Context, customer CustomerDetails) (string, error) {
	base, err := url.Parse(p.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %v", err)
	}
	base.Path += "customer"

	request := CreateCustomerRequest{
		Email:     customer.Email,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Phone:     customer.Phone,
	}

	resp, err := p.MakeRequest(ctx, "POST", base.String(), request, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status code: %d \nURL: %s", resp.StatusCode, resp.Request.URL)
	}

	var response Response[PaystackCustomer]
	decoder := json.NewDecoder(resp.Body)
	err = decoder.Decode(&response)
	if err != nil {
		return "", fmt.Errorf("error decoding response body: %w", err)
	}

	if !response.Status || response.Data.CustomerCode == "" {
		return "", fmt.Errorf("customer not created: %s", response.Message)
	}

	return response.Data.CustomerCode, nil
}
