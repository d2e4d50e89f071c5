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
	"github.com/VeriPay/VeriPay-Backend/utils"
)

type FlutterwaveProvider struct {
	providers.BaseProvider
	config *FlutterwaveConfig
}

type FlutterwaveConfig struct {
	FlutterwaveBaseUrl string `mapstructure:"FLW_BASE_URL"`
	FlutterwaveKey     string `mapstructure:"FLW_SECRET_KEY"`
}

func NewFlutterwaveProvider(c *FlutterwaveConfig, logger *logging.Logger) *FlutterwaveProvider {
	return &FlutterwaveProvider{
		BaseProvider: providers.BaseProvider{
			Name:    providers.Flutterwave,
			BaseURL: c.FlutterwaveBaseUrl,
			APIKey:  c.FlutterwaveKey,
			Client: &http.Client{
				Timeout: time.Second * 30,
			},
			Logger: logger,
		},
		config: c,
	}
}

func (p *FlutterwaveProvider) Name() string {
	return providers.Flutterwave
}

func (p *FlutterwaveProvider) IsConfigured() bool {
	return p.config.FlutterwaveBaseUrl != "" && p.config.FlutterwaveKey != ""
}

func (p *FlutterwaveProvider) CreateVirtualAccount(ctx context.Context, customer CustomerDetails) (*VirtualAccountDetails, error) {
	base, err := url.Parse(p.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %v", err)
	}
	base.Path += "v3/virtual-account-numbers"

	txRef := utils.GenerateReference("VBA")

	request := CreateVirtualAccountNumberRequest{
		Email:       customer.Email,
		IsPermanent: true,
		TxRef:       txRef,
		Phonenumber: customer.Phone,
		FirstName:   customer.FirstName,
		LastName:    customer.LastName,
		Narration:   fmt.Sprintf("%s %s", customer.FirstName, customer.LastName),
	}

	resp, err := p.MakeRequest(ctx, "POST", base.String(), request, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status code: %d \nURL: %s", resp.StatusCode, resp.Request.URL)
	}

	var response FlutterwaveResponse[VirtualAccountNumber]
	decoder := json.NewDecoder(resp.Body)
	err = decoder.Decode(&response)
	if err != nil {
		return nil, fmt.Errorf("error decoding response body: %w", err)
	}

	if response.Status != "success" {
		return nil, fmt.Errorf("virtual account not created: %s", response.Message)
	}

	return &VirtualAccountDetails{
		Provider:      p.Name(),
		AccountNumber: response.Data.AccountNumber,
		AccountName:   fmt.Sprintf("%s %s", customer.FirstName, customer.LastName),
		BankName:      response.Data.BankName,
		Reference:     response.Data.OrderRef,
	}, nil
}
