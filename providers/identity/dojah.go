package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/VeriPay/VeriPay-Backend/providers"
	"github.com/VeriPay/VeriPay-Backend/services/monitoring/logging"
	"github.com/sirupsen/logrus"
)

type DojahProvider struct {
	providers.BaseProvider
	config *DojahConfig
}

type DojahConfig struct {
	DojahBaseUrl string `mapstructure:"DOJAH_BASE_URL"`
	DojahAppID   string `mapstructure:"DOJAH_APP_ID"`
	DojahKey     string `mapstructure:"DOJAH_KEY"`
}

func NewDojahProvider(c *DojahConfig, logger *logging.Logger) *DojahProvider {
	return &DojahProvider{
		BaseProvider: providers.BaseProvider{
			Name:    providers.Dojah,
			BaseURL: c.DojahBaseUrl,
			APIKey:  c.DojahKey,
			Client: &http.Client{
				Timeout: time.Second * 30,
			},
			Logger: logger,
		},
		config: c,
	}
}

func (p *DojahProvider) Name() string {
	return providers.Dojah
}

func (p *DojahProvider) IsConfigured() bool {
	return p.config.DojahBaseUrl != "" && p.config.DojahKey != "" && p.config.DojahAppID != ""
}

func dojahQuery(kind VerificationKind) (path string, param string) {
	switch kind {
	case KindNIN:
		return "api/v1/kyc/nin", "nin"
	case KindVNIN:
		return "api/v1/kyc/vnin", "vnin"
	case KindBVN:
		return "api/v1/kyc/bvn/full", "bvn"
	case KindPhone:
		return "api/v1/kyc/phone_number/basic", "phone_number"
	}
	return "", ""
}

func (p *DojahProvider) Verify(ctx context.Context, request VerificationRequest) Result {
	path, param := dojahQuery(request.Kind)
	if path == "" {
		return failedResult(p.Name(), 0, "", fmt.Sprintf("unsupported verification kind: %s", request.Kind))
	}

	base, err := url.Parse(p.BaseURL)
	if err != nil {
		return failedResult(p.Name(), 0, "", fmt.Sprintf("invalid base url: %v", err))
	}
	base.Path += path

	params := url.Values{}
	params.Add(param, request.Value)
	base.RawQuery = params.Encode()

	var requiredHeaders = make(map[string]string)
	requiredHeaders["AppId"] = p.config.DojahAppID
	requiredHeaders["Authorization"] = p.config.DojahKey

	resp, err := p.MakeRequest(ctx, "GET", base.String(), nil, requiredHeaders)
	if err != nil {
		return failedResult(p.Name(), 0, "", err.Error())
	}
	defer resp.Body.Close()

	// Read and log the full response body for tracking
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return failedResult(p.Name(), resp.StatusCode, "", fmt.Sprintf("error reading response body: %v", err))
	}

	logFields := logrus.Fields{
		"status_code": resp.StatusCode,
		"url":         resp.Request.URL,
		"body":        string(bodyBytes),
	}

	if resp.StatusCode == http.StatusOK {
		p.Logger.WithFields(logFields).Info("Successful response from Dojah API")
	} else {
		p.Logger.WithFields(logFields).Error("Unexpected response from Dojah API")
	}

	var newModel DojahResponse
	if err := json.Unmarshal(bodyBytes, &newModel); err != nil {
		return failedResult(p.Name(), resp.StatusCode, "", fmt.Sprintf("error decoding response body: %v", err))
	}

	if resp.StatusCode != http.StatusOK {
		raw := firstNonEmpty(newModel.Error, string(bodyBytes))
		result := failedResult(p.Name(), resp.StatusCode, fmt.Sprintf("%d", resp.StatusCode), raw)
		result.RawPayload = bodyBytes
		return result
	}

	return Result{
		Success:    true,
		Provider:   p.Name(),
		StatusCode: resp.StatusCode,
		Record:     newModel.Entity.toRecord(),
		RawPayload: bodyBytes,
	}
}
