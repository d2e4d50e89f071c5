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

type PremblyProvider struct {
	providers.BaseProvider
	config *PremblyConfig
}

type PremblyConfig struct {
	PremblyBaseUrl string `mapstructure:"PREMBLY_BASE_URL"`
	PremblyAppID   string `mapstructure:"PREMBLY_APP_ID"`
	PremblyKey     string `mapstructure:"PREMBLY_KEY"`
}

func NewPremblyProvider(c *PremblyConfig, logger *logging.Logger) *PremblyProvider {
	return &PremblyProvider{
		BaseProvider: providers.BaseProvider{
			Name:    providers.Prembly,
			BaseURL: c.PremblyBaseUrl,
			APIKey:  c.PremblyKey,
			Client: &http.Client{
				Timeout: time.Second * 30,
			},
			Logger: logger,
		},
		config: c,
	}
}

func (p *PremblyProvider) Name() string {
	return providers.Prembly
}

func (p *PremblyProvider) IsConfigured() bool {
	return p.config.PremblyBaseUrl != "" && p.config.PremblyKey != ""
}

func premblyPath(kind VerificationKind) string {
	switch kind {
	case KindNIN:
		return "identitypass/verification/nin_wo_face"
	case KindVNIN:
		return "identitypass/verification/vnin"
	case KindBVN:
		return "identitypass/verification/bvn"
	case KindPhone:
		return "identitypass/verification/phone_number"
	}
	return ""
}

func (p *PremblyProvider) Verify(ctx context.Context, request VerificationRequest) Result {
	path := premblyPath(request.Kind)
	if path == "" {
		return failedResult(p.Name(), 0, "", fmt.Sprintf("unsupported verification kind: %s", request.Kind))
	}

	base, err := url.Parse(p.BaseURL)
	if err != nil {
		return failedResult(p.Name(), 0, "", fmt.Sprintf("invalid base url: %v", err))
	}
	base.Path += path

	var requiredHeaders = make(map[string]string)
	requiredHeaders["x-api-key"] = p.config.PremblyKey
	requiredHeaders["app-id"] = p.config.PremblyAppID

	body := map[string]string{"number": request.Value}

	resp, err := p.MakeRequest(ctx, "POST", base.String(), body, requiredHeaders)
	if err != nil {
		return failedResult(p.Name(), 0, "", err.Error())
	}
	defer resp.Body.Close()

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
		p.Logger.WithFields(logFields).Info("Successful response from Prembly API")
	} else {
		p.Logger.WithFields(logFields).Error("Unexpected response from Prembly API")
	}

	var newModel PremblyResponse
	if err := json.Unmarshal(bodyBytes, &newModel); err != nil {
		return failedResult(p.Name(), resp.StatusCode, "", fmt.Sprintf("error decoding response body: %v", err))
	}

	if resp.StatusCode != http.StatusOK || !newModel.Status {
		raw := firstNonEmpty(newModel.Detail, newModel.Message, string(bodyBytes))
		result := failedResult(p.Name(), resp.StatusCode, newModel.ResponseCode, raw)
		result.RawPayload = bodyBytes
		return result
	}

	return Result{
		Success:      true,
		Provider:     p.Name(),
		StatusCode:   resp.StatusCode,
		ResponseCode: newModel.ResponseCode,
		RawMessage:   newModel.Detail,
		Record:       newModel.Data.toRecord(),
		RawPayload:   bodyBytes,
	}
}
