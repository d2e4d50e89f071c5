package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/VeriPay/VeriPay-Backend/providers"
	"github.com/VeriPay/VeriPay-Backend/services/monitoring/logging"
	"github.com/sirupsen/logrus"
)

type QoreIDProvider struct {
	providers.BaseProvider
	config *QoreIDConfig
}

type QoreIDConfig struct {
	QoreIDBaseUrl string `mapstructure:"QOREID_BASE_URL"`
	QoreIDToken   string `mapstructure:"QOREID_TOKEN"`
}

func NewQoreIDProvider(c *QoreIDConfig, logger *logging.Logger) *QoreIDProvider {
	return &QoreIDProvider{
		BaseProvider: providers.BaseProvider{
			Name:    providers.QoreID,
			BaseURL: c.QoreIDBaseUrl,
			APIKey:  c.QoreIDToken,
			Client: &http.Client{
				Timeout: time.Second * 30,
			},
			Logger: logger,
		},
		config: c,
	}
}

func (p *QoreIDProvider) Name() string {
	return providers.QoreID
}

func (p *QoreIDProvider) IsConfigured() bool {
	return p.config.QoreIDBaseUrl != "" && p.config.QoreIDToken != ""
}

func qoreidPath(kind VerificationKind) string {
	switch kind {
	case KindNIN:
		return "v1/ng/identities/nin"
	case KindVNIN:
		return "v1/ng/identities/virtual-nin"
	case KindBVN:
		return "v1/ng/identities/bvn-basic"
	case KindPhone:
		return "v1/ng/identities/nin-phone"
	}
	return ""
}

func (p *QoreIDProvider) Verify(ctx context.Context, request VerificationRequest) Result {
	path := qoreidPath(request.Kind)
	if path == "" {
		return failedResult(p.Name(), 0, "", fmt.Sprintf("unsupported verification kind: %s", request.Kind))
	}

	base, err := url.Parse(p.BaseURL)
	if err != nil {
		return failedResult(p.Name(), 0, "", fmt.Sprintf("invalid base url: %v", err))
	}
	base.Path += fmt.Sprintf("%s/%s", path, request.Value)

	resp, err := p.MakeRequest(ctx, "POST", base.String(), nil, nil)
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
		p.Logger.WithFields(logFields).Info("Successful response from QoreID API")
	} else {
		p.Logger.WithFields(logFields).Error("Unexpected response from QoreID API")
	}

	var newModel QoreIDResponse
	if err := json.Unmarshal(bodyBytes, &newModel); err != nil {
		return failedResult(p.Name(), resp.StatusCode, "", fmt.Sprintf("error decoding response body: %v", err))
	}

	if resp.StatusCode != http.StatusOK {
		raw := firstNonEmpty(newModel.Message, string(bodyBytes))
		result := failedResult(p.Name(), resp.StatusCode, newModel.Code, raw)
		result.RawPayload = bodyBytes
		return result
	}

	// A completed check can still conclude the identity was not found
	// or mismatched; that is a failure, not a success.
	if !strings.EqualFold(newModel.Status.Status, "verified") {
		raw := firstNonEmpty(newModel.Message, newModel.Status.Status)
		result := failedResult(p.Name(), resp.StatusCode, newModel.Status.Status, raw)
		result.RawPayload = bodyBytes
		return result
	}

	return Result{
		Success:    true,
		Provider:   p.Name(),
		StatusCode: resp.StatusCode,
		RawMessage: newModel.Status.Status,
		Record:     newModel.person().toRecord(),
		RawPayload: bodyBytes,
	}
}
