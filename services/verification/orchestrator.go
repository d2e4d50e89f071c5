package verification

import (
	"context"

	"github.com/VeriPay/VeriPay-Backend/providers/identity"
	"github.com/VeriPay/VeriPay-Backend/services/monitoring/logging"
	"github.com/sirupsen/logrus"
)

// Orchestrator walks an ordered provider chain and stops at the first
// usable success. Provider order is fixed at construction so behavior
// and billing cost stay deterministic; nothing is retried and nothing
// runs concurrently.
type Orchestrator struct {
	providers []identity.Provider
	logger    *logging.Logger
}

// NewOrchestrator keeps only configured providers, preserving the
// order they were passed in. An unconfigured provider is excluded up
// front rather than attempted and failed.
func NewOrchestrator(logger *logging.Logger, providerChain ...identity.Provider) *Orchestrator {
	configured := make([]identity.Provider, 0, len(providerChain))
	for _, p := range providerChain {
		if p.IsConfigured() {
			configured = append(configured, p)
		} else {
			logger.WithFields(logrus.Fields{"provider": p.Name()}).Warn("identity provider not configured, excluded from chain")
		}
	}
	return &Orchestrator{
		providers: configured,
		logger:    logger,
	}
}

// ProviderNames reports the active chain, in order.
func (o *Orchestrator) ProviderNames() []string {
	names := make([]string, 0, len(o.providers))
	for _, p := range o.providers {
		names = append(names, p.Name())
	}
	return names
}

// Verify tries each provider in order and returns the first result
// that is both transport-successful and data-valid. A 200 with an
// empty or placeholder-only record is a failure and the chain moves
// on. When every provider fails, the LAST observed error wins, so a
// later, more specific failure is not masked by an earlier generic
// one.
func (o *Orchestrator) Verify(ctx context.Context, request identity.VerificationRequest) (identity.Result, *VerificationError) {
	if len(o.providers) == 0 {
		return identity.Result{}, newError(ErrKindUnconfigured, msgUnconfigured)
	}

	var lastErr *VerificationError

	for _, p := range o.providers {
		result := p.Verify(ctx, request)

		if result.Success && HasValidData(result.Record) {
			o.logger.WithFields(logrus.Fields{
				"provider": p.Name(),
				"kind":     request.Kind,
			}).Info("verification served")
			return result, nil
		}

		if result.Success {
			// HTTP success with no usable data: the registry has
			// nothing of substance for this identifier here.
			lastErr = newError(ErrKindNotFound, msgNotFound)
			o.logger.WithFields(logrus.Fields{
				"provider": p.Name(),
				"kind":     request.Kind,
			}).Warn("provider returned empty verification data, trying next")
			continue
		}

		lastErr = Classify(result)
		o.logger.WithFields(logrus.Fields{
			"provider":    p.Name(),
			"kind":        request.Kind,
			"error_kind":  lastErr.Kind,
			"raw_message": result.RawMessage,
		}).Warn("provider verification failed, trying next")
	}

	return identity.Result{}, lastErr
}
