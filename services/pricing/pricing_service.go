package pricing

import (
	"context"
	"time"

	db "github.com/VeriPay/VeriPay-Backend/db"
	"github.com/VeriPay/VeriPay-Backend/providers/identity"
	"github.com/VeriPay/VeriPay-Backend/services/monitoring/logging"
	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// PricingStore is the slice of storage pricing reads from. *db.Store
// satisfies it.
type PricingStore interface {
	GetServicePricing(ctx context.Context, serviceKind string) (db.ServicePricing, error)
}

// PriceCache is the remote cache surface; *services.RedisService
// satisfies it. A nil cache is allowed and skipped.
type PriceCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// Hardcoded prices used when both the cache and the pricing table are
// unreachable. Verification must never block on a pricing lookup.
var defaultPrices = map[identity.VerificationKind]decimal.Decimal{
	identity.KindNIN:   decimal.NewFromInt(100),
	identity.KindVNIN:  decimal.NewFromInt(150),
	identity.KindBVN:   decimal.NewFromInt(100),
	identity.KindPhone: decimal.NewFromInt(120),
}

const cacheTTL = 10 * time.Minute

type PricingService struct {
	store  PricingStore
	remote PriceCache
	local  *gocache.Cache
	logger *logging.Logger
}

func NewPricingService(store PricingStore, remote PriceCache, logger *logging.Logger) *PricingService {
	return &PricingService{
		store:  store,
		remote: remote,
		local:  gocache.New(cacheTTL, 2*cacheTTL),
		logger: logger,
	}
}

// PriceFor resolves the charge for a verification kind: redis first,
// then the pricing table, then the last price this process saw, then
// the hardcoded default.
func (p *PricingService) PriceFor(ctx context.Context, kind identity.VerificationKind) decimal.Decimal {
	key := "pricing:" + string(kind)

	if p.remote != nil {
		if cached, err := p.remote.Get(ctx, key); err == nil {
			if price, err := decimal.NewFromString(cached); err == nil {
				return price
			}
		}
	}

	row, err := p.store.GetServicePricing(ctx, string(kind))
	if err == nil {
		p.local.Set(key, row.Price, gocache.DefaultExpiration)
		if p.remote != nil {
			if err := p.remote.Set(ctx, key, row.Price.String(), cacheTTL); err != nil {
				p.logger.WithFields(logrus.Fields{"key": key}).Warn("unable to cache price in redis")
			}
		}
		return row.Price
	}

	p.logger.WithFields(logrus.Fields{
		"kind": kind,
	}).Warn("pricing lookup failed, falling back")

	if cached, found := p.local.Get(key); found {
		if price, ok := cached.(decimal.Decimal); ok {
			return price
		}
	}

	if price, ok := defaultPrices[kind]; ok {
		return price
	}
	return decimal.NewFromInt(100)
}
