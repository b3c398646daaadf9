package inventory

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/kruthislayscoding/hardzy-app/internal/catalog"
)

// DefaultLatency mirrors the round-trip delay of the mocked backend call.
const DefaultLatency = 500 * time.Millisecond

// MockOracle resolves availability from the catalog snapshot after a fixed
// simulated latency. It never fails: an unknown product reads as out of
// stock, which callers currently cannot distinguish from a real stockout.
type MockOracle struct {
	store   catalog.Store
	latency time.Duration
	logger  *zap.Logger
	sfg     singleflight.Group // Collapses concurrent checks for the same key
}

func NewMockOracle(store catalog.Store, latency time.Duration, logger *zap.Logger) *MockOracle {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MockOracle{
		store:   store,
		latency: latency,
		logger:  logger,
	}
}

func (o *MockOracle) CheckAvailability(ctx context.Context, productID, variantID string) (bool, error) {
	key := productID + ":" + variantID
	v, err, shared := o.sfg.Do(key, func() (interface{}, error) {
		select {
		case <-time.After(o.latency):
		case <-ctx.Done():
			return false, ctx.Err()
		}
		return o.resolve(productID, variantID), nil
	})
	if err != nil {
		return false, err
	}
	if shared {
		o.logger.Debug("availability check deduplicated",
			zap.String("product_id", productID),
			zap.String("variant_id", variantID))
	}
	return v.(bool), nil
}

func (o *MockOracle) resolve(productID, variantID string) bool {
	product, err := o.store.ProductByID(productID)
	if err != nil {
		if !errors.Is(err, catalog.ErrProductNotFound) {
			o.logger.Warn("catalog lookup failed", zap.String("product_id", productID), zap.Error(err))
		}
		return false
	}

	if variantID != "" {
		variant := product.Variant(variantID)
		if variant == nil {
			return false
		}
		return variant.InStock
	}
	return product.InStock
}
