package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kruthislayscoding/hardzy-app/internal/cart"
	"github.com/kruthislayscoding/hardzy-app/internal/catalog"
	"github.com/kruthislayscoding/hardzy-app/internal/checkout"
	"github.com/kruthislayscoding/hardzy-app/internal/inventory"
	"github.com/kruthislayscoding/hardzy-app/internal/orders"
	"github.com/kruthislayscoding/hardzy-app/internal/session"
)

// Config carries the tunables of the simulated backends.
type Config struct {
	AuthLatency      time.Duration
	InventoryLatency time.Duration
}

func DefaultConfig() Config {
	return Config{
		AuthLatency:      session.DefaultLatency,
		InventoryLatency: inventory.DefaultLatency,
	}
}

// App is the explicit application-state container: every aggregate is
// constructed here and handed to the presentation layer by injection, so
// lifecycles and test setup stay isolated. No package-level singletons.
type App struct {
	Catalog   catalog.Store
	Inventory inventory.Oracle
	Cart      *cart.Service
	Session   *session.Service
	Orders    orders.Repository
	Checkout  *checkout.Service
}

// New wires the storefront core over the seeded demo catalog.
func New(cfg Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	store, err := catalog.NewSeededStore()
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	cartSvc := cart.NewService(logger.Named("cart"))
	orderRepo := orders.NewMemoryRepository()

	return &App{
		Catalog:   store,
		Inventory: inventory.NewMockOracle(store, cfg.InventoryLatency, logger.Named("inventory")),
		Cart:      cartSvc,
		Session:   session.NewService(cfg.AuthLatency, logger.Named("session")),
		Orders:    orderRepo,
		Checkout:  checkout.NewService(cartSvc, orderRepo, logger.Named("checkout")),
	}, nil
}
