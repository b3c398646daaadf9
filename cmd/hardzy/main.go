package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kruthislayscoding/hardzy-app/internal/app"
	"github.com/kruthislayscoding/hardzy-app/internal/domain"
)

func loadConfig() app.Config {
	cfg := app.DefaultConfig()
	cfg.AuthLatency = getEnvDuration("AUTH_LATENCY_MS", cfg.AuthLatency)
	cfg.InventoryLatency = getEnvDuration("INVENTORY_LATENCY_MS", cfg.InventoryLatency)
	return cfg
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		ms, err := strconv.Atoi(value)
		if err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultValue
}

// main walks the storefront flows end to end against the seeded catalog:
// browse, availability check, cart, auth, checkout, tracking.
func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	a, err := app.New(loadConfig(), logger)
	if err != nil {
		logger.Fatal("failed to build app", zap.Error(err))
	}

	ctx := context.Background()

	for _, c := range a.Catalog.Categories() {
		logger.Info("category",
			zap.String("id", c.ID),
			zap.String("name", c.Name),
			zap.Int("subcategories", len(c.Subcategories)))
	}

	product, err := a.Catalog.ProductByID("p1")
	if err != nil {
		logger.Fatal("seed product missing", zap.Error(err))
	}
	variant := product.Variant("v1")

	available, err := a.Inventory.CheckAvailability(ctx, product.ID, variant.ID)
	if err != nil {
		logger.Fatal("availability check failed", zap.Error(err))
	}
	logger.Info("availability",
		zap.String("product_id", product.ID),
		zap.String("variant_id", variant.ID),
		zap.Bool("in_stock", available))

	if _, err := a.Cart.AddItem(product, variant, 2); err != nil {
		logger.Fatal("add to cart failed", zap.Error(err))
	}
	logger.Info("cart",
		zap.Float64("subtotal", a.Cart.Subtotal()),
		zap.Int("item_count", a.Cart.ItemCount()))

	if err := a.Session.SignIn(ctx, "+91 9876543210"); err != nil {
		logger.Fatal("sign in failed", zap.Error(err))
	}
	if _, err := a.Session.VerifyOTP(ctx, "000000"); err != nil {
		logger.Fatal("otp verification failed", zap.Error(err))
	}

	name := "Kruthi"
	email := "kruthi@example.com"
	user, err := a.Session.UpdateProfile(domain.ProfileUpdate{
		Name:  &name,
		Email: &email,
		Address: &domain.Address{
			Street:  "12 MG Road",
			City:    "Bengaluru",
			Pincode: "560001",
		},
	})
	if err != nil {
		logger.Fatal("profile update failed", zap.Error(err))
	}

	order, err := a.Checkout.PlaceOrder(ctx, user, domain.DeliveryOptionDelivery, domain.PaymentMethodRazorpay)
	if err != nil {
		logger.Fatal("order placement failed", zap.Error(err))
	}
	logger.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.Float64("total", order.Total),
		zap.Int("cart_items_left", a.Cart.ItemCount()))

	_, steps, eta, err := a.Checkout.Track(order.ID)
	if err != nil {
		logger.Fatal("tracking failed", zap.Error(err))
	}
	for _, step := range steps {
		logger.Info("tracking step",
			zap.String("title", step.Title),
			zap.Bool("completed", step.Completed))
	}
	logger.Info("estimated delivery", zap.Time("eta", eta))
}
