package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kruthislayscoding/hardzy-app/internal/domain"
	"github.com/kruthislayscoding/hardzy-app/internal/orders"
)

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrProfileIncomplete = errors.New("profile must be complete before checkout")
)

// Cart is the slice of the cart aggregate checkout needs. Checkout reads
// the subtotal and snapshots the lines; it never mutates cart state except
// to clear it after a successful placement.
type Cart interface {
	Items() []domain.CartItem
	Subtotal() float64
	Clear()
}

// Service turns the current cart into a placed order.
type Service struct {
	cart   Cart
	repo   orders.Repository
	logger *zap.Logger
}

func NewService(cart Cart, repo orders.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cart:   cart,
		repo:   repo,
		logger: logger,
	}
}

// PlaceOrder snapshots the cart into an order, stores it and clears the
// cart. The payment step is mocked: online payment is treated as settled
// immediately, cash on delivery stays pending.
func (s *Service) PlaceOrder(
	ctx context.Context,
	user *domain.User,
	option domain.DeliveryOption,
	method domain.PaymentMethod) (*domain.Order, error) {

	if user == nil || !user.ProfileComplete {
		return nil, ErrProfileIncomplete
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := s.cart.Subtotal()
	now := time.Now()

	order := &domain.Order{
		ID:              uuid.New(),
		UserID:          user.ID,
		Items:           snapshotItems(items),
		Subtotal:        subtotal,
		DeliveryCharge:  SurchargeFor(option),
		Total:           ComputeTotal(subtotal, option),
		DeliveryAddress: user.Address,
		DeliveryOption:  option,
		PaymentMethod:   method,
		PaymentStatus:   paymentStatusFor(method),
		Status:          domain.OrderStatusPlaced,
		TrackingID:      uuid.New().String(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Save(order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.cart.Clear()
	s.logger.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", user.ID),
		zap.Float64("total", order.Total))
	return order, nil
}

// Track returns the order with its status timeline and estimated delivery.
func (s *Service) Track(orderID uuid.UUID) (*domain.Order, []orders.TimelineStep, time.Time, error) {
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, nil, time.Time{}, err
	}
	return order, orders.Timeline(order), orders.EstimatedDelivery(order), nil
}

func snapshotItems(items []domain.CartItem) []domain.OrderItem {
	out := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		oi := domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			VariantID:   item.VariantID,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
		if item.Variant != nil {
			oi.VariantName = item.Variant.Name
		}
		out = append(out, oi)
	}
	return out
}

func paymentStatusFor(method domain.PaymentMethod) domain.PaymentStatus {
	if method == domain.PaymentMethodRazorpay {
		return domain.PaymentStatusPaid
	}
	return domain.PaymentStatusPending
}
