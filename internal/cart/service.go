package cart

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kruthislayscoding/hardzy-app/internal/domain"
)

// ErrInvalidQuantity is returned when AddItem is called with a quantity
// below one. Zero or negative add quantities are a caller bug, rejected
// instead of silently clamped.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// Service is the authoritative in-memory source of truth for cart line
// items during a session. Identity is a pure function of product and
// variant ids; no two lines share one. Subtotal and item count are always
// recomputed from the line list, never stored alongside it.
type Service struct {
	mu     sync.Mutex
	items  []*domain.CartItem
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// AddItem merges the product+variant into the cart. A repeat add of the
// same identity increments the existing line's quantity; a new identity
// creates a line with the unit price captured now via the discount
// precedence chain. The captured price is never re-derived.
func (s *Service) AddItem(product *domain.Product, variant *domain.ProductVariant, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	variantID := ""
	if variant != nil {
		variantID = variant.ID
	}
	itemID := domain.CartItemID(product.ID, variantID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.find(itemID); existing != nil {
		existing.Quantity += quantity
		s.logger.Debug("cart line incremented",
			zap.String("item_id", itemID),
			zap.Int("quantity", existing.Quantity))
		out := *existing
		return &out, nil
	}

	item := &domain.CartItem{
		ID:        itemID,
		ProductID: product.ID,
		Product:   product,
		VariantID: variantID,
		Variant:   variant,
		Quantity:  quantity,
		Price:     domain.EffectivePrice(product, variant),
		AddedAt:   time.Now(),
	}
	s.items = append(s.items, item)
	s.logger.Debug("cart line added",
		zap.String("item_id", itemID),
		zap.Float64("price", item.Price),
		zap.Int("quantity", quantity))
	out := *item
	return &out, nil
}

// UpdateQuantity replaces a line's quantity exactly. A quantity of zero or
// below removes the line; the cart never holds a zero-quantity line.
func (s *Service) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(itemID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if item := s.find(itemID); item != nil {
		item.Quantity = quantity
	}
}

// RemoveItem drops the line if present; absent ids are a no-op.
func (s *Service) RemoveItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally; used after order placement.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a snapshot of the current lines in insertion order.
func (s *Service) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartItem, len(s.items))
	for i, item := range s.items {
		out[i] = *item
	}
	return out
}

// Subtotal is the sum of price x quantity over all lines.
func (s *Service) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum float64
	for _, item := range s.items {
		sum += item.Subtotal()
	}
	return sum
}

// ItemCount is the sum of quantities, not the number of distinct lines.
func (s *Service) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Service) find(itemID string) *domain.CartItem {
	for _, item := range s.items {
		if item.ID == itemID {
			return item
		}
	}
	return nil
}
