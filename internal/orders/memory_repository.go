package orders

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kruthislayscoding/hardzy-app/internal/domain"
)

// MemoryRepository implements Repository with in-memory storage. Orders are
// volatile and reset on process restart, like the rest of the session state.
type MemoryRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*domain.Order
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		orders: make(map[uuid.UUID]*domain.Order),
	}
}

func (r *MemoryRepository) Save(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *MemoryRepository) GetOrder(id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	o := *order
	return &o, nil
}

func (r *MemoryRepository) ListByUser(userID string) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			o := *order
			result = append(result, &o)
		}
	}
	return result, nil
}

func (r *MemoryRepository) UpdateStatus(id uuid.UUID, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return nil
}
