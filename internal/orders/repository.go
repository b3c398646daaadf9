package orders

import (
	"errors"

	"github.com/google/uuid"

	"github.com/kruthislayscoding/hardzy-app/internal/domain"
)

var ErrOrderNotFound = errors.New("order not found")

// Repository stores placed orders for the session
// Consumers define this interface, not the in-memory implementation
type Repository interface {
	Save(order *domain.Order) error
	GetOrder(id uuid.UUID) (*domain.Order, error)
	ListByUser(userID string) ([]*domain.Order, error)
	UpdateStatus(id uuid.UUID, status domain.OrderStatus) error
}
