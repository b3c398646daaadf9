package orders

import (
	"time"

	"github.com/kruthislayscoding/hardzy-app/internal/domain"
)

// EstimatedDeliveryWindow is how far out the mock quotes delivery.
const EstimatedDeliveryWindow = 2 * time.Hour

// TimelineStep is one row of the order-status timeline shown on the
// tracking screen.
type TimelineStep struct {
	Status    domain.OrderStatus
	Title     string
	Subtitle  string
	Completed bool
}

var statusOrder = []domain.OrderStatus{
	domain.OrderStatusPlaced,
	domain.OrderStatusConfirmed,
	domain.OrderStatusOutForDelivery,
	domain.OrderStatusDelivered,
}

var statusTitles = map[domain.OrderStatus][2]string{
	domain.OrderStatusPlaced:         {"Order Placed", "Your order has been received"},
	domain.OrderStatusConfirmed:      {"Order Confirmed", "We are preparing your order"},
	domain.OrderStatusOutForDelivery: {"Out for Delivery", "Your order is on the way"},
	domain.OrderStatusDelivered:      {"Delivered", "Order delivered successfully"},
}

// Timeline returns the four-step status progression with every step up to
// and including the order's current status marked completed. A cancelled
// order marks nothing beyond placement.
func Timeline(order *domain.Order) []TimelineStep {
	current := -1
	for i, status := range statusOrder {
		if status == order.Status {
			current = i
			break
		}
	}
	if order.Status == domain.OrderStatusCancelled {
		current = 0
	}

	steps := make([]TimelineStep, 0, len(statusOrder))
	for i, status := range statusOrder {
		titles := statusTitles[status]
		steps = append(steps, TimelineStep{
			Status:    status,
			Title:     titles[0],
			Subtitle:  titles[1],
			Completed: i <= current,
		})
	}
	return steps
}

// EstimatedDelivery quotes the mock delivery time for an order.
func EstimatedDelivery(order *domain.Order) time.Time {
	return order.CreatedAt.Add(EstimatedDeliveryWindow)
}
