package domain

import (
	"time"

	"github.com/google/uuid"
)

type DeliveryOption string

const (
	DeliveryOptionDelivery DeliveryOption = "delivery"
	DeliveryOptionPickup   DeliveryOption = "pickup"
)

type PaymentMethod string

const (
	PaymentMethodRazorpay PaymentMethod = "razorpay"
	PaymentMethodCOD      PaymentMethod = "cod"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type OrderStatus string

const (
	OrderStatusPlaced         OrderStatus = "placed"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// OrderItem is a cart line frozen at order placement. It carries values, not
// references, so later catalog edits cannot touch a placed order.
type OrderItem struct {
	ProductID   string
	ProductName string
	VariantID   string
	VariantName string
	Quantity    int
	Price       float64
}

type Order struct {
	ID              uuid.UUID
	UserID          string
	Items           []OrderItem
	Subtotal        float64
	DeliveryCharge  float64
	Total           float64
	DeliveryAddress Address
	DeliveryOption  DeliveryOption
	PaymentMethod   PaymentMethod
	PaymentStatus   PaymentStatus
	Status          OrderStatus
	TrackingID      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
