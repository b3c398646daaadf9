package checkout

import "github.com/kruthislayscoding/hardzy-app/internal/domain"

// DeliveryCharge is the flat home-delivery surcharge; pickup is free.
const DeliveryCharge = 50.0

// SurchargeFor returns the delivery-option surcharge.
func SurchargeFor(option domain.DeliveryOption) float64 {
	if option == domain.DeliveryOptionDelivery {
		return DeliveryCharge
	}
	return 0
}

// ComputeTotal combines the cart subtotal with the delivery-option
// surcharge. No taxes, discounts or coupons are modeled.
func ComputeTotal(subtotal float64, option domain.DeliveryOption) float64 {
	return subtotal + SurchargeFor(option)
}
