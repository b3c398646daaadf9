package domain

// DefaultVariantToken is the sentinel used in cart item identity when no
// variant is selected.
const DefaultVariantToken = "default"

// CartItemID derives a cart line's identity from its product and variant.
// Re-adding the same product+variant combination resolves to the same line.
func CartItemID(productID, variantID string) string {
	if variantID == "" {
		variantID = DefaultVariantToken
	}
	return productID + ":" + variantID
}

// EffectivePrice resolves the unit price actually charged for a product,
// optionally narrowed to a variant. Precedence is order-sensitive:
// variant discounted price, variant price, product discounted price,
// product price. This is the single implementation of the rule; call sites
// must not re-derive it.
func EffectivePrice(product *Product, variant *ProductVariant) float64 {
	if variant != nil {
		if variant.DiscountedPrice != nil {
			return *variant.DiscountedPrice
		}
		return variant.Price
	}
	if product.DiscountedPrice != nil {
		return *product.DiscountedPrice
	}
	return product.Price
}

// Discounted is a convenience for building fixture and seed data.
func Discounted(price float64) *float64 {
	return &price
}
