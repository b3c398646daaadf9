package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidDiscount = errors.New("discounted price must be less than base price")
	ErrNegativeStock   = errors.New("stock quantity must be non-negative")
)

type Product struct {
	ID            string
	Name          string
	Description   string
	Images        []string
	Price         float64
	// DiscountedPrice is nil when the product is not on offer. When set it
	// must be strictly below Price so percentage-off display stays sane.
	DiscountedPrice *float64
	Brand           string
	CategoryID      string
	SubcategoryID   string
	Variants        []ProductVariant
	InStock         bool
	StockQuantity   int
	CreatedAt       time.Time
}

// ProductVariant is a purchasable sub-option of a product (e.g. a size).
// Its price overrides the parent product's price when selected.
type ProductVariant struct {
	ID              string
	Name            string
	Price           float64
	DiscountedPrice *float64
	InStock         bool
}

// Variant returns the variant with the given id, or nil.
func (p *Product) Variant(variantID string) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

// Validate checks the catalog invariants the views rely on.
func (p *Product) Validate() error {
	if p.DiscountedPrice != nil && *p.DiscountedPrice >= p.Price {
		return ErrInvalidDiscount
	}
	for _, v := range p.Variants {
		if v.DiscountedPrice != nil && *v.DiscountedPrice >= v.Price {
			return ErrInvalidDiscount
		}
	}
	if p.StockQuantity < 0 {
		return ErrNegativeStock
	}
	return nil
}
