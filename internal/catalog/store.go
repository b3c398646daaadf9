package catalog

import (
	"errors"

	"github.com/kruthislayscoding/hardzy-app/internal/domain"
)

// ErrProductNotFound is a normal branch for callers, not a fault; product
// pages render a "not found" state on it.
var ErrProductNotFound = errors.New("product not found")

// Store defines the read-only catalog operations
// Consumers define this interface, not the in-memory implementation
type Store interface {
	// Categories returns the static category list in stable order.
	Categories() []domain.Category

	// ProductsByCategory returns products in the category, optionally
	// narrowed to a brand. An empty brand means no brand filter.
	ProductsByCategory(categoryID, brand string) []*domain.Product

	// ProductByID returns the product or ErrProductNotFound.
	ProductByID(id string) (*domain.Product, error)

	// ProductsByBrand returns products of the brand, optionally narrowed
	// to a category. An empty categoryID means no category filter.
	ProductsByBrand(brand, categoryID string) []*domain.Product

	// SearchProducts matches the query against name, brand and
	// description, case-insensitively.
	SearchProducts(query string) []*domain.Product

	// Brands returns the known brand names in stable order.
	Brands() []string
}
