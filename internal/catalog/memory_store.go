package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kruthislayscoding/hardzy-app/internal/domain"
)

// MemoryStore implements Store over an in-memory catalog snapshot. The
// snapshot is immutable after construction, so reads only take the read
// lock and there is no write path beyond New.
type MemoryStore struct {
	mu         sync.RWMutex
	categories []domain.Category
	products   []*domain.Product
	byID       map[string]*domain.Product
	brands     []string
}

// NewMemoryStore builds a store from a catalog snapshot. Every product is
// validated so a bad fixture fails loudly at startup instead of rendering
// wrong discounts later.
func NewMemoryStore(categories []domain.Category, products []*domain.Product, brands []string) (*MemoryStore, error) {
	byID := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid product %s: %w", p.ID, err)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %s", p.ID)
		}
		byID[p.ID] = p
	}

	return &MemoryStore{
		categories: categories,
		products:   products,
		byID:       byID,
		brands:     brands,
	}, nil
}

func (s *MemoryStore) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *MemoryStore) ProductsByCategory(categoryID, brand string) []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Product
	for _, p := range s.products {
		if p.CategoryID != categoryID {
			continue
		}
		if brand != "" && p.Brand != brand {
			continue
		}
		result = append(result, p)
	}
	return result
}

func (s *MemoryStore) ProductByID(id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *MemoryStore) ProductsByBrand(brand, categoryID string) []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Product
	for _, p := range s.products {
		if p.Brand != brand {
			continue
		}
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		result = append(result, p)
	}
	return result
}

func (s *MemoryStore) SearchProducts(query string) []*domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Brand), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			result = append(result, p)
		}
	}
	return result
}

func (s *MemoryStore) Brands() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.brands))
	copy(out, s.brands)
	return out
}
