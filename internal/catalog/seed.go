package catalog

import (
	"time"

	"github.com/kruthislayscoding/hardzy-app/internal/domain"
)

// SeedCategories returns the static category tree shown on the categories tab.
func SeedCategories() []domain.Category {
	return []domain.Category{
		{
			ID:    "sanitary-plumbing",
			Name:  "Sanitary and Plumbing Fittings",
			Image: "https://images.pexels.com/photos/6474471/pexels-photo-6474471.jpeg?auto=compress&cs=tinysrgb&w=400",
			Subcategories: []domain.Subcategory{
				{ID: "bathroom", Name: "Bathroom", CategoryID: "sanitary-plumbing"},
				{ID: "plumbing-fittings", Name: "Plumbing Fittings", CategoryID: "sanitary-plumbing"},
			},
		},
		{
			ID:    "electricals-appliances",
			Name:  "Electricals and Appliances",
			Image: "https://images.pexels.com/photos/257736/pexels-photo-257736.jpeg?auto=compress&cs=tinysrgb&w=400",
			Subcategories: []domain.Subcategory{
				{ID: "switches-wires", Name: "Switches/Wires/Switchboards", CategoryID: "electricals-appliances"},
				{ID: "lights", Name: "Lights", CategoryID: "electricals-appliances"},
				{ID: "fans-motors", Name: "Fans/Motors/Pumps/AC Fittings", CategoryID: "electricals-appliances"},
			},
		},
		{
			ID:    "tools",
			Name:  "Tools",
			Image: "https://images.pexels.com/photos/162553/keys-workshop-mechanic-tools-162553.jpeg?auto=compress&cs=tinysrgb&w=400",
			Subcategories: []domain.Subcategory{
				{ID: "hand-tools", Name: "Hand Tools", CategoryID: "tools"},
				{ID: "power-tools", Name: "Power Tools", CategoryID: "tools"},
			},
		},
		{
			ID:    "flooring-roofing",
			Name:  "Flooring, Roofing, Tiles",
			Image: "https://images.pexels.com/photos/279719/pexels-photo-279719.jpeg?auto=compress&cs=tinysrgb&w=400",
			Subcategories: []domain.Subcategory{
				{ID: "flooring", Name: "Flooring Solutions", CategoryID: "flooring-roofing"},
				{ID: "roofing", Name: "Roofing and Waterproofing", CategoryID: "flooring-roofing"},
				{ID: "tiles", Name: "Tiles", CategoryID: "flooring-roofing"},
			},
		},
		{
			ID:    "paint",
			Name:  "Paint",
			Image: "https://images.pexels.com/photos/1669799/pexels-photo-1669799.jpeg?auto=compress&cs=tinysrgb&w=400",
			Subcategories: []domain.Subcategory{
				{ID: "interior", Name: "Interior", CategoryID: "paint"},
				{ID: "exterior", Name: "Exterior", CategoryID: "paint"},
			},
		},
		{
			ID:    "carpentry",
			Name:  "Carpentry",
			Image: "https://images.pexels.com/photos/175039/pexels-photo-175039.jpeg?auto=compress&cs=tinysrgb&w=400",
			Subcategories: []domain.Subcategory{
				{ID: "plywood", Name: "Plywood", CategoryID: "carpentry"},
				{ID: "doors-windows", Name: "Doors/Windows/Wardrobes", CategoryID: "carpentry"},
				{ID: "glues", Name: "Glues", CategoryID: "carpentry"},
				{ID: "screws-nails", Name: "Screws/Nails/handles", CategoryID: "carpentry"},
			},
		},
		{
			ID:    "construction",
			Name:  "Construction Materials",
			Image: "https://images.pexels.com/photos/1216589/pexels-photo-1216589.jpeg?auto=compress&cs=tinysrgb&w=400",
			Subcategories: []domain.Subcategory{
				{ID: "cement", Name: "Cement", CategoryID: "construction"},
				{ID: "tmt-steel", Name: "TMT Steel", CategoryID: "construction"},
				{ID: "pipes", Name: "Pipes", CategoryID: "construction"},
				{ID: "sand-jelly", Name: "M Sand & Jelly", CategoryID: "construction"},
				{ID: "bricks", Name: "Bricks and Blocks", CategoryID: "construction"},
			},
		},
		{
			ID:    "household",
			Name:  "Household Items",
			Image: "https://images.pexels.com/photos/4239146/pexels-photo-4239146.jpeg?auto=compress&cs=tinysrgb&w=400",
			Subcategories: []domain.Subcategory{
				{ID: "cleaning", Name: "Cleaning Essentials", CategoryID: "household"},
				{ID: "kitchen", Name: "Kitchen Solutions", CategoryID: "household"},
				{ID: "knives", Name: "Knives and Daily Essentials", CategoryID: "household"},
				{ID: "storage", Name: "Storage", CategoryID: "household"},
			},
		},
	}
}

// SeedBrands returns the brand list used for brand-brochure browsing.
func SeedBrands() []string {
	return []string{
		"BOSCH", "ROFF", "WEBER", "DR FIXIT", "KAJARIA", "CERA",
		"ASIAN PAINTS", "NEROLAC", "SINTEX", "ACC", "BIRLA SUPER",
		"JK CEMENT", "TATA", "SAIL", "JSW", "JINDAL", "KAMDHENU",
		"BAJAJ", "PHILIPS", "CROMPTON", "ASTRAL", "SUPREME", "Miscellaneous",
	}
}

// SeedProducts returns the demo product fixture.
func SeedProducts() []*domain.Product {
	now := time.Now()
	return []*domain.Product{
		{
			ID:          "p1",
			Name:        "BOSCH Professional Drill Machine",
			Description: "Heavy-duty drill machine for professional use with variable speed control and hammer function.",
			Images: []string{
				"https://images.pexels.com/photos/162553/keys-workshop-mechanic-tools-162553.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1216589/pexels-photo-1216589.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Price:           8500,
			DiscountedPrice: domain.Discounted(7200),
			Brand:           "BOSCH",
			CategoryID:      "tools",
			SubcategoryID:   "power-tools",
			Variants: []domain.ProductVariant{
				{ID: "v1", Name: "13mm", Price: 7200, InStock: true},
				{ID: "v2", Name: "16mm", Price: 8500, InStock: true},
			},
			InStock:       true,
			StockQuantity: 25,
			CreatedAt:     now,
		},
		{
			ID:          "p2",
			Name:        "CERA Bathroom Faucet Set",
			Description: "Premium bathroom faucet set with modern design and chrome finish.",
			Images: []string{
				"https://images.pexels.com/photos/6474471/pexels-photo-6474471.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Price:           4500,
			DiscountedPrice: domain.Discounted(3800),
			Brand:           "CERA",
			CategoryID:      "sanitary-plumbing",
			SubcategoryID:   "bathroom",
			Variants: []domain.ProductVariant{
				{ID: "v1", Name: "Chrome", Price: 3800, InStock: true},
				{ID: "v2", Name: "Matt Black", Price: 4200, InStock: false},
			},
			InStock:       true,
			StockQuantity: 15,
			CreatedAt:     now,
		},
		{
			ID:          "p3",
			Name:        "ASIAN PAINTS Royale Interior Paint",
			Description: "Premium interior emulsion paint with silk finish and excellent coverage.",
			Images: []string{
				"https://images.pexels.com/photos/1669799/pexels-photo-1669799.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Price:           2800,
			DiscountedPrice: domain.Discounted(2400),
			Brand:           "ASIAN PAINTS",
			CategoryID:      "paint",
			SubcategoryID:   "interior",
			Variants: []domain.ProductVariant{
				{ID: "v1", Name: "10L", Price: 2400, InStock: true},
				{ID: "v2", Name: "20L", Price: 4600, InStock: true},
			},
			InStock:       true,
			StockQuantity: 30,
			CreatedAt:     now,
		},
	}
}

// NewSeededStore is a convenience constructor over the demo fixture.
func NewSeededStore() (*MemoryStore, error) {
	return NewMemoryStore(SeedCategories(), SeedProducts(), SeedBrands())
}
