package domain

type Category struct {
	ID            string
	Name          string
	Image         string
	Subcategories []Subcategory
}

type Subcategory struct {
	ID         string
	Name       string
	CategoryID string
}
