package dto

type ProductFilters struct {
	SearchQuery string // Matched against name, description, brand
	Category    string // "" or "all" means every category
	InStockOnly bool
	Limit       int // 0 means no limit
}

// Category is a storefront navigation entry with its product count.
type Category struct {
	ID    string
	Name  string
	Count int
}
