package model

// Product is a single catalog entry. The catalog feed is built once at
// startup and treated as read-only afterwards; nothing in the stores
// mutates a Product.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	OriginalPrice  *float64          `json:"original_price,omitempty"` // Nullable, pre-discount price
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Brand          string            `json:"brand"`
	Rating         float64           `json:"rating"` // 0..5
	Reviews        int               `json:"reviews"`
	InStock        bool              `json:"in_stock"`
	Images         []string          `json:"images"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
}

// Image returns the primary image URL, or "" for a product without images.
func (p *Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
