package repository

import (
	"fmt"

	"github.com/evershine/storefront-core/internal/model"
)

func price(v float64) *float64 { return &v }

// seedProducts is the demo catalog: a handful of curated pieces plus
// generated placeholders, ids "1" through "38".
func seedProducts() []model.Product {
	products := []model.Product{
		{
			ID:            "1",
			Name:          "Halo golden frame hoops",
			Price:         649,
			OriginalPrice: price(749),
			Description:   "Elegant golden hoops with a halo frame design.",
			Category:      "earrings",
			Brand:         "Evershine",
			Rating:        4.5,
			Reviews:       10,
			InStock:       true,
			Images:        []string{"https://minis-media-assets.swiggy.com/swiggymini/image/upload/IMAGE/halo-golden-frame-hoops.jpg"},
			Features:      []string{"Halo frame", "Gold finish"},
			Specifications: map[string]string{
				"Material": "Gold plated",
				"Weight":   "10g",
			},
		},
		{
			ID:          "2",
			Name:        "Vintage Rose Gold Ring",
			Price:       1599,
			Description: "Timeless vintage-inspired ring crafted in rose gold with intricate filigree work. A perfect blend of classic elegance and modern sophistication.",
			Category:    "rings",
			Brand:       "Heritage Collection",
			Rating:      4.8,
			Reviews:     89,
			InStock:     true,
			Images: []string{
				"https://images.pexels.com/photos/1454166/pexels-photo-1454166.jpeg",
				"https://images.pexels.com/photos/1454167/pexels-photo-1454167.jpeg",
			},
			Features: []string{"14k Rose Gold", "Vintage Filigree Design", "Hand-engraved Details", "Comfort Fit Band", "Antique Finish"},
			Specifications: map[string]string{
				"Material":  "14k Rose Gold",
				"Ring Size": "Adjustable 6-8",
				"Width":     "8mm",
				"Weight":    "4.2g",
				"Style":     "Vintage Art Deco",
			},
		},
		{
			ID:            "3",
			Name:          "Sapphire Chandelier Earrings",
			Price:         2199,
			OriginalPrice: price(2599),
			Description:   "Stunning chandelier earrings featuring cascading sapphires in a delicate gold setting. Perfect for special occasions and formal events.",
			Category:      "earrings",
			Brand:         "Royal Gems",
			Rating:        4.9,
			Reviews:       156,
			InStock:       true,
			Images:        []string{"https://images.pexels.com/photos/1454169/pexels-photo-1454169.jpeg"},
			Features:      []string{"Natural Blue Sapphires", "18k Yellow Gold", "Chandelier Design", "Secure Post Backs", "Gift Box Included"},
			Specifications: map[string]string{
				"Material":  "18k Yellow Gold",
				"Gemstones": "Natural Sapphires",
				"Length":    "2.5 inches",
				"Weight":    "6.8g",
			},
		},
		{
			ID:          "4",
			Name:        "Handwoven Silk Scarf",
			Price:       299,
			Description: "Luxurious handwoven silk scarf featuring traditional patterns and vibrant colors. Each piece is unique and crafted by skilled artisans.",
			Category:    "accessories",
			Brand:       "Silk Traditions",
			Rating:      4.7,
			Reviews:     203,
			InStock:     true,
			Images:      []string{"https://images.pexels.com/photos/7679720/pexels-photo-7679720.jpeg"},
			Features:    []string{"100% Pure Silk", "Hand-woven Traditional Patterns", "Natural Dyes", "Lightweight & Breathable", "Versatile Styling"},
			Specifications: map[string]string{
				"Material":   "100% Mulberry Silk",
				"Dimensions": "70\" x 28\"",
				"Weight":     "120g",
				"Care":       "Dry clean only",
				"Origin":     "Handcrafted in Kashmir",
			},
		},
		{
			ID:          "5",
			Name:        "Diamond Tennis Bracelet",
			Price:       4299,
			Description: "Exquisite tennis bracelet featuring brilliant-cut diamonds in a classic line setting.",
			Category:    "bracelets",
			Brand:       "Diamond Elite",
			Rating:      5.0,
			Reviews:     78,
			InStock:     true,
			Images:      []string{"https://images.pexels.com/photos/1454171/pexels-photo-1454171.jpeg"},
			Features:    []string{"Brilliant-cut Diamonds", "18k White Gold", "Secure Box Clasp", "Certified Stones"},
			Specifications: map[string]string{
				"Material": "18k White Gold",
				"Carat":    "3.0 ct total",
				"Length":   "7 inches",
			},
		},
		{
			ID:            "6",
			Name:          "Artisan Ceramic Vase",
			Price:         189,
			OriginalPrice: price(229),
			Description:   "Hand-thrown ceramic vase with a unique reactive glaze finish. No two pieces are alike.",
			Category:      "home-decor",
			Brand:         "Clay Masters",
			Rating:        4.6,
			Reviews:       142,
			InStock:       true,
			Images:        []string{"https://images.pexels.com/photos/1454173/pexels-photo-1454173.jpeg"},
			Features:      []string{"Hand-thrown", "Reactive Glaze", "Food Safe", "One of a Kind"},
			Specifications: map[string]string{
				"Material": "Stoneware Ceramic",
				"Height":   "12 inches",
				"Weight":   "1.4kg",
			},
		},
		{
			ID:            "7",
			Name:          "Pearl Drop Earrings",
			Price:         899,
			OriginalPrice: price(1099),
			Description:   "Classic pearl drop earrings featuring lustrous freshwater pearls on delicate gold hooks.",
			Category:      "earrings",
			Brand:         "Pearl Essence",
			Rating:        4.8,
			Reviews:       234,
			InStock:       true,
			Images:        []string{"https://images.pexels.com/photos/1454175/pexels-photo-1454175.jpeg"},
			Features:      []string{"Freshwater Pearls", "14k Gold Hooks", "Hypoallergenic", "Gift Box Included"},
			Specifications: map[string]string{
				"Material": "14k Gold",
				"Pearl":    "8mm Freshwater",
				"Length":   "1.5 inches",
			},
		},
		{
			ID:          "8",
			Name:        "Handcrafted Leather Wallet",
			Price:       159,
			Description: "Full-grain leather wallet hand-stitched by master craftsmen. Ages beautifully with use.",
			Category:    "accessories",
			Brand:       "Leather Craft Co.",
			Rating:      4.7,
			Reviews:     189,
			InStock:     true,
			Images:      []string{"https://images.pexels.com/photos/1454177/pexels-photo-1454177.jpeg"},
			Features:    []string{"Full-grain Leather", "Hand-stitched", "RFID Protection", "Lifetime Warranty"},
			Specifications: map[string]string{
				"Material":          "Full-grain Cowhide",
				"Dimensions":        "4.5\" x 3.5\" x 0.5\"",
				"Card Slots":        "8",
				"Bill Compartments": "2",
				"Color":             "Rich Brown",
			},
		},
	}

	// Placeholder products up to 38, matching the storefront grid size.
	for i := 0; i < 30; i++ {
		products = append(products, model.Product{
			ID:          fmt.Sprintf("%d", i+9),
			Name:        fmt.Sprintf("Placeholder Product %d", i+9),
			Price:       999 + float64(i)*10,
			Description: "This is a placeholder product description.",
			Category:    "accessories",
			Brand:       "Evershine",
			Rating:      4.5,
			Reviews:     10 + i,
			InStock:     true,
			Images:      []string{"https://via.placeholder.com/400x400?text=Product"},
			Features:    []string{"Feature 1", "Feature 2"},
			Specifications: map[string]string{
				"Material": "Mixed",
				"Weight":   "100g",
			},
		})
	}

	return products
}
