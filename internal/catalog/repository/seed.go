package repository

import (
	"fmt"
	"time"

	"github.com/tair/duka-storefront/internal/catalog/domain"
)

func ptr(v float64) *float64 { return &v }

// DefaultCategories is the bundled category list used to seed an empty store
// and as the last-resort read fallback
func DefaultCategories() []domain.Category {
	return []domain.Category{
		{ID: "electronics", Name: "Electronics", Icon: "Smartphone", Count: 156},
		{ID: "clothing", Name: "Fashion", Icon: "Shirt", Count: 234},
		{ID: "home", Name: "Home & Garden", Icon: "Home", Count: 89},
		{ID: "books", Name: "Books", Icon: "Book", Count: 145},
		{ID: "sports", Name: "Sports", Icon: "Dumbbell", Count: 67},
		{ID: "beauty", Name: "Beauty", Icon: "Sparkles", Count: 123},
	}
}

// DefaultProducts is the bundled product catalog
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            "1",
			Name:          "Premium Wireless Headphones",
			Brand:         "AudioTech",
			Description:   "Experience crystal-clear audio with our premium wireless headphones featuring active noise cancellation and 30-hour battery life.",
			Price:         299,
			OriginalPrice: ptr(399),
			Discount: &domain.Discount{
				Percentage: 25,
				EndDate:    time.Date(2025, 2, 15, 23, 59, 59, 0, time.UTC),
				IsActive:   true,
			},
			Image:    "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg",
			Images:   []string{"https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg", "https://images.pexels.com/photos/1649771/pexels-photo-1649771.jpeg"},
			Category: "electronics",
			Rating:   4.8,
			Reviews:  1247,
			InStock:  true,
			Features: []string{"Active Noise Cancellation", "30hr Battery", "Wireless Charging", "Hi-Res Audio"},
		},
		{
			ID:          "2",
			Name:        "Smart Fitness Watch",
			Brand:       "FitTech",
			Description: "Track your fitness goals with this advanced smartwatch featuring heart rate monitoring, GPS, and 7-day battery life.",
			Price:       249,
			Image:       "https://images.pexels.com/photos/1649771/pexels-photo-1649771.jpeg",
			Images:      []string{"https://images.pexels.com/photos/1649771/pexels-photo-1649771.jpeg"},
			Category:    "electronics",
			Rating:      4.6,
			Reviews:     892,
			InStock:     true,
			Features:    []string{"Heart Rate Monitor", "GPS Tracking", "7-day Battery", "Water Resistant"},
		},
		{
			ID:          "3",
			Name:        "Portable Bluetooth Speaker",
			Brand:       "AudioTech",
			Description: "Compact speaker with surprisingly deep bass, 12-hour playtime and IPX7 waterproofing.",
			Price:       89,
			Image:       "https://images.pexels.com/photos/1279107/pexels-photo-1279107.jpeg",
			Images:      []string{"https://images.pexels.com/photos/1279107/pexels-photo-1279107.jpeg"},
			Category:    "electronics",
			Rating:      4.2,
			Reviews:     431,
			InStock:     true,
			Features:    []string{"IPX7 Waterproof", "12hr Playtime", "USB-C Charging"},
		},
		{
			ID:          "4",
			Name:        "Classic Leather Jacket",
			Brand:       "UrbanStyle",
			Description: "Timeless genuine leather jacket with a tailored fit and soft inner lining.",
			Price:       189,
			Image:       "https://images.pexels.com/photos/1124468/pexels-photo-1124468.jpeg",
			Images:      []string{"https://images.pexels.com/photos/1124468/pexels-photo-1124468.jpeg"},
			Category:    "clothing",
			Rating:      4.4,
			Reviews:     203,
			InStock:     false,
			Features:    []string{"Genuine Leather", "Tailored Fit"},
		},
		{
			ID:          "5",
			Name:        "Everyday Cooking",
			Brand:       "PageTurner",
			Description: "Over 200 approachable recipes for weeknight dinners, with seasonal menus and pantry tips.",
			Price:       25,
			Image:       "https://images.pexels.com/photos/1765033/pexels-photo-1765033.jpeg",
			Images:      []string{"https://images.pexels.com/photos/1765033/pexels-photo-1765033.jpeg"},
			Category:    "books",
			Rating:      4.9,
			Reviews:     578,
			InStock:     true,
			Features:    []string{"Hardcover", "200+ Recipes"},
		},
		{
			ID:          "6",
			Name:        "Pro Yoga Mat",
			Brand:       "FitTech",
			Description: "Extra-thick non-slip yoga mat with alignment markings and a carry strap.",
			Price:       35,
			Image:       "https://images.pexels.com/photos/4056723/pexels-photo-4056723.jpeg",
			Images:      []string{"https://images.pexels.com/photos/4056723/pexels-photo-4056723.jpeg"},
			Category:    "sports",
			Rating:      3.9,
			Reviews:     164,
			InStock:     true,
			Features:    []string{"Non-slip", "6mm Thick", "Carry Strap"},
		},
	}
}

// Seed populates an empty catalog store with the bundled defaults. A store
// that already holds products is left untouched.
func Seed(repo domain.CatalogRepository) error {
	count, err := repo.CountProducts()
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range DefaultProducts() {
		product := p
		if err := repo.CreateProduct(&product); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
	}
	for _, c := range DefaultCategories() {
		category := c
		if err := repo.CreateCategory(&category); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.ID, err)
		}
	}
	return nil
}
