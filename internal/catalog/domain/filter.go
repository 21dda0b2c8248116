package domain

import (
	"sort"
	"strings"
)

// Sort fields
type SortField string

const (
	SortByName   SortField = "name"
	SortByPrice  SortField = "price"
	SortByRating SortField = "rating"
)

// Sort directions
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterOptions narrows the visible product list. Zero values mean "no
// constraint" except for the price range, whose bounds are inclusive.
type FilterOptions struct {
	Category    string   `json:"category"`
	MinPrice    float64  `json:"min_price"`
	MaxPrice    float64  `json:"max_price"`
	Brands      []string `json:"brands"`
	MinRating   float64  `json:"min_rating"`
	InStockOnly bool     `json:"in_stock_only"`
}

// DefaultFilter returns the filter that matches the whole catalog
func DefaultFilter() FilterOptions {
	return FilterOptions{MinPrice: 0, MaxPrice: 9999}
}

// Selection is a full query + filter + sort specification
type Selection struct {
	Query     string        `json:"query"`
	Filter    FilterOptions `json:"filter"`
	SortBy    SortField     `json:"sort_by"`
	SortOrder SortOrder     `json:"sort_order"`
}

// Matches reports whether the product satisfies the search query and every
// active filter predicate
func (f FilterOptions) Matches(p *Product, query string) bool {
	if query != "" {
		q := strings.ToLower(query)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}

	if f.Category != "" && p.Category != f.Category {
		return false
	}

	if p.Price < f.MinPrice || p.Price > f.MaxPrice {
		return false
	}

	if len(f.Brands) > 0 {
		accepted := false
		for _, b := range f.Brands {
			if b == p.Brand {
				accepted = true
				break
			}
		}
		if !accepted {
			return false
		}
	}

	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}

	if f.InStockOnly && !p.InStock {
		return false
	}

	return true
}

// Apply produces a new ordered slice containing exactly the products that
// satisfy the selection, sorted by its (field, direction) pair. Ties keep
// their input order. The input slice is never mutated.
func (s Selection) Apply(products []Product) []Product {
	filtered := make([]Product, 0, len(products))
	for i := range products {
		if s.Filter.Matches(&products[i], s.Query) {
			filtered = append(filtered, products[i])
		}
	}

	sortBy := s.SortBy
	if sortBy == "" {
		sortBy = SortByName
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		var less bool
		switch sortBy {
		case SortByPrice:
			less = filtered[i].Price < filtered[j].Price
		case SortByRating:
			less = filtered[i].Rating < filtered[j].Rating
		default:
			less = strings.Compare(filtered[i].Name, filtered[j].Name) < 0
		}
		if s.SortOrder == SortDesc {
			return !less && !equalOn(sortBy, &filtered[i], &filtered[j])
		}
		return less
	})

	return filtered
}

func equalOn(field SortField, a, b *Product) bool {
	switch field {
	case SortByPrice:
		return a.Price == b.Price
	case SortByRating:
		return a.Rating == b.Rating
	default:
		return a.Name == b.Name
	}
}
