package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []Product {
	return []Product{
		{ID: "1", Name: "Wireless Headphones", Brand: "AudioTech", Description: "Noise cancelling", Category: "electronics", Price: 299, Rating: 4.8, InStock: true},
		{ID: "2", Name: "Fitness Watch", Brand: "FitTech", Description: "Heart rate and GPS", Category: "electronics", Price: 249, Rating: 4.6, InStock: true},
		{ID: "3", Name: "Leather Jacket", Brand: "UrbanStyle", Description: "Genuine leather", Category: "clothing", Price: 189, Rating: 4.4, InStock: false},
		{ID: "4", Name: "Bluetooth Speaker", Brand: "AudioTech", Description: "Portable speaker", Category: "electronics", Price: 89, Rating: 4.2, InStock: true},
		{ID: "5", Name: "Cookbook", Brand: "PageTurner", Description: "Recipes for every day", Category: "books", Price: 25, Rating: 4.9, InStock: true},
		{ID: "6", Name: "Yoga Mat", Brand: "FitTech", Description: "Non slip surface", Category: "sports", Price: 35, Rating: 3.9, InStock: true},
	}
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestSelection_CategoryFilter(t *testing.T) {
	sel := Selection{Filter: FilterOptions{Category: "electronics", MaxPrice: 9999}, SortBy: SortByName, SortOrder: SortAsc}

	got := sel.Apply(sampleCatalog())

	require.Len(t, got, 3)
	assert.Equal(t, []string{"4", "2", "1"}, ids(got))
	for _, p := range got {
		assert.Equal(t, "electronics", p.Category)
	}
}

func TestSelection_AllPredicates(t *testing.T) {
	catalog := sampleCatalog()
	sel := Selection{
		Query: "tech",
		Filter: FilterOptions{
			MinPrice:    50,
			MaxPrice:    300,
			Brands:      []string{"AudioTech", "FitTech"},
			MinRating:   4.0,
			InStockOnly: true,
		},
		SortBy: SortByPrice,
	}

	got := sel.Apply(catalog)

	// Every returned product satisfies all active predicates
	for i := range got {
		assert.True(t, sel.Filter.Matches(&got[i], sel.Query), "product %s should match", got[i].ID)
	}

	// Every excluded product violates at least one predicate
	included := make(map[string]bool)
	for _, p := range got {
		included[p.ID] = true
	}
	for i := range catalog {
		if !included[catalog[i].ID] {
			assert.False(t, sel.Filter.Matches(&catalog[i], sel.Query), "product %s should not match", catalog[i].ID)
		}
	}
}

func TestSelection_EmptyQueryMatchesAll(t *testing.T) {
	sel := Selection{Filter: DefaultFilter()}
	got := sel.Apply(sampleCatalog())
	assert.Len(t, got, 6)
}

func TestSelection_SearchQuery(t *testing.T) {
	sel := Selection{Query: "LEATHER", Filter: DefaultFilter()}
	got := sel.Apply(sampleCatalog())
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	// Matches brand and description too
	sel.Query = "speaker"
	got = sel.Apply(sampleCatalog())
	require.Len(t, got, 1)
	assert.Equal(t, "4", got[0].ID)
}

func TestSelection_PriceRangeInclusive(t *testing.T) {
	sel := Selection{Filter: FilterOptions{MinPrice: 25, MaxPrice: 89}}
	got := sel.Apply(sampleCatalog())
	assert.ElementsMatch(t, []string{"4", "5", "6"}, ids(got))
}

func TestSelection_SortIsStableAndReversible(t *testing.T) {
	catalog := sampleCatalog() // ratings are all distinct

	asc := Selection{Filter: DefaultFilter(), SortBy: SortByRating, SortOrder: SortAsc}
	desc := Selection{Filter: DefaultFilter(), SortBy: SortByRating, SortOrder: SortDesc}

	first := asc.Apply(catalog)
	second := asc.Apply(catalog)
	assert.Equal(t, ids(first), ids(second), "same sort applied twice yields the same order")

	reversed := desc.Apply(catalog)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	assert.Equal(t, ids(first), ids(reversed), "reversing direction reverses the output exactly")
}

func TestSelection_TiesKeepInputOrder(t *testing.T) {
	catalog := sampleCatalog()
	catalog[1].Price = 299 // ties with product "1"

	for _, order := range []SortOrder{SortAsc, SortDesc} {
		sel := Selection{Filter: DefaultFilter(), SortBy: SortByPrice, SortOrder: order}
		got := sel.Apply(catalog)

		var tied []string
		for _, p := range got {
			if p.Price == 299 {
				tied = append(tied, p.ID)
			}
		}
		assert.Equal(t, []string{"1", "2"}, tied, "tied products keep input order (%s)", order)
	}
}

func TestSelection_SortByPriceDesc(t *testing.T) {
	sel := Selection{Filter: DefaultFilter(), SortBy: SortByPrice, SortOrder: SortDesc}
	got := sel.Apply(sampleCatalog())
	assert.Equal(t, []string{"1", "2", "3", "4", "6", "5"}, ids(got))
}

func TestResolveIcon(t *testing.T) {
	assert.Equal(t, IconSmartphone, ResolveIcon("Smartphone"))
	assert.Equal(t, IconTag, ResolveIcon("NoSuchIcon"))
	assert.NotEmpty(t, ResolveIcon("NoSuchIcon").Glyph())
}
