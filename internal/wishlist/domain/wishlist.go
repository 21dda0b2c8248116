package domain

import (
	catalog "github.com/tair/duka-storefront/internal/catalog/domain"
)

// Wishlist holds product snapshots, at most one per product id, in the
// order they were added
type Wishlist struct {
	products []catalog.Product
}

// NewWishlist creates an empty wishlist
func NewWishlist() *Wishlist {
	return &Wishlist{}
}

// Restore builds a wishlist from previously persisted products, keeping
// their order
func Restore(products []catalog.Product) *Wishlist {
	w := &Wishlist{products: make([]catalog.Product, len(products))}
	copy(w.products, products)
	return w
}

// Add puts the product on the wishlist. Adding a product that is already
// present is a no-op; the stored snapshot is not refreshed.
func (w *Wishlist) Add(product catalog.Product) {
	if w.Contains(product.ID) {
		return
	}
	w.products = append(w.products, product)
}

// Remove drops the product. Removing an absent product is a no-op.
func (w *Wishlist) Remove(productID string) {
	for i := range w.products {
		if w.products[i].ID == productID {
			w.products = append(w.products[:i], w.products[i+1:]...)
			return
		}
	}
}

// Contains reports whether the product is on the wishlist
func (w *Wishlist) Contains(productID string) bool {
	for i := range w.products {
		if w.products[i].ID == productID {
			return true
		}
	}
	return false
}

// Clear removes every product
func (w *Wishlist) Clear() {
	w.products = nil
}

// Products returns a copy of the wishlist in insertion order
func (w *Wishlist) Products() []catalog.Product {
	out := make([]catalog.Product, len(w.products))
	copy(out, w.products)
	return out
}

// Len returns the number of products
func (w *Wishlist) Len() int {
	return len(w.products)
}
