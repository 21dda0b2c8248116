package domain

import (
	catalog "github.com/tair/duka-storefront/internal/catalog/domain"
)

// CartItem is a cart line: a snapshot of the product at the time it was
// added, plus a quantity. The snapshot is not refreshed when the catalog
// entry changes.
type CartItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart holds at most one line per product id, in insertion order
type Cart struct {
	items []CartItem
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// Restore builds a cart from previously persisted lines, keeping their order
func Restore(items []CartItem) *Cart {
	c := &Cart{items: make([]CartItem, len(items))}
	copy(c.items, items)
	return c
}

// Add puts the product into the cart. If a line for the same product id
// already exists its quantity grows by qty; otherwise a new line is appended.
// Quantities below one are treated as one.
func (c *Cart) Add(product catalog.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity += qty
			return
		}
	}
	c.items = append(c.items, CartItem{Product: product, Quantity: qty})
}

// Remove drops the line for the product id. Removing an absent product is
// a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity of an existing line. A quantity of zero
// or less removes the line. Setting a quantity for an absent product does
// nothing.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = qty
			return
		}
	}
}

// Clear removes every line
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the cart lines in insertion order
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct lines
func (c *Cart) Len() int {
	return len(c.items)
}

// TotalItems is the sum of quantities across all lines
func (c *Cart) TotalItems() int {
	total := 0
	for i := range c.items {
		total += c.items[i].Quantity
	}
	return total
}

// TotalPrice is the sum of price * quantity across all lines
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for i := range c.items {
		total += c.items[i].Product.Price * float64(c.items[i].Quantity)
	}
	return total
}
