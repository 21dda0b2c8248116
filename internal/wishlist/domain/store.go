package domain

import (
	"context"

	catalog "github.com/tair/duka-storefront/internal/catalog/domain"
)

// Store persists wishlist products for an owner. Fetch reports found=false
// when no document exists; a present-but-empty document is found=true with
// zero products.
type Store interface {
	Fetch(ctx context.Context, owner string) ([]catalog.Product, bool, error)
	Save(ctx context.Context, owner string, products []catalog.Product) error
	Delete(ctx context.Context, owner string) error
}
