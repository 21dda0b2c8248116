package repository

import (
	"context"
	"time"

	catalog "github.com/tair/duka-storefront/internal/catalog/domain"
	"github.com/tair/duka-storefront/pkg/localstore"
)

// LocalStore keeps one wishlist document per anonymous device in the
// per-device file store
type LocalStore struct {
	store *localstore.Store
}

// NewLocalStore creates a file-backed wishlist store
func NewLocalStore(store *localstore.Store) *LocalStore {
	return &LocalStore{store: store}
}

// Fetch loads the wishlist document for the owner
func (s *LocalStore) Fetch(ctx context.Context, owner string) ([]catalog.Product, bool, error) {
	var doc wishlistDocument
	found, err := s.store.Get(wishlistKey(owner), &doc)
	if err != nil || !found {
		return nil, false, err
	}
	return doc.Products, true, nil
}

// Save replaces the wishlist document for the owner
func (s *LocalStore) Save(ctx context.Context, owner string, products []catalog.Product) error {
	doc := wishlistDocument{Products: products, UpdatedAt: time.Now()}
	if doc.Products == nil {
		doc.Products = []catalog.Product{}
	}
	return s.store.Set(wishlistKey(owner), doc)
}

// Delete removes the wishlist document for the owner
func (s *LocalStore) Delete(ctx context.Context, owner string) error {
	return s.store.Delete(wishlistKey(owner))
}
