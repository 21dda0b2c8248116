package repository

import (
	"context"
	"time"

	"github.com/tair/duka-storefront/internal/cart/domain"
	"github.com/tair/duka-storefront/pkg/localstore"
)

// LocalStore keeps one cart document per anonymous device in the per-device
// file store
type LocalStore struct {
	store *localstore.Store
}

// NewLocalStore creates a file-backed cart store
func NewLocalStore(store *localstore.Store) *LocalStore {
	return &LocalStore{store: store}
}

// Fetch loads the cart document for the owner
func (s *LocalStore) Fetch(ctx context.Context, owner string) ([]domain.CartItem, bool, error) {
	var doc cartDocument
	found, err := s.store.Get(cartKey(owner), &doc)
	if err != nil || !found {
		return nil, false, err
	}
	return doc.Items, true, nil
}

// Save replaces the cart document for the owner
func (s *LocalStore) Save(ctx context.Context, owner string, items []domain.CartItem) error {
	doc := cartDocument{Items: items, UpdatedAt: time.Now()}
	if doc.Items == nil {
		doc.Items = []domain.CartItem{}
	}
	return s.store.Set(cartKey(owner), doc)
}

// Delete removes the cart document for the owner
func (s *LocalStore) Delete(ctx context.Context, owner string) error {
	return s.store.Delete(cartKey(owner))
}
