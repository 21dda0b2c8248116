package domain

import "context"

// Store persists cart lines for an owner. Fetch reports found=false when no
// document exists for the owner; a present-but-empty document is found=true
// with zero items, which is a meaningful state (the owner emptied the cart).
type Store interface {
	Fetch(ctx context.Context, owner string) ([]CartItem, bool, error)
	Save(ctx context.Context, owner string, items []CartItem) error
	Delete(ctx context.Context, owner string) error
}
