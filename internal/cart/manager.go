package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tair/duka-storefront/internal/cart/domain"
	catalog "github.com/tair/duka-storefront/internal/catalog/domain"
	"github.com/tair/duka-storefront/internal/session"
	"github.com/tair/duka-storefront/pkg/logger"
)

// ErrNotReady is returned for mutations attempted before the cart has been
// loaded from its store
var ErrNotReady = errors.New("cart is not ready")

// State is the cart lifecycle state
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

// Manager owns one cart and keeps it in sync with its backing store.
// Signed-in sessions persist to the remote store, anonymous sessions to the
// per-device store. Writes are whole-document, last writer wins.
type Manager struct {
	mu      sync.Mutex
	state   State
	syncing bool
	dirty   bool
	deleted bool
	cart    *domain.Cart
	session session.Session
	remote  domain.Store
	local   domain.Store
}

// NewManager creates an unloaded manager for the session
func NewManager(sess session.Session, remote, local domain.Store) *Manager {
	return &Manager{
		state:   StateUninitialized,
		cart:    domain.NewCart(),
		session: sess,
		remote:  remote,
		local:   local,
	}
}

func (m *Manager) activeStore() domain.Store {
	if m.session.Authenticated {
		return m.remote
	}
	return m.local
}

// Load populates the cart from its store. For signed-in sessions a present
// remote document replaces the in-memory cart even when it is empty; a
// missing or unreadable remote document falls back to the per-device store.
// Load never writes, so a failed read cannot clobber the stored cart.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	if m.state != StateUninitialized {
		m.mu.Unlock()
		return nil
	}
	m.state = StateLoading
	m.mu.Unlock()

	items, found, err := m.activeStore().Fetch(ctx, m.session.Key)
	if m.session.Authenticated && (err != nil || !found) {
		if err != nil {
			logger.Logger.Warn().
				Err(err).
				Str("owner", m.session.Key).
				Msg("Remote cart unreadable, falling back to device store")
		}
		items, found, err = m.local.Fetch(ctx, m.session.Key)
	}
	if err != nil {
		m.mu.Lock()
		m.state = StateUninitialized
		m.mu.Unlock()
		return fmt.Errorf("failed to load cart: %w", err)
	}

	m.mu.Lock()
	if found {
		m.cart = domain.Restore(items)
	}
	m.state = StateReady
	m.mu.Unlock()
	return nil
}

// Add puts a product into the cart and schedules a write-back
func (m *Manager) Add(ctx context.Context, product catalog.Product, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateReady {
		return ErrNotReady
	}
	m.cart.Add(product, qty)
	m.persistLocked()
	return nil
}

// Remove drops a product from the cart and schedules a write-back
func (m *Manager) Remove(ctx context.Context, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateReady {
		return ErrNotReady
	}
	m.cart.Remove(productID)
	m.persistLocked()
	return nil
}

// SetQuantity replaces a line quantity and schedules a write-back
func (m *Manager) SetQuantity(ctx context.Context, productID string, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateReady {
		return ErrNotReady
	}
	m.cart.SetQuantity(productID, qty)
	m.persistLocked()
	return nil
}

// Clear empties the cart and schedules deletion of its stored document.
// Delete failures are logged and swallowed; the in-memory cart stays
// authoritative.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateReady {
		return ErrNotReady
	}
	m.cart.Clear()
	m.deleteLocked()
	return nil
}

// persistLocked schedules an asynchronous whole-cart write. At most one
// write is in flight; a mutation landing mid-flight marks the cart dirty and
// the full state is written again once the flight completes. Callers must
// hold m.mu.
func (m *Manager) persistLocked() {
	m.deleted = false
	if m.syncing {
		m.dirty = true
		return
	}
	m.syncing = true

	items := m.cart.Items()
	store := m.activeStore()
	owner := m.session.Key

	go func() {
		// Detached from the request context: the write should survive the
		// response being sent.
		if err := store.Save(context.Background(), owner, items); err != nil {
			logger.Logger.Error().
				Err(err).
				Str("owner", owner).
				Msg("Failed to persist cart")
		}
		m.settleFlight()
	}()
}

// deleteLocked schedules asynchronous deletion of the stored document. When
// a save is in flight the delete becomes the terminal write of that cycle,
// so the stale save cannot resurrect the cleared cart. Callers must hold
// m.mu.
func (m *Manager) deleteLocked() {
	if m.syncing {
		m.dirty = true
		m.deleted = true
		return
	}
	m.syncing = true

	store := m.activeStore()
	owner := m.session.Key

	go func() {
		if err := store.Delete(context.Background(), owner); err != nil {
			logger.Logger.Error().
				Err(err).
				Str("owner", owner).
				Msg("Failed to delete stored cart")
		}
		m.settleFlight()
	}()
}

// settleFlight closes out an asynchronous write and replays the latest
// pending state when mutations landed mid-flight
func (m *Manager) settleFlight() {
	m.mu.Lock()
	m.syncing = false
	if m.dirty {
		m.dirty = false
		if m.deleted {
			m.deleted = false
			m.deleteLocked()
		} else {
			m.persistLocked()
		}
	}
	m.mu.Unlock()
}

// State reports the lifecycle state
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Items returns the current cart lines
func (m *Manager) Items() []domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.Items()
}

// TotalItems returns the summed quantity
func (m *Manager) TotalItems() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.TotalItems()
}

// TotalPrice returns the summed line prices
func (m *Manager) TotalPrice() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.TotalPrice()
}
