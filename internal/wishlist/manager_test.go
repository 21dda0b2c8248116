package wishlist

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/tair/duka-storefront/internal/catalog/domain"
	"github.com/tair/duka-storefront/internal/session"
	"github.com/tair/duka-storefront/pkg/logger"
)

func init() {
	logger.Init("wishlist-test", false)
}

// fakeStore is an in-memory wishlist store that counts writes
type fakeStore struct {
	mu        sync.Mutex
	docs      map[string][]catalog.Product
	deleteErr error
	saveGate  chan struct{} // when set, Save blocks until the channel closes
	saves     int
	deletes   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string][]catalog.Product)}
}

func (s *fakeStore) Fetch(ctx context.Context, owner string) ([]catalog.Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products, found := s.docs[owner]
	return products, found, nil
}

func (s *fakeStore) Save(ctx context.Context, owner string, products []catalog.Product) error {
	s.mu.Lock()
	gate := s.saveGate
	s.mu.Unlock()
	if gate != nil {
		<-gate
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	s.docs[owner] = products
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.docs, owner)
	return nil
}

func (s *fakeStore) deleteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deletes
}

func (s *fakeStore) setSaveGate(gate chan struct{}) {
	s.mu.Lock()
	s.saveGate = gate
	s.mu.Unlock()
}

func (s *fakeStore) saved(owner string) ([]catalog.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products, found := s.docs[owner]
	return products, found
}

func (s *fakeStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func headphones() catalog.Product {
	return catalog.Product{ID: "1", Name: "Headphones", Price: 100}
}

func TestManager_MutationBeforeLoadIsRejected(t *testing.T) {
	m := NewManager(session.Device("abc"), newFakeStore(), newFakeStore())

	err := m.Add(context.Background(), headphones())
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestManager_AddIsIdempotentAndPersists(t *testing.T) {
	ctx := context.Background()
	local := newFakeStore()
	m := NewManager(session.Device("abc"), newFakeStore(), local)
	require.NoError(t, m.Load(ctx))

	require.NoError(t, m.Add(ctx, headphones()))
	require.NoError(t, m.Add(ctx, headphones()))

	assert.Equal(t, 1, m.Len())
	assert.True(t, m.Contains("1"))

	assert.Eventually(t, func() bool {
		products, found := local.saved("device:abc")
		return found && len(products) == 1 && products[0].ID == "1"
	}, time.Second, 10*time.Millisecond)
}

func TestManager_LoadNeverWrites(t *testing.T) {
	ctx := context.Background()
	local := newFakeStore()
	local.docs["device:abc"] = []catalog.Product{headphones()}

	m := NewManager(session.Device("abc"), newFakeStore(), local)
	require.NoError(t, m.Load(ctx))

	assert.True(t, m.Contains("1"))
	assert.Equal(t, 0, local.saveCount())
}

func TestManager_EmptyRemoteReplacesLocal(t *testing.T) {
	ctx := context.Background()
	sess := session.User(7)

	remote := newFakeStore()
	remote.docs[sess.Key] = []catalog.Product{} // present but empty

	local := newFakeStore()
	local.docs[sess.Key] = []catalog.Product{headphones()}

	m := NewManager(sess, remote, local)
	require.NoError(t, m.Load(ctx))

	assert.Equal(t, StateReady, m.State())
	assert.Equal(t, 0, m.Len())
}

func TestManager_MissingRemoteFallsBackToLocal(t *testing.T) {
	ctx := context.Background()
	sess := session.User(7)

	local := newFakeStore()
	local.docs[sess.Key] = []catalog.Product{headphones()}

	m := NewManager(sess, newFakeStore(), local)
	require.NoError(t, m.Load(ctx))

	assert.True(t, m.Contains("1"))
}

func TestManager_ClearDeletesStoredDocument(t *testing.T) {
	ctx := context.Background()
	sess := session.User(7)

	remote := newFakeStore()
	remote.docs[sess.Key] = []catalog.Product{headphones()}

	m := NewManager(sess, remote, newFakeStore())
	require.NoError(t, m.Load(ctx))
	require.NoError(t, m.Clear(ctx))

	assert.Equal(t, 0, m.Len())
	assert.Eventually(t, func() bool {
		_, found := remote.saved(sess.Key)
		return !found
	}, time.Second, 10*time.Millisecond)
}

func TestManager_ClearSwallowsDeleteFailure(t *testing.T) {
	ctx := context.Background()
	sess := session.User(7)

	remote := newFakeStore()
	remote.docs[sess.Key] = []catalog.Product{headphones()}
	remote.deleteErr = errors.New("connection refused")

	m := NewManager(sess, remote, newFakeStore())
	require.NoError(t, m.Load(ctx))

	// The in-memory wishlist empties even when the stored document cannot
	// be removed
	require.NoError(t, m.Clear(ctx))
	assert.Equal(t, 0, m.Len())
	assert.Eventually(t, func() bool {
		return remote.deleteCount() > 0
	}, time.Second, 10*time.Millisecond)
}

func TestManager_ClearOutlivesInFlightSave(t *testing.T) {
	ctx := context.Background()
	local := newFakeStore()
	m := NewManager(session.Device("abc"), newFakeStore(), local)
	require.NoError(t, m.Load(ctx))

	gate := make(chan struct{})
	local.setSaveGate(gate)

	// The add's write stalls mid-flight; the clear must still end with the
	// stored document gone once the stale save lands
	require.NoError(t, m.Add(ctx, headphones()))
	require.NoError(t, m.Clear(ctx))
	close(gate)

	assert.Eventually(t, func() bool {
		_, found := local.saved("device:abc")
		return !found && local.deleteCount() == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, m.Len())
}

func TestManager_RemovePersists(t *testing.T) {
	ctx := context.Background()
	local := newFakeStore()
	m := NewManager(session.Device("abc"), newFakeStore(), local)
	require.NoError(t, m.Load(ctx))

	require.NoError(t, m.Add(ctx, headphones()))
	require.NoError(t, m.Remove(ctx, "1"))

	assert.False(t, m.Contains("1"))
	assert.Eventually(t, func() bool {
		products, found := local.saved("device:abc")
		return found && len(products) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestRegistry_ReturnsSameManagerPerSession(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(newFakeStore(), newFakeStore())

	first, err := registry.Manager(ctx, session.Device("abc"))
	require.NoError(t, err)

	second, err := registry.Manager(ctx, session.Device("abc"))
	require.NoError(t, err)
	assert.Same(t, first, second)

	other, err := registry.Manager(ctx, session.User(7))
	require.NoError(t, err)
	assert.NotSame(t, first, other)
}
