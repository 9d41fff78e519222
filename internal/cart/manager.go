package cart

import (
	"context"
	"sync"

	"go.uber.org/multierr"

	"github.com/agriconnect/agriconnect-backend/internal/localstate"
	"github.com/agriconnect/agriconnect-backend/pkg/logger"
)

type cartEntry struct {
	store   *Store
	hydrate sync.Once
}

// Manager hands out one Store per owner, hydrating each on first use. The
// mobile app ran a single cart; server side every authenticated user gets
// their own, persisted under the cart storage key scoped by user id.
type Manager struct {
	mu      sync.Mutex
	stores  map[string]*cartEntry
	gateway localstate.Gateway
	logg    *logger.Logger
}

func NewManager(gateway localstate.Gateway, logg *logger.Logger) *Manager {
	return &Manager{
		stores:  map[string]*cartEntry{},
		gateway: gateway,
		logg:    logg,
	}
}

// StoreFor returns the owner's cart store, creating and hydrating it on the
// first call. Hydration completes before any caller gets the store, so a
// concurrent first request cannot mutate state that the load would then
// overwrite.
func (m *Manager) StoreFor(ctx context.Context, ownerID string) *Store {
	m.mu.Lock()
	entry, ok := m.stores[ownerID]
	if !ok {
		key := localstate.ScopedKey(localstate.CartStorageKey, ownerID)
		entry = &cartEntry{store: NewStore(m.gateway, key, m.logg)}
		m.stores[ownerID] = entry
	}
	m.mu.Unlock()

	entry.hydrate.Do(func() {
		entry.store.Hydrate(ctx)
	})
	return entry.store
}

// FlushAll writes every live cart synchronously. Called on shutdown so
// in-flight async saves cannot be the only copy.
func (m *Manager) FlushAll(ctx context.Context) error {
	m.mu.Lock()
	stores := make([]*Store, 0, len(m.stores))
	for _, entry := range m.stores {
		stores = append(stores, entry.store)
	}
	m.mu.Unlock()

	var err error
	for _, store := range stores {
		err = multierr.Append(err, store.Flush(ctx))
	}
	return err
}
