package localstate

import (
	"context"
	"fmt"
	"sync"

	redisclient "github.com/agriconnect/agriconnect-backend/pkg/redis"
)

// Storage keys carried over from the mobile app. Each entry is independent;
// there is no versioning scheme, a format change invalidates the value wholesale.
const (
	CartStorageKey     = "@agriconnect_cart"
	LanguageStorageKey = "@agriconnect_language"
)

// Gateway persists opaque client-state blobs under independent storage keys.
// Load reports found=false on a missing key rather than an error so callers
// can fall back to their defaults.
type Gateway interface {
	Load(ctx context.Context, key string) (value []byte, found bool, err error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ScopedKey appends a scope (typically a user id) to a base storage key so
// multiple owners can share one backing store.
func ScopedKey(base, scope string) string {
	if scope == "" {
		return base
	}
	return base + ":" + scope
}

// RedisGateway stores state blobs in Redis without expiry.
type RedisGateway struct {
	client *redisclient.Client
}

// NewRedisGateway wraps the shared Redis client.
func NewRedisGateway(client *redisclient.Client) (*RedisGateway, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &RedisGateway{client: client}, nil
}

func (g *RedisGateway) Load(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := g.client.Get(ctx, g.client.StateKey(key))
	if err != nil {
		if redisclient.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load state %q: %w", key, err)
	}
	return []byte(raw), true, nil
}

func (g *RedisGateway) Save(ctx context.Context, key string, value []byte) error {
	if err := g.client.Set(ctx, g.client.StateKey(key), string(value), 0); err != nil {
		return fmt.Errorf("save state %q: %w", key, err)
	}
	return nil
}

func (g *RedisGateway) Delete(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, g.client.StateKey(key)); err != nil {
		return fmt.Errorf("delete state %q: %w", key, err)
	}
	return nil
}

// MemoryGateway is an in-process Gateway used by tests and single-node setups.
type MemoryGateway struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{entries: map[string][]byte{}}
}

func (g *MemoryGateway) Load(_ context.Context, key string) ([]byte, bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	value, ok := g.entries[key]
	if !ok {
		return nil, false, nil
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, true, nil
}

func (g *MemoryGateway) Save(_ context.Context, key string, value []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	copied := make([]byte, len(value))
	copy(copied, value)
	g.entries[key] = copied
	return nil
}

func (g *MemoryGateway) Delete(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.entries, key)
	return nil
}
