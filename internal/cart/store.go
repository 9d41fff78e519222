package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/agriconnect/agriconnect-backend/internal/localstate"
	"github.com/agriconnect/agriconnect-backend/pkg/logger"
)

// DeliveryFee is the flat per-checkout fee in taka, independent of cart
// contents.
const DeliveryFee = 55

// Product is the catalog view the cart consumes when a line is first added.
type Product struct {
	ID       string
	Name     string
	Price    int
	Image    string
	Farmer   string
	Location string
	Category string
	Unit     string
}

// Line is one distinct product's aggregated presence in the cart. Display
// fields are snapshots taken at first add and never re-synced to the live
// catalog.
type Line struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Image    string `json:"image"`
	Farmer   string `json:"farmer"`
	Location string `json:"location"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// newLineFromProduct snapshots the product's display fields into a fresh line.
func newLineFromProduct(p Product) Line {
	location := p.Location
	if location == "" {
		location = "Local Farm"
	}
	unit := p.Unit
	if unit == "" {
		unit = "per item"
	}
	return Line{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Farmer:   p.Farmer,
		Location: location,
		Category: p.Category,
		Quantity: 1,
		Unit:     unit,
	}
}

// Store owns the authoritative cart state for one owner. Mutations update
// memory synchronously and persist asynchronously; the UI-facing caller never
// waits on storage. Lines keep insertion order, quantity changes never
// reorder them, and a line with quantity <= 0 is removed rather than kept.
type Store struct {
	mu      sync.Mutex
	lines   []Line
	gateway localstate.Gateway
	key     string
	logg    *logger.Logger

	// saveMu serializes gateway writes so an older in-flight save can
	// never land after a newer one.
	saveMu sync.Mutex

	subMu   sync.Mutex
	subs    map[int]func([]Line)
	nextSub int
}

// NewStore builds an empty cart store persisting under the provided storage
// key. Call Hydrate to load any previously saved state.
func NewStore(gateway localstate.Gateway, key string, logg *logger.Logger) *Store {
	if key == "" {
		key = localstate.CartStorageKey
	}
	return &Store{
		gateway: gateway,
		key:     key,
		logg:    logg,
		subs:    map[int]func([]Line){},
	}
}

// Hydrate loads the saved cart. A load failure is logged and leaves the empty
// default in place; it never propagates.
func (s *Store) Hydrate(ctx context.Context) {
	if s.gateway == nil {
		return
	}
	raw, found, err := s.gateway.Load(ctx, s.key)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "cart: loading saved cart", err)
		}
		return
	}
	if !found {
		return
	}
	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "cart: decoding saved cart", err)
		}
		return
	}
	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()
	s.notify()
}

// AddToCart merges the product into the cart: an existing line's quantity is
// incremented by one, otherwise a new line is appended with quantity one.
func (s *Store) AddToCart(ctx context.Context, p Product) {
	s.mu.Lock()
	merged := false
	for i := range s.lines {
		if s.lines[i].ID == p.ID {
			s.lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, newLineFromProduct(p))
	}
	s.mu.Unlock()

	s.afterMutation(ctx)
}

// RemoveFromCart deletes the line with the matching id. Removing an absent id
// is a no-op, so repeated removal is idempotent.
func (s *Store) RemoveFromCart(ctx context.Context, id string) {
	s.mu.Lock()
	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.ID != id {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	s.mu.Unlock()

	s.afterMutation(ctx)
}

// UpdateQuantity sets the line's quantity to the exact value. A quantity of
// zero or below behaves like RemoveFromCart. Unknown ids are ignored.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(ctx, id)
		return
	}

	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()

	s.afterMutation(ctx)
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()

	s.afterMutation(ctx)
}

// Lines returns the cart lines in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// ItemCount sums the quantities across all lines, not the line count.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// Subtotal sums price times quantity across all lines.
func (s *Store) Subtotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Price * line.Quantity
	}
	return total
}

// Total is the subtotal plus the flat delivery fee.
func (s *Store) Total() int {
	return s.Subtotal() + DeliveryFee
}

// Subscribe registers fn to run after every mutation with the fresh line
// snapshot. The returned cancel func unregisters it.
func (s *Store) Subscribe(fn func([]Line)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// Flush writes the current state synchronously. Used on shutdown and by
// callers that need the save to have landed. Writes are serialized and each
// one re-reads the live state right before hitting the gateway, so the last
// write always carries the newest snapshot even when saves overlap.
func (s *Store) Flush(ctx context.Context) error {
	if s.gateway == nil {
		return nil
	}
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	s.mu.Lock()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return s.gateway.Save(ctx, s.key, raw)
}

func (s *Store) afterMutation(ctx context.Context) {
	s.notify()
	if s.gateway == nil {
		return
	}
	// Fire-and-continue: the caller observes the in-memory change
	// immediately, the durable save happens behind it.
	saveCtx := context.WithoutCancel(ctx)
	go func() {
		if err := s.Flush(saveCtx); err != nil && s.logg != nil {
			s.logg.Error(saveCtx, "cart: saving cart", err)
		}
	}()
}

func (s *Store) notify() {
	s.mu.Lock()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.subMu.Lock()
	subs := make([]func([]Line), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

func (s *Store) snapshotLocked() []Line {
	snapshot := make([]Line, len(s.lines))
	copy(snapshot, s.lines)
	return snapshot
}
