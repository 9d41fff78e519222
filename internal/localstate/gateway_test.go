package localstate

import (
	"context"
	"testing"
)

func TestScopedKey(t *testing.T) {
	if got := ScopedKey(CartStorageKey, "user-1"); got != "@agriconnect_cart:user-1" {
		t.Fatalf("unexpected scoped key %q", got)
	}
	if got := ScopedKey(CartStorageKey, ""); got != CartStorageKey {
		t.Fatalf("empty scope should return the base key, got %q", got)
	}
}

func TestMemoryGatewayRoundTrip(t *testing.T) {
	ctx := context.Background()
	gateway := NewMemoryGateway()

	if _, found, err := gateway.Load(ctx, "missing"); err != nil || found {
		t.Fatalf("expected clean miss, found=%v err=%v", found, err)
	}

	if err := gateway.Save(ctx, "key", []byte("value")); err != nil {
		t.Fatalf("save: %v", err)
	}
	value, found, err := gateway.Load(ctx, "key")
	if err != nil || !found || string(value) != "value" {
		t.Fatalf("unexpected load result: %q found=%v err=%v", value, found, err)
	}

	if err := gateway.Delete(ctx, "key"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := gateway.Load(ctx, "key"); found {
		t.Fatal("expected key gone after delete")
	}
}

func TestMemoryGatewayCopiesValues(t *testing.T) {
	ctx := context.Background()
	gateway := NewMemoryGateway()

	original := []byte("value")
	if err := gateway.Save(ctx, "key", original); err != nil {
		t.Fatalf("save: %v", err)
	}
	original[0] = 'X'

	stored, _, _ := gateway.Load(ctx, "key")
	if string(stored) != "value" {
		t.Fatalf("stored value was mutated: %q", stored)
	}

	stored[0] = 'Y'
	again, _, _ := gateway.Load(ctx, "key")
	if string(again) != "value" {
		t.Fatalf("loaded value shares backing array: %q", again)
	}
}
