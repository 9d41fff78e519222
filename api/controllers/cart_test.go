package controllers

import (
	"context"
	"testing"

	"github.com/agriconnect/agriconnect-backend/internal/cart"
	"github.com/agriconnect/agriconnect-backend/internal/i18n"
)

func TestCartViewLocalizesLineNamesPerRequest(t *testing.T) {
	ctx := context.Background()
	store := cart.NewStore(nil, "", nil)
	store.AddToCart(ctx, cart.Product{ID: "p1", Name: "Sweet Corn", Price: 50})
	store.AddToCart(ctx, cart.Product{ID: "p2", Name: "Dragon Fruit", Price: 250})

	bn := newCartView(store, i18n.LangBangla)
	if bn.Items[0].Name != "ভুট্টা" {
		t.Fatalf("expected localized name, got %q", bn.Items[0].Name)
	}
	if bn.Items[1].Name != "Dragon Fruit" {
		t.Fatalf("expected canonical passthrough for unknown name, got %q", bn.Items[1].Name)
	}

	en := newCartView(store, i18n.LangEnglish)
	if en.Items[0].Name != "Corn" {
		t.Fatalf("expected english display name, got %q", en.Items[0].Name)
	}

	// The stored line keeps the canonical name so the same cart can be
	// re-rendered under either language.
	if got := store.Lines()[0].Name; got != "Sweet Corn" {
		t.Fatalf("expected canonical name in stored line, got %q", got)
	}
}
