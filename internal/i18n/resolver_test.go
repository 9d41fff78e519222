package i18n

import (
	"context"
	"sync"
	"testing"

	"github.com/agriconnect/agriconnect-backend/internal/localstate"
)

// recordingLanguageGateway records saved values and blocks the first save
// until released, so a test can force two saves to overlap.
type recordingLanguageGateway struct {
	mu      sync.Mutex
	saves   []string
	first   sync.Once
	entered chan struct{}
	release chan struct{}
	saved   chan struct{}
}

func newRecordingLanguageGateway() *recordingLanguageGateway {
	return &recordingLanguageGateway{
		entered: make(chan struct{}),
		release: make(chan struct{}),
		saved:   make(chan struct{}, 4),
	}
}

func (g *recordingLanguageGateway) Load(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (g *recordingLanguageGateway) Delete(context.Context, string) error { return nil }

func (g *recordingLanguageGateway) Save(_ context.Context, _ string, value []byte) error {
	gate := false
	g.first.Do(func() { gate = true })
	if gate {
		close(g.entered)
		<-g.release
	}
	g.mu.Lock()
	g.saves = append(g.saves, string(value))
	g.mu.Unlock()
	g.saved <- struct{}{}
	return nil
}

func (g *recordingLanguageGateway) lastSave() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.saves) == 0 {
		return ""
	}
	return g.saves[len(g.saves)-1]
}

func TestDefaultLanguageIsEnglish(t *testing.T) {
	resolver := NewResolver(nil, nil)
	if got := resolver.ActiveLanguage(); got != LangEnglish {
		t.Fatalf("expected en, got %s", got)
	}
}

func TestSetLanguageRejectsUnknownTag(t *testing.T) {
	resolver := NewResolver(nil, nil)
	if err := resolver.SetLanguage(context.Background(), Language("fr")); err == nil {
		t.Fatal("expected error for unsupported tag")
	}
	if got := resolver.ActiveLanguage(); got != LangEnglish {
		t.Fatalf("language changed despite invalid tag: %s", got)
	}
}

func TestToggleLanguageFlipsBothWays(t *testing.T) {
	ctx := context.Background()
	resolver := NewResolver(nil, nil)

	if got := resolver.ToggleLanguage(ctx); got != LangBangla {
		t.Fatalf("expected bn after first toggle, got %s", got)
	}
	if got := resolver.ToggleLanguage(ctx); got != LangEnglish {
		t.Fatalf("expected en after second toggle, got %s", got)
	}
}

func TestHydrateRestoresSavedPreference(t *testing.T) {
	ctx := context.Background()
	gateway := localstate.NewMemoryGateway()
	if err := gateway.Save(ctx, localstate.LanguageStorageKey, []byte("bn")); err != nil {
		t.Fatalf("save: %v", err)
	}

	resolver := NewResolver(gateway, nil)
	resolver.Hydrate(ctx)

	if got := resolver.ActiveLanguage(); got != LangBangla {
		t.Fatalf("expected restored bn, got %s", got)
	}
}

func TestHydrateIgnoresUnknownSavedValue(t *testing.T) {
	ctx := context.Background()
	gateway := localstate.NewMemoryGateway()
	if err := gateway.Save(ctx, localstate.LanguageStorageKey, []byte("xx")); err != nil {
		t.Fatalf("save: %v", err)
	}

	resolver := NewResolver(gateway, nil)
	resolver.Hydrate(ctx)

	if got := resolver.ActiveLanguage(); got != LangEnglish {
		t.Fatalf("expected default en, got %s", got)
	}
}

func TestLanguagePersistWritesLatestSelection(t *testing.T) {
	ctx := context.Background()
	gateway := newRecordingLanguageGateway()
	resolver := NewResolver(gateway, nil)

	if err := resolver.SetLanguage(ctx, LangBangla); err != nil {
		t.Fatalf("set language: %v", err)
	}
	// First async save is mid-write; the toggle lands before it finishes.
	<-gateway.entered
	resolver.ToggleLanguage(ctx)
	close(gateway.release)

	<-gateway.saved
	<-gateway.saved

	if got := gateway.lastSave(); got != string(LangEnglish) {
		t.Fatalf("expected last durable write %q, got %q", LangEnglish, got)
	}
}

func TestUIStringTablesAreTotal(t *testing.T) {
	for _, lang := range []Language{LangEnglish, LangBangla} {
		table := StringsFor(lang)
		if len(table) != len(AllKeys) {
			t.Fatalf("%s: table has %d entries, key set has %d", lang, len(table), len(AllKeys))
		}
		for _, key := range AllKeys {
			if value, ok := table[key]; !ok || value == "" {
				t.Fatalf("%s: missing or empty value for key %q", lang, key)
			}
		}
	}
}

func TestTranslateFallsBackToKey(t *testing.T) {
	if got := TranslateIn(LangBangla, Key("no_such_key")); got != "no_such_key" {
		t.Fatalf("expected key echo, got %q", got)
	}
}

func TestProductNameFallsBackToCanonicalName(t *testing.T) {
	if got := ProductNameIn(LangBangla, "Dragon Fruit"); got != "Dragon Fruit" {
		t.Fatalf("expected canonical name, got %q", got)
	}
	if got := ProductNameIn(LangBangla, "Sweet Corn"); got != "ভুট্টা" {
		t.Fatalf("expected translated name, got %q", got)
	}
}

func TestProductDescriptionFallbackIsLanguageInvariant(t *testing.T) {
	en := ProductDescriptionIn(LangEnglish, "Dragon Fruit")
	bn := ProductDescriptionIn(LangBangla, "Dragon Fruit")
	if en != bn {
		t.Fatalf("generic description differs per language: %q vs %q", en, bn)
	}
	if en != genericProductDescription {
		t.Fatalf("expected generic description, got %q", en)
	}
}

func TestCurrencySymbolMatchesBothLanguages(t *testing.T) {
	if TranslateIn(LangEnglish, KeyCurrency) != "৳" || TranslateIn(LangBangla, KeyCurrency) != "৳" {
		t.Fatal("expected taka symbol for both languages")
	}
}
