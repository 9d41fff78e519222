package i18n

import (
	"context"
	"sync"

	"github.com/agriconnect/agriconnect-backend/internal/localstate"
	pkgerrors "github.com/agriconnect/agriconnect-backend/pkg/errors"
	"github.com/agriconnect/agriconnect-backend/pkg/logger"
)

// Language is one of the two supported UI languages.
type Language string

const (
	LangEnglish Language = "en"
	LangBangla  Language = "bn"

	// DefaultLanguage applies on first run and whenever no valid saved
	// preference exists.
	DefaultLanguage = LangEnglish
)

func (l Language) IsValid() bool {
	return l == LangEnglish || l == LangBangla
}

// Resolver holds the active language preference and answers translation
// queries against the static tables. There is exactly one writer path (its
// own mutation methods); reads are safe from any goroutine.
type Resolver struct {
	mu      sync.RWMutex
	lang    Language
	gateway localstate.Gateway
	logg    *logger.Logger

	// saveMu serializes gateway writes so an older in-flight save can
	// never land after a newer one.
	saveMu sync.Mutex
}

// NewResolver builds a resolver at the default language. Call Hydrate to
// restore a persisted preference.
func NewResolver(gateway localstate.Gateway, logg *logger.Logger) *Resolver {
	return &Resolver{
		lang:    DefaultLanguage,
		gateway: gateway,
		logg:    logg,
	}
}

// Hydrate restores the saved language preference. Failures and unknown saved
// values are logged and leave the default in place.
func (r *Resolver) Hydrate(ctx context.Context) {
	if r.gateway == nil {
		return
	}
	raw, found, err := r.gateway.Load(ctx, localstate.LanguageStorageKey)
	if err != nil {
		if r.logg != nil {
			r.logg.Error(ctx, "i18n: loading saved language", err)
		}
		return
	}
	if !found {
		return
	}
	saved := Language(raw)
	if !saved.IsValid() {
		return
	}
	r.mu.Lock()
	r.lang = saved
	r.mu.Unlock()
}

// ActiveLanguage returns the currently selected language.
func (r *Resolver) ActiveLanguage() Language {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lang
}

// SetLanguage switches the active language and persists the choice. The tag
// must be one of the two supported languages.
func (r *Resolver) SetLanguage(ctx context.Context, lang Language) error {
	if !lang.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unsupported language tag")
	}
	r.mu.Lock()
	r.lang = lang
	r.mu.Unlock()

	r.persist(ctx)
	return nil
}

// ToggleLanguage flips between the two supported languages and returns the
// new active language.
func (r *Resolver) ToggleLanguage(ctx context.Context) Language {
	r.mu.Lock()
	if r.lang == LangEnglish {
		r.lang = LangBangla
	} else {
		r.lang = LangEnglish
	}
	next := r.lang
	r.mu.Unlock()

	r.persist(ctx)
	return next
}

// Translate returns the UI string for the key under the active language. The
// tables are total over the fixed key set; an unknown key yields the key
// itself so a gap is visible rather than blank.
func (r *Resolver) Translate(key Key) string {
	return TranslateIn(r.ActiveLanguage(), key)
}

// ProductName returns the localized display name for a canonical catalog
// name, or the canonical name unchanged when it is not a known catalog key.
func (r *Resolver) ProductName(canonicalName string) string {
	return ProductNameIn(r.ActiveLanguage(), canonicalName)
}

// ProductDescription returns the localized description for a canonical
// catalog name, falling back to a fixed generic description on a miss.
func (r *Resolver) ProductDescription(canonicalName string) string {
	return ProductDescriptionIn(r.ActiveLanguage(), canonicalName)
}

// persist writes the preference behind the caller. Writes are serialized and
// re-read the active language right before hitting the gateway, so the last
// write always carries the newest selection even when saves overlap.
func (r *Resolver) persist(ctx context.Context) {
	if r.gateway == nil {
		return
	}
	saveCtx := context.WithoutCancel(ctx)
	go func() {
		r.saveMu.Lock()
		defer r.saveMu.Unlock()
		lang := r.ActiveLanguage()
		if err := r.gateway.Save(saveCtx, localstate.LanguageStorageKey, []byte(lang)); err != nil && r.logg != nil {
			r.logg.Error(saveCtx, "i18n: saving language", err)
		}
	}()
}

// TranslateIn resolves a UI string under an explicit language.
func TranslateIn(lang Language, key Key) string {
	table, ok := uiStrings[lang]
	if !ok {
		table = uiStrings[DefaultLanguage]
	}
	if value, ok := table[key]; ok {
		return value
	}
	return string(key)
}

// ProductNameIn resolves a product display name under an explicit language.
func ProductNameIn(lang Language, canonicalName string) string {
	table, ok := productStrings[lang]
	if !ok {
		table = productStrings[DefaultLanguage]
	}
	if entry, ok := table[canonicalName]; ok {
		return entry.Name
	}
	return canonicalName
}

// ProductDescriptionIn resolves a product description under an explicit
// language. The generic fallback is language-invariant, matching the mobile
// app's behavior.
func ProductDescriptionIn(lang Language, canonicalName string) string {
	table, ok := productStrings[lang]
	if !ok {
		table = productStrings[DefaultLanguage]
	}
	if entry, ok := table[canonicalName]; ok {
		return entry.Description
	}
	return genericProductDescription
}

// StringsFor returns the full UI string table for the language, keyed by the
// fixed UI key enumeration.
func StringsFor(lang Language) map[Key]string {
	table, ok := uiStrings[lang]
	if !ok {
		table = uiStrings[DefaultLanguage]
	}
	out := make(map[Key]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}
