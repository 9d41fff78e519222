package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agriconnect/agriconnect-backend/internal/i18n"
)

func runLanguageMiddleware(t *testing.T, target string, header string) i18n.Language {
	t.Helper()

	resolver := i18n.NewResolver(nil, nil)
	var seen i18n.Language
	handler := Language(resolver, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestLanguage(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set("X-Language", header)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return seen
}

func TestLanguageDefaultsToResolverPreference(t *testing.T) {
	if got := runLanguageMiddleware(t, "/api/v1/products", ""); got != i18n.LangEnglish {
		t.Fatalf("expected en, got %s", got)
	}
}

func TestLanguageQueryParamWins(t *testing.T) {
	if got := runLanguageMiddleware(t, "/api/v1/products?lang=bn", ""); got != i18n.LangBangla {
		t.Fatalf("expected bn, got %s", got)
	}
}

func TestLanguageHeaderApplies(t *testing.T) {
	if got := runLanguageMiddleware(t, "/api/v1/products", "bn"); got != i18n.LangBangla {
		t.Fatalf("expected bn, got %s", got)
	}
}

func TestLanguageUnknownTagIgnored(t *testing.T) {
	if got := runLanguageMiddleware(t, "/api/v1/products?lang=fr", ""); got != i18n.LangEnglish {
		t.Fatalf("expected fallback en, got %s", got)
	}
}
