package middleware

import (
	"net/http"
	"strings"

	"github.com/agriconnect/agriconnect-backend/internal/i18n"
	"github.com/agriconnect/agriconnect-backend/pkg/logger"
)

const languageHeader = "X-Language"

// Language resolves the request language: an explicit lang query parameter or
// X-Language header wins, otherwise the process-wide preference applies.
// Unknown tags are ignored rather than rejected.
func Language(resolver *i18n.Resolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := resolver.ActiveLanguage()

			requested := strings.TrimSpace(r.URL.Query().Get("lang"))
			if requested == "" {
				requested = strings.TrimSpace(r.Header.Get(languageHeader))
			}
			if requested != "" {
				if tag := i18n.Language(requested); tag.IsValid() {
					lang = tag
				}
			}

			ctx := WithLanguage(r.Context(), string(lang))
			if logg != nil {
				ctx = logg.WithLanguage(ctx, string(lang))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestLanguage reads the language seeded by the Language middleware,
// defaulting when the middleware did not run.
func RequestLanguage(r *http.Request) i18n.Language {
	if tag := i18n.Language(LanguageFromContext(r.Context())); tag.IsValid() {
		return tag
	}
	return i18n.DefaultLanguage
}
