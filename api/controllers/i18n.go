package controllers

import (
	"net/http"

	"github.com/agriconnect/agriconnect-backend/api/responses"
	"github.com/agriconnect/agriconnect-backend/api/validators"
	"github.com/agriconnect/agriconnect-backend/internal/i18n"
	"github.com/agriconnect/agriconnect-backend/pkg/logger"
)

type languageInput struct {
	Language string `json:"language" validate:"required"`
}

// LanguageView reports the active language after a read or switch.
type LanguageView struct {
	Language string `json:"language"`
}

func I18nActive(resolver *i18n.Resolver, _ *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, LanguageView{Language: string(resolver.ActiveLanguage())})
	}
}

func I18nSetLanguage(resolver *i18n.Resolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input languageInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := resolver.SetLanguage(r.Context(), i18n.Language(input.Language)); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, LanguageView{Language: string(resolver.ActiveLanguage())})
	}
}

func I18nToggleLanguage(resolver *i18n.Resolver, _ *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next := resolver.ToggleLanguage(r.Context())
		responses.WriteSuccess(w, LanguageView{Language: string(next)})
	}
}

// I18nStrings serves the full UI string table for the request language so
// clients can render without hardcoding copy.
func I18nStrings(resolver *i18n.Resolver, _ *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := resolver.ActiveLanguage()
		if requested := i18n.Language(r.URL.Query().Get("lang")); requested.IsValid() {
			lang = requested
		}
		table := i18n.StringsFor(lang)
		out := make(map[string]string, len(table))
		for k, v := range table {
			out[string(k)] = v
		}
		responses.WriteSuccess(w, map[string]any{
			"language": string(lang),
			"strings":  out,
		})
	}
}
