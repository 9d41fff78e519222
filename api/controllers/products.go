package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/agriconnect/agriconnect-backend/api/middleware"
	"github.com/agriconnect/agriconnect-backend/api/responses"
	"github.com/agriconnect/agriconnect-backend/api/validators"
	"github.com/agriconnect/agriconnect-backend/internal/products"
	pkgerrors "github.com/agriconnect/agriconnect-backend/pkg/errors"
	"github.com/agriconnect/agriconnect-backend/pkg/logger"
)

func ProductsList(svc *products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.List(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		lang := middleware.RequestLanguage(r)
		responses.WriteSuccess(w, products.NewProductViews(rows, lang))
	}
}

func ProductsFeatured(svc *products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r.URL.Query().Get("limit"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rows, err := svc.Featured(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		lang := middleware.RequestLanguage(r)
		responses.WriteSuccess(w, products.NewProductViews(rows, lang))
	}
}

// parseLimit reads an optional positive page-size parameter. Zero means the
// caller left it unset and the service default applies.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid limit").
			WithDetails(map[string]string{"limit": raw})
	}
	return limit, nil
}

func ProductDetail(svc *products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		lang := middleware.RequestLanguage(r)
		responses.WriteSuccess(w, products.NewProductView(*product, lang))
	}
}

// ProductCreate stores a new farmer listing. The farmer display name comes
// from the authenticated profile, never from the payload.
func ProductCreate(svc *products.Service, profileSvc profileLoader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requireUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var input products.AddProductInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := profileSvc.Profile(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.AddProduct(r.Context(), products.Farmer{ID: userID, Name: profile.Name}, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		lang := middleware.RequestLanguage(r)
		responses.WriteSuccessStatus(w, http.StatusCreated, products.NewProductView(*product, lang))
	}
}

func ProductsMine(svc *products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requireUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rows, err := svc.ListByFarmer(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		lang := middleware.RequestLanguage(r)
		responses.WriteSuccess(w, products.NewProductViews(rows, lang))
	}
}

func ProductDelete(svc *products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requireUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := parseUUIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id, userID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	return parseUUID(chi.URLParam(r, name), name)
}

func parseUUID(raw, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid "+name).
			WithDetails(map[string]string{name: raw})
	}
	return id, nil
}
