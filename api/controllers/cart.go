package controllers

import (
	"net/http"

	"github.com/agriconnect/agriconnect-backend/api/middleware"
	"github.com/agriconnect/agriconnect-backend/api/responses"
	"github.com/agriconnect/agriconnect-backend/api/validators"
	"github.com/agriconnect/agriconnect-backend/internal/cart"
	"github.com/agriconnect/agriconnect-backend/internal/i18n"
	"github.com/agriconnect/agriconnect-backend/internal/products"
	"github.com/agriconnect/agriconnect-backend/pkg/logger"
)

// CartView is the aggregated cart the client renders.
type CartView struct {
	Items       []CartLineView `json:"items"`
	ItemCount   int            `json:"itemCount"`
	Subtotal    int            `json:"subtotal"`
	DeliveryFee int            `json:"deliveryFee"`
	Total       int            `json:"total"`
}

// CartLineView is a cart line with the display name localized for the request
// language. The stored line keeps the canonical catalog name so the same cart
// renders correctly under either language.
type CartLineView struct {
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

type cartAddInput struct {
	ProductID string `json:"productId" validate:"required,uuid"`
}

type cartQuantityInput struct {
	Quantity int `json:"quantity"`
}

func newCartView(store *cart.Store, lang i18n.Language) CartView {
	lines := store.Lines()
	items := make([]CartLineView, 0, len(lines))
	for _, line := range lines {
		items = append(items, CartLineView{
			ID:       line.ID,
			Name:     i18n.ProductNameIn(lang, line.Name),
			Price:    line.Price,
			Image:    line.Image,
			Farmer:   line.Farmer,
			Location: line.Location,
			Category: line.Category,
			Quantity: line.Quantity,
			Unit:     line.Unit,
		})
	}
	return CartView{
		Items:       items,
		ItemCount:   store.ItemCount(),
		Subtotal:    store.Subtotal(),
		DeliveryFee: cart.DeliveryFee,
		Total:       store.Total(),
	}
}

func CartFetch(carts *cart.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requireUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		store := carts.StoreFor(r.Context(), userID.String())
		responses.WriteSuccess(w, newCartView(store, middleware.RequestLanguage(r)))
	}
}

// CartAdd resolves the catalog listing, snapshots its display fields and
// merges it into the cart. The line keeps the canonical product name;
// localization happens when the cart is rendered. Adding the same product
// again increments its quantity.
func CartAdd(carts *cart.Manager, productSvc *products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requireUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var input cartAddInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		productID, err := parseUUID(input.ProductID, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := productSvc.Get(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store := carts.StoreFor(r.Context(), userID.String())
		store.AddToCart(r.Context(), cart.Product{
			ID:       product.ID.String(),
			Name:     product.Name,
			Price:    product.Price,
			Image:    product.Image,
			Farmer:   product.Farmer,
			Location: product.Location,
			Category: string(product.Category),
			Unit:     product.Unit,
		})
		responses.WriteSuccess(w, newCartView(store, middleware.RequestLanguage(r)))
	}
}

func CartUpdateQuantity(carts *cart.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requireUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		productID, err := parseUUIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var input cartQuantityInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store := carts.StoreFor(r.Context(), userID.String())
		store.UpdateQuantity(r.Context(), productID.String(), input.Quantity)
		responses.WriteSuccess(w, newCartView(store, middleware.RequestLanguage(r)))
	}
}

func CartRemove(carts *cart.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requireUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		productID, err := parseUUIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store := carts.StoreFor(r.Context(), userID.String())
		store.RemoveFromCart(r.Context(), productID.String())
		responses.WriteSuccess(w, newCartView(store, middleware.RequestLanguage(r)))
	}
}

func CartClear(carts *cart.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requireUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		store := carts.StoreFor(r.Context(), userID.String())
		store.ClearCart(r.Context())
		responses.WriteSuccess(w, newCartView(store, middleware.RequestLanguage(r)))
	}
}
