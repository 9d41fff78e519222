package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agriconnect/agriconnect-backend/api/controllers"
	"github.com/agriconnect/agriconnect-backend/api/middleware"
	"github.com/agriconnect/agriconnect-backend/internal/auth"
	"github.com/agriconnect/agriconnect-backend/internal/cart"
	"github.com/agriconnect/agriconnect-backend/internal/i18n"
	"github.com/agriconnect/agriconnect-backend/internal/products"
	"github.com/agriconnect/agriconnect-backend/internal/users"
	"github.com/agriconnect/agriconnect-backend/pkg/auth/session"
	"github.com/agriconnect/agriconnect-backend/pkg/config"
	"github.com/agriconnect/agriconnect-backend/pkg/db"
	"github.com/agriconnect/agriconnect-backend/pkg/logger"
	"github.com/agriconnect/agriconnect-backend/pkg/metrics"
	"github.com/agriconnect/agriconnect-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessionManager *session.Manager,
	httpMetrics *metrics.HTTPMetrics,
	resolver *i18n.Resolver,
	carts *cart.Manager,
	authService *auth.Service,
	userService *users.Service,
	productService *products.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		httpMetrics.Middleware(),
		middleware.Language(resolver, logg),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})
	r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(authService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.AuthRegister(authService, logg))
	})

	r.Route("/api/v1/i18n", func(r chi.Router) {
		r.Get("/language", controllers.I18nActive(resolver, logg))
		r.Get("/strings", controllers.I18nStrings(resolver, logg))
		r.Put("/language", controllers.I18nSetLanguage(resolver, logg))
		r.Post("/language/toggle", controllers.I18nToggleLanguage(resolver, logg))
	})

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", controllers.ProductsList(productService, logg))
		r.Get("/featured", controllers.ProductsFeatured(productService, logg))
		r.Get("/{productId}", controllers.ProductDetail(productService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionManager, logg))

		r.Post("/auth/logout", controllers.AuthLogout(authService, logg))
		r.Get("/auth/me", controllers.AuthMe(authService, logg))

		r.Route("/users/me", func(r chi.Router) {
			r.Get("/", controllers.UserProfile(userService, logg))
			r.Put("/", controllers.UserUpdateProfile(userService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(carts, logg))
			r.Delete("/", controllers.CartClear(carts, logg))
			r.Post("/items", controllers.CartAdd(carts, productService, logg))
			r.Put("/items/{productId}", controllers.CartUpdateQuantity(carts, logg))
			r.Delete("/items/{productId}", controllers.CartRemove(carts, logg))
		})

		r.Route("/farmer", func(r chi.Router) {
			r.Use(middleware.RequireRole("farmer", logg))
			r.Post("/products", controllers.ProductCreate(productService, userService, logg))
			r.Get("/products", controllers.ProductsMine(productService, logg))
			r.Delete("/products/{productId}", controllers.ProductDelete(productService, logg))
		})
	})

	return r
}
