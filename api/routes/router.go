package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/voltkart/storefront-backend/api/controllers"
	"github.com/voltkart/storefront-backend/api/middleware"
	cartsvc "github.com/voltkart/storefront-backend/internal/cart"
	"github.com/voltkart/storefront-backend/internal/catalog"
	checkoutsvc "github.com/voltkart/storefront-backend/internal/checkout"
	registrationsvc "github.com/voltkart/storefront-backend/internal/registration"
	"github.com/voltkart/storefront-backend/pkg/config"
	"github.com/voltkart/storefront-backend/pkg/logger"
	"github.com/voltkart/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisP redis.Pinger,
	catalogRepo *catalog.Repository,
	cartService cartsvc.Service,
	checkoutService checkoutsvc.Service,
	registrationService registrationsvc.Service,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisP))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.CatalogList(catalogRepo, logg))
			r.Get("/featured", controllers.CatalogFeatured(catalogRepo, logg))
			r.Get("/{productId}", controllers.CatalogDetail(catalogRepo, logg))
		})
		r.Get("/categories", controllers.CatalogCategories(catalogRepo, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Patch("/items/{productId}", controllers.CartUpdateItem(cartService, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", controllers.CheckoutState(checkoutService, logg))
			r.Post("/", controllers.CheckoutBegin(checkoutService, logg))
			r.Post("/address", controllers.CheckoutSubmitAddress(checkoutService, logg))
			r.Post("/payment-method", controllers.CheckoutSelectMethod(checkoutService, logg))
			r.Post("/confirm", controllers.CheckoutConfirm(checkoutService, logg))
			r.Get("/order-success", controllers.CheckoutOrderSuccess(checkoutService, logg))
		})

		r.Route("/register", func(r chi.Router) {
			r.Get("/captcha", controllers.RegisterCaptcha(registrationService, logg))
			r.Post("/", controllers.RegisterSubmit(registrationService, logg))
		})
	})

	return r
}
