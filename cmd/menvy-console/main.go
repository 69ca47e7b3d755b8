package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/clothingmenvy-dot/menvy-client/docs"
	"github.com/clothingmenvy-dot/menvy-client/internal/api/handlers"
	"github.com/clothingmenvy-dot/menvy-client/internal/api/middleware"
	"github.com/clothingmenvy-dot/menvy-client/internal/cache"
	"github.com/clothingmenvy-dot/menvy-client/internal/config"
	"github.com/clothingmenvy-dot/menvy-client/internal/gate"
	"github.com/clothingmenvy-dot/menvy-client/internal/health"
	"github.com/clothingmenvy-dot/menvy-client/internal/identity"
	"github.com/clothingmenvy-dot/menvy-client/internal/metrics"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	repository "github.com/clothingmenvy-dot/menvy-client/internal/repositories"
	service "github.com/clothingmenvy-dot/menvy-client/internal/services"
	"github.com/clothingmenvy-dot/menvy-client/internal/store"
	"github.com/clothingmenvy-dot/menvy-client/internal/telemetry"
	"github.com/clothingmenvy-dot/menvy-client/internal/views"
	"github.com/clothingmenvy-dot/menvy-client/pkg/backend"
	"github.com/clothingmenvy-dot/menvy-client/pkg/mailer"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), cfg.Otel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis is optional; without it grants and the dashboard cache live in memory
	var (
		redisClient *redis.Client
		cacheStore  cache.Cache
		identityOpt []identity.Option
	)

	if cfg.RedisConnect.Enabled() {
		redisClient, err = repository.NewRedisClient(cfg)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cacheStore = cache.NewRedisCache(redisClient, &cfg.Cache)
		identityOpt = append(identityOpt, identity.WithRateLimiter(repository.NewRateLimitRepo(redisClient, cfg.RateConfig)))
	} else {
		slog.Warn("⚠️ Redis is not configured, using the in-memory cache")
		cacheStore = cache.NewMemoryCache(&cfg.Cache)
	}

	defer func() {
		if err := cacheStore.Close(); err != nil {
			slog.Error("⚠️ Error closing the cache", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Cache closed")
		}
	}()

	if cfg.SendGrid.Enabled() {
		identityOpt = append(identityOpt, identity.WithMailer(mailer.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)))
	} else {
		slog.Warn("⚠️ SendGrid is not configured, password reset is disabled")
	}

	provider, err := identity.NewLocalProvider(cfg.Identity, identityOpt...)
	if err != nil {
		slog.Error("❌ Error setting up the identity provider", slog.String("error", err.Error()))
		os.Exit(1)
	}

	productsGate, err := gate.New(cfg.Gate, cacheStore)
	if err != nil {
		slog.Error("❌ Error setting up the products gate", slog.String("error", err.Error()))
		os.Exit(1)
	}

	client := backend.NewClient(cfg.Backend.BaseURL,
		backend.WithTokenSource(provider),
		backend.WithObserver(metrics.ObserveBackend),
		backend.WithTimeout(cfg.Backend.Timeout),
	)
	repos := repository.New(client)

	// Entity slices
	onStale := store.WithDiscardHook(metrics.StaleCompletion)
	now := time.Now()

	slices := &service.Slices{}
	dir := service.NewDirectory(slices)

	productService := service.NewProductService(repos.Products, onStale)
	sellerService := service.NewSellerService(repos.Sellers, onStale)
	saleService := service.NewSaleService(repos.Sales, dir, cfg.Sales.BillPrefix, cacheStore, onStale)
	purchaseService := service.NewPurchaseService(repos.Purchases, dir, cacheStore, onStale)
	categoryService := service.NewCategoryService(repos.Categories, models.SeedCategories(now), onStale)
	brandService := service.NewBrandService(repos.Brands, models.SeedBrands(now), onStale)
	userService := service.NewUserService(repos.Users, onStale)

	slices.Products = productService
	slices.Sellers = sellerService
	slices.Sales = saleService
	slices.Purchases = purchaseService

	authService := service.NewAuthService(provider, productsGate, cfg.Identity.TokenTTL)
	dashboardService := service.NewDashboardService(cfg.Dashboard, repos.Dashboard, cacheStore, dir)

	// Handlers
	sessionHandler := handlers.NewSessionHandler(authService)
	gateHandler := handlers.NewGateHandler(productsGate)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	pageSize := cfg.View.PageSize
	productHandler := handlers.NewResourceHandler("product", productService, views.ProductSearch,
		handlers.WithFilters[models.Product, models.ProductDraft](handlers.ProductFilters),
		handlers.WithPageSize[models.Product, models.ProductDraft](pageSize),
	)
	categoryHandler := handlers.NewResourceHandler("category", categoryService, views.CategorySearch,
		handlers.WithOwner[models.Category, models.CatalogDraft](handlers.StampCatalogOwner),
		handlers.WithPageSize[models.Category, models.CatalogDraft](pageSize),
	)
	brandHandler := handlers.NewResourceHandler("brand", brandService, views.BrandSearch,
		handlers.WithOwner[models.Brand, models.CatalogDraft](handlers.StampCatalogOwner),
		handlers.WithPageSize[models.Brand, models.CatalogDraft](pageSize),
	)
	sellerHandler := handlers.NewResourceHandler("seller", sellerService, views.SellerSearch,
		handlers.WithPageSize[models.Seller, models.SellerDraft](pageSize))
	saleHandler := handlers.NewResourceHandler("sale", saleService, views.SaleSearch,
		handlers.WithPageSize[models.Sale, models.SaleDraft](pageSize))
	purchaseHandler := handlers.NewResourceHandler("purchase", purchaseService, views.PurchaseSearch,
		handlers.WithPageSize[models.Purchase, models.PurchaseDraft](pageSize))
	userHandler := handlers.NewResourceHandler("user", userService, views.UserSearch,
		handlers.WithPageSize[models.User, models.UserDraft](pageSize))

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{Backend: client})
	if err != nil {
		slog.Error("❌ Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	authMiddleware := middleware.NewAuthMiddleware(provider)
	requireGate := middleware.RequireGate(productsGate)

	public := func(h http.Handler) http.Handler { return h }
	signedIn := func(h http.Handler) http.Handler { return authMiddleware.Authenticate(h) }
	unlocked := func(h http.Handler) http.Handler { return authMiddleware.Authenticate(requireGate(h)) }

	slog.Info("console initialized", slog.String("env", cfg.Env), slog.String("backend", cfg.Backend.BaseURL), slog.String("dashboard", cfg.Dashboard.Source))

	// Setup router
	routerMux := http.NewServeMux()
	route := func(pattern string, guard func(http.Handler) http.Handler, h http.Handler) {
		routerMux.Handle(pattern, metrics.Middleware(guard(h)))
	}

	route("POST /api/v1/session/login", public, sessionHandler.Login())
	route("POST /api/v1/session/register", public, sessionHandler.Register())
	route("POST /api/v1/session/password-reset", public, sessionHandler.ResetPassword())
	route("GET /api/v1/session/state", signedIn, sessionHandler.State())
	route("POST /api/v1/session/logout", signedIn, sessionHandler.Logout())
	route("GET /api/v1/session/profile", signedIn, sessionHandler.Profile())
	route("PATCH /api/v1/session/profile", signedIn, sessionHandler.UpdateProfile())

	route("GET /api/v1/gate", signedIn, gateHandler.Status())
	route("POST /api/v1/gate/challenge", signedIn, gateHandler.Challenge())

	route("GET /api/v1/dashboard", signedIn, dashboardHandler.Get())

	registerResource(route, "/api/v1/products", unlocked, productHandler)
	registerResource(route, "/api/v1/categories", unlocked, categoryHandler)
	registerResource(route, "/api/v1/brands", unlocked, brandHandler)
	registerResource(route, "/api/v1/sellers", signedIn, sellerHandler)
	registerResource(route, "/api/v1/sales", signedIn, saleHandler)
	registerResource(route, "/api/v1/purchases", signedIn, purchaseHandler)
	registerResource(route, "/api/v1/users", signedIn, userHandler)

	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Console is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the console...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}

}

type routeFunc func(pattern string, guard func(http.Handler) http.Handler, h http.Handler)

func registerResource[T models.Record, D any](route routeFunc, base string, guard func(http.Handler) http.Handler, h *handlers.ResourceHandler[T, D]) {
	route("GET "+base, guard, h.List())
	route("POST "+base, guard, h.Create())
	route("GET "+base+"/state", guard, h.State())
	route("DELETE "+base+"/error", guard, h.ClearError())
	route("GET "+base+"/{id}", guard, h.Get())
	route("PUT "+base+"/{id}", guard, h.Update())
	route("DELETE "+base+"/{id}", guard, h.Delete())
}
