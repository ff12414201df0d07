package api

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/zenbase/gateway/internal/api/handlers"
	mw "github.com/zenbase/gateway/internal/api/middleware"
	"github.com/zenbase/gateway/internal/domain"
	"github.com/zenbase/gateway/internal/identity"
	"github.com/zenbase/gateway/internal/service"
	"github.com/zenbase/gateway/internal/store"
	"go.uber.org/zap"
)

// Config carries the process-wide settings the router needs. It is built
// once at startup and passed in; nothing here mutates after that.
type Config struct {
	BaseDomain     string
	LocalDevSuffix string
	CORSOrigin     string
	RateLimitRPS   float64
	RateLimitBurst int
	Development    bool
}

// Deps are the external capabilities the pipeline composes. Each is a
// narrow contract so tests can substitute in-memory fakes.
type Deps struct {
	Tenants  domain.TenantStore
	Factory  domain.ScopedClientFactory
	Verifier domain.TokenVerifier
}

// App holds the assembled router.
type App struct {
	Router *chi.Mux
}

func NewApp(cfg Config, deps Deps, logger *zap.Logger) *App {
	dashboardSvc := service.NewDashboardService(deps.Factory, logger)
	adminSvc := service.NewAdminService(deps.Factory, logger)

	tenantHandler := handlers.NewTenantHandler(dashboardSvc, adminSvc, cfg.Development)
	rootHandler := handlers.NewRootHandler()

	metrics := mw.NewMetrics()

	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(metrics.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(mw.Recover(logger, cfg.Development))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", mw.RequestIDHeader},
		AllowCredentials: cfg.CORSOrigin != "*",
	}))
	r.Use(chimw.Compress(5))
	r.Use(mw.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	// No tenant or auth required
	r.Get("/health", rootHandler.Health)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/", rootHandler.Index)

	// Tenant-scoped surface
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.ResolveTenant(deps.Tenants, cfg.BaseDomain, cfg.LocalDevSuffix, logger))

		r.Get("/", rootHandler.APIRoot)

		r.Route("/tenant", func(r chi.Router) {
			r.With(mw.OptionalAuth(deps.Verifier, logger)).Get("/info", tenantHandler.Info)
			r.With(mw.RequireAuth(deps.Verifier)).Get("/dashboard", tenantHandler.Dashboard)
			r.With(mw.RequireAuth(deps.Verifier)).Get("/admins", tenantHandler.Admins)
		})
	})

	r.NotFound(handlers.NotFound)

	return &App{Router: r}
}

// Ensure stores and clients satisfy the domain contracts at compile time.
var (
	_ domain.TenantStore         = (*store.TenantStore)(nil)
	_ domain.TenantStore         = (*store.Placeholder)(nil)
	_ domain.ScopedClientFactory = (*store.ScopedFactory)(nil)
	_ domain.ScopedClientFactory = (*store.Placeholder)(nil)
	_ domain.ScopedClient        = (*store.ScopedClient)(nil)
	_ domain.TokenVerifier       = (*identity.Client)(nil)
	_ domain.TokenVerifier       = (*identity.Static)(nil)
)
