package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/envialo/shipping-portal/docs"
	"github.com/envialo/shipping-portal/internal/api/handler"
	"github.com/envialo/shipping-portal/internal/api/middleware"
	"github.com/envialo/shipping-portal/internal/core/domain"
	"github.com/envialo/shipping-portal/internal/core/service"
	"github.com/envialo/shipping-portal/internal/core/validate"
	"github.com/envialo/shipping-portal/internal/infrastructure/config"
	sessionredis "github.com/envialo/shipping-portal/internal/infrastructure/session/redis"
	"github.com/envialo/shipping-portal/internal/infrastructure/upstream"
)

// NewRouter builds the Echo instance with all portal routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	rules := validate.New()
	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, log)
	authGateway := upstream.NewAuthGateway(client)
	shipmentGateway := upstream.NewShipmentGateway(client)
	store := sessionredis.NewStore(rdb, cfg.Session.TTL)

	authService := service.NewAuthService(authGateway, store, domain.RoleTable(cfg.Roles), log)
	catalogService := service.NewCatalogService(shipmentGateway, log)
	shipmentService := service.NewShipmentService(shipmentGateway, catalogService, rules, log)
	trackingService := service.NewTrackingService(shipmentGateway, log)

	authHandler := handler.NewAuthHandler(authService, rules, handler.CookieSettings{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.CookieSecure,
	})
	shipmentHandler := handler.NewShipmentHandler(shipmentService, catalogService)
	trackingHandler := handler.NewTrackingHandler(trackingService, rules)

	e.Use(middleware.Session(store, cfg.Session.CookieName))

	// --- Operational endpoints (no session required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Navigation root ---
	e.GET("/", func(c echo.Context) error {
		if sess, ok := middleware.CurrentSession(c); ok {
			return c.Redirect(http.StatusFound, domain.DefaultView(sess.Role))
		}
		return c.Redirect(http.StatusFound, "/login")
	})

	// --- Public views and auth operations ---
	public := e.Group("", middleware.RedirectAuthenticated())
	public.GET("/login", authHandler.LoginView)
	public.GET("/register", authHandler.RegisterView)

	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)

	// --- Protected views and operations ---
	protected := e.Group("", middleware.RequireAuth())
	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/session", authHandler.Session)
	protected.GET("/shipments/new", shipmentHandler.NewForm)
	protected.POST("/shipments", shipmentHandler.Create)
	protected.GET("/tracking/:code", trackingHandler.Track)

	// --- Admin-only view ---
	admin := e.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	admin.GET("", shipmentHandler.AdminList)

	return e
}
