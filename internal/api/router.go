package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/artisio/marketplace-api/internal/api/handler"
	"github.com/artisio/marketplace-api/internal/api/middleware"
	"github.com/artisio/marketplace-api/internal/auth"
	"github.com/artisio/marketplace-api/internal/core/service"
	"github.com/artisio/marketplace-api/internal/infrastructure/config"
	mongostore "github.com/artisio/marketplace-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The view recorder is built by the caller so its lifecycle (start, drain,
// stop) stays with the process, not with the HTTP layer.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, views service.ViewRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	artworkRepo := mongostore.NewArtworkRepository(db)
	orderRepo := mongostore.NewOrderRepository(db)

	tokens := auth.NewTokenService(cfg.JWTSecret, auth.DefaultTokenTTL)
	carrier := auth.NewSessionCarrier(cfg.Production())
	gate := auth.NewGate(tokens, userRepo, log)
	links := service.NewLinkValidator(cfg.AssetCloud)

	authService := service.NewAuthService(userRepo, tokens, log)
	artworkService := service.NewArtworkService(artworkRepo, links, views, log)
	orderService := service.NewOrderService(orderRepo, log)
	profileService := service.NewProfileService(userRepo, links, views, log)

	authHandler := handler.NewAuthHandler(authService, carrier)
	artworkHandler := handler.NewArtworkHandler(artworkService)
	orderHandler := handler.NewOrderHandler(orderService)
	profileHandler := handler.NewProfileHandler(profileService)

	protected := middleware.Auth(carrier, gate)
	anonymous := middleware.OptionalAuth(carrier, gate)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// --- Listing routes (owner-scoped) ---
	e.POST("/image", artworkHandler.Create, protected)
	e.GET("/image/:id", artworkHandler.Get, protected)
	e.PATCH("/image/:id", artworkHandler.Update, protected)
	e.DELETE("/image/:id", artworkHandler.Delete, protected)
	e.GET("/images", artworkHandler.ListOwn, protected)

	// --- Public storefront ---
	e.GET("/gallery", artworkHandler.Browse)
	e.GET("/gallery/:id", artworkHandler.View, anonymous)
	e.GET("/artists/:id", profileHandler.ViewArtist, anonymous)

	// --- Profile ---
	e.GET("/me", profileHandler.Me, protected)
	e.PATCH("/me", profileHandler.Update, protected)

	// --- Orders ---
	e.POST("/orders", orderHandler.Place, protected)
	e.GET("/orders", orderHandler.ListOwn, protected)

	// --- Ops ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
