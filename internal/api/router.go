package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusauth/auth-api/internal/api/handler"
	"github.com/campusauth/auth-api/internal/api/middleware"
	"github.com/campusauth/auth-api/internal/core/domain"
	"github.com/campusauth/auth-api/internal/core/service"
	mongodb "github.com/campusauth/auth-api/internal/infrastructure/db/mongo"
	redisdb "github.com/campusauth/auth-api/internal/infrastructure/db/redis"
	"github.com/campusauth/auth-api/internal/pkg/config"
)

// NewRouter wires repositories, services, and handlers and returns the Echo
// instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	userCache := redisdb.NewUserCache(rdb, log)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo, userCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	authRequired := middleware.Auth(tokens)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)

	// --- User routes ---
	e.GET("/users", userHandler.List)
	e.GET("/users/token", userHandler.CheckToken, authRequired)
	e.GET("/users/:id", userHandler.Get)
	e.POST("/users", userHandler.Register)
	e.PUT("/users", userHandler.UpdateSelf, authRequired)
	e.PUT("/users/admin", userHandler.UpdateAsAdmin, authRequired, adminOnly)
	e.DELETE("/users", userHandler.DeleteSelf, authRequired)
	e.DELETE("/users/admin/:id", userHandler.DeleteAsAdmin, authRequired, adminOnly)

	// --- Health probes and ops endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/", healthHandler.Check)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
