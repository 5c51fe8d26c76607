package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/servnect/marketplace-api/internal/api/handler"
	"github.com/servnect/marketplace-api/internal/api/middleware"
	"github.com/servnect/marketplace-api/internal/core/domain"
	"github.com/servnect/marketplace-api/internal/core/service"
	"github.com/servnect/marketplace-api/internal/core/token"
	mongorepo "github.com/servnect/marketplace-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/servnect/marketplace-api/internal/infrastructure/db/redis"
	"github.com/servnect/marketplace-api/internal/pkg/config"
	"github.com/servnect/marketplace-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, issuer *token.Issuer) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("servnect"))

	// --- Repositories ---
	users := mongorepo.NewUserRepository(db)
	experts := mongorepo.NewExpertRepository(db)
	services := mongorepo.NewServiceRepository(db)
	bookings := mongorepo.NewBookingRepository(db)

	// --- Services ---
	throttle := redisinfra.NewLoginLimiter(rdb, cfg.LoginMaxFailures, cfg.LoginWindow)
	authService := service.NewAuthService(users, experts, issuer, throttle, log)
	identityService := service.NewIdentityService(users, experts)
	profileService := service.NewProfileService(users, experts)
	catalogService := service.NewCatalogService(services, experts, log)
	bookingService := service.NewBookingService(bookings, experts, users, services, log)
	adminService := service.NewAdminService(users, experts, services, bookings, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, cfg.TokenTTL, cfg.IsProduction())
	profileHandler := handler.NewProfileHandler(profileService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	adminHandler := handler.NewAdminHandler(adminService)

	// Session resolution runs on every request; guards decide per route.
	e.Use(middleware.Session(issuer, identityService))

	requireUser := middleware.RequireKind(domain.KindUser)
	requireExpert := middleware.RequireKind(domain.KindExpert)
	requireAdmin := middleware.RequireKind(domain.KindAdmin)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/user/register", authHandler.RegisterUser)
	auth.POST("/user/login", authHandler.LoginUser)
	auth.POST("/user/logout", authHandler.Logout)
	auth.POST("/expert/register", authHandler.RegisterExpert)
	auth.POST("/expert/login", authHandler.LoginExpert)
	auth.POST("/expert/logout", authHandler.Logout)

	// --- Profiles ---
	e.GET("/users/me", profileHandler.GetUserMe, requireUser)
	e.PUT("/users/me", profileHandler.UpdateUserMe, requireUser)
	e.GET("/experts/me", profileHandler.GetExpertMe, requireExpert)
	e.PUT("/experts/me", profileHandler.UpdateExpertMe, requireExpert)
	e.GET("/experts", profileHandler.ListExperts)

	// --- Service catalog ---
	e.GET("/services", serviceHandler.List)
	e.POST("/services", serviceHandler.Create, requireExpert)
	e.GET("/services/me", serviceHandler.ListMine, requireExpert)

	// --- Bookings ---
	e.POST("/bookings", bookingHandler.Create, requireUser)
	e.GET("/bookings/client", bookingHandler.ListForClient, requireUser)
	e.GET("/bookings/expert", bookingHandler.ListForExpert, requireExpert)
	e.PUT("/bookings/:id/status", bookingHandler.UpdateStatus, requireExpert)

	// --- Admin panel ---
	admin := e.Group("/admin", requireAdmin)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/bookings", adminHandler.ListBookings)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// EnsureIndexes creates all collection indexes. Called once at boot before
// the server starts accepting traffic.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongorepo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongorepo.NewExpertRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongorepo.NewServiceRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongorepo.NewBookingRepository(db).EnsureIndexes(ctx)
}
