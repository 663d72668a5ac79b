package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/Alvi-C/livingbook-crud-jwt-server/docs" // swagger spec
	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/api/handler"
	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/api/middleware"
	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/service"
	mongodb "github.com/Alvi-C/livingbook-crud-jwt-server/internal/infrastructure/db/mongo"
	redisdb "github.com/Alvi-C/livingbook-crud-jwt-server/internal/infrastructure/db/redis"
	"github.com/Alvi-C/livingbook-crud-jwt-server/pkg/logger"
)

// sessionTTL is the fixed lifetime of a session token and its cookie.
const sessionTTL = time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("livingbook"))

	// --- Dependencies ---
	denylist := redisdb.NewTokenDenylist(rdb)
	sessionService := service.NewSessionService(jwtSecret, sessionTTL, denylist, log)
	bookingService := service.NewBookingService(mongodb.NewBookingRepository(db), log)
	propertyService := service.NewPropertyService(
		mongodb.NewPropertyRepository(db),
		mongodb.NewFeaturedRepository(db),
		log,
	)
	userService := service.NewUserService(mongodb.NewUserRepository(db), log)

	sessionHandler := handler.NewSessionHandler(sessionService, sessionTTL, log)
	bookingHandler := handler.NewBookingHandler(bookingService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	sessionAuth := middleware.SessionAuth(sessionService)

	// --- Liveness / observability ---
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Sessions ---
	e.POST("/jwt", sessionHandler.Issue)
	e.POST("/logout", sessionHandler.Logout)

	// --- Bookings ---
	e.GET("/bookings", bookingHandler.List, sessionAuth)
	e.POST("/bookings", bookingHandler.Create)
	e.PUT("/bookings/:id", bookingHandler.UpdateDate, sessionAuth)

	// --- Properties ---
	e.GET("/properties", propertyHandler.List)
	e.POST("/properties", propertyHandler.Create)
	e.GET("/properties/:id", propertyHandler.Get)
	e.PUT("/properties/:id", propertyHandler.Update)
	e.DELETE("/properties/:id", propertyHandler.Delete)
	e.GET("/featured", propertyHandler.Featured)

	// --- Users ---
	e.GET("/users", userHandler.List)
	e.POST("/users", userHandler.Register)

	return e
}
