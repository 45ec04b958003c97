package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/personal-diary/diary-api/docs"
	"github.com/personal-diary/diary-api/internal/api/handler"
	"github.com/personal-diary/diary-api/internal/api/middleware"
	"github.com/personal-diary/diary-api/internal/core/service"
	mongodb "github.com/personal-diary/diary-api/internal/infrastructure/db/mongo"
	redisdb "github.com/personal-diary/diary-api/internal/infrastructure/db/redis"
	"github.com/personal-diary/diary-api/internal/infrastructure/queue"
	"github.com/personal-diary/diary-api/pkg/logger"
)

// Options carries the runtime settings the router needs beyond its stores.
type Options struct {
	JWTSecret        string
	TokenTTL         time.Duration
	LoginMaxAttempts int
	LoginWindow      time.Duration
	AuditDispatcher  *queue.Dispatcher // optional; nil disables the audit trail
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("diary"))

	// --- Dependencies ---
	log := logger.Get()

	tokens := service.NewTokenIssuer(opts.JWTSecret, opts.TokenTTL)
	limiter := redisdb.NewLoginLimiter(rdb, opts.LoginMaxAttempts, opts.LoginWindow)

	var audit service.AuthEventSink
	if opts.AuditDispatcher != nil {
		audit = opts.AuditDispatcher
	}

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokens, limiter, audit, log)
	authHandler := handler.NewAuthHandler(authService)

	entryRepo := mongodb.NewEntryRepository(db)
	entryService := service.NewEntryService(entryRepo, log)
	entryHandler := handler.NewEntryHandler(entryService)

	authMiddleware := middleware.Auth(authService)

	// --- Root info route ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Personal Diary API",
			"status":  "running",
		})
	})

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/me", authHandler.Me)

	// --- Diary routes (token required) ---
	diary := e.Group("/api/diary", authMiddleware)
	diary.POST("/entries", entryHandler.Create)
	diary.GET("/entries", entryHandler.List)
	diary.GET("/entries/:id", entryHandler.Get)
	diary.DELETE("/entries/:id", entryHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
