package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookline-schedule/config"
	deliveryHttp "bookline-schedule/internal/delivery/http"
	"bookline-schedule/internal/delivery/http/handler"
	"bookline-schedule/internal/delivery/http/middleware"
	"bookline-schedule/internal/infrastructure/cache"
	"bookline-schedule/internal/infrastructure/upstream"
	"bookline-schedule/internal/repository"
	"bookline-schedule/internal/usecase"
	"bookline-schedule/pkg/jwt"
	"bookline-schedule/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize Redis. The cache only backs stale fallback reads, so a
	// missing Redis degrades the service instead of failing startup.
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.Warnf("Redis unavailable, schedule cache disabled: %v", err)
		redisClient = nil
	} else {
		logrus.Info("Redis connected successfully")
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize upstream client and repository
	httpClient := upstream.NewHTTPClient(cfg.Upstream)
	scheduleRepo := repository.NewUpstreamScheduleRepository(httpClient, cfg.Upstream.BaseURL, cfg.Upstream.APIKey, log)

	// Initialize cache
	scheduleCache := cache.NewScheduleCache(redisClient, cfg.Schedule.CacheTTL)

	// Initialize usecases
	scheduleUsecase := usecase.NewScheduleUsecase(
		log,
		scheduleRepo,
		scheduleCache,
		cfg.Upstream.ProviderID,
		cfg.Schedule.OptimisticUpdates,
		cfg.Schedule.SlotHeight,
	)

	// Initialize handlers
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(scheduleUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, cfg.JWT.Secret)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(scheduleHandler, appointmentHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (redis, etc.)
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
