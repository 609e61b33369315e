package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coursepage/site/internal/cache"
	"github.com/coursepage/site/internal/config"
	"github.com/coursepage/site/internal/handlers"
	"github.com/coursepage/site/internal/locale"
	"github.com/coursepage/site/internal/logger"
	"github.com/coursepage/site/internal/models"
	"github.com/coursepage/site/internal/render"
	"github.com/coursepage/site/internal/repositories"
	"github.com/coursepage/site/internal/server"
	"github.com/coursepage/site/internal/services"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "coursepage:"

// @title Course Page API
// @version 1.0
// @description JSON view of the localized course page content

// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting course page server",
		zap.Strings("locales", localeStrings(cfg.Locales.Supported)),
		zap.String("default_locale", string(cfg.Locales.Default)),
	)

	// Initialize cache store
	store, closeStore, err := newStore(cfg)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize cache store", zap.Error(err))
	}
	defer closeStore()

	revalidator := cache.NewRevalidator(store, cache.Options{
		Window:      cfg.Cache.Revalidate,
		StaleGrace:  cfg.Cache.StaleGrace,
		LoadTimeout: cfg.ContentAPI.Timeout,
	}, logger.Logger)

	// Initialize repositories
	courseRepo, err := repositories.NewCourseRepository(repositories.ContentAPIOptions{
		URL:            cfg.ContentAPI.URL,
		PlatformHeader: cfg.ContentAPI.PlatformHeader,
		Platform:       cfg.ContentAPI.Platform,
		Timeout:        cfg.ContentAPI.Timeout,
	}, nil, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize content api client", zap.Error(err))
	}

	// Initialize services
	courseService := services.NewCourseService(courseRepo, revalidator, cfg.Locales.Supported, logger.Logger)

	// Initialize renderer
	renderer, err := render.NewRenderer(cfg.Locales.Supported, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize renderer", zap.Error(err))
	}

	resolver := locale.NewResolver(cfg.Locales.Supported, cfg.Locales.Default, cfg.Locales.ReservedPrefixes)

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(courseService, renderer, resolver, logger.Logger)
	apiHandler := handlers.NewAPIHandler(courseService, resolver, logger.Logger)

	// Setup router
	r := server.NewRouter(server.Options{
		Pages:             pageHandler,
		API:               apiHandler,
		Resolver:          resolver,
		Logger:            logger.Logger,
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		StaticDir:         cfg.StaticDir,
	})

	// Start server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.ContentAPI.Timeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Let background cache refreshes finish before the store is closed
	revalidator.Wait()

	logger.Logger.Info("Server exited")
}

// newStore returns a Redis backed store when CACHE_REDIS_ADDR is set and an in-process one otherwise
func newStore(cfg *config.Config) (cache.Store[*models.CourseDocument], func(), error) {
	if cfg.Cache.RedisAddr == "" {
		logger.Logger.Info("Using in-memory course cache")
		return cache.NewMemoryStore[*models.CourseDocument](), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rdb, err := cache.NewRedisClient(ctx, cache.RedisConfig{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})
	if err != nil {
		return nil, nil, err
	}

	logger.Logger.Info("Using Redis course cache", zap.String("addr", cfg.Cache.RedisAddr))

	// entries outlive the stale grace so an expired entry is still observable as expired
	ttl := 2 * (cfg.Cache.Revalidate + cfg.Cache.StaleGrace)
	closeFn := func() {
		if err := rdb.Close(); err != nil {
			logger.Logger.Warn("Failed to close Redis client", zap.Error(err))
		}
	}
	return cache.NewRedisStore[*models.CourseDocument](rdb, cacheKeyPrefix, ttl), closeFn, nil
}

func localeStrings(locales []models.Locale) []string {
	out := make([]string, len(locales))
	for i, l := range locales {
		out[i] = string(l)
	}
	return out
}
