package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/truongn999/ShortLink/internal/config"
	"github.com/truongn999/ShortLink/internal/geo"
	"github.com/truongn999/ShortLink/internal/handler"
	"github.com/truongn999/ShortLink/internal/logger"
	"github.com/truongn999/ShortLink/internal/middleware"
	"github.com/truongn999/ShortLink/internal/repository/postgres"
	redisrepo "github.com/truongn999/ShortLink/internal/repository/redis"
	"github.com/truongn999/ShortLink/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := logger.Initialize(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		OutputPath: cfg.Log.OutputPath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	slogger := logger.Get()
	slogger.Info("Starting ShortLink service",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	dbPool, err := setupDatabase(cfg)
	if err != nil {
		slogger.Error("Failed to setup database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	redisClient, err := setupRedis(cfg)
	if err != nil {
		slogger.Error("Failed to setup redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	linkRepo := postgres.NewLinkRepository(dbPool)
	clickRepo := postgres.NewClickRepository(dbPool)
	linkCache := redisrepo.NewLinkCache(redisClient)
	dedupStore := redisrepo.NewDedupStore(redisClient, cfg.Redirect.DedupTTL)
	geoClient := geo.NewClient(cfg.Geo.Endpoint, cfg.Geo.Timeout)

	resolver := service.NewResolver(linkRepo, linkCache, cfg.Redirect.ResolveTimeout, cfg.Redirect.CacheTTL)
	redirectService := service.NewRedirectService(resolver, linkRepo, clickRepo, dedupStore, geoClient)
	linkService := service.NewLinkService(linkRepo, clickRepo, linkCache)

	redirectHandler := handler.NewRedirectHandler(redirectService)
	linkHandler := handler.NewLinkHandler(linkService, cfg.Server.BaseURL)
	analyticsHandler := handler.NewAnalyticsHandler(linkService)
	healthHandler := handler.NewHealthHandler(dbPool, redisClient)

	router := setupRouter(redirectHandler, linkHandler, analyticsHandler, healthHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slogger.Info("Server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slogger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	gracefulShutdown(srv, cfg.Server.ShutdownTimeout, dbPool, redisClient, slogger)
}

func setupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = cfg.Database.ConnMaxLifetime
	poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

	return pgxpool.NewWithConfig(context.Background(), poolConfig)
}

func setupRedis(cfg *config.Config) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		MaxRetries:   cfg.Redis.MaxRetries,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return redisClient, nil
}

func setupRouter(
	redirectHandler *handler.RedirectHandler,
	linkHandler *handler.LinkHandler,
	analyticsHandler *handler.AnalyticsHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.GET("/healthz", healthHandler.Healthz)
	router.GET("/readyz", healthHandler.Readyz)

	api := router.Group("/api")
	{
		api.POST("/links", linkHandler.Create)
		api.GET("/links", linkHandler.List)
		api.PATCH("/links/:id/active", linkHandler.SetActive)
		api.DELETE("/links/:id", linkHandler.Delete)

		api.GET("/analytics/:shortCode", analyticsHandler.GetAnalytics)
		api.GET("/analytics/:shortCode/clicks", analyticsHandler.GetClickHistory)
	}

	// Wildcard redirect route; registered last so every named route wins.
	router.GET("/:shortCode", redirectHandler.Redirect)

	return router
}

func gracefulShutdown(srv *http.Server, timeout time.Duration, dbPool *pgxpool.Pool, redisClient *redis.Client, log *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", "error", err)
	}

	dbPool.Close()
	log.Info("Database connection closed")

	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis", "error", err)
	}

	log.Info("Graceful shutdown completed")
}
