package main

import (
	"context" // context package is needed for Redis operations
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event_manager/internal/api"     // Custom package for API handlers
	"event_manager/internal/cache"   // Redis list cache
	"event_manager/internal/config"  // Custom package for configuration
	"event_manager/internal/service" // Core operations
	"event_manager/internal/session" // Session manager
	"event_manager/internal/store"   // Database access

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	config.SetupLogger(cfg.LogLevel, cfg.LogFormat)

	db, err := store.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	// Create missing tables so a fresh database works out of the box
	if err := store.Migrate(db); err != nil {
		logrus.Fatalf("failed to migrate DB: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})
	// Test Redis connection
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	eventStore := store.NewEventStore(db)
	listCache := cache.New(redisClient, cfg.CacheTTL)
	router := api.NewRouter(api.Deps{
		Accounts: service.NewAccounts(
			store.NewAccountStore(db, cfg.BcryptCost),
			session.NewManager(redisClient, cfg.JWTSecret, cfg.SessionTTL),
			cfg.AllowAdminSignup,
		),
		Events:        service.NewEvents(eventStore, listCache),
		Registrations: service.NewRegistrations(store.NewRegistrationStore(db), eventStore, listCache),
		DB:            db,
		Redis:         redisClient,
		SessionTTL:    cfg.SessionTTL,
		SecureCookies: cfg.IsProd,
		LoginRate:     cfg.LoginRate,
		LoginBurst:    cfg.LoginBurst,
	})
	// Set trusted proxies for Gin
	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logrus.WithField("port", cfg.AppPort).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logrus.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("shutdown error: %v", err)
	}
	_ = redisClient.Close()
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logrus.Info("Server stopped")
}
