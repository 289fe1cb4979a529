// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coupledelight/shop-api/internal/config"
	"github.com/coupledelight/shop-api/internal/infrastructure/database/postgres"
	"github.com/coupledelight/shop-api/internal/infrastructure/database/redis"
	"github.com/coupledelight/shop-api/internal/interfaces/http"
	"github.com/coupledelight/shop-api/internal/pkg/logger"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	// prices go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	appLogger.Infof("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	db, err := postgres.NewConnection(cfg, appLogger)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	redisClient, err := redis.NewConnection(cfg, appLogger)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	healthCtx, cancelHealth := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.Health(healthCtx); err != nil {
		appLogger.WithError(err).Fatal("Database health check failed")
	}
	if err := redisClient.Health(healthCtx); err != nil {
		appLogger.WithError(err).Fatal("Redis health check failed")
	}
	cancelHealth()

	migration := postgres.NewMigration(db.GetDB(), appLogger)
	if err := migration.RunAutoMigrations(); err != nil {
		appLogger.WithError(err).Fatal("Database migration failed")
	}
	if err := migration.CreateIndexes(); err != nil {
		appLogger.WithError(err).Warn("Index creation failed")
	}

	if cfg.IsDevelopment() {
		if err := migration.SeedInitialData(); err != nil {
			appLogger.WithError(err).Warn("Data seeding failed")
		}
		migration.GetTableInfo()
	}

	appLogger.Info("✅ All systems operational!")

	server := http.NewServer(cfg, db.GetDB(), redisClient.GetClient(), appLogger)

	go func() {
		if err := server.Start(); err != nil {
			appLogger.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("👋 Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		appLogger.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	appLogger.Info("✅ Server shutdown completed")
}
