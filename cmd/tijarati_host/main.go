package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tijarati/tijarati_host/internal/bridge"
	"github.com/tijarati/tijarati_host/internal/core/services"
	"github.com/tijarati/tijarati_host/internal/handlers"
	"github.com/tijarati/tijarati_host/internal/middleware"
	"github.com/tijarati/tijarati_host/internal/platform/config"
	"github.com/tijarati/tijarati_host/internal/platform/device"
	"github.com/tijarati/tijarati_host/internal/platform/notify"
	"github.com/tijarati/tijarati_host/internal/repositories/database/sqlite"
)

const version = "1.0.0"

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the record store and bring its schema up to date.
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to open record store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := sqlite.Migrate(context.Background(), db, logger); err != nil {
		logger.Error("Failed to migrate record store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Record store ready", slog.String("path", cfg.DBPath))

	repos := sqlite.NewRepositoryContainer(db, logger)

	deviceSvc, err := device.NewService(cfg.DataDir, logger)
	if err != nil {
		logger.Error("Failed to initialize device service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	scheduler := notify.NewTimerScheduler(logger, nil)
	serviceContainer := services.NewServiceContainer(repos, scheduler, deviceSvc, logger)

	bridgeHandler := bridge.NewHandler(serviceContainer, logger)
	bridgeHandler.Exit = func() {
		logger.Info("Exit requested over the bridge; shutting down")
		os.Exit(0)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, bridgeHandler, version)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}

	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = cfg.AllowedOrigins
	return c
}
