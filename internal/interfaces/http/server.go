// internal/interfaces/http/server.go
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/coupledelight/shop-api/internal/config"
	"github.com/coupledelight/shop-api/internal/domain/cart"
	"github.com/coupledelight/shop-api/internal/domain/order"
	"github.com/coupledelight/shop-api/internal/domain/product"
	"github.com/coupledelight/shop-api/internal/domain/user"
	"github.com/coupledelight/shop-api/internal/interfaces/http/middleware"
	"github.com/coupledelight/shop-api/internal/interfaces/http/routes"
	"github.com/coupledelight/shop-api/internal/pkg/auth"
	"github.com/coupledelight/shop-api/internal/pkg/pdf"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Server represents the HTTP server
type Server struct {
	config      *config.Config
	gin         *gin.Engine
	httpServer  *http.Server
	db          *gorm.DB
	redisClient *redis.Client
	logger      logrus.FieldLogger
	startedAt   time.Time
}

// NewServer creates a new HTTP server instance with middleware and routes set up
func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger logrus.FieldLogger) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		config:      cfg,
		gin:         gin.New(),
		db:          db,
		redisClient: redisClient,
		logger:      logger,
		startedAt:   time.Now(),
	}

	if err := s.gin.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		logger.WithError(err).Warn("Invalid trusted proxies, trusting none")
		_ = s.gin.SetTrustedProxies(nil)
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Infof("🚀 HTTP Server starting on port %s", s.config.Server.Port)
	s.logger.Infof("🌐 API Base URL: http://localhost:%s/api/v1", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("🛑 Shutting down HTTP server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("✅ HTTP server stopped gracefully")
	return nil
}

func (s *Server) setupMiddleware() {
	s.gin.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.logger.WithFields(logrus.Fields{
			"panic":      recovered,
			"request_id": c.GetString(middleware.ContextRequestID),
		}).Error("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}))
	s.gin.Use(middleware.RequestID())
	s.gin.Use(middleware.Logger(s.logger))
	s.gin.Use(middleware.CORS(s.config))
	s.gin.Use(middleware.SecurityHeaders(s.config.IsProduction()))
	s.gin.Use(middleware.RateLimit(s.config.Security.RateLimitPerMinute, s.redisClient, s.logger))
	s.gin.Use(middleware.RequestSizeLimit(s.config.Server.MaxBodyBytes))
	s.gin.Use(middleware.Timeout(s.config.Server.RequestTimeout))
}

func (s *Server) setupRoutes() {
	s.gin.GET("/health", s.healthCheck)
	s.gin.GET("/ready", s.readinessCheck)

	jwtManager := auth.NewJWTManager(s.config)
	deps := routes.Dependencies{
		Products:    product.NewGormRepository(s.db),
		Orders:      order.NewGormRepository(s.db),
		Users:       user.NewGormRepository(s.db),
		CartStorage: cart.NewRedisStorage(s.redisClient, s.config.Cart.TTL),
		Numbers:     order.NewNumberGenerator(),
		Receipts:    pdf.NewService(s.config),
	}

	apiV1 := s.gin.Group("/api/v1")
	routes.SetupRoutes(apiV1, routes.NewHandlers(s.config, deps, jwtManager, s.logger), jwtManager)

	if s.config.IsDevelopment() {
		s.gin.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":     s.config.App.Name + " API",
				"version":     s.config.App.Version,
				"environment": s.config.App.Environment,
				"health":      "/health",
				"endpoints": gin.H{
					"auth":     "/api/v1/auth",
					"products": "/api/v1/products",
					"cart":     "/api/v1/cart",
					"checkout": "/api/v1/checkout",
					"orders":   "/api/v1/orders",
				},
			})
		})
	}
}

// healthCheck reports whether PostgreSQL and Redis are reachable
func (s *Server) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		s.logger.WithError(err).Warn("Database health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "database ping failed",
		})
		return
	}

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.logger.WithError(err).Warn("Redis health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "redis ping failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
	})
}

// readinessCheck reports that the server is accepting requests
func (s *Server) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(s.startedAt).Round(time.Second).String(),
	})
}
