package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/storefront"
	"github.com/Modeva-Ecommerce/modeva-storefront/logger"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/repository"
	"github.com/Modeva-Ecommerce/modeva-storefront/routes/ecommerce_routes"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatalf("❌ Failed to load configuration: %v", err)
	}
	log := logger.Init(cfg.LoggerConfig())

	// Connect to DB
	if err := config.InitDB(cfg); err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer config.CloseDB()

	// Redis only backs the rate limiter; the storefront still serves without it
	if err := config.ConnectRedis(cfg); err != nil {
		log.Warnf("⚠️ %v, rate limiting disabled", err)
	}

	catalogSource := &repository.PostgresCatalog{
		Products:   repository.NewProductRepository(config.CmsGorm),
		Categories: repository.NewCategoryRepository(config.CmsDB),
	}
	catalogService := services.NewCatalogService(catalogSource, log,
		services.WithCache(cache.NewSnapshotCache(cfg.CatalogCacheTTL)),
		services.WithSorter(catalog.NewSorter(cfg.Locale())),
	)
	handler := storefront.NewHandler(catalogService, log, cfg.DefaultPageSize, cfg.MaxPageSize)

	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsCfg))
	router.Use(middleware.PrometheusMiddleware())
	router.Use(middleware.RequestLogger(log))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := config.WithCustomTimeout(2 * time.Second)
		defer cancel()
		if err := catalogSource.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Database unreachable"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "OK", nil))
	})

	// Public storefront, rate limited per IP and route
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(config.RedisClient, cfg.RateLimitMax, cfg.RateLimitWindow, log))
	ecommerce_routes.SetupStorefrontRoutes(api, handler)
	log.Info("✅ Storefront routes registered")

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("🚀 Storefront is running on http://localhost%s", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down storefront...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("❌ Graceful shutdown failed: %v", err)
	}
	if config.RedisClient != nil {
		_ = config.RedisClient.Close()
	}
}
