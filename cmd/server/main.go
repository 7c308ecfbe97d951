package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	config "github.com/neharmenon05/buildathon/configs"
	"github.com/neharmenon05/buildathon/internal/handlers"
	"github.com/neharmenon05/buildathon/internal/logger"
	"github.com/neharmenon05/buildathon/internal/services"
	"github.com/neharmenon05/buildathon/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg := config.LoadConfig()
	development := cfg.Environment == "development"

	appLogger, err := logger.New(cfg.LogLevel, cfg.LogEncoding, development)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	if !development {
		gin.SetMode(gin.ReleaseMode)
	}

	// Snapshot store: one record holding the whole catalog, file by
	// default, Redis for shared deployments.
	var snapshots store.SnapshotStore
	switch cfg.StorageBackend {
	case "redis":
		redisStore, err := store.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.StorageKey)
		if err != nil {
			appLogger.Fatal("could not connect to Redis", zap.Error(err), zap.String("addr", cfg.RedisAddr))
		}
		defer redisStore.Close()
		snapshots = redisStore
		appLogger.Info("using Redis snapshot store", zap.String("addr", cfg.RedisAddr), zap.String("key", cfg.StorageKey))
	default:
		snapshots = store.NewFileStore(cfg.StoragePath)
		appLogger.Info("using file snapshot store", zap.String("path", cfg.StoragePath))
	}

	catalog := store.NewCatalogStore(snapshots, appLogger)
	catalog.Load()

	marketingService := services.NewMarketingService(
		time.Duration(cfg.MarketingDelayMS)*time.Millisecond, cfg.RandomSeed, appLogger)
	advisorService := services.NewAdvisorService(
		time.Duration(cfg.AdvisorDelayMS)*time.Millisecond, cfg.RandomSeed, appLogger)
	voiceService := services.NewVoiceService(
		time.Duration(cfg.VoiceDelayMS)*time.Millisecond, appLogger)

	catalogHandler := handlers.NewCatalogHandler(catalog, appLogger)
	contentHandler := handlers.NewContentHandler(marketingService, advisorService, voiceService, catalog, appLogger)
	trendHandler := handlers.NewTrendHandler(appLogger)

	r := gin.New()
	r.Use(handlers.RequestLogger(appLogger))
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	r.GET("/health", handlers.HealthCheck)

	v1 := r.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.ListProducts)
			products.POST("", catalogHandler.AddProduct)
			products.GET("/export", catalogHandler.ExportProducts)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/stats", catalogHandler.GetStats)
			dashboard.GET("/actions", catalogHandler.GetActionCards)
		}

		v1.POST("/marketing/generate", contentHandler.GenerateMarketing)
		v1.POST("/advisor/analyze", contentHandler.AnalyzeBusiness)
		v1.POST("/voice/transcribe", contentHandler.TranscribeVoice)
		v1.GET("/trends", trendHandler.GetTrends)
		v1.GET("/data/common-products", catalogHandler.GetCommonProducts)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		appLogger.Info("starting SmartBiz Hub API server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("server stopped")
}
