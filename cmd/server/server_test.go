package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	config "github.com/neharmenon05/buildathon/configs"
	"github.com/neharmenon05/buildathon/internal/handlers"
	"github.com/neharmenon05/buildathon/internal/services"
	"github.com/neharmenon05/buildathon/internal/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestApplicationSetup(t *testing.T) {
	cfg := config.LoadConfig()
	assert.NotNil(t, cfg, "Config should not be nil")

	logger := zap.NewNop()

	catalog := store.NewCatalogStore(store.NewMemoryStore(), logger)
	assert.NotNil(t, catalog, "CatalogStore should not be nil")

	marketingService := services.NewMarketingService(0, cfg.RandomSeed, logger)
	assert.NotNil(t, marketingService, "MarketingService should not be nil")

	advisorService := services.NewAdvisorService(0, cfg.RandomSeed, logger)
	assert.NotNil(t, advisorService, "AdvisorService should not be nil")

	voiceService := services.NewVoiceService(0, logger)
	assert.NotNil(t, voiceService, "VoiceService should not be nil")

	catalogHandler := handlers.NewCatalogHandler(catalog, logger)
	assert.NotNil(t, catalogHandler, "CatalogHandler should not be nil")

	contentHandler := handlers.NewContentHandler(marketingService, advisorService, voiceService, catalog, logger)
	assert.NotNil(t, contentHandler, "ContentHandler should not be nil")

	trendHandler := handlers.NewTrendHandler(logger)
	assert.NotNil(t, trendHandler, "TrendHandler should not be nil")
}

func TestRouterSetup(t *testing.T) {
	r := gin.New()

	r.GET("/health", handlers.HealthCheck)

	v1 := r.Group("/api/v1")
	{
		trendHandler := handlers.NewTrendHandler(zap.NewNop())
		v1.GET("/trends", trendHandler.GetTrends)
	}

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/api/v1/trends", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
