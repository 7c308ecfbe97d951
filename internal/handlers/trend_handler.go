package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/neharmenon05/buildathon/internal/data"
	"github.com/neharmenon05/buildathon/internal/locale"
)

// TrendHandler serves the static weekly-trend dashboard.
type TrendHandler struct {
	logger *zap.Logger
}

func NewTrendHandler(logger *zap.Logger) *TrendHandler {
	return &TrendHandler{logger: logger}
}

// GetTrends returns the trend dashboard payload: trending products with
// Hindi display names, the weekly insight lines and the market update,
// resolved for the requested language.
func (h *TrendHandler) GetTrends(c *gin.Context) {
	lang := locale.Parse(c.Query("lang"))

	type trendEntry struct {
		Product      string  `json:"product"`
		ProductHindi string  `json:"productHindi"`
		Demand       string  `json:"demand"`
		PriceMin     float64 `json:"priceMin"`
		PriceMax     float64 `json:"priceMax"`
		Season       string  `json:"season"`
	}

	products := make([]trendEntry, 0, len(data.TrendingProducts))
	for _, t := range data.TrendingProducts {
		products = append(products, trendEntry{
			Product:      t.Product,
			ProductHindi: data.HindiName(t.Product),
			Demand:       t.Demand,
			PriceMin:     t.PriceRange.Min,
			PriceMax:     t.PriceRange.Max,
			Season:       t.Season,
		})
	}

	insights := make([]string, 0, len(data.WeeklyInsights))
	for _, insight := range data.WeeklyInsights {
		insights = append(insights, insight.In(lang))
	}

	c.JSON(http.StatusOK, gin.H{
		"products":     products,
		"insights":     insights,
		"marketUpdate": data.MarketUpdate.In(lang),
		"marketAlert":  data.MarketAlert.In(lang),
		"updated":      time.Now().Format("2006-01-02"),
	})
}
