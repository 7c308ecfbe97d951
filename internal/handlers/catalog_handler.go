package handlers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/neharmenon05/buildathon/internal/data"
	"github.com/neharmenon05/buildathon/internal/locale"
	"github.com/neharmenon05/buildathon/internal/metrics"
	"github.com/neharmenon05/buildathon/internal/models"
	"github.com/neharmenon05/buildathon/internal/store"
)

// CatalogHandler serves the product catalog and dashboard endpoints.
type CatalogHandler struct {
	store  *store.CatalogStore
	logger *zap.Logger
}

func NewCatalogHandler(catalogStore *store.CatalogStore, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{store: catalogStore, logger: logger}
}

// addProductRequest validates a product submission. Name, quantity and
// price are mandatory; prices and quantity must be non-negative.
// Pointer fields distinguish "missing" from an explicit zero.
type addProductRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name" binding:"required"`
	NameHindi     string   `json:"nameHindi"`
	Type          string   `json:"type"`
	Quantity      *float64 `json:"quantity" binding:"required,gte=0"`
	Unit          string   `json:"unit"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	SupplierPrice *float64 `json:"supplierPrice" binding:"omitempty,gte=0"`
}

var productAddedMessage = locale.Text{
	EN: "Product added successfully!",
	HI: "उत्पाद सफलतापूर्वक जोड़ा गया!",
}

// AddProduct appends one product to the catalog. A failed snapshot
// write still returns 201: the product is in memory, and the response
// carries a persist warning instead of losing the entry.
func (h *CatalogHandler) AddProduct(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "name, quantity and price are required and must be non-negative")
		return
	}

	nameHindi := req.NameHindi
	if nameHindi == "" {
		nameHindi = data.HindiName(req.Name)
	}
	productType := req.Type
	if productType == "" {
		productType = "vegetable"
	}
	unit := req.Unit
	if unit == "" {
		unit = "kg"
	}

	product := models.Product{
		ID:            req.ID,
		Name:          req.Name,
		NameHindi:     nameHindi,
		Type:          productType,
		Quantity:      *req.Quantity,
		Unit:          unit,
		Price:         *req.Price,
		SupplierPrice: req.SupplierPrice,
	}

	lang := locale.Parse(c.Query("lang"))
	added, err := h.store.Add(product)
	if err != nil {
		if errors.Is(err, store.ErrPersistFailed) {
			c.JSON(http.StatusCreated, gin.H{
				"product":         added,
				"message":         productAddedMessage.In(lang),
				"persist_warning": "product kept in memory but could not be saved to storage",
			})
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"product": added,
		"message": productAddedMessage.In(lang),
	})
}

// ListProducts returns the catalog in insertion order.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetStats returns the dashboard aggregates. Average price is rounded
// for display, as the dashboard always showed whole rupees.
func (h *CatalogHandler) GetStats(c *gin.Context) {
	products := h.store.Snapshot()
	stats := models.DashboardStats{
		TotalValue:    metrics.TotalValue(products),
		TotalProducts: len(products),
		AvgPrice:      int(math.Round(metrics.AveragePrice(products))),
	}
	c.JSON(http.StatusOK, stats)
}

// GetActionCards returns the fixed recommendations, bilingual fields
// intact so the view can switch language without another request.
func (h *CatalogHandler) GetActionCards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cards": data.ActionCards})
}

// GetCommonProducts returns the quick-select table with the seasonal
// price suggestion per known product.
func (h *CatalogHandler) GetCommonProducts(c *gin.Context) {
	lang := locale.Parse(c.Query("lang"))

	type commonProductEntry struct {
		data.CommonProduct
		CurrentPrice float64 `json:"currentPrice,omitempty"`
		Tip          string  `json:"tip,omitempty"`
	}

	entries := make([]commonProductEntry, 0, len(data.CommonProducts))
	for _, p := range data.CommonProducts {
		entry := commonProductEntry{CommonProduct: p}
		if info, ok := data.Seasonal[p.Key]; ok {
			entry.CurrentPrice = info.CurrentPrice
			entry.Tip = info.Tips.In(lang)
		}
		entries = append(entries, entry)
	}
	c.JSON(http.StatusOK, gin.H{"products": entries})
}
