package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/neharmenon05/buildathon/internal/data"
	"github.com/neharmenon05/buildathon/internal/locale"
	"github.com/neharmenon05/buildathon/internal/metrics"
	"github.com/neharmenon05/buildathon/internal/services"
	"github.com/neharmenon05/buildathon/internal/store"
)

// ContentHandler serves the generated-content endpoints: marketing
// captions, business advice and voice transcription.
type ContentHandler struct {
	marketing *services.MarketingService
	advisor   *services.AdvisorService
	voice     *services.VoiceService
	store     *store.CatalogStore
	logger    *zap.Logger
}

func NewContentHandler(
	marketing *services.MarketingService,
	advisor *services.AdvisorService,
	voice *services.VoiceService,
	catalogStore *store.CatalogStore,
	logger *zap.Logger,
) *ContentHandler {
	return &ContentHandler{
		marketing: marketing,
		advisor:   advisor,
		voice:     voice,
		store:     catalogStore,
		logger:    logger,
	}
}

type generateRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GenerateMarketing produces a WhatsApp caption pair for one catalog
// product. 409 while a previous generation is still pending.
func (h *ContentHandler) GenerateMarketing(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "product_id is required")
		return
	}
	product, ok := h.store.FindByID(req.ProductID)
	if !ok {
		respondError(c, http.StatusNotFound, "product not found")
		return
	}

	content, err := h.marketing.Generate(c.Request.Context(), product)
	if err != nil {
		if errors.Is(err, services.ErrGenerationInFlight) {
			respondError(c, http.StatusConflict, "a generation is already in progress")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
		"content": content,
	})
}

// AnalyzeBusiness produces the advice bundle plus the margin figures
// the advisor view shows next to each product.
func (h *ContentHandler) AnalyzeBusiness(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "product_id is required")
		return
	}
	product, ok := h.store.FindByID(req.ProductID)
	if !ok {
		respondError(c, http.StatusNotFound, "product not found")
		return
	}

	advice, err := h.advisor.Analyze(c.Request.Context(), product)
	if err != nil {
		if errors.Is(err, services.ErrGenerationInFlight) {
			respondError(c, http.StatusConflict, "an analysis is already in progress")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response := gin.H{
		"product":    product,
		"advice":     advice,
		"marginTier": metrics.MarginTier(product),
		"schemes":    data.GovernmentSchemes,
	}
	if margin, ok := metrics.MarginPercent(product); ok {
		response["marginPercent"] = margin
	}
	c.JSON(http.StatusOK, response)
}

type transcribeRequest struct {
	Language string `json:"language"`
}

// TranscribeVoice returns the simulated transcript and assistant reply
// for the requested language.
func (h *ContentHandler) TranscribeVoice(c *gin.Context) {
	var req transcribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	lang := locale.Parse(req.Language)
	result, err := h.voice.Transcribe(c.Request.Context(), lang)
	if err != nil {
		if errors.Is(err, services.ErrGenerationInFlight) {
			respondError(c, http.StatusConflict, "a transcription is already in progress")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}
