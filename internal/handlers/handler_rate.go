package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/usd_totals/internal/core/ports/services"
	"github.com/SscSPs/usd_totals/internal/dto"
	"github.com/SscSPs/usd_totals/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests related to the exchange rate table.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// registerRateRoutes registers routes related to exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.POST("", h.createRate)
		rates.GET("", h.listRates)
		rates.POST("/import", h.importRates)
	}
}

// createRate godoc
// @Summary Add an exchange rate
// @Description Appends a directed conversion edge to the rate table
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateRateRequest true "Rate details"
// @Success 201 {object} dto.RateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create rate"
// @Router /rates [post]
func (h *rateHandler) createRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create rate",
		slog.String("from", req.From),
		slog.String("to", req.To),
		slog.String("conversion", req.Conversion.String()),
	)

	rate, err := h.rateService.CreateRate(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create rate")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRateResponse(*rate))
}

// listRates godoc
// @Summary List exchange rates
// @Description Returns the rate table in catalog order
// @Tags rates
// @Produce  json
// @Success 200 {array} dto.RateResponse
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Router /rates [get]
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRateResponse(rates))
}

// importRates godoc
// @Summary Import exchange rates
// @Description Appends every rate element of an XML rates document, in document order
// @Tags rates
// @Accept  xml
// @Produce  json
// @Success 201 {object} dto.ImportResponse
// @Failure 400 {object} map[string]string "Malformed document or invalid rate"
// @Failure 413 {object} map[string]string "Document too large"
// @Failure 500 {object} map[string]string "Failed to import rates"
// @Router /rates/import [post]
func (h *rateHandler) importRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	n, err := h.rateService.ImportRates(c.Request.Context(), body)
	if err != nil {
		respondWithError(c, logger, err, "Failed to import rates")
		return
	}

	logger.Info("Rates imported", slog.Int("count", n))
	c.JSON(http.StatusCreated, dto.ImportResponse{Imported: n})
}
