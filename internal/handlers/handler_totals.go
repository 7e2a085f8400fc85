package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/usd_totals/internal/core/ports/services"
	"github.com/SscSPs/usd_totals/internal/dto"
	"github.com/SscSPs/usd_totals/internal/middleware"
	"github.com/gin-gonic/gin"
)

// totalsHandler serves conversion chains and SKU totals.
type totalsHandler struct {
	totalsService portssvc.TotalsSvcFacade
}

func newTotalsHandler(ts portssvc.TotalsSvcFacade) *totalsHandler {
	return &totalsHandler{totalsService: ts}
}

// registerTotalsRoutes registers conversion and aggregation routes.
func registerTotalsRoutes(rg *gin.RouterGroup, totalsService portssvc.TotalsSvcFacade) {
	h := newTotalsHandler(totalsService)

	rg.GET("/conversions/:currency", h.getConversionPath)
	rg.GET("/skus/:sku/total", h.getSKUTotal)
	rg.POST("/totals", h.computeTotal)
}

// getConversionPath godoc
// @Summary Resolve a conversion chain
// @Description Returns the chain of stored rates used to convert a currency to USD
// @Tags conversions
// @Produce  json
// @Param   currency path string true "Currency code"
// @Success 200 {object} dto.ConversionPathResponse
// @Failure 422 {object} map[string]string "No conversion path"
// @Failure 500 {object} map[string]string "Failed to resolve conversion path"
// @Router /conversions/{currency} [get]
func (h *totalsHandler) getConversionPath(c *gin.Context) {
	currency := c.Param("currency")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency", currency))

	chain, err := h.totalsService.ConversionPath(c.Request.Context(), currency)
	if err != nil {
		respondWithError(c, logger, err, "Failed to resolve conversion path")
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionPathResponse(currency, chain))
}

// getSKUTotal godoc
// @Summary Total a SKU in USD
// @Description Converts every stored transaction of the SKU to USD and sums them
// @Tags totals
// @Produce  json
// @Param   sku path string true "SKU"
// @Success 200 {object} dto.SKUTotalResponse
// @Failure 422 {object} map[string]string "A transaction has no conversion path"
// @Failure 500 {object} map[string]string "Failed to total SKU"
// @Router /skus/{sku}/total [get]
func (h *totalsHandler) getSKUTotal(c *gin.Context) {
	sku := c.Param("sku")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("sku", sku))

	total, err := h.totalsService.SKUTotal(c.Request.Context(), sku)
	if err != nil {
		respondWithError(c, logger, err, "Failed to total SKU")
		return
	}

	c.JSON(http.StatusOK, dto.ToSKUTotalResponse(total))
}

// computeTotal godoc
// @Summary Total a SKU from inline data
// @Description Totals the SKU over the rates and transactions in the body without storing anything
// @Tags totals
// @Accept  json
// @Produce  json
// @Param   request body dto.ComputeTotalRequest true "Rates, transactions and SKU"
// @Success 200 {object} dto.SKUTotalResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 422 {object} map[string]string "A transaction has no conversion path"
// @Router /totals [post]
func (h *totalsHandler) computeTotal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ComputeTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ComputeTotal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	total, err := h.totalsService.ComputeTotal(c.Request.Context(), req.ToDomainRates(), req.ToDomainTransactions(), req.SKU)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute total")
		return
	}

	c.JSON(http.StatusOK, dto.ToSKUTotalResponse(total))
}
