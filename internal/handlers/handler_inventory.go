package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/bizbooks/bizbooks_app/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// inventoryHandler handles HTTP requests related to inventory reports
type inventoryHandler struct {
	inventoryService portssvc.InventoryReportingService
}

// newInventoryHandler creates a new inventoryHandler
func newInventoryHandler(is portssvc.InventoryReportingService) *inventoryHandler {
	return &inventoryHandler{
		inventoryService: is,
	}
}

// RegisterInventoryRoutes registers routes related to inventory reports
func RegisterInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventoryReportingService) {
	h := newInventoryHandler(inventoryService)

	inventoryGroup := rg.Group("/inventory")
	{
		inventoryGroup.GET("/stock-aging", h.getStockAging)
		inventoryGroup.GET("/valuation", h.getValuation)
	}
}

// getStockAging godoc
// @Summary Generate stock aging report
// @Description Buckets active lots by age into 0-30, 31-60, 61-90 and 90+ days, summing quantity * cost price per bucket
// @Tags inventory
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} dto.StockAgingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden (User not authorized)"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /businesses/{business_id}/inventory/stock-aging [get]
func (h *inventoryHandler) getStockAging(c *gin.Context) {
	businessID, userID, ok := reportRequestContext(c)
	if !ok {
		return
	}

	report, err := h.inventoryService.StockAging(c.Request.Context(), businessID, time.Now(), userID)
	if err != nil {
		respondReportError(c, err, "stock aging report")
		return
	}

	c.JSON(http.StatusOK, dto.ToStockAgingResponse(report))
}

// getValuation godoc
// @Summary Generate point-in-time inventory valuation
// @Description Reconstructs per-product stock and value as of a date by replaying the movement ledger
// @Tags inventory
// @Produce json
// @Param business_id path string true "Business ID"
// @Param asOf query string false "Valuation date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.ValuationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden (User not authorized)"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /businesses/{business_id}/inventory/valuation [get]
func (h *inventoryHandler) getValuation(c *gin.Context) {
	businessID, userID, ok := reportRequestContext(c)
	if !ok {
		return
	}

	var query asOfQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid asOf date format. Use YYYY-MM-DD"))
		return
	}
	asOf := time.Now()
	if query.AsOf != "" {
		asOf, _ = time.Parse(dateLayout, query.AsOf)
	}

	report, err := h.inventoryService.Valuation(c.Request.Context(), businessID, asOf, userID)
	if err != nil {
		respondReportError(c, err, "inventory valuation")
		return
	}

	c.JSON(http.StatusOK, dto.ToValuationResponse(report, asOf))
}
