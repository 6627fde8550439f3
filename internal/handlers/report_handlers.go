package handlers

import (
	"net/http"
	"strconv"

	"resto_pos_backend/internal/services"
	"resto_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the sales service.
type ReportHandler struct {
	salesService services.SalesService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(ss services.SalesService) *ReportHandler {
	return &ReportHandler{salesService: ss}
}

// parseYear reads the year query parameter, defaulting to the latest year
// present in the order history (the dashboard's initial selection).
func (h *ReportHandler) parseYear(c *gin.Context) int {
	if yearStr := c.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			return year
		}
	}
	return h.salesService.LatestYear()
}

// GetSalesSummary handles the dashboard headline metrics and top products
// for one year. Monetary fields are rounded here, at the display boundary.
func (h *ReportHandler) GetSalesSummary(c *gin.Context) {
	summary := h.salesService.GetSummary(h.parseYear(c))

	stats := summary.Stats
	stats.Revenue = utils.RoundMoney(stats.Revenue)
	stats.TipTotal = utils.RoundMoney(stats.TipTotal)

	c.JSON(http.StatusOK, gin.H{
		"year":         summary.Year,
		"years":        h.salesService.GetYears(),
		"stats":        stats,
		"top_products": summary.TopProducts,
	})
}

// GetOrdersChart handles the bucketed order counts for the dashboard chart.
func (h *ReportHandler) GetOrdersChart(c *gin.Context) {
	mode := c.DefaultQuery("mode", string(services.ViewModeWeekly))
	if !services.IsValidViewMode(mode) {
		utils.RespondValidationFailed(c, services.ErrInvalidViewMode.Error()+": mode must be Weekly or Monthly")
		return
	}
	c.JSON(http.StatusOK, h.salesService.GetOrdersChart(h.parseYear(c), services.ViewMode(mode)))
}
