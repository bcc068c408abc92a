package handlers

import (
	"net/http"
	"time"

	"tvar-backend/internal/services"
	"tvar-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetDashboardStats returns the headline dashboard figures
func (h *ReportHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.reportService.DashboardStats()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to compute dashboard statistics", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dashboard statistics computed successfully", stats)
}

// GetMaintenanceCosts sums maintenance spending. Supports ?truckId=,
// ?from=YYYY-MM-DD and ?to=YYYY-MM-DD.
func (h *ReportHandler) GetMaintenanceCosts(c *gin.Context) {
	var from, to time.Time
	var err error

	if raw := c.Query("from"); raw != "" {
		from, err = time.Parse("2006-01-02", raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD", err)
			return
		}
	}
	if raw := c.Query("to"); raw != "" {
		to, err = time.Parse("2006-01-02", raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD", err)
			return
		}
	}

	summary, err := h.reportService.MaintenanceCosts(c.Query("truckId"), from, to)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to compute maintenance costs", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance costs computed successfully", summary)
}

// GetOperationSummary totals a month's operational readings
func (h *ReportHandler) GetOperationSummary(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	summary, err := h.reportService.OperationSummary(month)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to compute operation summary", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Operation summary computed successfully", summary)
}
