package handlers

import (
	"net/http"
	"strconv"

	"tvar-backend/internal/alerts"
	"tvar-backend/internal/repository"
	"tvar-backend/internal/services"
	"tvar-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	alertService     *services.AlertService
	notificationRepo *repository.NotificationRepository
}

func NewAlertHandler(alertService *services.AlertService, notificationRepo *repository.NotificationRepository) *AlertHandler {
	return &AlertHandler{
		alertService:     alertService,
		notificationRepo: notificationRepo,
	}
}

// GetAlerts evaluates and returns the current alerts, ranked by
// priority. Supports ?limit=N and ?severity=danger filters.
func (h *AlertHandler) GetAlerts(c *gin.Context) {
	var ranked []alerts.Alert
	var err error

	if c.Query("severity") == alerts.SeverityDanger {
		ranked, err = h.alertService.DangerAlerts()
	} else if rawLimit := c.Query("limit"); rawLimit != "" {
		limit, parseErr := strconv.Atoi(rawLimit)
		if parseErr != nil || limit < 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid limit parameter", parseErr)
			return
		}
		ranked, err = h.alertService.TopAlerts(limit)
	} else {
		ranked, err = h.alertService.GenerateAlerts()
	}

	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to generate alerts", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Alerts generated successfully", ranked)
}

// GetAlertStatistics returns alert counts by severity, priority and category
func (h *AlertHandler) GetAlertStatistics(c *gin.Context) {
	stats, err := h.alertService.GetAlertStatistics()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to compute alert statistics", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Alert statistics computed successfully", stats)
}

// GetNotifications returns the recently sent alert notifications
func (h *AlertHandler) GetNotifications(c *gin.Context) {
	limit := 50
	if rawLimit := c.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid limit parameter", err)
			return
		}
		limit = parsed
	}

	notifications, err := h.notificationRepo.FindRecent(limit)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve notifications", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notifications retrieved successfully", notifications)
}
