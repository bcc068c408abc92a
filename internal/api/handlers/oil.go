package handlers

import (
	"net/http"

	"tvar-backend/internal/services"
	"tvar-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type OilChangeHandler struct {
	oilService *services.OilChangeService
	validator  *validator.Validate
}

func NewOilChangeHandler(oilService *services.OilChangeService) *OilChangeHandler {
	return &OilChangeHandler{
		oilService: oilService,
		validator:  validator.New(),
	}
}

// GetOilChanges retrieves oil changes, optionally filtered by truck
func (h *OilChangeHandler) GetOilChanges(c *gin.Context) {
	if truckID := c.Query("truckId"); truckID != "" {
		changes, err := h.oilService.ListOilChangesByTruck(truckID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve oil changes", err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Oil changes retrieved successfully", changes)
		return
	}

	changes, err := h.oilService.ListOilChanges()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve oil changes", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Oil changes retrieved successfully", changes)
}

// GetOilChange retrieves a specific oil change by ID
func (h *OilChangeHandler) GetOilChange(c *gin.Context) {
	changeID := c.Param("id")
	if changeID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Oil change ID is required", nil)
		return
	}

	change, err := h.oilService.GetOilChange(changeID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Oil change not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Oil change retrieved successfully", change)
}

// CreateOilChange creates a new oil change record
func (h *OilChangeHandler) CreateOilChange(c *gin.Context) {
	var req services.CreateOilChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	change, err := h.oilService.CreateOilChange(&req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create oil change", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Oil change created successfully", change)
}

// DeleteOilChange deletes an oil change record
func (h *OilChangeHandler) DeleteOilChange(c *gin.Context) {
	changeID := c.Param("id")
	if changeID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Oil change ID is required", nil)
		return
	}

	if err := h.oilService.DeleteOilChange(changeID); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to delete oil change", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Oil change deleted successfully", nil)
}
