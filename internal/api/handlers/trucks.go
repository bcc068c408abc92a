package handlers

import (
	"net/http"

	"tvar-backend/internal/services"
	"tvar-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type TruckHandler struct {
	truckService *services.TruckService
	validator    *validator.Validate
}

func NewTruckHandler(truckService *services.TruckService) *TruckHandler {
	return &TruckHandler{
		truckService: truckService,
		validator:    validator.New(),
	}
}

// GetTrucks retrieves all trucks
func (h *TruckHandler) GetTrucks(c *gin.Context) {
	trucks, err := h.truckService.ListTrucks()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve trucks", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trucks retrieved successfully", trucks)
}

// GetTruck retrieves a specific truck by ID
func (h *TruckHandler) GetTruck(c *gin.Context) {
	truckID := c.Param("id")
	if truckID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Truck ID is required", nil)
		return
	}

	truck, err := h.truckService.GetTruck(truckID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Truck not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Truck retrieved successfully", truck)
}

// CreateTruck creates a new truck
func (h *TruckHandler) CreateTruck(c *gin.Context) {
	var req services.CreateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	truck, err := h.truckService.CreateTruck(&req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create truck", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Truck created successfully", truck)
}

// UpdateTruck updates an existing truck
func (h *TruckHandler) UpdateTruck(c *gin.Context) {
	truckID := c.Param("id")
	if truckID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Truck ID is required", nil)
		return
	}

	var req services.CreateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	truck, err := h.truckService.UpdateTruck(truckID, &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to update truck", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Truck updated successfully", truck)
}

// DeleteTruck deletes a truck
func (h *TruckHandler) DeleteTruck(c *gin.Context) {
	truckID := c.Param("id")
	if truckID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Truck ID is required", nil)
		return
	}

	if err := h.truckService.DeleteTruck(truckID); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to delete truck", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Truck deleted successfully", nil)
}
