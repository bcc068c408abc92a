package handlers

import (
	"net/http"

	"tvar-backend/internal/services"
	"tvar-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type RepairHandler struct {
	repairService *services.RepairService
	validator     *validator.Validate
}

func NewRepairHandler(repairService *services.RepairService) *RepairHandler {
	return &RepairHandler{
		repairService: repairService,
		validator:     validator.New(),
	}
}

// GetRepairs retrieves repairs, optionally filtered by truck or status
func (h *RepairHandler) GetRepairs(c *gin.Context) {
	var err error
	var repairs interface{}

	switch {
	case c.Query("truckId") != "":
		repairs, err = h.repairService.ListRepairsByTruck(c.Query("truckId"))
	case c.Query("status") != "":
		repairs, err = h.repairService.ListRepairsByStatus(c.Query("status"))
	default:
		repairs, err = h.repairService.ListRepairs()
	}

	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve repairs", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Repairs retrieved successfully", repairs)
}

// GetRepair retrieves a specific repair by ID
func (h *RepairHandler) GetRepair(c *gin.Context) {
	repairID := c.Param("id")
	if repairID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Repair ID is required", nil)
		return
	}

	repair, err := h.repairService.GetRepair(repairID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Repair not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Repair retrieved successfully", repair)
}

// CreateRepair creates a new repair record
func (h *RepairHandler) CreateRepair(c *gin.Context) {
	var req services.CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	repair, err := h.repairService.CreateRepair(&req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create repair", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Repair created successfully", repair)
}

// UpdateRepair updates an existing repair record
func (h *RepairHandler) UpdateRepair(c *gin.Context) {
	repairID := c.Param("id")
	if repairID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Repair ID is required", nil)
		return
	}

	var req services.CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	repair, err := h.repairService.UpdateRepair(repairID, &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to update repair", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Repair updated successfully", repair)
}

// DeleteRepair deletes a repair record
func (h *RepairHandler) DeleteRepair(c *gin.Context) {
	repairID := c.Param("id")
	if repairID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Repair ID is required", nil)
		return
	}

	if err := h.repairService.DeleteRepair(repairID); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to delete repair", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Repair deleted successfully", nil)
}
