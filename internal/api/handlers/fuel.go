package handlers

import (
	"net/http"

	"tvar-backend/internal/services"
	"tvar-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FuelHandler struct {
	fuelService *services.FuelService
	validator   *validator.Validate
}

func NewFuelHandler(fuelService *services.FuelService) *FuelHandler {
	return &FuelHandler{
		fuelService: fuelService,
		validator:   validator.New(),
	}
}

// GetFuelEntries retrieves fuel entries, optionally filtered by truck
func (h *FuelHandler) GetFuelEntries(c *gin.Context) {
	if truckID := c.Query("truckId"); truckID != "" {
		entries, err := h.fuelService.ListFuelEntriesByTruck(truckID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve fuel entries", err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Fuel entries retrieved successfully", entries)
		return
	}

	entries, err := h.fuelService.ListFuelEntries()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve fuel entries", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Fuel entries retrieved successfully", entries)
}

// CreateFuelEntry creates a new fuel entry
func (h *FuelHandler) CreateFuelEntry(c *gin.Context) {
	var req services.CreateFuelEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	entry, err := h.fuelService.CreateFuelEntry(&req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create fuel entry", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Fuel entry created successfully", entry)
}

// DeleteFuelEntry deletes a fuel entry
func (h *FuelHandler) DeleteFuelEntry(c *gin.Context) {
	entryID := c.Param("id")
	if entryID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Fuel entry ID is required", nil)
		return
	}

	if err := h.fuelService.DeleteFuelEntry(entryID); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to delete fuel entry", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Fuel entry deleted successfully", nil)
}

// GetAdBlueEntries retrieves AdBlue entries, optionally filtered by truck
func (h *FuelHandler) GetAdBlueEntries(c *gin.Context) {
	if truckID := c.Query("truckId"); truckID != "" {
		entries, err := h.fuelService.ListAdBlueEntriesByTruck(truckID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve AdBlue entries", err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "AdBlue entries retrieved successfully", entries)
		return
	}

	entries, err := h.fuelService.ListAdBlueEntries()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve AdBlue entries", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "AdBlue entries retrieved successfully", entries)
}

// CreateAdBlueEntry creates a new AdBlue entry
func (h *FuelHandler) CreateAdBlueEntry(c *gin.Context) {
	var req services.CreateAdBlueEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	entry, err := h.fuelService.CreateAdBlueEntry(&req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create AdBlue entry", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "AdBlue entry created successfully", entry)
}

// DeleteAdBlueEntry deletes an AdBlue entry
func (h *FuelHandler) DeleteAdBlueEntry(c *gin.Context) {
	entryID := c.Param("id")
	if entryID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "AdBlue entry ID is required", nil)
		return
	}

	if err := h.fuelService.DeleteAdBlueEntry(entryID); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to delete AdBlue entry", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "AdBlue entry deleted successfully", nil)
}
