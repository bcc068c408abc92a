package handlers

import (
	"net/http"

	"tvar-backend/internal/services"
	"tvar-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type OperationHandler struct {
	operationService *services.OperationService
	validator        *validator.Validate
}

func NewOperationHandler(operationService *services.OperationService) *OperationHandler {
	return &OperationHandler{
		operationService: operationService,
		validator:        validator.New(),
	}
}

// GetOperations retrieves operations, optionally filtered by truck or month
func (h *OperationHandler) GetOperations(c *gin.Context) {
	var err error
	var operations interface{}

	switch {
	case c.Query("truckId") != "":
		operations, err = h.operationService.ListOperationsByTruck(c.Query("truckId"))
	case c.Query("month") != "":
		operations, err = h.operationService.ListOperationsByMonth(c.Query("month"))
	default:
		operations, err = h.operationService.ListOperations()
	}

	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve operations", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Operations retrieved successfully", operations)
}

// GetOperation retrieves a specific operation by ID
func (h *OperationHandler) GetOperation(c *gin.Context) {
	operationID := c.Param("id")
	if operationID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Operation ID is required", nil)
		return
	}

	operation, err := h.operationService.GetOperation(operationID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Operation not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Operation retrieved successfully", operation)
}

// CreateOperation records a month-end operation
func (h *OperationHandler) CreateOperation(c *gin.Context) {
	var req services.CreateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	operation, err := h.operationService.CreateOperation(&req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create operation", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Operation created successfully", operation)
}

// UpdateOperation updates an existing operation
func (h *OperationHandler) UpdateOperation(c *gin.Context) {
	operationID := c.Param("id")
	if operationID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Operation ID is required", nil)
		return
	}

	var req services.CreateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	operation, err := h.operationService.UpdateOperation(operationID, &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to update operation", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Operation updated successfully", operation)
}

// DeleteOperation deletes an operation
func (h *OperationHandler) DeleteOperation(c *gin.Context) {
	operationID := c.Param("id")
	if operationID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Operation ID is required", nil)
		return
	}

	if err := h.operationService.DeleteOperation(operationID); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to delete operation", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Operation deleted successfully", nil)
}
