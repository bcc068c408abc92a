package handlers

import (
	"net/http"

	"tvar-backend/internal/services"
	"tvar-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type DocumentHandler struct {
	documentService *services.DocumentService
	validator       *validator.Validate
}

func NewDocumentHandler(documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		validator:       validator.New(),
	}
}

// GetDocuments retrieves all truck documents, optionally filtered by truck
func (h *DocumentHandler) GetDocuments(c *gin.Context) {
	if truckID := c.Query("truckId"); truckID != "" {
		documents, err := h.documentService.ListDocumentsByTruck(truckID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve documents", err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Documents retrieved successfully", documents)
		return
	}

	documents, err := h.documentService.ListDocuments()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve documents", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Documents retrieved successfully", documents)
}

// GetDocument retrieves a specific document by ID
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	documentID := c.Param("id")
	if documentID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Document ID is required", nil)
		return
	}

	document, err := h.documentService.GetDocument(documentID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Document not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Document retrieved successfully", document)
}

// CreateDocument creates a new truck document
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req services.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	document, err := h.documentService.CreateDocument(&req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create document", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Document created successfully", document)
}

// UpdateDocument updates an existing truck document
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	documentID := c.Param("id")
	if documentID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Document ID is required", nil)
		return
	}

	var req services.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	document, err := h.documentService.UpdateDocument(documentID, &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to update document", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Document updated successfully", document)
}

// DeleteDocument deletes a truck document
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	documentID := c.Param("id")
	if documentID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Document ID is required", nil)
		return
	}

	if err := h.documentService.DeleteDocument(documentID); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to delete document", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Document deleted successfully", nil)
}
