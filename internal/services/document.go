package services

import (
	"time"

	"tvar-backend/internal/models"
	"tvar-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

type DocumentService struct {
	documentRepo *repository.DocumentRepository
	truckRepo    *repository.TruckRepository
	cache        CacheInvalidator
	validator    *validator.Validate
}

func NewDocumentService(documentRepo *repository.DocumentRepository, truckRepo *repository.TruckRepository, cache CacheInvalidator) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		truckRepo:    truckRepo,
		cache:        cache,
		validator:    validator.New(),
	}
}

type CreateDocumentRequest struct {
	TruckID    string    `json:"truckId" validate:"required"`
	Type       string    `json:"type" validate:"required"`
	ExpiryDate time.Time `json:"expiryDate" validate:"required"`
	Notes      string    `json:"notes"`
}

func (s *DocumentService) CreateDocument(req *CreateDocumentRequest) (*models.TruckDocument, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.truckRepo.FindByID(req.TruckID); err != nil {
		return nil, err
	}

	now := time.Now()
	document := &models.TruckDocument{
		TruckID:    req.TruckID,
		Type:       req.Type,
		ExpiryDate: req.ExpiryDate,
		Notes:      req.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.documentRepo.Create(document)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return created, nil
}

func (s *DocumentService) GetDocument(id string) (*models.TruckDocument, error) {
	return s.documentRepo.FindByID(id)
}

func (s *DocumentService) ListDocuments() ([]*models.TruckDocument, error) {
	return s.documentRepo.FindAll()
}

func (s *DocumentService) ListDocumentsByTruck(truckID string) ([]*models.TruckDocument, error) {
	return s.documentRepo.FindByTruckID(truckID)
}

func (s *DocumentService) UpdateDocument(id string, req *CreateDocumentRequest) (*models.TruckDocument, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	document, err := s.documentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.TruckID != document.TruckID {
		if _, err := s.truckRepo.FindByID(req.TruckID); err != nil {
			return nil, err
		}
	}

	document.TruckID = req.TruckID
	document.Type = req.Type
	document.ExpiryDate = req.ExpiryDate
	document.Notes = req.Notes

	updated, err := s.documentRepo.Update(id, document)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return updated, nil
}

func (s *DocumentService) DeleteDocument(id string) error {
	if err := s.documentRepo.Delete(id); err != nil {
		return err
	}

	s.invalidate()
	return nil
}

func (s *DocumentService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}
