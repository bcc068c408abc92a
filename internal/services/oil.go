package services

import (
	"time"

	"tvar-backend/internal/models"
	"tvar-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

type OilChangeService struct {
	oilRepo   *repository.OilChangeRepository
	truckRepo *repository.TruckRepository
	cache     CacheInvalidator
	validator *validator.Validate
}

func NewOilChangeService(oilRepo *repository.OilChangeRepository, truckRepo *repository.TruckRepository, cache CacheInvalidator) *OilChangeService {
	return &OilChangeService{
		oilRepo:   oilRepo,
		truckRepo: truckRepo,
		cache:     cache,
		validator: validator.New(),
	}
}

type CreateOilChangeRequest struct {
	TruckID string    `json:"truckId" validate:"required"`
	Date    time.Time `json:"date" validate:"required"`
	Km      int       `json:"km" validate:"min=0"`
	OilType string    `json:"oilType"`
	Liters  float64   `json:"liters" validate:"min=0"`
	Cost    float64   `json:"cost" validate:"min=0"`
}

func (s *OilChangeService) CreateOilChange(req *CreateOilChangeRequest) (*models.OilChange, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.truckRepo.FindByID(req.TruckID); err != nil {
		return nil, err
	}

	now := time.Now()
	change := &models.OilChange{
		TruckID:   req.TruckID,
		Date:      req.Date,
		Km:        req.Km,
		OilType:   req.OilType,
		Liters:    req.Liters,
		Cost:      req.Cost,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.oilRepo.Create(change)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return created, nil
}

func (s *OilChangeService) GetOilChange(id string) (*models.OilChange, error) {
	return s.oilRepo.FindByID(id)
}

func (s *OilChangeService) ListOilChanges() ([]*models.OilChange, error) {
	return s.oilRepo.FindAll()
}

func (s *OilChangeService) ListOilChangesByTruck(truckID string) ([]*models.OilChange, error) {
	return s.oilRepo.FindByTruckID(truckID)
}

func (s *OilChangeService) DeleteOilChange(id string) error {
	if err := s.oilRepo.Delete(id); err != nil {
		return err
	}

	s.invalidate()
	return nil
}

func (s *OilChangeService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}
