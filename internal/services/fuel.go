package services

import (
	"time"

	"tvar-backend/internal/models"
	"tvar-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// FuelService covers both diesel and AdBlue consumption records.
type FuelService struct {
	fuelRepo   *repository.FuelRepository
	adBlueRepo *repository.AdBlueRepository
	truckRepo  *repository.TruckRepository
	cache      CacheInvalidator
	validator  *validator.Validate
}

func NewFuelService(fuelRepo *repository.FuelRepository, adBlueRepo *repository.AdBlueRepository, truckRepo *repository.TruckRepository, cache CacheInvalidator) *FuelService {
	return &FuelService{
		fuelRepo:   fuelRepo,
		adBlueRepo: adBlueRepo,
		truckRepo:  truckRepo,
		cache:      cache,
		validator:  validator.New(),
	}
}

type CreateFuelEntryRequest struct {
	TruckID string    `json:"truckId" validate:"required"`
	Date    time.Time `json:"date" validate:"required"`
	Liters  float64   `json:"liters" validate:"gt=0"`
	Cost    float64   `json:"cost" validate:"min=0"`
	Station string    `json:"station"`
	Invoice string    `json:"invoice"`
}

type CreateAdBlueEntryRequest struct {
	TruckID string    `json:"truckId" validate:"required"`
	Date    time.Time `json:"date" validate:"required"`
	Liters  float64   `json:"liters" validate:"gt=0"`
	Cost    float64   `json:"cost" validate:"min=0"`
}

func (s *FuelService) CreateFuelEntry(req *CreateFuelEntryRequest) (*models.FuelEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.truckRepo.FindByID(req.TruckID); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := &models.FuelEntry{
		TruckID:   req.TruckID,
		Date:      req.Date,
		Liters:    req.Liters,
		Cost:      req.Cost,
		Station:   req.Station,
		Invoice:   req.Invoice,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.fuelRepo.Create(entry)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return created, nil
}

func (s *FuelService) ListFuelEntries() ([]*models.FuelEntry, error) {
	return s.fuelRepo.FindAll()
}

func (s *FuelService) ListFuelEntriesByTruck(truckID string) ([]*models.FuelEntry, error) {
	return s.fuelRepo.FindByTruckID(truckID)
}

func (s *FuelService) DeleteFuelEntry(id string) error {
	if err := s.fuelRepo.Delete(id); err != nil {
		return err
	}

	s.invalidate()
	return nil
}

func (s *FuelService) CreateAdBlueEntry(req *CreateAdBlueEntryRequest) (*models.AdBlueEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.truckRepo.FindByID(req.TruckID); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := &models.AdBlueEntry{
		TruckID:   req.TruckID,
		Date:      req.Date,
		Liters:    req.Liters,
		Cost:      req.Cost,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.adBlueRepo.Create(entry)
}

func (s *FuelService) ListAdBlueEntries() ([]*models.AdBlueEntry, error) {
	return s.adBlueRepo.FindAll()
}

func (s *FuelService) ListAdBlueEntriesByTruck(truckID string) ([]*models.AdBlueEntry, error) {
	return s.adBlueRepo.FindByTruckID(truckID)
}

func (s *FuelService) DeleteAdBlueEntry(id string) error {
	return s.adBlueRepo.Delete(id)
}

func (s *FuelService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}
