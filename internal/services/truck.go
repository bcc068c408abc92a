package services

import (
	"errors"
	"time"

	"tvar-backend/internal/models"
	"tvar-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

type TruckService struct {
	truckRepo *repository.TruckRepository
	cache     CacheInvalidator
	validator *validator.Validate
}

func NewTruckService(truckRepo *repository.TruckRepository, cache CacheInvalidator) *TruckService {
	return &TruckService{
		truckRepo: truckRepo,
		cache:     cache,
		validator: validator.New(),
	}
}

type CreateTruckRequest struct {
	Number               string     `json:"number" validate:"required"`
	Brand                string     `json:"brand"`
	Model                string     `json:"model"`
	Year                 int        `json:"year" validate:"omitempty,min=1950,max=2100"`
	Mileage              int        `json:"mileage" validate:"min=0"`
	Status               string     `json:"status" validate:"omitempty,oneof=Activo Mantenimiento Inactivo"`
	RevisionTecnica      *time.Time `json:"revisionTecnica"`
	SeguroObligatorio    *time.Time `json:"seguroObligatorio"`
	ImpuestosMunicipales *time.Time `json:"impuestosMunicipales"`
}

func (s *TruckService) CreateTruck(req *CreateTruckRequest) (*models.Truck, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if existing, _ := s.truckRepo.FindByNumber(req.Number); existing != nil {
		return nil, errors.New("truck number already exists")
	}

	status := req.Status
	if status == "" {
		status = models.TruckStatusActive
	}

	now := time.Now()
	truck := &models.Truck{
		Number:               req.Number,
		Brand:                req.Brand,
		Model:                req.Model,
		Year:                 req.Year,
		Mileage:              req.Mileage,
		Status:               status,
		RevisionTecnica:      req.RevisionTecnica,
		SeguroObligatorio:    req.SeguroObligatorio,
		ImpuestosMunicipales: req.ImpuestosMunicipales,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	created, err := s.truckRepo.Create(truck)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return created, nil
}

func (s *TruckService) GetTruck(id string) (*models.Truck, error) {
	return s.truckRepo.FindByID(id)
}

func (s *TruckService) ListTrucks() ([]*models.Truck, error) {
	return s.truckRepo.FindAll()
}

func (s *TruckService) UpdateTruck(id string, req *CreateTruckRequest) (*models.Truck, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	truck, err := s.truckRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Number != truck.Number {
		if existing, _ := s.truckRepo.FindByNumber(req.Number); existing != nil {
			return nil, errors.New("truck number already exists")
		}
	}

	truck.Number = req.Number
	truck.Brand = req.Brand
	truck.Model = req.Model
	truck.Year = req.Year
	truck.Mileage = req.Mileage
	if req.Status != "" {
		truck.Status = req.Status
	}
	truck.RevisionTecnica = req.RevisionTecnica
	truck.SeguroObligatorio = req.SeguroObligatorio
	truck.ImpuestosMunicipales = req.ImpuestosMunicipales

	updated, err := s.truckRepo.Update(id, truck)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return updated, nil
}

func (s *TruckService) DeleteTruck(id string) error {
	if err := s.truckRepo.Delete(id); err != nil {
		return err
	}

	s.invalidate()
	return nil
}

func (s *TruckService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}
