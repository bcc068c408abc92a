package services

import (
	"time"

	"tvar-backend/internal/models"
	"tvar-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

type RepairService struct {
	repairRepo *repository.RepairRepository
	truckRepo  *repository.TruckRepository
	cache      CacheInvalidator
	validator  *validator.Validate
}

func NewRepairService(repairRepo *repository.RepairRepository, truckRepo *repository.TruckRepository, cache CacheInvalidator) *RepairService {
	return &RepairService{
		repairRepo: repairRepo,
		truckRepo:  truckRepo,
		cache:      cache,
		validator:  validator.New(),
	}
}

type CreateRepairRequest struct {
	TruckID     string    `json:"truckId" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Status      string    `json:"status" validate:"omitempty,oneof=Pendiente 'En Proceso' Completada"`
	Cost        float64   `json:"cost" validate:"min=0"`
	Km          int       `json:"km" validate:"min=0"`
	Date        time.Time `json:"date"`
	Workshop    string    `json:"workshop"`
}

func (s *RepairService) CreateRepair(req *CreateRepairRequest) (*models.Repair, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.truckRepo.FindByID(req.TruckID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.RepairStatusPending
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	now := time.Now()
	repair := &models.Repair{
		TruckID:     req.TruckID,
		Description: req.Description,
		Status:      status,
		Cost:        req.Cost,
		Km:          req.Km,
		Date:        date,
		Workshop:    req.Workshop,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repairRepo.Create(repair)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return created, nil
}

func (s *RepairService) GetRepair(id string) (*models.Repair, error) {
	return s.repairRepo.FindByID(id)
}

func (s *RepairService) ListRepairs() ([]*models.Repair, error) {
	return s.repairRepo.FindAll()
}

func (s *RepairService) ListRepairsByTruck(truckID string) ([]*models.Repair, error) {
	return s.repairRepo.FindByTruckID(truckID)
}

func (s *RepairService) ListRepairsByStatus(status string) ([]*models.Repair, error) {
	return s.repairRepo.FindByStatus(status)
}

func (s *RepairService) UpdateRepair(id string, req *CreateRepairRequest) (*models.Repair, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	repair, err := s.repairRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	repair.TruckID = req.TruckID
	repair.Description = req.Description
	if req.Status != "" {
		repair.Status = req.Status
	}
	repair.Cost = req.Cost
	repair.Km = req.Km
	if !req.Date.IsZero() {
		repair.Date = req.Date
	}
	repair.Workshop = req.Workshop

	updated, err := s.repairRepo.Update(id, repair)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return updated, nil
}

func (s *RepairService) DeleteRepair(id string) error {
	if err := s.repairRepo.Delete(id); err != nil {
		return err
	}

	s.invalidate()
	return nil
}

func (s *RepairService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}
