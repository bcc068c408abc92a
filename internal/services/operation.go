package services

import (
	"errors"
	"regexp"
	"time"

	"tvar-backend/internal/models"
	"tvar-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type OperationService struct {
	operationRepo *repository.OperationRepository
	truckRepo     *repository.TruckRepository
	cache         CacheInvalidator
	validator     *validator.Validate
}

func NewOperationService(operationRepo *repository.OperationRepository, truckRepo *repository.TruckRepository, cache CacheInvalidator) *OperationService {
	return &OperationService{
		operationRepo: operationRepo,
		truckRepo:     truckRepo,
		cache:         cache,
		validator:     validator.New(),
	}
}

type CreateOperationRequest struct {
	TruckID       string `json:"truckId" validate:"required"`
	Month         string `json:"month" validate:"required"`
	Products      int    `json:"products" validate:"min=0"`
	Clients       int    `json:"clients" validate:"min=0"`
	Recharges     int    `json:"recharges" validate:"min=0"`
	FinalKm       int    `json:"finalKm" validate:"min=0"`
	IsReplacement bool   `json:"isReplacement"`
	Notes         string `json:"notes"`
}

func (s *OperationService) CreateOperation(req *CreateOperationRequest) (*models.Operation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if !monthPattern.MatchString(req.Month) {
		return nil, errors.New("month must be in YYYY-MM format")
	}

	if _, err := s.truckRepo.FindByID(req.TruckID); err != nil {
		return nil, err
	}

	monthlyKm, err := s.deriveMonthlyKm(req.TruckID, req.Month, req.FinalKm)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	operation := &models.Operation{
		TruckID:       req.TruckID,
		Month:         req.Month,
		Products:      req.Products,
		Clients:       req.Clients,
		Recharges:     req.Recharges,
		FinalKm:       req.FinalKm,
		MonthlyKm:     monthlyKm,
		IsReplacement: req.IsReplacement,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.operationRepo.Create(operation)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return created, nil
}

func (s *OperationService) GetOperation(id string) (*models.Operation, error) {
	return s.operationRepo.FindByID(id)
}

func (s *OperationService) ListOperations() ([]*models.Operation, error) {
	return s.operationRepo.FindAll()
}

func (s *OperationService) ListOperationsByTruck(truckID string) ([]*models.Operation, error) {
	return s.operationRepo.FindByTruckID(truckID)
}

func (s *OperationService) ListOperationsByMonth(month string) ([]*models.Operation, error) {
	if !monthPattern.MatchString(month) {
		return nil, errors.New("month must be in YYYY-MM format")
	}
	return s.operationRepo.FindByMonth(month)
}

func (s *OperationService) UpdateOperation(id string, req *CreateOperationRequest) (*models.Operation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if !monthPattern.MatchString(req.Month) {
		return nil, errors.New("month must be in YYYY-MM format")
	}

	operation, err := s.operationRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	monthlyKm, err := s.deriveMonthlyKm(req.TruckID, req.Month, req.FinalKm)
	if err != nil {
		return nil, err
	}

	operation.TruckID = req.TruckID
	operation.Month = req.Month
	operation.Products = req.Products
	operation.Clients = req.Clients
	operation.Recharges = req.Recharges
	operation.FinalKm = req.FinalKm
	operation.MonthlyKm = monthlyKm
	operation.IsReplacement = req.IsReplacement
	operation.Notes = req.Notes

	updated, err := s.operationRepo.Update(id, operation)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return updated, nil
}

func (s *OperationService) DeleteOperation(id string) error {
	if err := s.operationRepo.Delete(id); err != nil {
		return err
	}

	s.invalidate()
	return nil
}

// deriveMonthlyKm computes the month's traveled distance from the
// previous month-end reading. With no earlier reading the final km is
// taken as-is.
func (s *OperationService) deriveMonthlyKm(truckID, month string, finalKm int) (int, error) {
	previous, err := s.operationRepo.FindPreviousForTruck(truckID, month)
	if err != nil {
		return 0, err
	}
	if previous == nil {
		return finalKm, nil
	}
	return finalKm - previous.FinalKm, nil
}

func (s *OperationService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}
