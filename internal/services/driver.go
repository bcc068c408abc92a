package services

import (
	"time"

	"tvar-backend/internal/models"
	"tvar-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

type DriverService struct {
	driverRepo *repository.DriverRepository
	truckRepo  *repository.TruckRepository
	cache      CacheInvalidator
	validator  *validator.Validate
}

func NewDriverService(driverRepo *repository.DriverRepository, truckRepo *repository.TruckRepository, cache CacheInvalidator) *DriverService {
	return &DriverService{
		driverRepo: driverRepo,
		truckRepo:  truckRepo,
		cache:      cache,
		validator:  validator.New(),
	}
}

type CreateDriverRequest struct {
	Name          string     `json:"name" validate:"required"`
	Rut           string     `json:"rut" validate:"required"`
	Phone         string     `json:"phone"`
	LicenseType   string     `json:"licenseType"`
	LicenseExpiry *time.Time `json:"licenseExpiry"`
	TruckID       string     `json:"truckId"`
}

func (s *DriverService) CreateDriver(req *CreateDriverRequest) (*models.Driver, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if req.TruckID != "" {
		if _, err := s.truckRepo.FindByID(req.TruckID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	driver := &models.Driver{
		Name:          req.Name,
		Rut:           req.Rut,
		Phone:         req.Phone,
		LicenseType:   req.LicenseType,
		LicenseExpiry: req.LicenseExpiry,
		TruckID:       req.TruckID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.driverRepo.Create(driver)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return created, nil
}

func (s *DriverService) GetDriver(id string) (*models.Driver, error) {
	return s.driverRepo.FindByID(id)
}

func (s *DriverService) ListDrivers() ([]*models.Driver, error) {
	return s.driverRepo.FindAll()
}

func (s *DriverService) UpdateDriver(id string, req *CreateDriverRequest) (*models.Driver, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	driver, err := s.driverRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.TruckID != "" && req.TruckID != driver.TruckID {
		if _, err := s.truckRepo.FindByID(req.TruckID); err != nil {
			return nil, err
		}
	}

	driver.Name = req.Name
	driver.Rut = req.Rut
	driver.Phone = req.Phone
	driver.LicenseType = req.LicenseType
	driver.LicenseExpiry = req.LicenseExpiry
	driver.TruckID = req.TruckID

	updated, err := s.driverRepo.Update(id, driver)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return updated, nil
}

func (s *DriverService) DeleteDriver(id string) error {
	if err := s.driverRepo.Delete(id); err != nil {
		return err
	}

	s.invalidate()
	return nil
}

func (s *DriverService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}
