package services

import (
	"time"

	"tvar-backend/internal/alerts"
	"tvar-backend/internal/models"
	"tvar-backend/internal/repository"
)

// ReportService aggregates fleet-wide figures for the dashboard and
// cost reports.
type ReportService struct {
	truckRepo     *repository.TruckRepository
	driverRepo    *repository.DriverRepository
	operationRepo *repository.OperationRepository
	repairRepo    *repository.RepairRepository
	fuelRepo      *repository.FuelRepository
	adBlueRepo    *repository.AdBlueRepository
	oilRepo       *repository.OilChangeRepository
	alertService  *AlertService
	now           func() time.Time
}

func NewReportService(
	truckRepo *repository.TruckRepository,
	driverRepo *repository.DriverRepository,
	operationRepo *repository.OperationRepository,
	repairRepo *repository.RepairRepository,
	fuelRepo *repository.FuelRepository,
	adBlueRepo *repository.AdBlueRepository,
	oilRepo *repository.OilChangeRepository,
	alertService *AlertService,
) *ReportService {
	return &ReportService{
		truckRepo:     truckRepo,
		driverRepo:    driverRepo,
		operationRepo: operationRepo,
		repairRepo:    repairRepo,
		fuelRepo:      fuelRepo,
		adBlueRepo:    adBlueRepo,
		oilRepo:       oilRepo,
		alertService:  alertService,
		now:           time.Now,
	}
}

// DashboardStats returns the headline figures: fleet size, current
// month distance and the alert totals.
func (s *ReportService) DashboardStats() (map[string]interface{}, error) {
	trucks, err := s.truckRepo.FindAll()
	if err != nil {
		return nil, err
	}

	activeTrucks := 0
	for _, truck := range trucks {
		if truck.Status == models.TruckStatusActive {
			activeTrucks++
		}
	}

	totalDrivers, err := s.driverRepo.Count()
	if err != nil {
		return nil, err
	}

	currentMonth := s.now().Format("2006-01")
	operations, err := s.operationRepo.FindByMonth(currentMonth)
	if err != nil {
		return nil, err
	}

	monthlyKm := 0
	for _, op := range operations {
		monthlyKm += op.MonthlyKm
	}

	ranked, err := s.alertService.GenerateAlerts()
	if err != nil {
		return nil, err
	}

	dangerAlerts := 0
	for _, alert := range ranked {
		if alert.Severity == alerts.SeverityDanger {
			dangerAlerts++
		}
	}

	return map[string]interface{}{
		"totalTrucks":  len(trucks),
		"activeTrucks": activeTrucks,
		"totalDrivers": totalDrivers,
		"monthlyKm":    monthlyKm,
		"totalAlerts":  len(ranked),
		"dangerAlerts": dangerAlerts,
	}, nil
}

type MaintenanceCostSummary struct {
	Repairs float64 `json:"repairs"`
	Fuel    float64 `json:"fuel"`
	AdBlue  float64 `json:"adBlue"`
	Oil     float64 `json:"oil"`
	Total   float64 `json:"total"`
}

// MaintenanceCosts sums repair, fuel, AdBlue and oil spending for one
// truck (or the whole fleet when truckID is empty) within the given
// date range. Zero bounds mean unbounded.
func (s *ReportService) MaintenanceCosts(truckID string, from, to time.Time) (*MaintenanceCostSummary, error) {
	inRange := func(date time.Time) bool {
		if !from.IsZero() && date.Before(from) {
			return false
		}
		if !to.IsZero() && date.After(to) {
			return false
		}
		return true
	}

	summary := &MaintenanceCostSummary{}

	repairs, err := s.findRepairs(truckID)
	if err != nil {
		return nil, err
	}
	for _, repair := range repairs {
		if inRange(repair.Date) {
			summary.Repairs += repair.Cost
		}
	}

	fuelEntries, err := s.findFuel(truckID)
	if err != nil {
		return nil, err
	}
	for _, entry := range fuelEntries {
		if inRange(entry.Date) {
			summary.Fuel += entry.Cost
		}
	}

	adBlueEntries, err := s.findAdBlue(truckID)
	if err != nil {
		return nil, err
	}
	for _, entry := range adBlueEntries {
		if inRange(entry.Date) {
			summary.AdBlue += entry.Cost
		}
	}

	oilChanges, err := s.findOil(truckID)
	if err != nil {
		return nil, err
	}
	for _, change := range oilChanges {
		if inRange(change.Date) {
			summary.Oil += change.Cost
		}
	}

	summary.Total = summary.Repairs + summary.Fuel + summary.AdBlue + summary.Oil
	return summary, nil
}

// OperationSummary totals the month's operational readings.
func (s *ReportService) OperationSummary(month string) (map[string]interface{}, error) {
	operations, err := s.operationRepo.FindByMonth(month)
	if err != nil {
		return nil, err
	}

	totalKm, totalProducts, totalClients, totalRecharges := 0, 0, 0, 0
	for _, op := range operations {
		totalKm += op.MonthlyKm
		totalProducts += op.Products
		totalClients += op.Clients
		totalRecharges += op.Recharges
	}

	return map[string]interface{}{
		"month":          month,
		"operations":     len(operations),
		"totalKm":        totalKm,
		"totalProducts":  totalProducts,
		"totalClients":   totalClients,
		"totalRecharges": totalRecharges,
	}, nil
}

func (s *ReportService) findRepairs(truckID string) ([]*models.Repair, error) {
	if truckID == "" {
		return s.repairRepo.FindAll()
	}
	return s.repairRepo.FindByTruckID(truckID)
}

func (s *ReportService) findFuel(truckID string) ([]*models.FuelEntry, error) {
	if truckID == "" {
		return s.fuelRepo.FindAll()
	}
	return s.fuelRepo.FindByTruckID(truckID)
}

func (s *ReportService) findAdBlue(truckID string) ([]*models.AdBlueEntry, error) {
	if truckID == "" {
		return s.adBlueRepo.FindAll()
	}
	return s.adBlueRepo.FindByTruckID(truckID)
}

func (s *ReportService) findOil(truckID string) ([]*models.OilChange, error) {
	if truckID == "" {
		return s.oilRepo.FindAll()
	}
	return s.oilRepo.FindByTruckID(truckID)
}
