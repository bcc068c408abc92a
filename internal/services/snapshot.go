package services

import (
	"context"
	"log"

	"tvar-backend/internal/alerts"
	"tvar-backend/internal/repository"
	"tvar-backend/pkg/cache"
)

// CacheInvalidator lets write paths drop the cached snapshot.
type CacheInvalidator interface {
	Invalidate()
}

// SnapshotService assembles the full fleet snapshot the alert engine
// consumes, with a short-lived Redis cache in front of Mongo.
type SnapshotService struct {
	truckRepo     *repository.TruckRepository
	driverRepo    *repository.DriverRepository
	documentRepo  *repository.DocumentRepository
	repairRepo    *repository.RepairRepository
	fuelRepo      *repository.FuelRepository
	oilRepo       *repository.OilChangeRepository
	operationRepo *repository.OperationRepository
	cache         *cache.SnapshotCache
}

func NewSnapshotService(
	truckRepo *repository.TruckRepository,
	driverRepo *repository.DriverRepository,
	documentRepo *repository.DocumentRepository,
	repairRepo *repository.RepairRepository,
	fuelRepo *repository.FuelRepository,
	oilRepo *repository.OilChangeRepository,
	operationRepo *repository.OperationRepository,
	snapshotCache *cache.SnapshotCache,
) *SnapshotService {
	return &SnapshotService{
		truckRepo:     truckRepo,
		driverRepo:    driverRepo,
		documentRepo:  documentRepo,
		repairRepo:    repairRepo,
		fuelRepo:      fuelRepo,
		oilRepo:       oilRepo,
		operationRepo: operationRepo,
		cache:         snapshotCache,
	}
}

func (s *SnapshotService) Snapshot() (alerts.Snapshot, error) {
	ctx := context.Background()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			log.Printf("Snapshot cache read failed: %v", err)
		} else if cached != nil {
			return *cached, nil
		}
	}

	var snapshot alerts.Snapshot
	var err error

	if snapshot.Trucks, err = s.truckRepo.FindAll(); err != nil {
		return alerts.Snapshot{}, err
	}
	if snapshot.Drivers, err = s.driverRepo.FindAll(); err != nil {
		return alerts.Snapshot{}, err
	}
	if snapshot.Documents, err = s.documentRepo.FindAll(); err != nil {
		return alerts.Snapshot{}, err
	}
	if snapshot.Repairs, err = s.repairRepo.FindAll(); err != nil {
		return alerts.Snapshot{}, err
	}
	if snapshot.FuelEntries, err = s.fuelRepo.FindAll(); err != nil {
		return alerts.Snapshot{}, err
	}
	if snapshot.OilChanges, err = s.oilRepo.FindAll(); err != nil {
		return alerts.Snapshot{}, err
	}
	if snapshot.Operations, err = s.operationRepo.FindAll(); err != nil {
		return alerts.Snapshot{}, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, &snapshot); err != nil {
			log.Printf("Snapshot cache write failed: %v", err)
		}
	}

	return snapshot, nil
}

// Invalidate drops the cached snapshot after a write.
func (s *SnapshotService) Invalidate() {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(context.Background()); err != nil {
		log.Printf("Snapshot cache invalidation failed: %v", err)
	}
}
