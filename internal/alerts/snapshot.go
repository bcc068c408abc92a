package alerts

import (
	"tvar-backend/internal/models"
)

// Snapshot is a full in-memory read of every collection the alert
// engine consumes. Callers assemble it (however they persist the
// fleet) and hand it to Evaluate together with the reference date; the
// engine itself performs no I/O and never mutates the snapshot.
type Snapshot struct {
	Trucks      []*models.Truck
	Drivers     []*models.Driver
	Documents   []*models.TruckDocument
	Repairs     []*models.Repair
	FuelEntries []*models.FuelEntry
	OilChanges  []*models.OilChange
	Operations  []*models.Operation
}
