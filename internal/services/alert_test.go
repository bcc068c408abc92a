package services

import (
	"errors"
	"testing"
	"time"

	"tvar-backend/internal/alerts"
	"tvar-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubProvider struct {
	snapshot alerts.Snapshot
	err      error
}

func (p *stubProvider) Snapshot() (alerts.Snapshot, error) {
	return p.snapshot, p.err
}

func fixedNow() time.Time {
	return time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)
}

// fleetSnapshot yields one truck with an expired revisión técnica plus
// a recent oil change, and one driver with a license expiring soon.
func fleetSnapshot() alerts.Snapshot {
	expired := fixedNow().AddDate(0, 0, -10)
	soon := fixedNow().AddDate(0, 0, 20)
	oilDate := fixedNow().AddDate(0, -1, 0)
	truckID := primitive.NewObjectID()

	return alerts.Snapshot{
		Trucks: []*models.Truck{
			{ID: truckID, Number: "T-01", Mileage: 100000, RevisionTecnica: &expired},
		},
		Drivers: []*models.Driver{
			{Name: "Pedro Soto", LicenseExpiry: &soon},
		},
		OilChanges: []*models.OilChange{
			{TruckID: truckID.Hex(), Date: oilDate, Km: 95000},
		},
	}
}

func newTestAlertService(provider SnapshotProvider) *AlertService {
	service := NewAlertService(provider)
	service.now = fixedNow
	return service
}

func TestGenerateAlertsRanked(t *testing.T) {
	service := newTestAlertService(&stubProvider{snapshot: fleetSnapshot()})

	ranked, err := service.GenerateAlerts()
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, alerts.PriorityCritical, ranked[0].Priority)
	assert.Equal(t, alerts.CategoryDocument, ranked[0].Category)
	assert.Equal(t, alerts.PriorityMedium, ranked[1].Priority)
	assert.Equal(t, alerts.CategoryLicense, ranked[1].Category)
}

func TestGenerateAlertsPropagatesError(t *testing.T) {
	service := newTestAlertService(&stubProvider{err: errors.New("mongo down")})

	_, err := service.GenerateAlerts()
	require.Error(t, err)
}

func TestTopAlerts(t *testing.T) {
	service := newTestAlertService(&stubProvider{snapshot: fleetSnapshot()})

	top, err := service.TopAlerts(1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, alerts.PriorityCritical, top[0].Priority)

	all, err := service.TopAlerts(10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDangerAlerts(t *testing.T) {
	service := newTestAlertService(&stubProvider{snapshot: fleetSnapshot()})

	danger, err := service.DangerAlerts()
	require.NoError(t, err)
	require.Len(t, danger, 1)
	assert.Equal(t, alerts.SeverityDanger, danger[0].Severity)
}

func TestDangerAlertsEmptyFleet(t *testing.T) {
	service := newTestAlertService(&stubProvider{})

	danger, err := service.DangerAlerts()
	require.NoError(t, err)
	assert.NotNil(t, danger)
	assert.Empty(t, danger)
}

func TestGetAlertStatistics(t *testing.T) {
	service := newTestAlertService(&stubProvider{snapshot: fleetSnapshot()})

	stats, err := service.GetAlertStatistics()
	require.NoError(t, err)

	assert.Equal(t, 2, stats["total"])
	assert.Equal(t, map[string]int{"danger": 1, "warning": 1}, stats["bySeverity"])
	assert.Equal(t, map[string]int{"critical": 1, "medium": 1}, stats["byPriority"])
	assert.Equal(t, map[string]int{"documento": 1, "licencia": 1}, stats["byCategory"])
}
