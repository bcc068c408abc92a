package alerts

import (
	"testing"
	"time"

	"tvar-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var today = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func newTruck(number string) *models.Truck {
	return &models.Truck{ID: primitive.NewObjectID(), Number: number}
}

// withOil gives a snapshot a recent oil change so trucks under test
// don't drag in the missing-record alert.
func withOil(snap Snapshot, truck *models.Truck) Snapshot {
	snap.OilChanges = append(snap.OilChanges, &models.OilChange{
		ID:      primitive.NewObjectID(),
		TruckID: truck.ID.Hex(),
		Date:    today.AddDate(0, -1, 0),
		Km:      100000,
	})
	return snap
}

func TestEvaluate_EmptySnapshot(t *testing.T) {
	alerts := Evaluate(Snapshot{}, today)
	assert.Empty(t, alerts)
	assert.NotNil(t, alerts)
}

func TestEvaluate_Idempotent(t *testing.T) {
	truck := newTruck("A-1")
	truck.Mileage = 600000
	truck.RevisionTecnica = datePtr(2025, 6, 18)
	snap := Snapshot{
		Trucks: []*models.Truck{truck},
		Drivers: []*models.Driver{
			{ID: primitive.NewObjectID(), Name: "Pedro Soto", LicenseExpiry: datePtr(2025, 6, 20)},
		},
	}

	first := Evaluate(snap, today)
	second := Evaluate(snap, today)
	assert.Equal(t, first, second)
}

func TestDocumentAlerts_Thresholds(t *testing.T) {
	truck := newTruck("T-01")

	tests := []struct {
		name         string
		expiry       time.Time
		wantSeverity string
		wantPriority string
		wantMessage  string
	}{
		{
			name:         "expired",
			expiry:       date(2025, 6, 12),
			wantSeverity: SeverityDanger,
			wantPriority: PriorityCritical,
			wantMessage:  "Permiso de Circulación del camión T-01 VENCIDO hace 3 días",
		},
		{
			name:         "expires today",
			expiry:       date(2025, 6, 15),
			wantSeverity: SeverityDanger,
			wantPriority: PriorityHigh,
			wantMessage:  "Permiso de Circulación del camión T-01 vence en 0 días",
		},
		{
			name:         "five days, boundary inclusive",
			expiry:       date(2025, 6, 20),
			wantSeverity: SeverityDanger,
			wantPriority: PriorityHigh,
			wantMessage:  "Permiso de Circulación del camión T-01 vence en 5 días",
		},
		{
			name:         "six days",
			expiry:       date(2025, 6, 21),
			wantSeverity: SeverityWarning,
			wantPriority: PriorityMedium,
			wantMessage:  "Permiso de Circulación del camión T-01 vence en 6 días",
		},
		{
			name:         "fifteen days, boundary inclusive",
			expiry:       date(2025, 6, 30),
			wantSeverity: SeverityWarning,
			wantPriority: PriorityMedium,
			wantMessage:  "Permiso de Circulación del camión T-01 vence en 15 días",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &models.TruckDocument{
				ID:         primitive.NewObjectID(),
				TruckID:    truck.ID.Hex(),
				Type:       "Permiso de Circulación",
				ExpiryDate: tt.expiry,
			}
			snap := withOil(Snapshot{
				Trucks:    []*models.Truck{truck},
				Documents: []*models.TruckDocument{doc},
			}, truck)

			alerts := Evaluate(snap, today)
			require.Len(t, alerts, 1)
			assert.Equal(t, tt.wantSeverity, alerts[0].Severity)
			assert.Equal(t, tt.wantPriority, alerts[0].Priority)
			assert.Equal(t, CategoryDocument, alerts[0].Category)
			assert.Equal(t, tt.wantMessage, alerts[0].Message)
			assert.Equal(t, doc.ID.Hex(), alerts[0].DocumentID)
			assert.Equal(t, "T-01", alerts[0].Subject)
		})
	}
}

func TestDocumentAlerts_BeyondWindowAndMissingDate(t *testing.T) {
	truck := newTruck("T-02")
	snap := withOil(Snapshot{
		Trucks: []*models.Truck{truck},
		Documents: []*models.TruckDocument{
			{ID: primitive.NewObjectID(), TruckID: truck.ID.Hex(), Type: "Seguro", ExpiryDate: date(2025, 7, 1)}, // 16 days out
			{ID: primitive.NewObjectID(), TruckID: truck.ID.Hex(), Type: "Permiso"},                             // no expiry date
			{ID: primitive.NewObjectID(), TruckID: "other", Type: "Seguro", ExpiryDate: date(2025, 6, 16)},      // other truck
		},
	}, truck)

	alerts := Evaluate(snap, today)
	assert.Empty(t, alerts)
}

func TestTruckFieldAlerts_RevisionTecnica(t *testing.T) {
	tests := []struct {
		name         string
		expiry       *time.Time
		wantCount    int
		wantSeverity string
		wantPriority string
		wantMessage  string
	}{
		{
			name:         "exactly five days out is danger high",
			expiry:       datePtr(2025, 6, 20),
			wantCount:    1,
			wantSeverity: SeverityDanger,
			wantPriority: PriorityHigh,
			wantMessage:  "Revisión Técnica del camión R-01 vence en 5 días",
		},
		{
			name:         "ten days out is warning medium",
			expiry:       datePtr(2025, 6, 25),
			wantCount:    1,
			wantSeverity: SeverityWarning,
			wantPriority: PriorityMedium,
			wantMessage:  "Revisión Técnica del camión R-01 vence en 10 días",
		},
		{
			name:         "expired is critical",
			expiry:       datePtr(2025, 6, 5),
			wantCount:    1,
			wantSeverity: SeverityDanger,
			wantPriority: PriorityCritical,
			wantMessage:  "Revisión Técnica del camión R-01 VENCIDA hace 10 días",
		},
		{
			name:      "sixteen days out emits nothing",
			expiry:    datePtr(2025, 7, 1),
			wantCount: 0,
		},
		{
			name:      "no date recorded",
			expiry:    nil,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			truck := newTruck("R-01")
			truck.RevisionTecnica = tt.expiry
			snap := withOil(Snapshot{Trucks: []*models.Truck{truck}}, truck)

			alerts := Evaluate(snap, today)
			require.Len(t, alerts, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantSeverity, alerts[0].Severity)
				assert.Equal(t, tt.wantPriority, alerts[0].Priority)
				assert.Equal(t, tt.wantMessage, alerts[0].Message)
			}
		})
	}
}

func TestTruckFieldAlerts_SeguroExpired(t *testing.T) {
	truck := newTruck("S-01")
	truck.SeguroObligatorio = datePtr(2025, 6, 14)
	snap := withOil(Snapshot{Trucks: []*models.Truck{truck}}, truck)

	alerts := Evaluate(snap, today)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Seguro Obligatorio del camión S-01 VENCIDO hace 1 días", alerts[0].Message)
	assert.Equal(t, PriorityCritical, alerts[0].Priority)
}

// Built-in truck fields and the documents collection are independent
// sources; overlapping alerts both fire.
func TestTruckFieldAlerts_NoDeduplicationAgainstDocuments(t *testing.T) {
	truck := newTruck("D-01")
	truck.RevisionTecnica = datePtr(2025, 6, 18)
	snap := withOil(Snapshot{
		Trucks: []*models.Truck{truck},
		Documents: []*models.TruckDocument{
			{ID: primitive.NewObjectID(), TruckID: truck.ID.Hex(), Type: "Revisión Técnica", ExpiryDate: date(2025, 6, 18)},
		},
	}, truck)

	alerts := Evaluate(snap, today)
	require.Len(t, alerts, 2)
	assert.Equal(t, CategoryDocument, alerts[0].Category)
	assert.Equal(t, CategoryDocument, alerts[1].Category)
}

func TestTruckFieldAlerts_ImpuestosMunicipalesHasNoRule(t *testing.T) {
	truck := newTruck("I-01")
	truck.ImpuestosMunicipales = datePtr(2025, 6, 16)
	snap := withOil(Snapshot{Trucks: []*models.Truck{truck}}, truck)

	assert.Empty(t, Evaluate(snap, today))
}

func TestRepairAlerts(t *testing.T) {
	truck := newTruck("P-01")
	truckID := truck.ID.Hex()

	pending := func(n int) []*models.Repair {
		var repairs []*models.Repair
		for i := 0; i < n; i++ {
			repairs = append(repairs, &models.Repair{TruckID: truckID, Status: models.RepairStatusPending})
		}
		return repairs
	}

	t.Run("two pending is warning medium", func(t *testing.T) {
		snap := withOil(Snapshot{Trucks: []*models.Truck{truck}, Repairs: pending(2)}, truck)
		alerts := Evaluate(snap, today)
		require.Len(t, alerts, 1)
		assert.Equal(t, SeverityWarning, alerts[0].Severity)
		assert.Equal(t, PriorityMedium, alerts[0].Priority)
		assert.Equal(t, CategoryRepair, alerts[0].Category)
		assert.Equal(t, "Camión P-01: 2 reparación(es) pendiente(s)", alerts[0].Message)
	})

	t.Run("three pending is danger high", func(t *testing.T) {
		snap := withOil(Snapshot{Trucks: []*models.Truck{truck}, Repairs: pending(3)}, truck)
		alerts := Evaluate(snap, today)
		require.Len(t, alerts, 1)
		assert.Equal(t, SeverityDanger, alerts[0].Severity)
		assert.Equal(t, PriorityHigh, alerts[0].Priority)
	})

	t.Run("completed repairs don't count", func(t *testing.T) {
		repairs := []*models.Repair{
			{TruckID: truckID, Status: models.RepairStatusCompleted},
			{TruckID: truckID, Status: models.RepairStatusInProgress},
		}
		snap := withOil(Snapshot{Trucks: []*models.Truck{truck}, Repairs: repairs}, truck)
		assert.Empty(t, Evaluate(snap, today))
	})
}

func TestOilChangeAlerts(t *testing.T) {
	truck := newTruck("O-01")
	truckID := truck.ID.Hex()

	oil := func(changeDate time.Time, km int) []*models.OilChange {
		return []*models.OilChange{{TruckID: truckID, Date: changeDate, Km: km}}
	}
	ops := func(month string, finalKm int) []*models.Operation {
		return []*models.Operation{{TruckID: truckID, Month: month, FinalKm: finalKm}}
	}

	t.Run("no record at all is critical", func(t *testing.T) {
		snap := Snapshot{Trucks: []*models.Truck{truck}}
		alerts := Evaluate(snap, today)
		require.Len(t, alerts, 1)
		assert.Equal(t, SeverityDanger, alerts[0].Severity)
		assert.Equal(t, PriorityCritical, alerts[0].Priority)
		assert.Equal(t, CategoryMaintenance, alerts[0].Category)
		assert.Equal(t, "Camión O-01: No hay registro de cambio de aceite - Revisar mantenimiento", alerts[0].Message)
	})

	t.Run("seven months without operations cites months only", func(t *testing.T) {
		snap := Snapshot{
			Trucks:     []*models.Truck{truck},
			OilChanges: oil(date(2024, 11, 20), 80000),
		}
		alerts := Evaluate(snap, today)
		require.Len(t, alerts, 1)
		assert.Equal(t, SeverityDanger, alerts[0].Severity)
		assert.Equal(t, PriorityHigh, alerts[0].Priority)
		assert.Equal(t, "Camión O-01 necesita cambio de aceite URGENTE (7 meses desde último cambio)", alerts[0].Message)
	})

	t.Run("km threshold cites km only", func(t *testing.T) {
		snap := Snapshot{
			Trucks:     []*models.Truck{truck},
			OilChanges: oil(date(2025, 5, 1), 80000),
			Operations: ops("2025-06", 92000),
		}
		alerts := Evaluate(snap, today)
		require.Len(t, alerts, 1)
		assert.Equal(t, "Camión O-01 necesita cambio de aceite URGENTE (12.000 km desde último cambio)", alerts[0].Message)
	})

	t.Run("both thresholds cite both measures", func(t *testing.T) {
		snap := Snapshot{
			Trucks:     []*models.Truck{truck},
			OilChanges: oil(date(2024, 11, 20), 80000),
			Operations: ops("2025-06", 91000),
		}
		alerts := Evaluate(snap, today)
		require.Len(t, alerts, 1)
		assert.Equal(t, "Camión O-01 necesita cambio de aceite URGENTE (7 meses y 11.000 km desde último cambio)", alerts[0].Message)
	})

	t.Run("five months is approaching", func(t *testing.T) {
		snap := Snapshot{
			Trucks:     []*models.Truck{truck},
			OilChanges: oil(date(2025, 1, 20), 80000),
		}
		alerts := Evaluate(snap, today)
		require.Len(t, alerts, 1)
		assert.Equal(t, SeverityWarning, alerts[0].Severity)
		assert.Equal(t, PriorityMedium, alerts[0].Priority)
		assert.Equal(t, "Camión O-01 se acerca al cambio de aceite (5 meses desde último cambio)", alerts[0].Message)
	})

	t.Run("nine thousand km is approaching", func(t *testing.T) {
		snap := Snapshot{
			Trucks:     []*models.Truck{truck},
			OilChanges: oil(date(2025, 5, 1), 80000),
			Operations: ops("2025-06", 89000),
		}
		alerts := Evaluate(snap, today)
		require.Len(t, alerts, 1)
		assert.Equal(t, "Camión O-01 se acerca al cambio de aceite (9.000 km desde último cambio)", alerts[0].Message)
	})

	t.Run("fresh change emits nothing", func(t *testing.T) {
		snap := Snapshot{
			Trucks:     []*models.Truck{truck},
			OilChanges: oil(date(2025, 5, 1), 80000),
			Operations: ops("2025-06", 84000),
		}
		assert.Empty(t, Evaluate(snap, today))
	})

	t.Run("latest change wins", func(t *testing.T) {
		snap := Snapshot{
			Trucks: []*models.Truck{truck},
			OilChanges: []*models.OilChange{
				{TruckID: truckID, Date: date(2024, 10, 1), Km: 60000},
				{TruckID: truckID, Date: date(2025, 5, 1), Km: 80000},
			},
			Operations: ops("2025-06", 84000),
		}
		assert.Empty(t, Evaluate(snap, today))
	})

	t.Run("latest operation picked by month string", func(t *testing.T) {
		snap := Snapshot{
			Trucks:     []*models.Truck{truck},
			OilChanges: oil(date(2025, 5, 1), 80000),
			Operations: []*models.Operation{
				{TruckID: truckID, Month: "2025-06", FinalKm: 84000},
				{TruckID: truckID, Month: "2025-03", FinalKm: 95000},
			},
		}
		assert.Empty(t, Evaluate(snap, today))
	})

	t.Run("records without dates skip the rule", func(t *testing.T) {
		snap := Snapshot{
			Trucks:     []*models.Truck{truck},
			OilChanges: []*models.OilChange{{TruckID: truckID, Km: 80000}},
		}
		assert.Empty(t, Evaluate(snap, today))
	})
}

func TestFuelAlerts(t *testing.T) {
	truck := newTruck("F-01")
	truckID := truck.ID.Hex()

	entries := func(liters ...float64) []*models.FuelEntry {
		var out []*models.FuelEntry
		for i, l := range liters {
			out = append(out, &models.FuelEntry{
				TruckID: truckID,
				Date:    date(2025, 6, 1+i), // later index = more recent
				Liters:  l,
			})
		}
		return out
	}

	t.Run("spike over recent average fires", func(t *testing.T) {
		snap := withOil(Snapshot{
			Trucks:      []*models.Truck{truck},
			FuelEntries: entries(10, 10, 10, 20),
		}, truck)
		alerts := Evaluate(snap, today)
		require.Len(t, alerts, 1)
		assert.Equal(t, SeverityWarning, alerts[0].Severity)
		assert.Equal(t, PriorityMedium, alerts[0].Priority)
		assert.Equal(t, CategoryFuel, alerts[0].Category)
		assert.Equal(t, "Camión F-01: Consumo de combustible 40% superior al promedio", alerts[0].Message)
	})

	t.Run("steady consumption is quiet", func(t *testing.T) {
		snap := withOil(Snapshot{
			Trucks:      []*models.Truck{truck},
			FuelEntries: entries(10, 10, 12),
		}, truck)
		assert.Empty(t, Evaluate(snap, today))
	})

	t.Run("fewer than three entries is quiet", func(t *testing.T) {
		snap := withOil(Snapshot{
			Trucks:      []*models.Truck{truck},
			FuelEntries: entries(10, 40),
		}, truck)
		assert.Empty(t, Evaluate(snap, today))
	})
}

func TestMileageAlerts(t *testing.T) {
	t.Run("over threshold", func(t *testing.T) {
		truck := newTruck("K-01")
		truck.Mileage = 600000
		snap := withOil(Snapshot{Trucks: []*models.Truck{truck}}, truck)
		alerts := Evaluate(snap, today)
		require.Len(t, alerts, 1)
		assert.Equal(t, SeverityInfo, alerts[0].Severity)
		assert.Equal(t, PriorityLow, alerts[0].Priority)
		assert.Equal(t, CategoryMileage, alerts[0].Category)
		assert.Equal(t, "Camión K-01: Alto kilometraje (600.000 km) - Considerar renovación", alerts[0].Message)
	})

	t.Run("at threshold is quiet", func(t *testing.T) {
		truck := newTruck("K-02")
		truck.Mileage = 500000
		snap := withOil(Snapshot{Trucks: []*models.Truck{truck}}, truck)
		assert.Empty(t, Evaluate(snap, today))
	})
}

func TestLicenseAlerts(t *testing.T) {
	tests := []struct {
		name         string
		expiry       *time.Time
		wantCount    int
		wantSeverity string
		wantPriority string
		wantMessage  string
	}{
		{
			name:         "expired yesterday",
			expiry:       datePtr(2025, 6, 14),
			wantCount:    1,
			wantSeverity: SeverityDanger,
			wantPriority: PriorityCritical,
			wantMessage:  "Licencia de conducir de María Pérez VENCIDA hace 1 días",
		},
		{
			name:         "expires today",
			expiry:       datePtr(2025, 6, 15),
			wantCount:    1,
			wantSeverity: SeverityDanger,
			wantPriority: PriorityHigh,
			wantMessage:  "Licencia de conducir de María Pérez vence en 0 días",
		},
		{
			name:         "seven days, boundary inclusive",
			expiry:       datePtr(2025, 6, 22),
			wantCount:    1,
			wantSeverity: SeverityDanger,
			wantPriority: PriorityHigh,
			wantMessage:  "Licencia de conducir de María Pérez vence en 7 días",
		},
		{
			name:         "eight days",
			expiry:       datePtr(2025, 6, 23),
			wantCount:    1,
			wantSeverity: SeverityWarning,
			wantPriority: PriorityMedium,
			wantMessage:  "Licencia de conducir de María Pérez vence en 8 días",
		},
		{
			name:         "thirty days, boundary inclusive",
			expiry:       datePtr(2025, 7, 15),
			wantCount:    1,
			wantSeverity: SeverityWarning,
			wantPriority: PriorityMedium,
			wantMessage:  "Licencia de conducir de María Pérez vence en 30 días",
		},
		{
			name:      "thirty-one days is quiet",
			expiry:    datePtr(2025, 7, 16),
			wantCount: 0,
		},
		{
			name:      "no expiry recorded",
			expiry:    nil,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver := &models.Driver{ID: primitive.NewObjectID(), Name: "María Pérez", LicenseExpiry: tt.expiry}
			snap := Snapshot{Drivers: []*models.Driver{driver}}

			alerts := Evaluate(snap, today)
			require.Len(t, alerts, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantSeverity, alerts[0].Severity)
				assert.Equal(t, tt.wantPriority, alerts[0].Priority)
				assert.Equal(t, CategoryLicense, alerts[0].Category)
				assert.Equal(t, tt.wantMessage, alerts[0].Message)
				assert.Equal(t, driver.ID.Hex(), alerts[0].DriverID)
				assert.Equal(t, "María Pérez", alerts[0].Subject)
			}
		})
	}
}

// Day counts depend on calendar dates only, never time of day.
func TestDaysUntil_IgnoresTimeOfDay(t *testing.T) {
	lateToday := time.Date(2025, 6, 15, 23, 50, 0, 0, time.UTC)
	earlyToday := time.Date(2025, 6, 15, 0, 5, 0, 0, time.UTC)

	assert.Equal(t, 0, daysUntil(earlyToday, lateToday))
	assert.Equal(t, 0, daysUntil(lateToday, earlyToday))
	assert.Equal(t, 1, daysUntil(lateToday, time.Date(2025, 6, 16, 0, 5, 0, 0, time.UTC)))
	assert.Equal(t, -1, daysUntil(earlyToday, time.Date(2025, 6, 14, 23, 50, 0, 0, time.UTC)))
}

// Truck with high mileage and no history: exactly the missing oil
// record alert and the mileage notice, nothing else.
func TestEvaluate_BareHighMileageTruck(t *testing.T) {
	truck := newTruck("A-1")
	truck.Mileage = 600000
	snap := Snapshot{Trucks: []*models.Truck{truck}}

	alerts := Evaluate(snap, today)
	require.Len(t, alerts, 2)

	assert.Equal(t, CategoryMaintenance, alerts[0].Category)
	assert.Equal(t, SeverityDanger, alerts[0].Severity)
	assert.Equal(t, PriorityCritical, alerts[0].Priority)

	assert.Equal(t, CategoryMileage, alerts[1].Category)
	assert.Equal(t, SeverityInfo, alerts[1].Severity)
	assert.Equal(t, PriorityLow, alerts[1].Priority)
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", formatThousands(0))
	assert.Equal(t, "999", formatThousands(999))
	assert.Equal(t, "1.000", formatThousands(1000))
	assert.Equal(t, "12.345", formatThousands(12345))
	assert.Equal(t, "600.000", formatThousands(600000))
	assert.Equal(t, "1.234.567", formatThousands(1234567))
	assert.Equal(t, "-12.345", formatThousands(-12345))
}
