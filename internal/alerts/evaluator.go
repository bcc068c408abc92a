package alerts

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"tvar-backend/internal/models"
)

// Oil change thresholds. A change is due at 6 months or 10,000 km,
// whichever comes first; the approaching band starts at 5 months or
// 8,000 km.
const (
	oilChangeDueMonths      = 6
	oilChangeDueKm          = 10000
	oilChangeApproachMonths = 5
	oilChangeApproachKm     = 8000
)

const highMileageThreshold = 500000

// fuelSpikeFactor flags a refuel 40% above the recent average.
const fuelSpikeFactor = 1.4

// Evaluate scans the snapshot against the reference date and returns
// every currently-active alert, in per-truck, per-rule emission order.
// The result is unranked; callers pass it through Rank. Evaluate is
// pure: same snapshot and date always produce the same alerts.
//
// Records missing a field a rule depends on (nil or zero dates) are
// silently skipped for that rule. Empty collections simply contribute
// no alerts.
func Evaluate(snap Snapshot, today time.Time) []Alert {
	alerts := []Alert{}

	for _, truck := range snap.Trucks {
		if truck == nil {
			continue
		}
		truckID := truck.ID.Hex()

		alerts = append(alerts, documentAlerts(snap.Documents, truck, truckID, today)...)
		alerts = append(alerts, truckFieldAlerts(truck, today)...)
		alerts = append(alerts, repairAlerts(snap.Repairs, truck, truckID)...)
		alerts = append(alerts, oilChangeAlerts(snap.OilChanges, snap.Operations, truck, truckID, today)...)
		alerts = append(alerts, fuelAlerts(snap.FuelEntries, truck, truckID)...)
		alerts = append(alerts, mileageAlerts(truck)...)
	}

	for _, driver := range snap.Drivers {
		if driver == nil {
			continue
		}
		alerts = append(alerts, licenseAlerts(driver, today)...)
	}

	return alerts
}

// documentAlerts checks every document attached to the truck. These
// fire independently of the truck's own revision/seguro fields; the
// two sources are intentionally not deduplicated.
func documentAlerts(documents []*models.TruckDocument, truck *models.Truck, truckID string, today time.Time) []Alert {
	var alerts []Alert

	for _, doc := range documents {
		if doc == nil || doc.TruckID != truckID || doc.ExpiryDate.IsZero() {
			continue
		}

		days := daysUntil(today, doc.ExpiryDate)
		switch {
		case days < 0:
			alerts = append(alerts, Alert{
				Severity:   SeverityDanger,
				Category:   CategoryDocument,
				Priority:   PriorityCritical,
				Subject:    truck.Number,
				Message:    fmt.Sprintf("%s del camión %s VENCIDO hace %d días", doc.Type, truck.Number, -days),
				DocumentID: doc.ID.Hex(),
			})
		case days <= 5:
			alerts = append(alerts, Alert{
				Severity:   SeverityDanger,
				Category:   CategoryDocument,
				Priority:   PriorityHigh,
				Subject:    truck.Number,
				Message:    fmt.Sprintf("%s del camión %s vence en %d días", doc.Type, truck.Number, days),
				DocumentID: doc.ID.Hex(),
			})
		case days <= 15:
			alerts = append(alerts, Alert{
				Severity:   SeverityWarning,
				Category:   CategoryDocument,
				Priority:   PriorityMedium,
				Subject:    truck.Number,
				Message:    fmt.Sprintf("%s del camión %s vence en %d días", doc.Type, truck.Number, days),
				DocumentID: doc.ID.Hex(),
			})
		}
	}

	return alerts
}

// truckFieldAlerts evaluates the expiry dates stored directly on the
// truck record (revisión técnica and seguro obligatorio). The
// impuestos municipales date is stored but has no alert rule.
func truckFieldAlerts(truck *models.Truck, today time.Time) []Alert {
	var alerts []Alert

	if truck.RevisionTecnica != nil && !truck.RevisionTecnica.IsZero() {
		days := daysUntil(today, *truck.RevisionTecnica)
		if days >= 0 && days <= 15 {
			severity, priority := SeverityWarning, PriorityMedium
			if days <= 5 {
				severity, priority = SeverityDanger, PriorityHigh
			}
			alerts = append(alerts, Alert{
				Severity: severity,
				Category: CategoryDocument,
				Priority: priority,
				Subject:  truck.Number,
				Message:  fmt.Sprintf("Revisión Técnica del camión %s vence en %d días", truck.Number, days),
			})
		} else if days < 0 {
			alerts = append(alerts, Alert{
				Severity: SeverityDanger,
				Category: CategoryDocument,
				Priority: PriorityCritical,
				Subject:  truck.Number,
				Message:  fmt.Sprintf("Revisión Técnica del camión %s VENCIDA hace %d días", truck.Number, -days),
			})
		}
	}

	if truck.SeguroObligatorio != nil && !truck.SeguroObligatorio.IsZero() {
		days := daysUntil(today, *truck.SeguroObligatorio)
		if days >= 0 && days <= 15 {
			severity, priority := SeverityWarning, PriorityMedium
			if days <= 5 {
				severity, priority = SeverityDanger, PriorityHigh
			}
			alerts = append(alerts, Alert{
				Severity: severity,
				Category: CategoryDocument,
				Priority: priority,
				Subject:  truck.Number,
				Message:  fmt.Sprintf("Seguro Obligatorio del camión %s vence en %d días", truck.Number, days),
			})
		} else if days < 0 {
			alerts = append(alerts, Alert{
				Severity: SeverityDanger,
				Category: CategoryDocument,
				Priority: PriorityCritical,
				Subject:  truck.Number,
				Message:  fmt.Sprintf("Seguro Obligatorio del camión %s VENCIDO hace %d días", truck.Number, -days),
			})
		}
	}

	return alerts
}

func repairAlerts(repairs []*models.Repair, truck *models.Truck, truckID string) []Alert {
	pending := 0
	for _, repair := range repairs {
		if repair != nil && repair.TruckID == truckID && repair.Status == models.RepairStatusPending {
			pending++
		}
	}
	if pending == 0 {
		return nil
	}

	severity, priority := SeverityWarning, PriorityMedium
	if pending > 2 {
		severity, priority = SeverityDanger, PriorityHigh
	}
	return []Alert{{
		Severity: severity,
		Category: CategoryRepair,
		Priority: priority,
		Subject:  truck.Number,
		Message:  fmt.Sprintf("Camión %s: %d reparación(es) pendiente(s)", truck.Number, pending),
	}}
}

// oilChangeAlerts checks the most recent oil change against the
// time/km thresholds. The current odometer comes from the latest
// operation record when one exists; without one only the time
// threshold applies.
func oilChangeAlerts(oilChanges []*models.OilChange, operations []*models.Operation, truck *models.Truck, truckID string, today time.Time) []Alert {
	var last *models.OilChange
	seen := false
	for _, change := range oilChanges {
		if change == nil || change.TruckID != truckID {
			continue
		}
		seen = true
		if change.Date.IsZero() {
			continue
		}
		if last == nil || change.Date.After(last.Date) {
			last = change
		}
	}

	if last == nil {
		if seen {
			// Records exist but carry no usable date; skip the rule
			// rather than claim there is no history.
			return nil
		}
		return []Alert{{
			Severity: SeverityDanger,
			Category: CategoryMaintenance,
			Priority: PriorityCritical,
			Subject:  truck.Number,
			Message:  fmt.Sprintf("Camión %s: No hay registro de cambio de aceite - Revisar mantenimiento", truck.Number),
		}}
	}

	monthsSince := monthsBetween(last.Date, today)

	kmSince := 0
	if op := latestOperation(operations, truckID); op != nil {
		kmSince = op.FinalKm - last.Km
	}

	needsByTime := monthsSince >= oilChangeDueMonths
	needsByKm := kmSince >= oilChangeDueKm
	approachByTime := monthsSince >= oilChangeApproachMonths
	approachByKm := kmSince >= oilChangeApproachKm

	switch {
	case needsByTime || needsByKm:
		reason := oilChangeReason(monthsSince, kmSince, needsByTime, needsByKm)
		return []Alert{{
			Severity: SeverityDanger,
			Category: CategoryMaintenance,
			Priority: PriorityHigh,
			Subject:  truck.Number,
			Message:  fmt.Sprintf("Camión %s necesita cambio de aceite URGENTE (%s desde último cambio)", truck.Number, reason),
		}}
	case approachByTime || approachByKm:
		reason := oilChangeReason(monthsSince, kmSince, approachByTime, approachByKm)
		return []Alert{{
			Severity: SeverityWarning,
			Category: CategoryMaintenance,
			Priority: PriorityMedium,
			Subject:  truck.Number,
			Message:  fmt.Sprintf("Camión %s se acerca al cambio de aceite (%s desde último cambio)", truck.Number, reason),
		}}
	}

	return nil
}

// oilChangeReason names whichever thresholds actually fired, with
// their measured values.
func oilChangeReason(months, km int, byTime, byKm bool) string {
	switch {
	case byTime && byKm:
		return fmt.Sprintf("%d meses y %s km", months, formatThousands(km))
	case byTime:
		return fmt.Sprintf("%d meses", months)
	default:
		return fmt.Sprintf("%s km", formatThousands(km))
	}
}

// fuelAlerts flags a most-recent refuel well above the average of the
// three latest entries. Needs at least three dated entries.
func fuelAlerts(entries []*models.FuelEntry, truck *models.Truck, truckID string) []Alert {
	var recent []*models.FuelEntry
	for _, entry := range entries {
		if entry != nil && entry.TruckID == truckID && !entry.Date.IsZero() {
			recent = append(recent, entry)
		}
	}
	if len(recent) < 3 {
		return nil
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})

	avg := (recent[0].Liters + recent[1].Liters + recent[2].Liters) / 3
	if recent[0].Liters > avg*fuelSpikeFactor {
		return []Alert{{
			Severity: SeverityWarning,
			Category: CategoryFuel,
			Priority: PriorityMedium,
			Subject:  truck.Number,
			Message:  fmt.Sprintf("Camión %s: Consumo de combustible 40%% superior al promedio", truck.Number),
		}}
	}

	return nil
}

func mileageAlerts(truck *models.Truck) []Alert {
	if truck.Mileage <= highMileageThreshold {
		return nil
	}
	return []Alert{{
		Severity: SeverityInfo,
		Category: CategoryMileage,
		Priority: PriorityLow,
		Subject:  truck.Number,
		Message:  fmt.Sprintf("Camión %s: Alto kilometraje (%s km) - Considerar renovación", truck.Number, formatThousands(truck.Mileage)),
	}}
}

func licenseAlerts(driver *models.Driver, today time.Time) []Alert {
	if driver.LicenseExpiry == nil || driver.LicenseExpiry.IsZero() {
		return nil
	}

	days := daysUntil(today, *driver.LicenseExpiry)
	switch {
	case days < 0:
		return []Alert{{
			Severity: SeverityDanger,
			Category: CategoryLicense,
			Priority: PriorityCritical,
			Subject:  driver.Name,
			Message:  fmt.Sprintf("Licencia de conducir de %s VENCIDA hace %d días", driver.Name, -days),
			DriverID: driver.ID.Hex(),
		}}
	case days <= 7:
		return []Alert{{
			Severity: SeverityDanger,
			Category: CategoryLicense,
			Priority: PriorityHigh,
			Subject:  driver.Name,
			Message:  fmt.Sprintf("Licencia de conducir de %s vence en %d días", driver.Name, days),
			DriverID: driver.ID.Hex(),
		}}
	case days <= 30:
		return []Alert{{
			Severity: SeverityWarning,
			Category: CategoryLicense,
			Priority: PriorityMedium,
			Subject:  driver.Name,
			Message:  fmt.Sprintf("Licencia de conducir de %s vence en %d días", driver.Name, days),
			DriverID: driver.ID.Hex(),
		}}
	}

	return nil
}

// latestOperation picks the truck's most recent operation by its
// zero-padded YYYY-MM month string.
func latestOperation(operations []*models.Operation, truckID string) *models.Operation {
	var latest *models.Operation
	for _, op := range operations {
		if op == nil || op.TruckID != truckID || op.Month == "" {
			continue
		}
		if latest == nil || op.Month > latest.Month {
			latest = op
		}
	}
	return latest
}

// daysUntil is the calendar-day distance from today to the expiry
// date, time of day ignored. An expiry later today counts as 0, not
// negative; partial days round up.
func daysUntil(today, expiry time.Time) int {
	t := truncateToDay(today)
	e := truncateToDay(expiry)
	return int(math.Ceil(e.Sub(t).Hours() / 24))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// monthsBetween is the calendar-month difference, day-of-month
// ignored.
func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// formatThousands groups digits with dots, es-CL style: 12345 ->
// "12.345".
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "." + s[i:]
	}
	if n < 0 {
		s = "-" + s
	}
	return s
}
