package services

import (
	"time"

	"tvar-backend/internal/alerts"
)

// SnapshotProvider supplies the fleet snapshot for alert evaluation.
type SnapshotProvider interface {
	Snapshot() (alerts.Snapshot, error)
}

// AlertService evaluates and ranks fleet alerts on demand.
type AlertService struct {
	provider SnapshotProvider
	now      func() time.Time
}

func NewAlertService(provider SnapshotProvider) *AlertService {
	return &AlertService{
		provider: provider,
		now:      time.Now,
	}
}

// GenerateAlerts evaluates every alert rule against the current
// snapshot and returns the alerts ranked by priority.
func (s *AlertService) GenerateAlerts() ([]alerts.Alert, error) {
	snapshot, err := s.provider.Snapshot()
	if err != nil {
		return nil, err
	}

	return alerts.Rank(alerts.Evaluate(snapshot, s.now())), nil
}

// TopAlerts returns the n highest-priority alerts.
func (s *AlertService) TopAlerts(n int) ([]alerts.Alert, error) {
	ranked, err := s.GenerateAlerts()
	if err != nil {
		return nil, err
	}

	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// DangerAlerts returns only danger-severity alerts, ranked.
func (s *AlertService) DangerAlerts() ([]alerts.Alert, error) {
	ranked, err := s.GenerateAlerts()
	if err != nil {
		return nil, err
	}

	danger := make([]alerts.Alert, 0)
	for _, alert := range ranked {
		if alert.Severity == alerts.SeverityDanger {
			danger = append(danger, alert)
		}
	}
	return danger, nil
}

// GetAlertStatistics summarizes the current alert list by severity,
// priority and category.
func (s *AlertService) GetAlertStatistics() (map[string]interface{}, error) {
	ranked, err := s.GenerateAlerts()
	if err != nil {
		return nil, err
	}

	bySeverity := make(map[string]int)
	byPriority := make(map[string]int)
	byCategory := make(map[string]int)
	for _, alert := range ranked {
		bySeverity[alert.Severity]++
		byPriority[alert.Priority]++
		byCategory[alert.Category]++
	}

	return map[string]interface{}{
		"total":      len(ranked),
		"bySeverity": bySeverity,
		"byPriority": byPriority,
		"byCategory": byCategory,
	}, nil
}
