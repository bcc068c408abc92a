package notifier

import (
	"errors"
	"testing"
	"time"

	"tvar-backend/internal/alerts"
	"tvar-backend/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	alerts []alerts.Alert
	err    error
}

func (s *stubSource) GenerateAlerts() ([]alerts.Alert, error) {
	return s.alerts, s.err
}

type recordingHistory struct {
	created []*models.Notification
}

func (h *recordingHistory) Create(n *models.Notification) (*models.Notification, error) {
	h.created = append(h.created, n)
	return n, nil
}

type recordingMailer struct {
	configured bool
	digests    [][]alerts.Alert
}

func (m *recordingMailer) Configured() bool {
	return m.configured
}

func (m *recordingMailer) SendAlertDigest(digest []alerts.Alert) error {
	m.digests = append(m.digests, digest)
	return nil
}

func dangerAlert(subject, category string) alerts.Alert {
	return alerts.Alert{
		Severity: alerts.SeverityDanger,
		Category: category,
		Priority: alerts.PriorityCritical,
		Subject:  subject,
		Message:  "mensaje de prueba",
	}
}

func setupNotifier(t *testing.T, source *stubSource) (*Service, *recordingHistory, *recordingMailer, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	history := &recordingHistory{}
	mailer := &recordingMailer{configured: true}
	service := NewService(source, client, history, mailer, DefaultConfig())

	return service, history, mailer, mr
}

func TestRunOnceNotifiesDangerAlerts(t *testing.T) {
	source := &stubSource{alerts: []alerts.Alert{
		dangerAlert("T-01", alerts.CategoryMaintenance),
		{Severity: alerts.SeverityWarning, Category: alerts.CategoryFuel, Subject: "T-02", Priority: alerts.PriorityMedium},
		{Severity: alerts.SeverityInfo, Category: alerts.CategoryMileage, Subject: "T-03", Priority: alerts.PriorityLow},
	}}
	service, history, mailer, _ := setupNotifier(t, source)

	sent, err := service.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	require.Len(t, history.created, 1)
	assert.Equal(t, "T-01", history.created[0].Subject)
	assert.Equal(t, alerts.CategoryMaintenance, history.created[0].Category)
	assert.Equal(t, alerts.PriorityCritical, history.created[0].Priority)
	assert.False(t, history.created[0].SentAt.IsZero())

	require.Len(t, mailer.digests, 1)
	require.Len(t, mailer.digests[0], 1)
	assert.Equal(t, "T-01", mailer.digests[0][0].Subject)
}

func TestRunOnceSuppressesRepeats(t *testing.T) {
	source := &stubSource{alerts: []alerts.Alert{dangerAlert("T-01", alerts.CategoryDocument)}}
	service, history, mailer, _ := setupNotifier(t, source)

	sent, err := service.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	sent, err = service.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, 0, sent)

	assert.Len(t, history.created, 1)
	assert.Len(t, mailer.digests, 1)
}

func TestRunOnceNotifiesAgainAfterTTL(t *testing.T) {
	source := &stubSource{alerts: []alerts.Alert{dangerAlert("T-01", alerts.CategoryDocument)}}
	service, history, _, mr := setupNotifier(t, source)

	_, err := service.RunOnce()
	require.NoError(t, err)

	mr.FastForward(25 * time.Hour)

	sent, err := service.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Len(t, history.created, 2)
}

func TestRunOnceDistinguishesCategories(t *testing.T) {
	// the same truck can carry alerts in several categories at once
	source := &stubSource{alerts: []alerts.Alert{
		dangerAlert("T-01", alerts.CategoryDocument),
		dangerAlert("T-01", alerts.CategoryMaintenance),
	}}
	service, history, _, _ := setupNotifier(t, source)

	sent, err := service.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Len(t, history.created, 2)
}

func TestRunOnceSkipsMailerWhenNotConfigured(t *testing.T) {
	source := &stubSource{alerts: []alerts.Alert{dangerAlert("T-01", alerts.CategoryDocument)}}
	service, history, mailer, _ := setupNotifier(t, source)
	mailer.configured = false

	sent, err := service.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Len(t, history.created, 1)
	assert.Empty(t, mailer.digests)
}

func TestRunOncePropagatesSourceError(t *testing.T) {
	source := &stubSource{err: errors.New("mongo down")}
	service, history, mailer, _ := setupNotifier(t, source)

	sent, err := service.RunOnce()
	require.Error(t, err)
	assert.Equal(t, 0, sent)
	assert.Empty(t, history.created)
	assert.Empty(t, mailer.digests)
}

func TestStartStopIdempotent(t *testing.T) {
	source := &stubSource{}
	service, _, _, _ := setupNotifier(t, source)

	service.Start()
	service.Start()
	service.Stop()
	service.Stop()
}
