package notifier

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"tvar-backend/internal/alerts"
	"tvar-backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// AlertSource produces the current ranked alert list.
type AlertSource interface {
	GenerateAlerts() ([]alerts.Alert, error)
}

// HistoryStore persists sent notifications.
type HistoryStore interface {
	Create(notification *models.Notification) (*models.Notification, error)
}

// Mailer delivers the digest of newly raised alerts.
type Mailer interface {
	Configured() bool
	SendAlertDigest(digest []alerts.Alert) error
}

type Config struct {
	Interval  time.Duration
	DedupTTL  time.Duration
	KeyPrefix string
}

func DefaultConfig() Config {
	return Config{
		Interval:  time.Hour,
		DedupTTL:  24 * time.Hour,
		KeyPrefix: "tvar:",
	}
}

// Service periodically re-evaluates fleet alerts and notifies about
// danger-level ones. A Redis SetNX key per alert subject and category
// suppresses repeats until the dedup TTL expires.
type Service struct {
	source  AlertSource
	redis   *redis.Client
	history HistoryStore
	mailer  Mailer
	config  Config

	mu        sync.Mutex
	isRunning bool
	stopChan  chan struct{}
}

func NewService(source AlertSource, redisClient *redis.Client, history HistoryStore, mailer Mailer, config Config) *Service {
	if config.Interval <= 0 {
		config.Interval = time.Hour
	}
	if config.DedupTTL <= 0 {
		config.DedupTTL = 24 * time.Hour
	}
	if config.KeyPrefix == "" {
		config.KeyPrefix = "tvar:"
	}

	return &Service{
		source:   source,
		redis:    redisClient,
		history:  history,
		mailer:   mailer,
		config:   config,
		stopChan: make(chan struct{}),
	}
}

func (s *Service) Start() {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = true
	s.mu.Unlock()

	log.Printf("Alert notifier started (interval: %v)", s.config.Interval)

	go func() {
		ticker := time.NewTicker(s.config.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if sent, err := s.RunOnce(); err != nil {
					log.Printf("Alert check failed: %v", err)
				} else if sent > 0 {
					log.Printf("Alert check raised %d notification(s)", sent)
				}
			case <-s.stopChan:
				log.Println("Alert notifier stopped")
				return
			}
		}
	}()
}

func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	s.isRunning = false
	close(s.stopChan)
}

// RunOnce evaluates alerts now and notifies about danger alerts that
// have not been notified within the dedup TTL. It returns how many
// notifications were raised.
func (s *Service) RunOnce() (int, error) {
	current, err := s.source.GenerateAlerts()
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var fresh []alerts.Alert
	for _, alert := range current {
		if alert.Severity != alerts.SeverityDanger {
			continue
		}

		key := fmt.Sprintf("%snotify:%s:%s", s.config.KeyPrefix, alert.Subject, alert.Category)
		isNew, err := s.redis.SetNX(ctx, key, "1", s.config.DedupTTL).Result()
		if err != nil {
			return 0, err
		}
		if isNew {
			fresh = append(fresh, alert)
		}
	}

	if len(fresh) == 0 {
		return 0, nil
	}

	now := time.Now()
	for _, alert := range fresh {
		notification := &models.Notification{
			Subject:  alert.Subject,
			Category: alert.Category,
			Severity: alert.Severity,
			Priority: alert.Priority,
			Message:  alert.Message,
			SentAt:   now,
		}
		if _, err := s.history.Create(notification); err != nil {
			log.Printf("Failed to record notification: %v", err)
		}
	}

	if s.mailer != nil && s.mailer.Configured() {
		if err := s.mailer.SendAlertDigest(fresh); err != nil {
			log.Printf("Failed to send alert digest: %v", err)
		}
	}

	return len(fresh), nil
}
