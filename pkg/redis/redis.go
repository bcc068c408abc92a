package redis

import (
	"context"
	"fmt"
	"log"
	"time"

	"tvar-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

// Client wraps the go-redis client used by the snapshot cache and
// notification dedup keys.
type Client struct {
	client *redis.Client
}

type HealthStatus struct {
	IsConnected    bool          `json:"isConnected"`
	ResponseTime   time.Duration `json:"responseTime"`
	ConnectionInfo string        `json:"connectionInfo"`
	Error          string        `json:"error,omitempty"`
}

func NewClient(cfg config.RedisConfig) *Client {
	var opt *redis.Options

	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			log.Printf("Failed to parse Redis URL: %v, falling back to host:port", err)
		} else {
			opt = parsed
		}
	}

	if opt == nil {
		opt = &redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}

	return &Client{client: redis.NewClient(opt)}
}

// GetClient exposes the underlying go-redis client for packages that
// need raw commands.
func (c *Client) GetClient() *redis.Client {
	return c.client
}

func (c *Client) HealthCheck() HealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	err := c.client.Ping(ctx).Err()
	elapsed := time.Since(start)

	status := HealthStatus{
		IsConnected:    err == nil,
		ResponseTime:   elapsed,
		ConnectionInfo: c.client.Options().Addr,
	}
	if err != nil {
		status.Error = err.Error()
	}

	return status
}

func (c *Client) Close() error {
	return c.client.Close()
}
