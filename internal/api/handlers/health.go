package handlers

import (
	"net/http"
	"time"

	"tvar-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	redisClient *redis.Client
	startedAt   time.Time
}

func NewHealthHandler(redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		redisClient: redisClient,
		startedAt:   time.Now(),
	}
}

// Health reports service liveness and Redis connectivity
func (h *HealthHandler) Health(c *gin.Context) {
	response := gin.H{
		"status": "ok",
		"uptime": time.Since(h.startedAt).String(),
	}

	if h.redisClient != nil {
		response["redis"] = h.redisClient.HealthCheck()
	}

	c.JSON(http.StatusOK, response)
}
