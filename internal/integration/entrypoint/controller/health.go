package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/money-manager/backend/internal/application/adapter"
)

const healthProbeTimeout = 2 * time.Second

// StorePinger reports whether the backing store answers.
type StorePinger func(ctx context.Context) error

type HealthController struct {
	ping  StorePinger
	clock adapter.Clock
}

type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController reports store reachability through ping.
func NewHealthController(ping StorePinger, clock adapter.Clock) *HealthController {
	return &HealthController{ping: ping, clock: clock}
}

// Check always answers 200 while the process serves; an unreachable store
// only flips Database to "disconnected".
func (h *HealthController) Check(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   "Money Manager API is running",
		Database:  h.databaseState(c.Request.Context()),
		Timestamp: h.clock.Now().Format(time.RFC3339),
	})
}

func (h *HealthController) databaseState(ctx context.Context) string {
	if h.ping == nil {
		return "disconnected"
	}
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()
	if err := h.ping(ctx); err != nil {
		return "disconnected"
	}
	return "connected"
}
