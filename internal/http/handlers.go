package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ServiceName y Version se informan en /health.
const (
	ServiceName = "VakeelGPT API"
	Version     = "1.0.0"
)

// HealthHandler informa el estado del proceso y el backend elegido al arrancar.
type HealthHandler struct {
	storage string
	now     func() time.Time
}

func NewHealthHandler(storageMode string) *HealthHandler {
	return &HealthHandler{storage: storageMode, now: func() time.Time { return time.Now().UTC() }}
}

// Health maneja GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   ServiceName,
		"version":   Version,
		"storage":   h.storage,
		"timestamp": h.now(),
	})
}
