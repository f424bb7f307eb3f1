package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vakeel-api/internal/service"
)

// UserHandler expone vistas agregadas por usuario.
type UserHandler struct {
	logger *zap.Logger
	stats  *service.StatsService
}

func NewUserHandler(logger *zap.Logger, stats *service.StatsService) *UserHandler {
	return &UserHandler{logger: logger, stats: stats}
}

// Stats maneja GET /api/users/stats/:userId.
func (h *UserHandler) Stats(c *gin.Context) {
	stats, err := h.stats.UserStats(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, "user stats", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
