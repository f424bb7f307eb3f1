package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vakeel-api/internal/domain"
)

// respondError traduce errores del dominio a status HTTP. El cuerpo siempre es {"error": ...}.
func respondError(c *gin.Context, logger *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// requestUserID prefiere el userId explicito; si falta usa el del token.
func requestUserID(c *gin.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if claims, ok := GetAuthClaims(c); ok {
		return claims.UserID
	}
	return ""
}
