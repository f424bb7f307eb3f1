package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vakeel-api/internal/service"
)

// RouterDeps agrupa lo que necesita NewRouter. JWT y Limiter son opcionales.
type RouterDeps struct {
	Logger    *zap.Logger
	Health    *HealthHandler
	Chat      *ChatHandler
	Documents *DocumentHandler
	Users     *UserHandler
	JWT       *service.JWTService
	Limiter   service.RateLimiter
}

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(deps.Logger), gin.CustomRecovery(jsonRecovery(deps.Logger)), jsonContentTypeMiddleware())
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	r.GET("/health", deps.Health.Health)

	api := r.Group("/api")
	// El catalogo es publico.
	api.GET("/documents/types/available", deps.Documents.Types)

	protected := api.Group("")
	if deps.JWT.Enabled() {
		protected.Use(JWTAuthMiddleware(deps.JWT))
	}
	limited := RateLimitMiddleware(deps.Limiter)

	chat := protected.Group("/chat")
	chat.POST("", limited, deps.Chat.PostChat)
	chat.GET("/sessions/:userId", deps.Chat.ListSessions)
	chat.POST("/sessions", deps.Chat.CreateSession)
	chat.DELETE("/sessions/:sessionId", deps.Chat.DeleteSession)
	chat.GET("/history/:userId", deps.Chat.History)
	chat.GET("/:chatId", deps.Chat.GetChat)

	docs := protected.Group("/documents")
	docs.POST("/draft", limited, deps.Documents.Draft)
	docs.GET("/user/:userId", deps.Documents.ListByUser)
	docs.GET("/:id", deps.Documents.Get)
	docs.PUT("/:id", deps.Documents.Update)
	docs.DELETE("/:id", deps.Documents.Delete)
	docs.POST("/:id/review", limited, deps.Documents.Review)
	docs.POST("/:id/complete", deps.Documents.Complete)

	protected.GET("/users/stats/:userId", deps.Users.Stats)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonRecovery responde los panics con el mismo cuerpo {"error": ...} que el resto.
func jsonRecovery(logger *zap.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
