package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vakeel-api/internal/service"
)

// ChatHandler mantiene dependencias para endpoints de chat y sesiones.
type ChatHandler struct {
	logger   *zap.Logger
	chat     *service.ChatService
	sessions *service.SessionService
}

// NewChatHandler crea una instancia de ChatHandler con dependencias necesarias.
func NewChatHandler(logger *zap.Logger, chat *service.ChatService, sessions *service.SessionService) *ChatHandler {
	return &ChatHandler{logger: logger, chat: chat, sessions: sessions}
}

// PostChat maneja POST /api/chat.
func (h *ChatHandler) PostChat(c *gin.Context) {
	var req struct {
		Message     string `json:"message"`
		UserID      string `json:"userId"`
		Language    string `json:"language"`
		MessageType string `json:"messageType"`
		SessionID   string `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	msg, err := h.chat.Chat(c.Request.Context(), service.ChatInput{
		UserID:    requestUserID(c, strings.TrimSpace(req.UserID)),
		SessionID: req.SessionID,
		Message:   req.Message,
		Language:  req.Language,
		Kind:      req.MessageType,
	})
	if err != nil {
		respondError(c, h.logger, "chat", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"response":  msg.Response,
		"chatId":    msg.ID,
		"sessionId": msg.SessionID,
		"language":  msg.Language,
		"timestamp": msg.Timestamp,
	})
}

// ListSessions maneja GET /api/chat/sessions/:userId.
func (h *ChatHandler) ListSessions(c *gin.Context) {
	sessions, err := h.sessions.List(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, "list sessions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sessions": sessions})
}

// CreateSession maneja POST /api/chat/sessions.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
		Title  string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, err := h.sessions.Create(c.Request.Context(), requestUserID(c, strings.TrimSpace(req.UserID)), req.Title)
	if err != nil {
		respondError(c, h.logger, "create session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sessionId": session.ID})
}

// History maneja GET /api/chat/history/:userId?sessionId&limit&offset.
func (h *ChatHandler) History(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	chats, err := h.sessions.History(c.Request.Context(), service.HistoryQuery{
		UserID:    c.Param("userId"),
		SessionID: c.Query("sessionId"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		respondError(c, h.logger, "chat history", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "chats": chats, "total": len(chats)})
}

// DeleteSession maneja DELETE /api/chat/sessions/:sessionId.
func (h *ChatHandler) DeleteSession(c *gin.Context) {
	if err := h.sessions.Delete(c.Request.Context(), c.Param("sessionId")); err != nil {
		respondError(c, h.logger, "delete session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetChat maneja GET /api/chat/:chatId.
func (h *ChatHandler) GetChat(c *gin.Context) {
	msg, err := h.sessions.Message(c.Request.Context(), c.Param("chatId"))
	if err != nil {
		respondError(c, h.logger, "get chat", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "chat": msg})
}

// pagination lee limit/offset opcionales; responde 400 si no son enteros.
func pagination(c *gin.Context) (int, int, bool) {
	limit, offset := 0, 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return 0, 0, false
		}
		limit = v
	}
	if raw := c.Query("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
			return 0, 0, false
		}
		offset = v
	}
	return limit, offset, true
}
