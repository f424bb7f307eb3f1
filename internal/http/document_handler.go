package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vakeel-api/internal/domain"
	"vakeel-api/internal/service"
)

// DocumentHandler expone redaccion, edicion, revision y catalogo de documentos.
type DocumentHandler struct {
	logger *zap.Logger
	docs   *service.DocumentService
}

func NewDocumentHandler(logger *zap.Logger, docs *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{logger: logger, docs: docs}
}

// Draft maneja POST /api/documents/draft.
func (h *DocumentHandler) Draft(c *gin.Context) {
	var req struct {
		UserID       string                     `json:"userId"`
		Title        string                     `json:"title"`
		Type         string                     `json:"type"`
		Description  string                     `json:"description"`
		Language     string                     `json:"language"`
		CustomFields map[string]json.RawMessage `json:"customFields"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid draft request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	fields, err := customFieldValues(req.CustomFields)
	if err != nil {
		respondError(c, h.logger, "draft document", err)
		return
	}

	doc, err := h.docs.Draft(c.Request.Context(), service.DraftInput{
		UserID:       requestUserID(c, strings.TrimSpace(req.UserID)),
		Title:        req.Title,
		Type:         req.Type,
		Description:  req.Description,
		Language:     req.Language,
		CustomFields: fields,
	})
	if err != nil {
		respondError(c, h.logger, "draft document", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "documentId": doc.ID, "content": doc.Content})
}

// customFieldValues pasa cada valor a texto: strings sin comillas, numeros y
// booleanos con su literal JSON. null se omite y deja el placeholder intacto.
// Objetos y arrays no tienen forma de texto y se rechazan.
func customFieldValues(raw map[string]json.RawMessage) (map[string]string, error) {
	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		lit := bytes.TrimSpace(v)
		if len(lit) == 0 {
			continue
		}
		switch lit[0] {
		case '"':
			var s string
			if err := json.Unmarshal(lit, &s); err != nil {
				return nil, fmt.Errorf("%w: customFields.%s: %v", domain.ErrValidation, k, err)
			}
			fields[k] = s
		case '{', '[':
			return nil, fmt.Errorf("%w: customFields.%s must be a string, number or boolean", domain.ErrValidation, k)
		default:
			if string(lit) == "null" {
				continue
			}
			fields[k] = string(lit)
		}
	}
	return fields, nil
}

// ListByUser maneja GET /api/documents/user/:userId?type&status&limit&offset.
func (h *DocumentHandler) ListByUser(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	docs, err := h.docs.List(c.Request.Context(), c.Param("userId"), domain.DocumentFilter{
		Type:   c.Query("type"),
		Status: domain.DocumentStatus(c.Query("status")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, h.logger, "list documents", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "documents": docs, "total": len(docs)})
}

// Get maneja GET /api/documents/:id.
func (h *DocumentHandler) Get(c *gin.Context) {
	doc, err := h.docs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "get document", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "document": doc})
}

// Update maneja PUT /api/documents/:id con un patch parcial.
func (h *DocumentHandler) Update(c *gin.Context) {
	var patch domain.DocumentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Warn("invalid document patch", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if _, err := h.docs.Update(c.Request.Context(), c.Param("id"), patch); err != nil {
		respondError(c, h.logger, "update document", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Review maneja POST /api/documents/:id/review. El cuerpo es opcional.
func (h *DocumentHandler) Review(c *gin.Context) {
	var req struct {
		Language string `json:"language"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("invalid review request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
	}

	review, err := h.docs.Review(c.Request.Context(), c.Param("id"), req.Language)
	if err != nil {
		respondError(c, h.logger, "review document", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"review":     review.Review,
		"documentId": review.DocumentID,
		"reviewedAt": review.ReviewedAt,
	})
}

// Complete maneja POST /api/documents/:id/complete.
func (h *DocumentHandler) Complete(c *gin.Context) {
	doc, err := h.docs.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "complete document", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "document": doc})
}

// Delete maneja DELETE /api/documents/:id.
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.docs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, "delete document", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Types maneja GET /api/documents/types/available.
func (h *DocumentHandler) Types(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "documentTypes": h.docs.Types()})
}
