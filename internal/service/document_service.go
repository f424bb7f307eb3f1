package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vakeel-api/internal/domain"
	"vakeel-api/internal/llm"
	"vakeel-api/internal/repository"
)

const (
	DefaultDocumentLimit = 20
	MaxDocumentLimit     = 100
)

var ErrDocumentInvalidInput = fmt.Errorf("%w: userId, title, and type are required", domain.ErrValidation)

// DraftInput son los datos de POST /documents/draft.
type DraftInput struct {
	UserID       string
	Title        string
	Type         string
	Description  string
	Language     string
	CustomFields map[string]string
}

// Review es la devolucion del LLM sobre un documento. No se persiste.
type Review struct {
	DocumentID string    `json:"documentId"`
	Review     string    `json:"review"`
	ReviewedAt time.Time `json:"reviewedAt"`
}

// DocumentService maneja redaccion, edicion, revision y cierre de documentos.
type DocumentService struct {
	docs      repository.DocumentRepository
	engine    *TemplateEngine
	responder Responder
	prompts   PromptBuilder
	logger    *zap.Logger
	now       func() time.Time
}

func NewDocumentService(docs repository.DocumentRepository, engine *TemplateEngine, responder Responder, logger *zap.Logger) *DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{
		docs:      docs,
		engine:    engine,
		responder: responder,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Draft genera el contenido y guarda el documento en estado draft.
func (s *DocumentService) Draft(ctx context.Context, in DraftInput) (domain.Document, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	in.Title = strings.TrimSpace(in.Title)
	in.Type = strings.TrimSpace(in.Type)
	if in.UserID == "" || in.Title == "" || in.Type == "" {
		return domain.Document{}, ErrDocumentInvalidInput
	}
	lang := domain.ParseLanguage(in.Language)

	content := s.engine.Generate(ctx, DraftRequest{
		Type:        in.Type,
		Language:    lang,
		Description: in.Description,
		Fields:      in.CustomFields,
	})

	now := s.now()
	doc := domain.Document{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		Title:     in.Title,
		Type:      in.Type,
		Content:   content,
		Language:  lang,
		Status:    domain.StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.docs.CreateDocument(ctx, doc); err != nil {
		return domain.Document{}, fmt.Errorf("create document: %w", err)
	}
	s.logger.Debug("document drafted",
		zap.String("document_id", doc.ID),
		zap.String("type", doc.Type),
		zap.Bool("free_form", strings.TrimSpace(in.Description) != ""),
	)
	return doc, nil
}

func (s *DocumentService) Get(ctx context.Context, id string) (domain.Document, error) {
	return s.docs.GetDocument(ctx, strings.TrimSpace(id))
}

// List devuelve los documentos del usuario, el mas nuevo primero.
func (s *DocumentService) List(ctx context.Context, userID string, filter domain.DocumentFilter) ([]domain.Document, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrValidation)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, filter.Status)
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultDocumentLimit
	}
	if filter.Limit > MaxDocumentLimit {
		filter.Limit = MaxDocumentLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.docs.ListDocuments(ctx, userID, filter)
}

// Update aplica un patch parcial. El patch vacio se rechaza antes de tocar el store.
func (s *DocumentService) Update(ctx context.Context, id string, patch domain.DocumentPatch) (domain.Document, error) {
	if patch.IsEmpty() {
		return domain.Document{}, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}
	doc, err := s.docs.GetDocument(ctx, strings.TrimSpace(id))
	if err != nil {
		return domain.Document{}, err
	}
	if err := doc.Apply(patch, s.now()); err != nil {
		return domain.Document{}, err
	}
	if err := s.docs.UpdateDocument(ctx, doc); err != nil {
		return domain.Document{}, fmt.Errorf("update document: %w", err)
	}
	return doc, nil
}

// Complete hace draft -> completed. Sobre un documento ya completo no hace nada.
func (s *DocumentService) Complete(ctx context.Context, id string) (domain.Document, error) {
	doc, err := s.docs.GetDocument(ctx, strings.TrimSpace(id))
	if err != nil {
		return domain.Document{}, err
	}
	if !doc.Complete(s.now()) {
		return doc, nil
	}
	if err := s.docs.UpdateDocument(ctx, doc); err != nil {
		return domain.Document{}, fmt.Errorf("complete document: %w", err)
	}
	return doc, nil
}

// Review pide al LLM una devolucion sobre el contenido completo. No modifica
// el documento ni guarda la devolucion.
func (s *DocumentService) Review(ctx context.Context, id, language string) (Review, error) {
	doc, err := s.docs.GetDocument(ctx, strings.TrimSpace(id))
	if err != nil {
		return Review{}, err
	}
	lang := domain.ParseLanguage(language)
	feedback := s.responder.Respond(ctx, llm.Request{
		Prompt:   s.prompts.Build(s.prompts.ReviewRequest(doc), domain.KindDocumentReview, nil),
		Language: lang,
		Kind:     domain.KindDocumentReview,
	})
	return Review{DocumentID: doc.ID, Review: feedback, ReviewedAt: s.now()}, nil
}

func (s *DocumentService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: document id is required", domain.ErrValidation)
	}
	return s.docs.DeleteDocument(ctx, id)
}

// Types devuelve el catalogo fijo de tipos de documento.
func (s *DocumentService) Types() []domain.DocumentType {
	return domain.DocumentTypes()
}
