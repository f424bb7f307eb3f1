package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"vakeel-api/internal/domain"
	"vakeel-api/internal/llm"
	"vakeel-api/internal/repository"
)

var ErrChatInvalidInput = fmt.Errorf("%w: message and userId are required", domain.ErrValidation)

// ChatInput es un pedido de chat tal como llega del cliente.
type ChatInput struct {
	UserID    string
	SessionID string
	Message   string
	Language  string
	Kind      string
}

// ChatService orquesta un turno: resuelve la sesion, arma el contexto,
// llama al LLM y persiste el intercambio.
type ChatService struct {
	messages  repository.MessageRepository
	sessions  *SessionService
	context   ContextService
	prompts   PromptBuilder
	responder Responder
	logger    *zap.Logger
}

func NewChatService(
	messages repository.MessageRepository,
	sessions *SessionService,
	contextSvc ContextService,
	responder Responder,
	logger *zap.Logger,
) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		messages:  messages,
		sessions:  sessions,
		context:   contextSvc,
		responder: responder,
		logger:    logger,
	}
}

// Chat procesa un turno. Un fallo del LLM no es error: la respuesta trae el
// texto de respaldo localizado.
func (s *ChatService) Chat(ctx context.Context, in ChatInput) (domain.Message, error) {
	userID := strings.TrimSpace(in.UserID)
	text := strings.TrimSpace(in.Message)
	if userID == "" || text == "" {
		return domain.Message{}, ErrChatInvalidInput
	}
	lang := domain.ParseLanguage(in.Language)
	kind := domain.ParseMessageKind(in.Kind)

	sessionID, err := s.sessions.Resolve(ctx, in.SessionID)
	if err != nil {
		return domain.Message{}, fmt.Errorf("resolve session: %w", err)
	}

	history, err := s.context.GetContext(ctx, userID)
	if err != nil {
		return domain.Message{}, fmt.Errorf("build context: %w", err)
	}

	reply := s.responder.Respond(ctx, llm.Request{
		Prompt:   s.prompts.Build(text, kind, history),
		Language: lang,
		Kind:     kind,
	})

	msg, err := s.messages.AppendMessage(ctx, domain.NewMessage{
		UserID:    userID,
		SessionID: sessionID,
		Message:   text,
		Response:  reply,
		Language:  lang,
		Kind:      kind,
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("append message: %w", err)
	}

	s.logger.Debug("chat turn stored",
		zap.String("user_id", userID),
		zap.String("session_id", msg.SessionID),
		zap.Int("context_turns", len(history)),
	)
	return msg, nil
}
