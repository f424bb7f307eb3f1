package service

import (
	"context"
	"fmt"
	"strings"

	"vakeel-api/internal/domain"
	"vakeel-api/internal/repository"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

var ErrSessionInvalidInput = fmt.Errorf("%w: userId is required", domain.ErrValidation)

// SessionService maneja el ciclo de vida de las sesiones de chat.
type SessionService struct {
	sessions repository.SessionRepository
	messages repository.MessageRepository
}

func NewSessionService(sessions repository.SessionRepository, messages repository.MessageRepository) *SessionService {
	return &SessionService{sessions: sessions, messages: messages}
}

// Create abre una sesion explicita. Sin titulo usa "New Conversation".
func (s *SessionService) Create(ctx context.Context, userID, title string) (domain.Session, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.Session{}, ErrSessionInvalidInput
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = domain.DefaultSessionTitle
	}
	return s.sessions.CreateSession(ctx, userID, title)
}

// Resolve pasa de Unbound a Active: un id vacio queda para que el append cree
// la sesion; un id presente debe existir.
func (s *SessionService) Resolve(ctx context.Context, sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", nil
	}
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return session.ID, nil
}

func (s *SessionService) List(ctx context.Context, userID string) ([]domain.SessionSummary, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrSessionInvalidInput
	}
	return s.sessions.ListSessions(ctx, userID)
}

func (s *SessionService) Delete(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("%w: sessionId is required", domain.ErrValidation)
	}
	return s.sessions.DeleteSession(ctx, sessionID)
}

// HistoryQuery filtra el historial; sin SessionID lista todas las sesiones del usuario.
type HistoryQuery struct {
	UserID    string
	SessionID string
	Limit     int
	Offset    int
}

// History devuelve una pagina del historial. Con sesion el orden es
// cronologico; sin sesion, el mas reciente primero.
func (s *SessionService) History(ctx context.Context, q HistoryQuery) ([]domain.Message, error) {
	q.UserID = strings.TrimSpace(q.UserID)
	if q.UserID == "" {
		return nil, ErrSessionInvalidInput
	}
	if q.Limit <= 0 {
		q.Limit = DefaultHistoryLimit
	}
	if q.Limit > MaxHistoryLimit {
		q.Limit = MaxHistoryLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	sessionID := strings.TrimSpace(q.SessionID)
	if sessionID == "" {
		return s.messages.ListRecentMessages(ctx, q.UserID, q.Limit, q.Offset)
	}

	all, err := s.messages.ListMessages(ctx, q.UserID, sessionID)
	if err != nil {
		return nil, err
	}
	if q.Offset >= len(all) {
		return []domain.Message{}, nil
	}
	all = all[q.Offset:]
	if len(all) > q.Limit {
		all = all[:q.Limit]
	}
	return all, nil
}

// Message devuelve un intercambio puntual por id.
func (s *SessionService) Message(ctx context.Context, id string) (domain.Message, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Message{}, fmt.Errorf("get message: %w", domain.ErrNotFound)
	}
	return s.messages.GetMessage(ctx, id)
}
