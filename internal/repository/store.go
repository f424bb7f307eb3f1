package repository

import (
	"context"

	"vakeel-api/internal/domain"
)

const (
	ModePostgres = "postgres"
	ModeMemory   = "memory"
)

// SessionRepository define el contrato de persistencia para sesiones de chat.
type SessionRepository interface {
	CreateSession(ctx context.Context, userID, title string) (domain.Session, error)
	GetSession(ctx context.Context, id string) (domain.Session, error)
	ListSessions(ctx context.Context, userID string) ([]domain.SessionSummary, error)
	DeleteSession(ctx context.Context, id string) error
}

// MessageRepository persiste intercambios mensaje/respuesta.
// Los mensajes son inmutables: no hay operacion de actualizacion.
type MessageRepository interface {
	// AppendMessage crea la sesion si SessionID esta vacio. El insert, la
	// creacion de la sesion y el bump de updated_at se aplican juntos.
	AppendMessage(ctx context.Context, msg domain.NewMessage) (domain.Message, error)
	GetMessage(ctx context.Context, id string) (domain.Message, error)
	ListRecentMessages(ctx context.Context, userID string, limit, offset int) ([]domain.Message, error)
	ListMessages(ctx context.Context, userID, sessionID string) ([]domain.Message, error)
}

// DocumentRepository persiste documentos legales.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc domain.Document) error
	GetDocument(ctx context.Context, id string) (domain.Document, error)
	UpdateDocument(ctx context.Context, doc domain.Document) error
	DeleteDocument(ctx context.Context, id string) error
	ListDocuments(ctx context.Context, userID string, filter domain.DocumentFilter) ([]domain.Document, error)
}

// StatsRepository agrega la actividad de un usuario sobre las tres colecciones.
type StatsRepository interface {
	UserStats(ctx context.Context, userID string, recentLimit int) (domain.UserStats, error)
}

// Store es la puerta de persistencia completa. Hay dos implementaciones,
// PgStore y MemoryStore, y se elige una sola vez al arrancar.
type Store interface {
	SessionRepository
	MessageRepository
	DocumentRepository
	StatsRepository
	Mode() string
}
