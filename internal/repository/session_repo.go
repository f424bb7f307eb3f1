package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vakeel-api/internal/domain"
)

type PgSessionRepository struct {
	pool *pgxpool.Pool
}

func NewPgSessionRepository(pool *pgxpool.Pool) *PgSessionRepository {
	return &PgSessionRepository{pool: pool}
}

func (r *PgSessionRepository) CreateSession(ctx context.Context, userID, title string) (domain.Session, error) {
	const query = `
		INSERT INTO chat_sessions (id, user_id, title, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
	`
	now := time.Now().UTC()
	session := domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.pool.Exec(ctx, query, session.ID, session.UserID, session.Title, now); err != nil {
		return domain.Session{}, storeErr("create session", err)
	}
	return session, nil
}

func (r *PgSessionRepository) GetSession(ctx context.Context, id string) (domain.Session, error) {
	const query = `
		SELECT id, user_id, title, created_at, updated_at
		FROM chat_sessions
		WHERE id = $1
	`
	if !isUUID(id) {
		return domain.Session{}, fmt.Errorf("get session: %w", domain.ErrNotFound)
	}
	var s domain.Session
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.UserID,
		&s.Title,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return domain.Session{}, storeErr("get session", err)
	}
	return s, nil
}

func (r *PgSessionRepository) ListSessions(ctx context.Context, userID string) ([]domain.SessionSummary, error) {
	const query = `
		SELECT cs.id, cs.title, cs.created_at, cs.updated_at, COUNT(c.id)
		FROM chat_sessions cs
		LEFT JOIN chats c ON c.session_id = cs.id
		WHERE cs.user_id = $1
		GROUP BY cs.id
		ORDER BY cs.updated_at DESC, cs.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, storeErr("list sessions", err)
	}
	defer rows.Close()

	sessions := []domain.SessionSummary{}
	for rows.Next() {
		var s domain.SessionSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.CreatedAt, &s.UpdatedAt, &s.MessageCount); err != nil {
			return nil, storeErr("scan session", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list sessions", err)
	}
	return sessions, nil
}

// DeleteSession borra la sesion y sus mensajes en una transaccion.
// Borrar un id inexistente no es un error.
func (r *PgSessionRepository) DeleteSession(ctx context.Context, id string) error {
	if !isUUID(id) {
		return nil
	}
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM chats WHERE session_id = $1`, id); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `DELETE FROM chat_sessions WHERE id = $1`, id)
		return err
	})
	if err != nil {
		return storeErr("delete session", err)
	}
	return nil
}

// storeErr traduce errores de pgx al vocabulario del dominio.
func storeErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}

// Las columnas id son UUID; un id con otro formato no puede existir.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
