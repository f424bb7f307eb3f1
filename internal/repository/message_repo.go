package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vakeel-api/internal/domain"
)

type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

const messageColumns = `c.id, c.user_id, c.session_id, COALESCE(cs.title, ''), c.message, c.response, c.language, c.message_type, c.timestamp`

func (r *PgMessageRepository) AppendMessage(ctx context.Context, in domain.NewMessage) (domain.Message, error) {
	now := time.Now().UTC()
	msg := domain.Message{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		SessionID: in.SessionID,
		Message:   in.Message,
		Response:  in.Response,
		Language:  in.Language,
		Kind:      in.Kind,
		Timestamp: now,
	}

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if msg.SessionID == "" {
			msg.SessionID = uuid.NewString()
			msg.SessionTitle = domain.DeriveSessionTitle(in.Message)
			_, err := tx.Exec(ctx, `
				INSERT INTO chat_sessions (id, user_id, title, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $4)
			`, msg.SessionID, msg.UserID, msg.SessionTitle, now)
			if err != nil {
				return err
			}
		} else {
			if !isUUID(msg.SessionID) {
				return domain.ErrNotFound
			}
			err := tx.QueryRow(ctx, `
				UPDATE chat_sessions SET updated_at = $2
				WHERE id = $1
				RETURNING title
			`, msg.SessionID, now).Scan(&msg.SessionTitle)
			if err != nil {
				return err
			}
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO chats (id, user_id, session_id, message, response, language, message_type, timestamp)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
			msg.ID,
			msg.UserID,
			msg.SessionID,
			msg.Message,
			msg.Response,
			string(msg.Language),
			string(msg.Kind),
			msg.Timestamp,
		)
		return err
	})
	if err != nil {
		return domain.Message{}, storeErr(fmt.Sprintf("append message to session %q", in.SessionID), err)
	}
	return msg, nil
}

func (r *PgMessageRepository) GetMessage(ctx context.Context, id string) (domain.Message, error) {
	if !isUUID(id) {
		return domain.Message{}, fmt.Errorf("get message: %w", domain.ErrNotFound)
	}
	query := `SELECT ` + messageColumns + `
		FROM chats c
		LEFT JOIN chat_sessions cs ON cs.id = c.session_id
		WHERE c.id = $1`
	msg, err := scanMessage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return domain.Message{}, storeErr("get message", err)
	}
	return msg, nil
}

// ListRecentMessages devuelve los mensajes del usuario, el mas reciente primero.
// limit <= 0 no acota el resultado.
func (r *PgMessageRepository) ListRecentMessages(ctx context.Context, userID string, limit, offset int) ([]domain.Message, error) {
	query := `SELECT ` + messageColumns + `
		FROM chats c
		LEFT JOIN chat_sessions cs ON cs.id = c.session_id
		WHERE c.user_id = $1
		ORDER BY c.seq DESC
		LIMIT $2 OFFSET $3`
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}
	if offset < 0 {
		offset = 0
	}
	return r.list(ctx, "list recent messages", query, userID, limitArg, offset)
}

// ListMessages devuelve los mensajes de una sesion en orden de insercion.
func (r *PgMessageRepository) ListMessages(ctx context.Context, userID, sessionID string) ([]domain.Message, error) {
	if !isUUID(sessionID) {
		return []domain.Message{}, nil
	}
	query := `SELECT ` + messageColumns + `
		FROM chats c
		LEFT JOIN chat_sessions cs ON cs.id = c.session_id
		WHERE c.user_id = $1 AND c.session_id = $2
		ORDER BY c.seq ASC`
	return r.list(ctx, "list session messages", query, userID, sessionID)
}

func (r *PgMessageRepository) list(ctx context.Context, op, query string, args ...any) ([]domain.Message, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, storeErr(op, err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(op, err)
	}
	return messages, nil
}

func scanMessage(row pgx.Row) (domain.Message, error) {
	var (
		msg      domain.Message
		language string
		kind     string
	)
	err := row.Scan(
		&msg.ID,
		&msg.UserID,
		&msg.SessionID,
		&msg.SessionTitle,
		&msg.Message,
		&msg.Response,
		&language,
		&kind,
		&msg.Timestamp,
	)
	if err != nil {
		return domain.Message{}, err
	}
	msg.Language = domain.Language(language)
	msg.Kind = domain.MessageKind(kind)
	return msg, nil
}
