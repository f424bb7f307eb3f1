package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vakeel-api/internal/domain"
)

type PgDocumentRepository struct {
	pool *pgxpool.Pool
}

func NewPgDocumentRepository(pool *pgxpool.Pool) *PgDocumentRepository {
	return &PgDocumentRepository{pool: pool}
}

const documentColumns = `id, user_id, title, type, content, language, status, created_at, updated_at`

func (r *PgDocumentRepository) CreateDocument(ctx context.Context, doc domain.Document) error {
	const query = `
		INSERT INTO documents (id, user_id, title, type, content, language, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		doc.ID,
		doc.UserID,
		doc.Title,
		doc.Type,
		doc.Content,
		string(doc.Language),
		string(doc.Status),
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	if err != nil {
		return storeErr("create document", err)
	}
	return nil
}

func (r *PgDocumentRepository) GetDocument(ctx context.Context, id string) (domain.Document, error) {
	if !isUUID(id) {
		return domain.Document{}, fmt.Errorf("get document: %w", domain.ErrNotFound)
	}
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	doc, err := scanDocument(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return domain.Document{}, storeErr("get document", err)
	}
	return doc, nil
}

// UpdateDocument reescribe los campos mutables. El merge del patch ya se hizo en dominio.
func (r *PgDocumentRepository) UpdateDocument(ctx context.Context, doc domain.Document) error {
	if !isUUID(doc.ID) {
		return fmt.Errorf("update document: %w", domain.ErrNotFound)
	}
	const query = `
		UPDATE documents
		SET title = $2, type = $3, content = $4, status = $5, updated_at = $6
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		doc.ID,
		doc.Title,
		doc.Type,
		doc.Content,
		string(doc.Status),
		doc.UpdatedAt,
	)
	if err != nil {
		return storeErr("update document", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update document: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *PgDocumentRepository) DeleteDocument(ctx context.Context, id string) error {
	if !isUUID(id) {
		return nil
	}
	if _, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id); err != nil {
		return storeErr("delete document", err)
	}
	return nil
}

// ListDocuments filtra por tipo y estado, el mas nuevo primero.
// Las columnas del WHERE son fijas; solo los valores viajan como parametros.
func (r *PgDocumentRepository) ListDocuments(ctx context.Context, userID string, filter domain.DocumentFilter) ([]domain.Document, error) {
	conds := []string{"user_id = $1"}
	args := []any{userID}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	var limitArg any
	if filter.Limit > 0 {
		limitArg = filter.Limit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limitArg, offset)

	query := fmt.Sprintf(`SELECT %s FROM documents WHERE %s ORDER BY created_at DESC, seq DESC LIMIT $%d OFFSET $%d`,
		documentColumns, strings.Join(conds, " AND "), len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list documents", err)
	}
	defer rows.Close()

	docs := []domain.Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, storeErr("scan document", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list documents", err)
	}
	return docs, nil
}

func scanDocument(row pgx.Row) (domain.Document, error) {
	var (
		doc      domain.Document
		language string
		status   string
	)
	err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Title,
		&doc.Type,
		&doc.Content,
		&language,
		&status,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		return domain.Document{}, err
	}
	doc.Language = domain.Language(language)
	doc.Status = domain.DocumentStatus(status)
	return doc, nil
}
