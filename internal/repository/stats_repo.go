package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"vakeel-api/internal/domain"
)

type PgStatsRepository struct {
	pool *pgxpool.Pool
}

func NewPgStatsRepository(pool *pgxpool.Pool) *PgStatsRepository {
	return &PgStatsRepository{pool: pool}
}

// UserStats cuenta chats, documentos y sesiones del usuario y trae la
// actividad mas reciente. En empates de fecha el chat va primero.
func (r *PgStatsRepository) UserStats(ctx context.Context, userID string, recentLimit int) (domain.UserStats, error) {
	const countsQuery = `
		SELECT
			(SELECT COUNT(*) FROM chats WHERE user_id = $1),
			(SELECT COUNT(*) FROM documents WHERE user_id = $1),
			(SELECT COUNT(*) FROM chat_sessions WHERE user_id = $1)
	`
	const activityQuery = `
		SELECT type, date FROM (
			SELECT 'chat' AS type, timestamp AS date, seq FROM chats WHERE user_id = $1
			UNION ALL
			SELECT 'document' AS type, created_at AS date, seq FROM documents WHERE user_id = $1
		) activity
		ORDER BY date DESC, type ASC, seq DESC
		LIMIT $2
	`
	stats := domain.UserStats{RecentActivity: []domain.Activity{}}
	if err := r.pool.QueryRow(ctx, countsQuery, userID).Scan(
		&stats.TotalChats,
		&stats.TotalDocuments,
		&stats.TotalSessions,
	); err != nil {
		return domain.UserStats{}, storeErr("count user activity", err)
	}

	rows, err := r.pool.Query(ctx, activityQuery, userID, recentLimit)
	if err != nil {
		return domain.UserStats{}, storeErr("list recent activity", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.Type, &a.Date); err != nil {
			return domain.UserStats{}, storeErr("scan activity", err)
		}
		stats.RecentActivity = append(stats.RecentActivity, a)
	}
	if err := rows.Err(); err != nil {
		return domain.UserStats{}, storeErr("list recent activity", err)
	}
	return stats, nil
}
