package repository

import "github.com/jackc/pgx/v5/pgxpool"

// PgStore es el backend durable: agrupa los repositorios Postgres sobre un mismo pool.
type PgStore struct {
	*PgSessionRepository
	*PgMessageRepository
	*PgDocumentRepository
	*PgStatsRepository
}

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{
		PgSessionRepository:  NewPgSessionRepository(pool),
		PgMessageRepository:  NewPgMessageRepository(pool),
		PgDocumentRepository: NewPgDocumentRepository(pool),
		PgStatsRepository:    NewPgStatsRepository(pool),
	}
}

func (s *PgStore) Mode() string { return ModePostgres }

var _ Store = (*PgStore)(nil)
