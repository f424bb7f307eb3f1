package repository

import (
	"sort"

	"vakeel-api/internal/domain"
)

// La entrada ya viene en orden de insercion inverso; el sort estable lo conserva en empates.
func sortDocumentsNewestFirst(docs []domain.Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
}

// Entrada: chats y luego documentos, cada grupo del mas nuevo al mas viejo.
// El sort estable deja el chat primero en empates de fecha.
func sortActivityNewestFirst(items []domain.Activity) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
