package service

import (
	"context"
	"fmt"
	"strings"

	"vakeel-api/internal/domain"
	"vakeel-api/internal/repository"
)

// StatsService resume la actividad de un usuario en chats, sesiones y documentos.
type StatsService struct {
	stats repository.StatsRepository
}

func NewStatsService(stats repository.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

func (s *StatsService) UserStats(ctx context.Context, userID string) (domain.UserStats, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.UserStats{}, fmt.Errorf("%w: userId is required", domain.ErrValidation)
	}
	return s.stats.UserStats(ctx, userID, domain.RecentActivityLimit)
}
