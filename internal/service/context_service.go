package service

import (
	"context"
	"fmt"
	"strings"

	"vakeel-api/internal/domain"
	"vakeel-api/internal/repository"
)

// ContextWindowSize es la cantidad de intercambios previos que viajan en el prompt.
const ContextWindowSize = 5

// ContextService define contrato para recuperar contexto conversacional.
type ContextService interface {
	GetContext(ctx context.Context, userID string) ([]domain.Message, error)
}

// BasicContextService toma los ultimos intercambios del usuario en todas sus
// sesiones y los devuelve del mas viejo al mas nuevo.
type BasicContextService struct {
	messageRepo repository.MessageRepository
	window      int
}

func NewBasicContextService(messageRepo repository.MessageRepository) *BasicContextService {
	return &BasicContextService{messageRepo: messageRepo, window: ContextWindowSize}
}

func (s *BasicContextService) GetContext(ctx context.Context, userID string) ([]domain.Message, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, nil
	}

	recent, err := s.messageRepo.ListRecentMessages(ctx, userID, s.window, 0)
	if err != nil {
		return nil, fmt.Errorf("list recent messages: %w", err)
	}
	if len(recent) > s.window {
		recent = recent[:s.window]
	}

	history := make([]domain.Message, len(recent))
	for i, m := range recent {
		history[len(recent)-1-i] = m
	}
	return history, nil
}
