package service

import (
	"context"
	"sync"

	"vakeel-api/internal/llm"
)

// stubResponder registra los pedidos y devuelve una respuesta fija.
type stubResponder struct {
	mu       sync.Mutex
	reply    string
	requests []llm.Request
}

func (s *stubResponder) Respond(_ context.Context, req llm.Request) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	return s.reply
}

func (s *stubResponder) last() llm.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return llm.Request{}
	}
	return s.requests[len(s.requests)-1]
}

func (s *stubResponder) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}
