package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"vakeel-api/internal/domain"
	"vakeel-api/internal/repository"
)

func TestSessionService_CreateDefaultsTitle(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewSessionService(store, store)

	s, err := svc.Create(context.Background(), "u1", "  ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.Title != domain.DefaultSessionTitle {
		t.Fatalf("expected default title, got %q", s.Title)
	}

	if _, err := svc.Create(context.Background(), "", "x"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSessionService_Resolve(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewSessionService(store, store)
	ctx := context.Background()

	id, err := svc.Resolve(ctx, "")
	if err != nil || id != "" {
		t.Fatalf("empty id should stay unbound, got %q %v", id, err)
	}

	if _, err := svc.Resolve(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	s, _ := svc.Create(ctx, "u1", "Tenancy")
	id, err = svc.Resolve(ctx, s.ID)
	if err != nil || id != s.ID {
		t.Fatalf("expected resolved id %q, got %q %v", s.ID, id, err)
	}
}

func TestSessionService_History(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewSessionService(store, store)
	ctx := context.Background()

	first, err := store.AppendMessage(ctx, domain.NewMessage{UserID: "u1", Message: "m0", Response: "r0"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	for i := 1; i < 4; i++ {
		if _, err := store.AppendMessage(ctx, domain.NewMessage{UserID: "u1", SessionID: first.SessionID, Message: fmt.Sprintf("m%d", i), Response: "r"}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if _, err := store.AppendMessage(ctx, domain.NewMessage{UserID: "u1", Message: "other", Response: "r"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	t.Run("por sesion es cronologico y paginado", func(t *testing.T) {
		got, err := svc.History(ctx, HistoryQuery{UserID: "u1", SessionID: first.SessionID, Limit: 2, Offset: 1})
		if err != nil {
			t.Fatalf("history: %v", err)
		}
		if len(got) != 2 || got[0].Message != "m1" || got[1].Message != "m2" {
			t.Fatalf("unexpected page: %+v", got)
		}
		if got[0].SessionTitle == "" {
			t.Fatalf("expected session title on history entries")
		}
	})

	t.Run("sin sesion es el mas reciente primero", func(t *testing.T) {
		got, err := svc.History(ctx, HistoryQuery{UserID: "u1"})
		if err != nil {
			t.Fatalf("history: %v", err)
		}
		if len(got) != 5 || got[0].Message != "other" || got[4].Message != "m0" {
			t.Fatalf("unexpected history order: %+v", got)
		}
	})

	t.Run("offset fuera de rango", func(t *testing.T) {
		got, err := svc.History(ctx, HistoryQuery{UserID: "u1", SessionID: first.SessionID, Offset: 10})
		if err != nil || len(got) != 0 {
			t.Fatalf("expected empty page, got %v %v", got, err)
		}
	})

	t.Run("usuario requerido", func(t *testing.T) {
		if _, err := svc.History(ctx, HistoryQuery{}); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestSessionService_DeleteCascades(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewSessionService(store, store)
	ctx := context.Background()

	msg, err := store.AppendMessage(ctx, domain.NewMessage{UserID: "u1", Message: "hi", Response: "hello"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := svc.Delete(ctx, msg.SessionID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Message(ctx, msg.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected message removed with its session, got %v", err)
	}
	if err := svc.Delete(ctx, msg.SessionID); err != nil {
		t.Fatalf("second delete should succeed, got %v", err)
	}
}
