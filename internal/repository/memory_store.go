package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"vakeel-api/internal/domain"
)

// MemoryStore es el backend efimero. Vive lo que vive el proceso y arranca
// vacio en cada reinicio. Sesiones y mensajes comparten un mutex para que el
// append y el bump de la sesion sean atomicos; documentos usan otro.
type MemoryStore struct {
	chatMu   sync.RWMutex
	sessions map[string]*memorySession
	messages []domain.Message
	clock    uint64

	docMu     sync.RWMutex
	documents []domain.Document

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*memorySession),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) Mode() string { return ModeMemory }

func (s *MemoryStore) CreateSession(_ context.Context, userID, title string) (domain.Session, error) {
	s.chatMu.Lock()
	defer s.chatMu.Unlock()
	return s.createSessionLocked(userID, title).Session, nil
}

func (s *MemoryStore) createSessionLocked(userID, title string) *memorySession {
	now := s.now()
	s.clock++
	session := &memorySession{
		Session: domain.Session{
			ID:        uuid.NewString(),
			UserID:    userID,
			Title:     title,
			CreatedAt: now,
			UpdatedAt: now,
		},
		touched: s.clock,
	}
	s.sessions[session.ID] = session
	return session
}

func (s *MemoryStore) GetSession(_ context.Context, id string) (domain.Session, error) {
	s.chatMu.RLock()
	defer s.chatMu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, fmt.Errorf("get session: %w", domain.ErrNotFound)
	}
	return session.Session, nil
}

func (s *MemoryStore) ListSessions(_ context.Context, userID string) ([]domain.SessionSummary, error) {
	s.chatMu.RLock()
	defer s.chatMu.RUnlock()

	counts := make(map[string]int)
	for _, m := range s.messages {
		counts[m.SessionID]++
	}

	owned := []*memorySession{}
	for _, session := range s.sessions {
		if session.UserID == userID {
			owned = append(owned, session)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if !owned[i].UpdatedAt.Equal(owned[j].UpdatedAt) {
			return owned[i].UpdatedAt.After(owned[j].UpdatedAt)
		}
		return owned[i].touched > owned[j].touched
	})

	out := make([]domain.SessionSummary, 0, len(owned))
	for _, session := range owned {
		out = append(out, domain.SessionSummary{
			ID:           session.ID,
			Title:        session.Title,
			CreatedAt:    session.CreatedAt,
			UpdatedAt:    session.UpdatedAt,
			MessageCount: counts[session.ID],
		})
	}
	return out, nil
}

func (s *MemoryStore) DeleteSession(_ context.Context, id string) error {
	s.chatMu.Lock()
	defer s.chatMu.Unlock()

	delete(s.sessions, id)
	kept := s.messages[:0]
	for _, m := range s.messages {
		if m.SessionID != id {
			kept = append(kept, m)
		}
	}
	clear(s.messages[len(kept):])
	s.messages = kept
	return nil
}

func (s *MemoryStore) AppendMessage(_ context.Context, in domain.NewMessage) (domain.Message, error) {
	s.chatMu.Lock()
	defer s.chatMu.Unlock()

	var session *memorySession
	if in.SessionID == "" {
		session = s.createSessionLocked(in.UserID, domain.DeriveSessionTitle(in.Message))
	} else {
		existing, ok := s.sessions[in.SessionID]
		if !ok {
			return domain.Message{}, fmt.Errorf("append message to session %q: %w", in.SessionID, domain.ErrNotFound)
		}
		session = existing
	}

	now := s.now()
	if now.Before(session.CreatedAt) {
		now = session.CreatedAt
	}
	session.UpdatedAt = now
	s.clock++
	session.touched = s.clock

	msg := domain.Message{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		SessionID: session.ID,
		Message:   in.Message,
		Response:  in.Response,
		Language:  in.Language,
		Kind:      in.Kind,
		Timestamp: now,
	}
	s.messages = append(s.messages, msg)

	msg.SessionTitle = session.Title
	return msg, nil
}

func (s *MemoryStore) GetMessage(_ context.Context, id string) (domain.Message, error) {
	s.chatMu.RLock()
	defer s.chatMu.RUnlock()
	for _, m := range s.messages {
		if m.ID == id {
			return s.withTitleLocked(m), nil
		}
	}
	return domain.Message{}, fmt.Errorf("get message: %w", domain.ErrNotFound)
}

func (s *MemoryStore) ListRecentMessages(_ context.Context, userID string, limit, offset int) ([]domain.Message, error) {
	s.chatMu.RLock()
	defer s.chatMu.RUnlock()

	out := []domain.Message{}
	skipped := 0
	for i := len(s.messages) - 1; i >= 0; i-- {
		m := s.messages[i]
		if m.UserID != userID {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, s.withTitleLocked(m))
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (s *MemoryStore) ListMessages(_ context.Context, userID, sessionID string) ([]domain.Message, error) {
	s.chatMu.RLock()
	defer s.chatMu.RUnlock()

	out := []domain.Message{}
	for _, m := range s.messages {
		if m.UserID == userID && m.SessionID == sessionID {
			out = append(out, s.withTitleLocked(m))
		}
	}
	return out, nil
}

func (s *MemoryStore) withTitleLocked(m domain.Message) domain.Message {
	if session, ok := s.sessions[m.SessionID]; ok {
		m.SessionTitle = session.Title
	}
	return m
}

func (s *MemoryStore) CreateDocument(_ context.Context, doc domain.Document) error {
	s.docMu.Lock()
	defer s.docMu.Unlock()
	for _, d := range s.documents {
		if d.ID == doc.ID {
			return fmt.Errorf("create document %q: already exists", doc.ID)
		}
	}
	s.documents = append(s.documents, doc)
	return nil
}

func (s *MemoryStore) GetDocument(_ context.Context, id string) (domain.Document, error) {
	s.docMu.RLock()
	defer s.docMu.RUnlock()
	for _, d := range s.documents {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Document{}, fmt.Errorf("get document: %w", domain.ErrNotFound)
}

func (s *MemoryStore) UpdateDocument(_ context.Context, doc domain.Document) error {
	s.docMu.Lock()
	defer s.docMu.Unlock()
	for i := range s.documents {
		if s.documents[i].ID != doc.ID {
			continue
		}
		d := &s.documents[i]
		d.Title = doc.Title
		d.Type = doc.Type
		d.Content = doc.Content
		d.Status = doc.Status
		d.UpdatedAt = doc.UpdatedAt
		return nil
	}
	return fmt.Errorf("update document: %w", domain.ErrNotFound)
}

func (s *MemoryStore) DeleteDocument(_ context.Context, id string) error {
	s.docMu.Lock()
	defer s.docMu.Unlock()
	for i, d := range s.documents {
		if d.ID == id {
			s.documents = append(s.documents[:i], s.documents[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) ListDocuments(_ context.Context, userID string, filter domain.DocumentFilter) ([]domain.Document, error) {
	s.docMu.RLock()
	defer s.docMu.RUnlock()

	matched := []domain.Document{}
	for i := len(s.documents) - 1; i >= 0; i-- {
		d := s.documents[i]
		if d.UserID != userID {
			continue
		}
		if filter.Type != "" && d.Type != filter.Type {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		matched = append(matched, d)
	}
	sortDocumentsNewestFirst(matched)
	return paginate(matched, filter.Limit, filter.Offset), nil
}

// UserStats toma primero el lock de chats y despues el de documentos; ningun
// otro metodo toma ambos.
func (s *MemoryStore) UserStats(_ context.Context, userID string, recentLimit int) (domain.UserStats, error) {
	stats := domain.UserStats{RecentActivity: []domain.Activity{}}
	var chats, docs []domain.Activity

	s.chatMu.RLock()
	for _, session := range s.sessions {
		if session.UserID == userID {
			stats.TotalSessions++
		}
	}
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].UserID == userID {
			chats = append(chats, domain.Activity{Type: domain.ActivityChat, Date: s.messages[i].Timestamp})
		}
	}
	s.chatMu.RUnlock()

	s.docMu.RLock()
	for i := len(s.documents) - 1; i >= 0; i-- {
		if s.documents[i].UserID == userID {
			docs = append(docs, domain.Activity{Type: domain.ActivityDocument, Date: s.documents[i].CreatedAt})
		}
	}
	s.docMu.RUnlock()

	stats.TotalChats = len(chats)
	stats.TotalDocuments = len(docs)
	stats.RecentActivity = append(stats.RecentActivity, chats...)
	stats.RecentActivity = append(stats.RecentActivity, docs...)
	sortActivityNewestFirst(stats.RecentActivity)
	stats.RecentActivity = paginate(stats.RecentActivity, recentLimit, 0)
	return stats, nil
}

// touched desempata sesiones con el mismo updated_at por orden de escritura.
type memorySession struct {
	domain.Session
	touched uint64
}

var _ Store = (*MemoryStore)(nil)
