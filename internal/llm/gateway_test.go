package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"vakeel-api/internal/domain"
)

type slowClient struct{}

func (slowClient) Generate(ctx context.Context, _, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestGatewayRespond(t *testing.T) {
	t.Run("sin cliente usa respuestas simuladas", func(t *testing.T) {
		g := NewGateway(nil, time.Second, zap.NewNop())
		if !g.Mock() {
			t.Fatalf("expected mock gateway")
		}
		out := g.Respond(context.Background(), Request{Prompt: "x", Language: domain.LanguageHindi, Kind: domain.KindDocumentDraft})
		if out != MockResponse(domain.LanguageHindi, domain.KindDocumentDraft) {
			t.Fatalf("unexpected mock response: %q", out)
		}
	})

	t.Run("respuesta del llm", func(t *testing.T) {
		client := &MockClient{Response: "ok"}
		g := NewGateway(client, time.Second, zap.NewNop())
		out := g.Respond(context.Background(), Request{Prompt: "pregunta", Language: domain.LanguageTamil, Kind: domain.KindGeneral})
		if out != "ok" {
			t.Fatalf("expected llm output, got %q", out)
		}
		if client.LastPrompt != "pregunta" || client.LastSystem != SystemPrompt(domain.LanguageTamil) {
			t.Fatalf("unexpected call: system=%q prompt=%q", client.LastSystem, client.LastPrompt)
		}
	})

	t.Run("error del llm devuelve texto localizado", func(t *testing.T) {
		client := &MockClient{Err: errors.New("boom")}
		g := NewGateway(client, time.Second, zap.NewNop())
		out := g.Respond(context.Background(), Request{Prompt: "x", Language: domain.LanguageBengali})
		if out != FallbackResponse(domain.LanguageBengali) {
			t.Fatalf("expected bengali fallback, got %q", out)
		}
		if client.Calls != 1 {
			t.Fatalf("expected a single call without retry, got %d", client.Calls)
		}
	})

	t.Run("timeout devuelve texto localizado", func(t *testing.T) {
		g := NewGateway(slowClient{}, 20*time.Millisecond, zap.NewNop())
		out := g.Respond(context.Background(), Request{Prompt: "x", Language: domain.LanguageTelugu})
		if out != FallbackResponse(domain.LanguageTelugu) {
			t.Fatalf("expected telugu fallback, got %q", out)
		}
	})
}

func TestLocaleFallbacks(t *testing.T) {
	if SystemPrompt("xx") != SystemPrompt(domain.LanguageEnglish) {
		t.Fatalf("expected english system prompt fallback")
	}
	if MockResponse(domain.LanguageTamil, domain.KindGeneral) != MockResponse(domain.LanguageEnglish, domain.KindGeneral) {
		t.Fatalf("expected english mock fallback for tamil")
	}
	if MockResponse(domain.LanguageEnglish, domain.KindDocumentReview) != MockResponse(domain.LanguageEnglish, domain.KindGeneral) {
		t.Fatalf("expected review to reuse general mock text")
	}
}
