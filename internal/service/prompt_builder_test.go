package service

import (
	"strings"
	"testing"

	"vakeel-api/internal/domain"
)

func TestPromptBuilder_Build(t *testing.T) {
	var pb PromptBuilder

	t.Run("general sin historial es el mensaje tal cual", func(t *testing.T) {
		if got := pb.Build("What is bail?", domain.KindGeneral, nil); got != "What is bail?" {
			t.Fatalf("unexpected prompt: %q", got)
		}
	})

	t.Run("draft agrega instrucciones de estructura", func(t *testing.T) {
		got := pb.Build("a rent agreement", domain.KindDocumentDraft, nil)
		if !strings.HasPrefix(got, "Please help me draft a legal document. User request: a rent agreement") {
			t.Fatalf("unexpected draft prompt: %q", got)
		}
		for _, want := range []string{"Standard clauses relevant to Indian law", "[PLACEHOLDER]", "Clear sections and subsections"} {
			if !strings.Contains(got, want) {
				t.Fatalf("draft prompt missing %q", want)
			}
		}
	})

	t.Run("historial en orden", func(t *testing.T) {
		history := []domain.Message{
			{Message: "q1", Response: "a1"},
			{Message: "q2", Response: "a2"},
		}
		got := pb.Build("q3", domain.KindGeneral, history)
		want := "q3\n\nPrevious conversation context:\nUser: q1\nAssistant: a1\n\nUser: q2\nAssistant: a2"
		if got != want {
			t.Fatalf("unexpected prompt:\n%q\nwant:\n%q", got, want)
		}
	})
}

func TestPromptBuilder_ReviewRequest(t *testing.T) {
	var pb PromptBuilder
	got := pb.ReviewRequest(domain.Document{Type: "nda", Content: "BODY"})
	if !strings.HasPrefix(got, "Please review this nda document") {
		t.Fatalf("unexpected review prompt: %q", got)
	}
	if !strings.HasSuffix(got, "Document content:\nBODY") {
		t.Fatalf("review prompt must end with full content: %q", got)
	}
}
