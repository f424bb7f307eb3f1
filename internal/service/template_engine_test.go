package service

import (
	"context"
	"strings"
	"testing"

	"vakeel-api/internal/domain"
)

func newTestEngine(t *testing.T, responder Responder) *TemplateEngine {
	t.Helper()
	engine, err := NewTemplateEngine(responder)
	if err != nil {
		t.Fatalf("new template engine: %v", err)
	}
	return engine
}

func TestTemplate_Render(t *testing.T) {
	tpl := ParseTemplate("Rent: Rs. [MONTHLY_RENT] to [LANDLORD_NAME] on [DATE] [not closed\n]")

	got := tpl.Render(map[string]string{"monthly_rent": "15000", "landlord_name": "A. Sharma"})
	want := "Rent: Rs. 15000 to A. Sharma on [DATE] [not closed\n]"
	if got != want {
		t.Fatalf("unexpected render:\n%q\nwant:\n%q", got, want)
	}
}

func TestTemplate_RenderIgnoresValuesThatLookLikePlaceholders(t *testing.T) {
	tpl := ParseTemplate("[A] and [B]")
	got := tpl.Render(map[string]string{"a": "[B]", "b": "x"})
	if got != "[B] and x" {
		t.Fatalf("substituted values must not be re-expanded, got %q", got)
	}
}

func TestTemplate_RenderKeyCollision(t *testing.T) {
	tpl := ParseTemplate("[NAME]")
	got := tpl.Render(map[string]string{"Name": "first", "name": "second"})
	// orden alfabetico: "Name" < "name", gana "name"
	if got != "second" {
		t.Fatalf("expected deterministic last-key-wins, got %q", got)
	}
}

func TestTemplateEngine_TemplatePath(t *testing.T) {
	responder := &stubResponder{reply: "llm"}
	engine := newTestEngine(t, responder)

	got := engine.Generate(context.Background(), DraftRequest{
		Type:     "rent_agreement",
		Language: domain.LanguageEnglish,
		Fields:   map[string]string{"monthly_rent": "15000", "landlord_name": "A. Sharma"},
	})
	if !strings.Contains(got, "RENT: Rs. 15000 per month") || !strings.Contains(got, "LANDLORD: A. Sharma") {
		t.Fatalf("fields not substituted:\n%s", got)
	}
	if !strings.Contains(got, "[TENANT_NAME]") {
		t.Fatalf("unfilled placeholders must stay untouched")
	}
	if responder.count() != 0 {
		t.Fatalf("template path must not call the LLM")
	}
}

func TestTemplateEngine_LanguageFallback(t *testing.T) {
	engine := newTestEngine(t, &stubResponder{})

	hi := engine.Generate(context.Background(), DraftRequest{Type: "rent_agreement", Language: domain.LanguageHindi})
	if !strings.HasPrefix(hi, "किराया समझौता") {
		t.Fatalf("expected hindi template, got %q", hi[:40])
	}

	ta := engine.Generate(context.Background(), DraftRequest{Type: "nda", Language: domain.LanguageTamil})
	en := engine.Generate(context.Background(), DraftRequest{Type: "nda", Language: domain.LanguageEnglish})
	if ta != en {
		t.Fatalf("missing language should fall back to english")
	}
}

func TestTemplateEngine_UnknownType(t *testing.T) {
	engine := newTestEngine(t, &stubResponder{})
	got := engine.Generate(context.Background(), DraftRequest{Type: "will", Language: domain.LanguageEnglish})
	if got != TemplateNotAvailable {
		t.Fatalf("expected not-available text, got %q", got)
	}
}

func TestTemplateEngine_FreeFormPath(t *testing.T) {
	responder := &stubResponder{reply: "GENERATED"}
	engine := newTestEngine(t, responder)

	got := engine.Generate(context.Background(), DraftRequest{
		Type:        "rent_agreement",
		Language:    domain.LanguageHindi,
		Description: "2BHK in Pune",
		Fields:      map[string]string{"monthly_rent": "1"},
	})
	if got != "GENERATED" {
		t.Fatalf("free-form output must be used verbatim, got %q", got)
	}
	req := responder.last()
	if req.Kind != domain.KindDocumentDraft || req.Language != domain.LanguageHindi {
		t.Fatalf("unexpected request: %+v", req)
	}
	if !strings.Contains(req.Prompt, "Generate a rent_agreement document template based on this description: 2BHK in Pune") {
		t.Fatalf("unexpected prompt: %q", req.Prompt)
	}
}
