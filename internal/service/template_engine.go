package service

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"vakeel-api/internal/domain"
	"vakeel-api/internal/llm"
)

// TemplateNotAvailable se devuelve como contenido, no como error, cuando el tipo no tiene plantilla.
const TemplateNotAvailable = "Document template not available. Please specify a valid document type (rent_agreement, nda, etc.)"

//go:embed templates/*.txt
var templateFS embed.FS

// Template es una plantilla ya separada en texto literal y placeholders [TOKEN].
type Template struct {
	segments []segment
}

type segment struct {
	text        string
	placeholder string // nombre sin corchetes; vacio si es texto literal
}

// ParseTemplate separa el texto en segmentos una sola vez. Un placeholder es
// todo lo que esta entre '[' y el siguiente ']' sin saltos de linea ni '[' en medio.
func ParseTemplate(text string) *Template {
	t := &Template{}
	var literal strings.Builder
	for i := 0; i < len(text); {
		if text[i] == '[' {
			if end := strings.IndexAny(text[i+1:], "[]\n"); end > 0 && text[i+1+end] == ']' {
				if literal.Len() > 0 {
					t.segments = append(t.segments, segment{text: literal.String()})
					literal.Reset()
				}
				token := text[i : i+end+2]
				t.segments = append(t.segments, segment{text: token, placeholder: token[1 : len(token)-1]})
				i += end + 2
				continue
			}
		}
		literal.WriteByte(text[i])
		i++
	}
	if literal.Len() > 0 {
		t.segments = append(t.segments, segment{text: literal.String()})
	}
	return t
}

// Render reemplaza cada [K] por fields[k] cuando strings.ToUpper(k) == K.
// Los placeholders sin valor quedan intactos.
func (t *Template) Render(fields map[string]string) string {
	values := normalizeFields(fields)
	var b strings.Builder
	for _, s := range t.segments {
		if s.placeholder != "" {
			if v, ok := values[s.placeholder]; ok {
				b.WriteString(v)
				continue
			}
		}
		b.WriteString(s.text)
	}
	return b.String()
}

// Si dos claves colisionan al pasar a mayusculas gana la ultima en orden alfabetico.
func normalizeFields(fields map[string]string) map[string]string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]string, len(fields))
	for _, k := range keys {
		out[strings.ToUpper(k)] = fields[k]
	}
	return out
}

// DraftRequest son los datos de entrada para generar el contenido de un documento.
type DraftRequest struct {
	Type        string
	Language    domain.Language
	Description string
	Fields      map[string]string
}

// Responder es la parte del gateway de IA que usan los servicios.
type Responder interface {
	Respond(ctx context.Context, req llm.Request) string
}

// TemplateEngine resuelve plantillas por (tipo, idioma) o delega la redaccion libre al LLM.
type TemplateEngine struct {
	templates map[string]map[domain.Language]*Template
	responder Responder
	prompts   PromptBuilder
}

// NewTemplateEngine carga las plantillas embebidas (templates/<tipo>.<idioma>.txt).
func NewTemplateEngine(responder Responder) (*TemplateEngine, error) {
	templates, err := loadTemplates(templateFS, "templates")
	if err != nil {
		return nil, err
	}
	return &TemplateEngine{templates: templates, responder: responder}, nil
}

func loadTemplates(fsys fs.FS, dir string) (map[string]map[domain.Language]*Template, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	out := make(map[string]map[domain.Language]*Template)
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".txt")
		docType, lang, ok := strings.Cut(name, ".")
		if e.IsDir() || !ok || docType == "" || lang == "" {
			continue
		}
		raw, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", e.Name(), err)
		}
		if out[docType] == nil {
			out[docType] = make(map[domain.Language]*Template)
		}
		out[docType][domain.Language(lang)] = ParseTemplate(strings.TrimRight(string(raw), "\n"))
	}
	return out, nil
}

// Lookup devuelve la plantilla del idioma o, si falta, la version en ingles.
func (e *TemplateEngine) Lookup(docType string, lang domain.Language) (*Template, bool) {
	byLang, ok := e.templates[docType]
	if !ok {
		return nil, false
	}
	if t, ok := byLang[lang]; ok {
		return t, true
	}
	t, ok := byLang[domain.DefaultLanguage]
	return t, ok
}

// Generate elige el camino: con descripcion redacta con el LLM y usa la salida
// tal cual; sin descripcion usa la plantilla y sustituye los campos.
func (e *TemplateEngine) Generate(ctx context.Context, req DraftRequest) string {
	if strings.TrimSpace(req.Description) != "" {
		prompt := e.prompts.Build(e.prompts.FreeFormDraftRequest(req.Type, req.Description), domain.KindDocumentDraft, nil)
		return e.responder.Respond(ctx, llm.Request{
			Prompt:   prompt,
			Language: req.Language,
			Kind:     domain.KindDocumentDraft,
		})
	}

	t, ok := e.Lookup(req.Type, req.Language)
	if !ok {
		return TemplateNotAvailable
	}
	return t.Render(req.Fields)
}
