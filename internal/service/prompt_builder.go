package service

import (
	"fmt"
	"strings"

	"vakeel-api/internal/domain"
)

const draftInstructions = `Please help me draft a legal document. User request: %s

Please provide a properly formatted document with:
1. Appropriate legal structure
2. Standard clauses relevant to Indian law
3. Placeholder fields marked with [PLACEHOLDER]
4. Clear sections and subsections`

const reviewInstructions = `Please review this %s document and provide feedback on:
1. Legal compliance with Indian law
2. Completeness of clauses
3. Potential improvements
4. Missing elements

Document content:
%s`

// PromptBuilder arma el texto que se envia al LLM segun el tipo de pedido.
type PromptBuilder struct{}

// Build aplica la plantilla del tipo y agrega el historial como contexto.
// El historial debe venir del mas viejo al mas nuevo.
func (PromptBuilder) Build(message string, kind domain.MessageKind, history []domain.Message) string {
	prompt := message
	if kind == domain.KindDocumentDraft {
		prompt = fmt.Sprintf(draftInstructions, message)
	}

	if len(history) == 0 {
		return prompt
	}

	turns := make([]string, 0, len(history))
	for _, h := range history {
		turns = append(turns, fmt.Sprintf("User: %s\nAssistant: %s", h.Message, h.Response))
	}

	var b strings.Builder
	b.WriteString(prompt)
	b.WriteString("\n\nPrevious conversation context:\n")
	b.WriteString(strings.Join(turns, "\n\n"))
	return b.String()
}

// FreeFormDraftRequest es el pedido de redaccion libre a partir de una descripcion.
func (PromptBuilder) FreeFormDraftRequest(docType, description string) string {
	return fmt.Sprintf("Generate a %s document template based on this description: %s", docType, description)
}

// ReviewRequest arma el pedido de revision con el contenido completo del documento.
func (PromptBuilder) ReviewRequest(doc domain.Document) string {
	return fmt.Sprintf(reviewInstructions, doc.Type, doc.Content)
}
