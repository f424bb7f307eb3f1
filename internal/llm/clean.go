package llm

import (
	"regexp"
	"strings"
)

// Los modelos de razonamiento (deepseek-r1) devuelven el bloque <think> antes de la respuesta.
var thinkBlockRe = regexp.MustCompile(`(?is)<think>.*?</think>`)

// cleanLLMResponse quita BOM, bloques de razonamiento y espacios sobrantes.
func cleanLLMResponse(raw string) string {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "\uFEFF")
	s = thinkBlockRe.ReplaceAllString(s, "")
	// Bloque abierto sin cerrar: respuesta truncada, no hay texto util despues.
	if idx := strings.Index(strings.ToLower(s), "<think>"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
