package domain

import "strings"

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
	LanguageTamil   Language = "ta"
	LanguageTelugu  Language = "te"
	LanguageBengali Language = "bn"
)

// DefaultLanguage es el idioma de respaldo para prompts y plantillas.
const DefaultLanguage = LanguageEnglish

// ParseLanguage normaliza el tag recibido. Vacio o desconocido devuelve "en".
func ParseLanguage(raw string) Language {
	switch l := Language(strings.ToLower(strings.TrimSpace(raw))); l {
	case LanguageEnglish, LanguageHindi, LanguageTamil, LanguageTelugu, LanguageBengali:
		return l
	default:
		return DefaultLanguage
	}
}
