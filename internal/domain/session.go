package domain

import (
	"strings"
	"time"
)

const (
	// DefaultSessionTitle se usa al crear una sesion explicita sin titulo.
	DefaultSessionTitle = "New Conversation"

	sessionTitleMaxRunes = 50
	sessionTitleSuffix   = "..."
)

type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionSummary es la vista de listado: la sesion mas su cantidad de mensajes.
type SessionSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count"`
}

// DeriveSessionTitle toma los primeros 50 caracteres del mensaje y agrega "...".
// Cuenta runas, no bytes, para no cortar texto en hindi o tamil a la mitad.
func DeriveSessionTitle(firstMessage string) string {
	runes := []rune(strings.TrimSpace(firstMessage))
	if len(runes) > sessionTitleMaxRunes {
		runes = runes[:sessionTitleMaxRunes]
	}
	return string(runes) + sessionTitleSuffix
}
