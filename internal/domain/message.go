package domain

import (
	"strings"
	"time"
)

// MessageKind clasifica el tipo de pedido y decide la plantilla del prompt.
type MessageKind string

const (
	KindGeneral        MessageKind = "general"
	KindDocumentDraft  MessageKind = "document_draft"
	KindDocumentReview MessageKind = "document_review"
)

// ParseMessageKind normaliza el tipo recibido; valores desconocidos caen en general.
func ParseMessageKind(raw string) MessageKind {
	switch k := MessageKind(strings.ToLower(strings.TrimSpace(raw))); k {
	case KindDocumentDraft, KindDocumentReview:
		return k
	default:
		return KindGeneral
	}
}

// Message es un intercambio completo: el texto del usuario y la respuesta generada.
type Message struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id"`
	SessionID    string      `json:"session_id"`
	SessionTitle string      `json:"session_title,omitempty"`
	Message      string      `json:"message"`
	Response     string      `json:"response"`
	Language     Language    `json:"language"`
	Kind         MessageKind `json:"message_type"`
	Timestamp    time.Time   `json:"timestamp"`
}

// NewMessage agrupa los campos de entrada de un append.
type NewMessage struct {
	UserID    string
	SessionID string
	Message   string
	Response  string
	Language  Language
	Kind      MessageKind
}
