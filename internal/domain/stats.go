package domain

import "time"

const (
	ActivityChat     = "chat"
	ActivityDocument = "document"

	// RecentActivityLimit es la cantidad de eventos que trae el resumen del usuario.
	RecentActivityLimit = 10
)

// Activity es un evento del usuario: un intercambio de chat o un documento creado.
type Activity struct {
	Type string    `json:"type"`
	Date time.Time `json:"date"`
}

// UserStats resume la actividad de un usuario en este servicio.
type UserStats struct {
	TotalChats     int        `json:"totalChats"`
	TotalDocuments int        `json:"totalDocuments"`
	TotalSessions  int        `json:"totalSessions"`
	RecentActivity []Activity `json:"recentActivity"`
}
