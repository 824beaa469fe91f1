package events

import "time"

// Event es un evento de cuidado agendado (turno veterinario, baño, dosis...).
type Event struct {
	ID     string
	UserID string

	Title string
	Date  time.Time
	Type  EventType

	IsCompleted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
