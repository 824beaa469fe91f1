package pets

import "time"

// Tasks es el checklist diario del dashboard.
type Tasks struct {
	Breakfast   bool
	MorningWalk bool
	Dinner      bool
	Medication  bool
}

// ActivityCounters son los contadores diarios derivados del activity log.
// Son una proyección: se pueden reconstruir desde los logs del día.
type ActivityCounters struct {
	WalkMinutes float64
	SleepHours  float64
	Meals       int
}

func (c ActivityCounters) IsZero() bool {
	return c.WalkMinutes == 0 && c.SleepHours == 0 && c.Meals == 0
}

// Pet representa la mascota de un usuario (una por owner).
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Species string // 'Dog', 'Cat', 'Bird'
	Breed   string
	Age     float64
	Weight  float64 // kg

	PhotoURL string

	Tasks Tasks

	// DailySteps es legacy: ningún flujo lo deriva, solo se resetea.
	DailySteps int
	Daily      ActivityCounters

	CreatedAt time.Time
	UpdatedAt time.Time
}
