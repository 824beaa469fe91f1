package activity

import "time"

type Type string

const (
	TypeWalk  Type = "walk"
	TypeSleep Type = "sleep"
	TypeMeal  Type = "meal"
)

func (t Type) Valid() bool {
	switch t {
	case TypeWalk, TypeSleep, TypeMeal:
		return true
	}
	return false
}

// Log es una entrada inmutable del historial de actividad.
type Log struct {
	ID        string
	UserID    string
	Type      Type
	SubType   string  // "Breakfast", "Nap", "Park", ...
	Value     float64 // horas de sueño, porción, etc.
	Duration  float64 // minutos
	Date      time.Time
	Notes     string
	CreatedAt time.Time
}

// Filter para List. Type vacío = todos; From/To cero = sin límite (inclusive).
type Filter struct {
	Type Type
	From time.Time
	To   time.Time
}

// Metric define qué se agrega por día en el rollup semanal.
type Metric int

const (
	MetricValue    Metric = iota // Σ value
	MetricDuration               // Σ duration
	MetricCount                  // cantidad de entradas
)

// MetricFor: walk suma minutos, meal cuenta, el resto suma value.
func MetricFor(t Type) Metric {
	switch t {
	case TypeWalk:
		return MetricDuration
	case TypeMeal:
		return MetricCount
	default:
		return MetricValue
	}
}

// RollupQuery agrupa por día de semana (1 = domingo) en Location.
// Now es el reloj del servicio; los adapters lo usan para resolver el offset
// cuando Location no tiene nombre IANA.
type RollupQuery struct {
	UserID   string
	Type     Type
	Since    time.Time
	Now      time.Time
	Metric   Metric
	Location *time.Location
}

type DayTotal struct {
	DayOfWeek int
	Total     float64
}

// DayOfWeek con la convención del rollup: 1 = domingo ... 7 = sábado.
func DayOfWeek(t time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	return int(t.In(loc).Weekday()) + 1
}
