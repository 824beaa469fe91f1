package medical

import "time"

type Category string

const (
	CategoryVaccine    Category = "vaccine"
	CategoryMedication Category = "medication"
	CategoryVital      Category = "vital"
	CategoryVisit      Category = "visit"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryVaccine, CategoryMedication, CategoryVital, CategoryVisit:
		return true
	}
	return false
}

// Record es una entrada del historial médico. Solo se agrega, no se edita.
type Record struct {
	ID       string
	UserID   string
	Category Category
	Title    string

	DateGiven   time.Time
	NextDueDate *time.Time

	Notes string
	Value string // texto libre: "12.4 kg", "dosis 2/3"

	CreatedAt time.Time
}
