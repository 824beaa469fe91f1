package events

type EventType string

const (
	EventTypeVet        EventType = "vet"
	EventTypeGrooming   EventType = "grooming"
	EventTypeMedication EventType = "medication"
	EventTypeOther      EventType = "other"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeVet, EventTypeGrooming, EventTypeMedication, EventTypeOther:
		return true
	}
	return false
}
