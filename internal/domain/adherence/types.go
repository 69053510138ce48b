package adherence

import "strings"

// Slot es la franja del día en que se registró la toma.
// @Enum morning, afternoon, night
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
	SlotNight     Slot = "night"
)

func Slots() []Slot {
	return []Slot{SlotMorning, SlotAfternoon, SlotNight}
}

// Status del log / del slot resuelto.
// @Enum taken, missed, delayed, pending
type Status string

const (
	StatusTaken   Status = "taken"
	StatusMissed  Status = "missed"
	StatusDelayed Status = "delayed"
	StatusPending Status = "pending"
)

// rank define la precedencia del timeline: la señal más fuerte gana.
// Valores desconocidos cuentan como pending.
func (s Status) rank() int {
	switch s {
	case StatusMissed:
		return 3
	case StatusDelayed:
		return 2
	case StatusTaken:
		return 1
	default:
		return 0
	}
}

// ParseSlot normaliza mayúsculas/espacios. ok=false si no es un slot válido.
func ParseSlot(s string) (Slot, bool) {
	v := Slot(strings.ToLower(strings.TrimSpace(s)))
	for _, sl := range Slots() {
		if v == sl {
			return v, true
		}
	}
	return v, false
}

func ParseStatus(s string) (Status, bool) {
	v := Status(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case StatusTaken, StatusMissed, StatusDelayed, StatusPending:
		return v, true
	}
	return v, false
}
