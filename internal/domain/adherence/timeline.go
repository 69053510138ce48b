package adherence

import (
	"strings"
	"time"
)

// LabelLayout es el formato corto de los días del timeline ("Jan 18").
const LabelLayout = "Jan 2"

const (
	timelineDays = 7
	dayKeyLayout = "2006-01-02"
)

// LastSevenDays genera los labels desde hace 6 días hasta hoy (más viejo primero).
func LastSevenDays(now time.Time) []string {
	out := make([]string, 0, timelineDays)
	for i := timelineDays - 1; i >= 0; i-- {
		out = append(out, now.AddDate(0, 0, -i).Format(LabelLayout))
	}
	return out
}

// ResolveLabel convierte un label corto a fecha completa en la zona de now.
// El año sale de now; si la fecha quedaría en el futuro se usa el año anterior.
// También acepta YYYY-MM-DD. ok=false si no se pudo parsear.
func ResolveLabel(label string, now time.Time) (time.Time, bool) {
	label = strings.TrimSpace(label)
	loc := now.Location()

	if t, err := time.ParseInLocation(dayKeyLayout, label, loc); err == nil {
		return t, true
	}

	t, err := time.Parse(LabelLayout, label)
	if err != nil {
		return time.Time{}, false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	for _, y := range []int{now.Year(), now.Year() - 1} {
		d := time.Date(y, t.Month(), t.Day(), 0, 0, 0, 0, loc)
		// 29 de febrero en año no bisiesto se normaliza a marzo: no sirve.
		if d.Month() != t.Month() {
			continue
		}
		if d.After(today) {
			continue
		}
		return d, true
	}
	return time.Time{}, false
}

// BuildTimeline pliega los logs en un grid día x slot. Un label inválido no
// rompe el request: se usa now y el día queda marcado con DateFallback.
//
// Precedencia por slot: missed > delayed > taken > pending. Un missed/delayed
// de cualquier medicamento del slot no lo tapa un taken de otro.
func BuildTimeline(logs []LogEntry, labels []string, now time.Time) []TimelineDay {
	grid := make(map[string]map[Slot]Status, len(labels))
	for _, l := range logs {
		if l.Date.IsZero() {
			continue
		}
		key := dayKey(l.Date)
		slots, ok := grid[key]
		if !ok {
			slots = make(map[Slot]Status, 3)
			grid[key] = slots
		}
		if l.Status.rank() > slots[l.Time].rank() {
			slots[l.Time] = l.Status
		}
	}

	out := make([]TimelineDay, 0, len(labels))
	for _, label := range labels {
		day := TimelineDay{Date: label}

		d, ok := ResolveLabel(label, now)
		if !ok {
			d = now
			day.DateFallback = true
		}

		slots := grid[dayKey(d)]
		day.Morning = resolved(slots, SlotMorning)
		day.Afternoon = resolved(slots, SlotAfternoon)
		day.Night = resolved(slots, SlotNight)

		out = append(out, day)
	}
	return out
}

func resolved(slots map[Slot]Status, s Slot) Status {
	st, ok := slots[s]
	if !ok || st.rank() == 0 {
		return StatusPending
	}
	return st
}

func dayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}
