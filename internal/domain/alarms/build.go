package alarms

import (
	"sort"
	"time"

	"medication-adherence/internal/domain/medicines"
	"medication-adherence/internal/domain/schedule"
)

// Build arma una alarma por código con todos los medicamentos que la usan,
// ordenadas por hora. Intakes cuya comida no tiene hora válida no generan alarma.
func Build(meds []medicines.Medicine, meals MealTimes) []Alarm {
	byCode := map[int]*Alarm{}
	add := func(code int, ref MedicineRef, create func() Alarm) {
		a, ok := byCode[code]
		if !ok {
			created := create()
			a = &created
			byCode[code] = a
		}
		for _, existing := range a.Medicines {
			if existing.ID == ref.ID {
				return
			}
		}
		a.Medicines = append(a.Medicines, ref)
	}

	for _, m := range meds {
		ref := toRef(m)

		for _, it := range m.IntakeTimes {
			code, ok := MealCode(it)
			if !ok {
				continue
			}
			hhmm, ok := ResolveTime(it, meals)
			if !ok {
				continue
			}
			rule := mealRules[it]
			add(code, ref, func() Alarm {
				return Alarm{Code: code, Time: hhmm, Slot: rule.slot}
			})
		}

		for _, ct := range m.CustomTimes {
			code, ok := CustomCode(ct)
			if !ok {
				continue
			}
			mins, _ := Minutes(ct)
			add(code, ref, func() Alarm {
				return Alarm{Code: code, Time: FormatMinutes(mins), IsCustom: true, Slot: SlotForMinutes(mins)}
			})
		}
	}

	out := make([]Alarm, 0, len(byCode))
	for _, a := range byCode {
		out = append(out, *a)
	}
	sortByTime(out)
	return out
}

// Upcoming deja las alarmas estrictamente posteriores al minuto actual.
func Upcoming(alarms []Alarm, now time.Time) []Alarm {
	current := now.Hour()*60 + now.Minute()
	out := make([]Alarm, 0, len(alarms))
	for _, a := range alarms {
		if m, ok := Minutes(a.Time); ok && m > current {
			out = append(out, a)
		}
	}
	sortByTime(out)
	return out
}

// DueOn indica si el medicamento se toma en day (zona de day). Cuenta días
// calendario desde CreatedAt: fuera de durationDays no hay toma, y con
// Alternate Days solo los días pares.
func DueOn(m medicines.Medicine, day time.Time) bool {
	loc := day.Location()
	start := calendarDay(m.CreatedAt.In(loc))
	elapsed := int(calendarDay(day).Sub(start).Hours() / 24)
	if elapsed < 0 {
		return false
	}
	if m.DurationDays > 0 && elapsed >= m.DurationDays {
		return false
	}
	if m.Frequency == schedule.FrequencyAlternateDays && elapsed%2 == 1 {
		return false
	}
	return true
}

// calendarDay pasa a UTC para que la resta no dependa de cambios de horario.
func calendarDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func toRef(m medicines.Medicine) MedicineRef {
	return MedicineRef{
		ID:           m.ID,
		Name:         m.Name,
		Type:         m.Type,
		DoseCount:    m.DoseCount,
		IsCritical:   m.IsCritical,
		DurationDays: m.DurationDays,
	}
}

func sortByTime(in []Alarm) {
	sort.SliceStable(in, func(i, j int) bool {
		mi, _ := Minutes(in[i].Time)
		mj, _ := Minutes(in[j].Time)
		if mi != mj {
			return mi < mj
		}
		return in[i].Code < in[j].Code
	})
}
