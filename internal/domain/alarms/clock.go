package alarms

import (
	"fmt"
	"time"

	"medication-adherence/internal/domain/adherence"
	"medication-adherence/internal/domain/schedule"
)

const (
	beforeMealOffset = -15
	afterMealOffset  = 30

	minutesPerDay  = 24 * 60
	customCodeBase = 1000

	clockLayout = "15:04"
)

type mealRule struct {
	code   int
	meal   func(MealTimes) string
	offset int
	slot   adherence.Slot
}

func breakfast(m MealTimes) string { return m.Breakfast }
func lunch(m MealTimes) string     { return m.Lunch }
func dinner(m MealTimes) string    { return m.Dinner }

var mealRules = map[schedule.IntakeTime]mealRule{
	schedule.BeforeBreakfast: {1, breakfast, beforeMealOffset, adherence.SlotMorning},
	schedule.AfterBreakfast:  {2, breakfast, afterMealOffset, adherence.SlotMorning},
	schedule.BeforeLunch:     {3, lunch, beforeMealOffset, adherence.SlotAfternoon},
	schedule.AfterLunch:      {4, lunch, afterMealOffset, adherence.SlotAfternoon},
	schedule.BeforeDinner:    {5, dinner, beforeMealOffset, adherence.SlotNight},
	schedule.AfterDinner:     {6, dinner, afterMealOffset, adherence.SlotNight},
}

// Minutes convierte "HH:MM" 24h a minutos desde medianoche.
func Minutes(hhmm string) (int, bool) {
	t, err := time.Parse(clockLayout, hhmm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// FormatMinutes es la inversa; da la vuelta al día en ambos sentidos.
func FormatMinutes(m int) string {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ResolveTime calcula la hora de la alarma de un intake canónico:
// 15 minutos antes o 30 después de la comida correspondiente.
func ResolveTime(it schedule.IntakeTime, meals MealTimes) (string, bool) {
	rule, ok := mealRules[it]
	if !ok {
		return "", false
	}
	base, ok := Minutes(rule.meal(meals))
	if !ok {
		return "", false
	}
	return FormatMinutes(base + rule.offset), true
}

// MealCode es el código fijo (1..6) de la alarma de un intake.
func MealCode(it schedule.IntakeTime) (int, bool) {
	rule, ok := mealRules[it]
	return rule.code, ok
}

// CustomCode es determinístico por hora: dos medicamentos a las 22:30
// comparten alarma.
func CustomCode(hhmm string) (int, bool) {
	m, ok := Minutes(hhmm)
	if !ok {
		return 0, false
	}
	return customCodeBase + m, true
}

// SlotForMinutes ubica una hora custom en la franja del timeline.
func SlotForMinutes(m int) adherence.Slot {
	switch {
	case m < 12*60:
		return adherence.SlotMorning
	case m < 17*60:
		return adherence.SlotAfternoon
	default:
		return adherence.SlotNight
	}
}

// NormalizeMealTimes valida y lleva cada comida a "HH:MM". Acepta "09:00 AM".
func NormalizeMealTimes(in MealTimes) (MealTimes, error) {
	var out MealTimes
	for _, f := range []struct {
		name string
		in   string
		out  *string
	}{
		{"breakfast", in.Breakfast, &out.Breakfast},
		{"lunch", in.Lunch, &out.Lunch},
		{"dinner", in.Dinner, &out.Dinner},
	} {
		hhmm, ok := schedule.ParseClock(f.in)
		if !ok {
			return MealTimes{}, fmt.Errorf("%w: %s must be HH:MM", ErrInvalidInput, f.name)
		}
		*f.out = hhmm
	}
	return out, nil
}
