package alarms

import (
	"medication-adherence/internal/domain/adherence"
	"medication-adherence/internal/domain/schedule"
)

// MealTimes son las horas de comida del paciente en "HH:MM" 24h.
// Las alarmas de intake se calculan a partir de acá.
type MealTimes struct {
	Breakfast string `json:"breakfast" example:"09:00"`
	Lunch     string `json:"lunch" example:"14:00"`
	Dinner    string `json:"dinner" example:"21:00"`
}

// DefaultMealTimes se usa mientras el paciente no cargó las suyas.
func DefaultMealTimes() MealTimes {
	return MealTimes{Breakfast: "09:00", Lunch: "14:00", Dinner: "21:00"}
}

// MedicineRef es lo que la alarma muestra de cada medicamento.
type MedicineRef struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Type         schedule.MedicineType `json:"type"`
	DoseCount    int                   `json:"doseCount"`
	IsCritical   bool                  `json:"isCritical"`
	DurationDays int                   `json:"durationDays"`
}

// Alarm agrupa todos los medicamentos que suenan a la misma hora.
// Code 1..6 son las alarmas de comida; las custom usan customCodeBase + minuto del día.
type Alarm struct {
	Code      int            `json:"alarmCode"`
	Time      string         `json:"time" example:"08:45"`
	IsCustom  bool           `json:"isCustom"`
	Slot      adherence.Slot `json:"slot"`
	Medicines []MedicineRef  `json:"medicines"`
}

// Today es la vista de alarmas pendientes del día.
type Today struct {
	Date        string
	CurrentTime string
	Alarms      []Alarm
}
