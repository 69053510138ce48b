package alarms

import (
	"context"

	"medication-adherence/internal/domain/adherence"
	"medication-adherence/internal/domain/medicines"
)

// Repository guarda las horas de comida por paciente. ok=false si el
// paciente nunca las cargó.
type Repository interface {
	GetMealTimes(ctx context.Context, patientID string) (MealTimes, bool, error)
	SaveMealTimes(ctx context.Context, patientID string, m MealTimes) error
}

// MedicineLister lo implementa medicines.Service.
type MedicineLister interface {
	ListByPatient(ctx context.Context, patientID string) ([]medicines.Medicine, error)
}

// DoseRecorder lo implementa adherence.Service: marcar una alarma es
// registrar una toma por medicamento.
type DoseRecorder interface {
	AppendLog(ctx context.Context, patientID string, in adherence.AppendInput) (adherence.LogEntry, error)
}
