package adherence

import (
	"context"
	"time"
)

type Repository interface {
	Append(ctx context.Context, e LogEntry) error
	ListByPatient(ctx context.Context, patientID string, filter ListFilter) ([]LogEntry, error)
}

type ListFilter struct {
	Medicine string
	From     *time.Time
	To       *time.Time
	Limit    int
}

// MedicineSource evita importar el paquete medicines (rompe ciclos).
type MedicineSource interface {
	AnalyticsMedicines(ctx context.Context, patientID string) ([]Medicine, error)
}
