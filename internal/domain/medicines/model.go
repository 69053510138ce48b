package medicines

import (
	"time"

	"medication-adherence/internal/domain/schedule"
)

// Medicine es un registro canónico guardado para un paciente.
type Medicine struct {
	ID        string
	PatientID string

	schedule.MedicineRecord

	CreatedAt time.Time
}
