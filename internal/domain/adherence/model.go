package adherence

import "time"

// LogEntry es un hecho inmutable: una toma registrada (o no) de un medicamento.
type LogEntry struct {
	ID        string
	PatientID string

	Date     time.Time // fecha calendario; se compara por Y-M-D en su propia zona
	Medicine string
	Time     Slot
	Status   Status

	RecordedAt time.Time
}

// Medicine es lo mínimo que el análisis necesita de un medicamento.
type Medicine struct {
	ID   string
	Name string
}

// TimelineDay es una fila del grid 7 días x 3 slots.
type TimelineDay struct {
	Date      string `json:"date"`
	Morning   Status `json:"morning"`
	Afternoon Status `json:"afternoon"`
	Night     Status `json:"night"`

	// DateFallback indica que el label no se pudo parsear y se usó "now".
	DateFallback bool `json:"-"`
}

// MedicineAdherence es el porcentaje de adherencia por medicamento.
type MedicineAdherence struct {
	Name      string `json:"name"`
	Adherence int    `json:"adherence"`
}

// Counts agrupa los conteos por status.
type Counts struct {
	Taken   int `json:"taken"`
	Delayed int `json:"delayed"`
	Missed  int `json:"missed"`
	Pending int `json:"pending"`
}

// Completed son las tomas que cuentan para adherencia (sin pending).
func (c Counts) Completed() int {
	return c.Taken + c.Delayed + c.Missed
}

func (c *Counts) add(s Status) {
	switch s {
	case StatusTaken:
		c.Taken++
	case StatusDelayed:
		c.Delayed++
	case StatusMissed:
		c.Missed++
	case StatusPending:
		c.Pending++
	}
}

// MedicineStats son los conteos y el porcentaje de un medicamento.
type MedicineStats struct {
	Name string `json:"name"`
	Counts
	Adherence int `json:"adherence"`
}

// Stats es el resultado intermedio consultable (lo consume el resumen).
type Stats struct {
	Totals    Counts          `json:"totals"`
	Overall   int             `json:"overall"`
	Medicines []MedicineStats `json:"medicines"`
}

// Report es la respuesta del análisis de adherencia.
type Report struct {
	Summary      string              `json:"summary"`
	TimelineData []TimelineDay       `json:"timelineData"`
	MedicineData []MedicineAdherence `json:"medicineData"`

	Stats Stats `json:"-"`
}
