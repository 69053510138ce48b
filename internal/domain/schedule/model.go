package schedule

// Candidate es un registro crudo tal como lo devuelve el proveedor (LLM/OCR),
// ya decodificado desde JSON. Los campos pueden faltar o venir con tipos raros.
type Candidate map[string]any

// MedicineRecord es el registro canónico post-normalización.
type MedicineRecord struct {
	Name         string       `json:"name"`
	Type         MedicineType `json:"type" enums:"tablet,syrup,other"`
	IntakeTimes  []IntakeTime `json:"intakeTimes"`
	CustomTimes  []string     `json:"customTimes"` // HH:MM 24h
	Frequency    Frequency    `json:"frequency" enums:"Daily,Alternate Days"`
	DoseCount    int          `json:"doseCount"`
	IsCritical   bool         `json:"isCritical"`
	DurationDays int          `json:"durationDays"`
}

// Result es la salida etiquetada del normalizador.
type Result struct {
	Record  MedicineRecord
	Outcome Outcome

	// Campos que tomaron valor por defecto (vacío si Outcome == normalized).
	Defaulted []Field

	// Ruido descartado en silencio, expuesto para tests/métricas.
	DroppedIntakeLabels []string
	DroppedCustomTimes  []string
}

// Kept indica si el candidato produjo un registro utilizable.
func (r Result) Kept() bool {
	return r.Outcome != OutcomeDiscarded
}

// Extraction agrupa el resultado de normalizar y deduplicar varios candidatos.
type Extraction struct {
	Medicines []MedicineRecord
	Results   []Result
}

// Discarded cuenta candidatos descartados.
func (e Extraction) Discarded() int {
	n := 0
	for _, r := range e.Results {
		if !r.Kept() {
			n++
		}
	}
	return n
}
