package schedule

// MedicineType define la forma farmacéutica.
// @Enum tablet, syrup, other
type MedicineType string

const (
	TypeTablet MedicineType = "tablet"
	TypeSyrup  MedicineType = "syrup"
	TypeOther  MedicineType = "other"
)

// IntakeTime es uno de los seis slots canónicos relativos a comidas.
// Son parte del contrato de wire: se respetan mayúsculas exactas.
type IntakeTime string

const (
	BeforeBreakfast IntakeTime = "Before Breakfast"
	AfterBreakfast  IntakeTime = "After Breakfast"
	BeforeLunch     IntakeTime = "Before Lunch"
	AfterLunch      IntakeTime = "After Lunch"
	BeforeDinner    IntakeTime = "Before Dinner"
	AfterDinner     IntakeTime = "After Dinner"
)

// CanonicalIntakeTimes en orden cronológico.
func CanonicalIntakeTimes() []IntakeTime {
	return []IntakeTime{
		BeforeBreakfast,
		AfterBreakfast,
		BeforeLunch,
		AfterLunch,
		BeforeDinner,
		AfterDinner,
	}
}

// Frequency solo admite dos valores; "Specific Days" del pipeline de voz
// se coacciona a Daily.
type Frequency string

const (
	FrequencyDaily         Frequency = "Daily"
	FrequencyAlternateDays Frequency = "Alternate Days"
)

// Outcome etiqueta qué pasó con un candidato al normalizarlo.
type Outcome string

const (
	OutcomeNormalized Outcome = "normalized" // todos los campos venían bien
	OutcomeDefaulted  Outcome = "defaulted"  // al menos un campo tomó default
	OutcomeDiscarded  Outcome = "discarded"  // sin nombre, no se devuelve
)

// Field nombra un campo del registro canónico (para reportar defaults).
type Field string

const (
	FieldName         Field = "name"
	FieldType         Field = "type"
	FieldIntakeTimes  Field = "intakeTimes"
	FieldCustomTimes  Field = "customTimes"
	FieldFrequency    Field = "frequency"
	FieldDoseCount    Field = "doseCount"
	FieldIsCritical   Field = "isCritical"
	FieldDurationDays Field = "durationDays"
)

const (
	DefaultDurationDays = 7
	defaultTabletDose   = 1
	defaultSyrupDose    = 5
)
