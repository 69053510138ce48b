package schedule

import (
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
)

var customTimeLayouts = []string{
	"15:04",
	"3:04 PM",
	"3:04PM",
	"15.04",
}

// Normalize convierte un candidato crudo en un MedicineRecord canónico.
// Es puro y nunca falla: lo que no se entiende toma default o se descarta.
// Cada campo se normaliza por separado; solo el default de doseCount depende
// de type.
func Normalize(raw Candidate) Result {
	name, ok := stringField(raw, "name")
	if !ok || name == "" {
		return Result{Outcome: OutcomeDiscarded}
	}

	res := Result{Record: MedicineRecord{Name: name}}
	def := func(f Field) { res.Defaulted = append(res.Defaulted, f) }

	// type
	typ, typDefaulted := normalizeType(raw)
	if typDefaulted {
		def(FieldType)
	}
	res.Record.Type = typ

	// intakeTimes
	labels, present := labelsField(raw, "intakeTimes")
	if !present {
		def(FieldIntakeTimes)
	}
	res.Record.IntakeTimes, res.DroppedIntakeLabels = MapIntakeTimes(labels)

	// customTimes
	rawTimes, present := labelsField(raw, "customTimes")
	if !present {
		def(FieldCustomTimes)
	}
	res.Record.CustomTimes, res.DroppedCustomTimes = normalizeCustomTimes(rawTimes)

	// frequency
	freq, ok := normalizeFrequency(raw)
	if !ok {
		def(FieldFrequency)
	}
	res.Record.Frequency = freq

	// doseCount (default depende de type, antes del redondeo)
	dose := float64(DefaultDose(typ))
	if v, ok := floatField(raw, "doseCount"); ok {
		dose = v
	} else {
		def(FieldDoseCount)
	}
	res.Record.DoseCount = RoundDose(dose, typ)

	// isCritical
	if v, ok := raw["isCritical"]; ok && v != nil {
		b, err := cast.ToBoolE(v)
		if err != nil {
			def(FieldIsCritical)
		}
		res.Record.IsCritical = b
	} else {
		def(FieldIsCritical)
	}

	// durationDays
	res.Record.DurationDays = DefaultDurationDays
	if v, ok := floatField(raw, "durationDays"); ok && math.Round(v) >= 1 {
		res.Record.DurationDays = int(math.Round(v))
	} else {
		def(FieldDurationDays)
	}

	res.Outcome = OutcomeNormalized
	if len(res.Defaulted) > 0 {
		res.Outcome = OutcomeDefaulted
	}
	return res
}

// NormalizeAll normaliza en orden y deja afuera los descartados.
func NormalizeAll(raw []Candidate) ([]MedicineRecord, []Result) {
	records := make([]MedicineRecord, 0, len(raw))
	results := make([]Result, 0, len(raw))
	for _, c := range raw {
		r := Normalize(c)
		results = append(results, r)
		if r.Kept() {
			records = append(records, r.Record)
		}
	}
	return records, results
}

func normalizeType(raw Candidate) (MedicineType, bool) {
	s, ok := stringField(raw, "type")
	if !ok || s == "" {
		return TypeTablet, true
	}
	switch t := MedicineType(strings.ToLower(s)); t {
	case TypeTablet, TypeSyrup, TypeOther:
		return t, false
	default:
		// fuera del enum: inyecciones, gotas, etc.
		return TypeOther, true
	}
}

func normalizeFrequency(raw Candidate) (Frequency, bool) {
	s, ok := stringField(raw, "frequency")
	if !ok {
		return FrequencyDaily, false
	}
	for _, f := range []Frequency{FrequencyDaily, FrequencyAlternateDays} {
		if strings.EqualFold(s, string(f)) {
			return f, true
		}
	}
	return FrequencyDaily, false
}

func normalizeCustomTimes(in []string) ([]string, []string) {
	out := make([]string, 0, len(in))
	var dropped []string
	for _, s := range in {
		if hhmm, ok := ParseClock(s); ok {
			out = append(out, hhmm)
			continue
		}
		dropped = append(dropped, s)
	}
	return out, dropped
}

// ParseClock acepta "15:04", "3:04 PM" y variantes; devuelve "HH:MM" 24h.
func ParseClock(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	for _, layout := range customTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), true
		}
	}
	return "", false
}

func stringField(raw Candidate, key string) (string, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", false
	}
	switch v.(type) {
	case map[string]any, []any:
		return "", false
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(s), true
}

func floatField(raw Candidate, key string) (float64, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, false
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return 0, false
	}
	if _, isBool := v.(bool); isBool {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > maxNumericValue {
		return 0, false
	}
	return f, true
}

// labelsField acepta un array o un string suelto. Los elementos que no son
// texto se ignoran. El segundo valor indica si la key estaba presente.
func labelsField(raw Candidate, key string) ([]string, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, false
	}

	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return nil, true
		}
		return []string{t}, true
	case []string:
		return t, true
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, isStr := item.(string)
			if !isStr {
				continue
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, true
	}
}
