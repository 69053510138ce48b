package schedule

import "strings"

type intakeRule struct {
	needles []string
	target  IntakeTime
}

// Tabla de prioridad: la primera regla que matchea gana (por label).
// El orden importa: "afternoon" contiene "noon" y no debe caer en "morning".
var intakeRules = []intakeRule{
	{needles: []string{"before breakfast", "before bf"}, target: BeforeBreakfast},
	{needles: []string{"after breakfast", "after bf", "morning"}, target: AfterBreakfast},
	{needles: []string{"before lunch"}, target: BeforeLunch},
	{needles: []string{"after lunch", "afternoon", "noon"}, target: AfterLunch},
	{needles: []string{"before dinner"}, target: BeforeDinner},
	{needles: []string{"after dinner", "evening", "night"}, target: AfterDinner},
}

// MapIntakeTime resuelve un único label libre a un slot canónico.
func MapIntakeTime(label string) (IntakeTime, bool) {
	for _, c := range CanonicalIntakeTimes() {
		if label == string(c) {
			return c, true
		}
	}

	lower := strings.ToLower(label)
	for _, rule := range intakeRules {
		for _, n := range rule.needles {
			if strings.Contains(lower, n) {
				return rule.target, true
			}
		}
	}
	return "", false
}

// MapIntakeTimes mapea labels libres/coloquiales al set ordenado canónico.
// Devuelve además los labels que no matchearon (se descartan sin error).
func MapIntakeTimes(labels []string) ([]IntakeTime, []string) {
	out := make([]IntakeTime, 0, len(labels))
	seen := map[IntakeTime]struct{}{}
	var dropped []string

	for _, l := range labels {
		t, ok := MapIntakeTime(l)
		if !ok {
			dropped = append(dropped, l)
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out, dropped
}
