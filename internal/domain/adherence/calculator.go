package adherence

import "time"

// Percent es round-half-up(taken/total*100) en aritmética entera, así los
// bordes .5 son exactos (1/8 -> 13, 3/8 -> 38). total <= 0 -> 0: sin
// evidencia no es 100%.
func Percent(taken, total int) int {
	if total <= 0 || taken <= 0 {
		return 0
	}
	if taken >= total {
		return 100
	}
	return (taken*200 + total) / (2 * total)
}

// CountFor cuenta los logs de un medicamento (match exacto de nombre).
func CountFor(name string, logs []LogEntry) Counts {
	var c Counts
	for _, l := range logs {
		if l.Medicine != name {
			continue
		}
		c.add(l.Status)
	}
	return c
}

// Calculate devuelve un MedicineAdherence por medicamento, en orden de entrada.
func Calculate(medicines []Medicine, logs []LogEntry) []MedicineAdherence {
	out := make([]MedicineAdherence, 0, len(medicines))
	for _, m := range medicines {
		c := CountFor(m.Name, logs)
		out = append(out, MedicineAdherence{
			Name:      m.Name,
			Adherence: Percent(c.Taken, c.Completed()),
		})
	}
	return out
}

// ComputeStats arma el intermedio que consume el generador de resumen.
// Los totales cubren todos los logs, incluso de medicamentos fuera de la lista.
func ComputeStats(medicines []Medicine, logs []LogEntry) Stats {
	var totals Counts
	for _, l := range logs {
		totals.add(l.Status)
	}

	meds := make([]MedicineStats, 0, len(medicines))
	for _, m := range medicines {
		c := CountFor(m.Name, logs)
		meds = append(meds, MedicineStats{
			Name:      m.Name,
			Counts:    c,
			Adherence: Percent(c.Taken, c.Completed()),
		})
	}

	return Stats{
		Totals:    totals,
		Overall:   Percent(totals.Taken, totals.Completed()),
		Medicines: meds,
	}
}

// Analyze es el flujo completo sin resumen: stats + timeline + adherencia.
func Analyze(medicines []Medicine, logs []LogEntry, labels []string, now time.Time) Report {
	stats := ComputeStats(medicines, logs)

	data := make([]MedicineAdherence, 0, len(stats.Medicines))
	for _, m := range stats.Medicines {
		data = append(data, MedicineAdherence{Name: m.Name, Adherence: m.Adherence})
	}

	return Report{
		TimelineData: BuildTimeline(logs, labels, now),
		MedicineData: data,
		Stats:        stats,
	}
}
