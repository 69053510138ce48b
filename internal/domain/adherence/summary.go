package adherence

import (
	"context"
	"fmt"
	"strings"
)

// Summarizer genera el texto de resumen a partir de las estadísticas.
// La implementación real llama a un LLM (adapters/ai/gemini).
type Summarizer interface {
	Summarize(ctx context.Context, patientID string, stats Stats) (string, error)
}

// TemplateSummarizer arma un resumen determinístico sin proveedor externo.
type TemplateSummarizer struct{}

func (TemplateSummarizer) Summarize(_ context.Context, _ string, stats Stats) (string, error) {
	return TemplateSummary(stats), nil
}

// TemplateSummary describe los totales y marca el medicamento más flojo.
func TemplateSummary(stats Stats) string {
	t := stats.Totals
	if t.Completed() == 0 {
		return "No completed doses have been logged yet, so adherence cannot be assessed."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Overall adherence is %d%% (%d taken, %d delayed, %d missed).",
		stats.Overall, t.Taken, t.Delayed, t.Missed)

	var weakest *MedicineStats
	for i := range stats.Medicines {
		m := &stats.Medicines[i]
		if m.Completed() == 0 {
			continue
		}
		if weakest == nil || m.Adherence < weakest.Adherence {
			weakest = m
		}
	}
	if weakest != nil && weakest.Adherence < 100 {
		fmt.Fprintf(&b, " Lowest adherence: %s at %d%%.", weakest.Name, weakest.Adherence)
	}
	if t.Missed > 0 {
		b.WriteString(" Missed doses should be reviewed with the caretaker.")
	}
	return b.String()
}
