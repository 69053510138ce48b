package adherence

import (
	"strings"
	"time"
)

// Formatos que llegan en logs (app móvil, export de Mongo, carga manual).
var logDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
}

// ParseLogDate interpreta la fecha de un log. Fechas sin zona se toman en loc;
// timestamps con zona se pasan a loc para que el día calendario sea el del paciente.
// El resultado siempre es la medianoche de ese día en loc: un log es un día, no un instante.
func ParseLogDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(dayKeyLayout, s, loc); err == nil {
		return t, true
	}
	for _, layout := range logDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return startOfDay(t.In(loc)), true
		}
	}
	return time.Time{}, false
}

// FormatLogDate es la inversa para respuestas.
func FormatLogDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dayKeyLayout)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
