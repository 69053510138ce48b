package schedule

import "strings"

// Deduplicate colapsa registros de varias páginas/segmentos por nombre
// (case-insensitive). Reglas:
//   - nombres vacíos se excluyen antes de deduplicar
//   - last write wins: el registro posterior reemplaza al anterior completo
//   - orden de salida: primera aparición de cada nombre normalizado
func Deduplicate(records []MedicineRecord) []MedicineRecord {
	byKey := make(map[string]MedicineRecord, len(records))
	order := make([]string, 0, len(records))

	for _, r := range records {
		key := DedupKey(r.Name)
		if key == "" {
			continue
		}
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = r
	}

	out := make([]MedicineRecord, 0, len(order))
	for _, k := range order {
		out = append(out, byKey[k])
	}
	return out
}

// DedupKey es la clave de deduplicación de un nombre.
func DedupKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
