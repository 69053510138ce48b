package gemini

import (
	"encoding/json"
	"errors"
	"strings"

	"medication-adherence/internal/ports/extraction"
)

var errNotJSON = errors.New("model output is not a json array or object")

// StripFences saca los bloques ```json ... ``` que el modelo agrega aunque se le pida que no.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		// descarta el tag de lenguaje ("json", "JSON", etc.)
		if tag := strings.TrimSpace(s[:i]); !strings.ContainsAny(tag, "[{") {
			s = s[i+1:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// DecodeCandidates acepta un array de objetos, un objeto suelto o
// {"medicines": [...]}. Elementos que no son objetos se ignoran.
func DecodeCandidates(text string) (extraction.Page, error) {
	s := StripFences(text)
	if s == "" {
		return extraction.Page{}, nil
	}

	switch s[0] {
	case '[':
		var items []any
		if err := json.Unmarshal([]byte(s), &items); err != nil {
			return nil, err
		}
		return objects(items), nil

	case '{':
		var obj map[string]any
		if err := json.Unmarshal([]byte(s), &obj); err != nil {
			return nil, err
		}
		if inner, ok := obj["medicines"].([]any); ok {
			return objects(inner), nil
		}
		return extraction.Page{obj}, nil
	}

	return nil, errNotJSON
}

func objects(items []any) extraction.Page {
	out := make(extraction.Page, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
