package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"medication-adherence/internal/domain/adherence"
)

type logRepo struct {
	mu   sync.RWMutex
	byID map[string]adherence.LogEntry
}

func NewLogRepo() adherence.Repository {
	return &logRepo{
		byID: make(map[string]adherence.LogEntry),
	}
}

func (r *logRepo) Append(ctx context.Context, e adherence.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("log id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("log already exists")
	}

	r.byID[e.ID] = e
	return nil
}

func (r *logRepo) ListByPatient(ctx context.Context, patientID string, filter adherence.ListFilter) ([]adherence.LogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	out := make([]adherence.LogEntry, 0)

	for _, e := range r.byID {
		if e.PatientID != patientID {
			continue
		}

		if m := strings.TrimSpace(filter.Medicine); m != "" && e.Medicine != m {
			continue
		}

		// Días calendario inclusivos en ambos extremos, igual que la columna DATE de postgres
		day := adherence.FormatLogDate(e.Date)
		if filter.From != nil && day < adherence.FormatLogDate(*filter.From) {
			continue
		}
		if filter.To != nil && day > adherence.FormatLogDate(*filter.To) {
			continue
		}

		out = append(out, e)
	}

	// Más reciente primero; a igual fecha, el último registrado primero
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
