package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"medication-adherence/internal/domain/medicines"
)

type medicineRepo struct {
	mu   sync.RWMutex
	byID map[string]medicines.Medicine
}

func NewMedicineRepo() medicines.Repository {
	return &medicineRepo{
		byID: make(map[string]medicines.Medicine),
	}
}

func (r *medicineRepo) Create(ctx context.Context, m medicines.Medicine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.ID == "" {
		return errors.New("medicine id required")
	}
	if _, exists := r.byID[m.ID]; exists {
		return errors.New("medicine already exists")
	}

	r.byID[m.ID] = m
	return nil
}

func (r *medicineRepo) GetByID(ctx context.Context, id string) (medicines.Medicine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return medicines.Medicine{}, medicines.ErrNotFound
	}
	return m, nil
}

func (r *medicineRepo) ListByPatient(ctx context.Context, patientID string) ([]medicines.Medicine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medicines.Medicine, 0)
	for _, m := range r.byID {
		if m.PatientID == patientID {
			out = append(out, m)
		}
	}

	// Orden de alta
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}
