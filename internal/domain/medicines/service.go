package medicines

import (
	"context"
	"errors"
	"strings"
	"time"

	"medication-adherence/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Create pasa el payload por el mismo normalizador que la extracción: lo que
// se guarda siempre cumple el esquema canónico.
func (s *Service) Create(ctx context.Context, patientID string, raw schedule.Candidate) (Medicine, schedule.Result, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return Medicine{}, schedule.Result{}, ErrInvalidInput
	}

	res := schedule.Normalize(raw)
	if !res.Kept() {
		return Medicine{}, res, ErrInvalidInput
	}

	m := Medicine{
		ID:             uuid.NewString(),
		PatientID:      patientID,
		MedicineRecord: res.Record,
		CreatedAt:      s.now(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return Medicine{}, res, err
	}
	return m, res, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Medicine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medicine{}, ErrInvalidInput
	}
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Medicine{}, ErrNotFound
		}
		return Medicine{}, err
	}
	return m, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]Medicine, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPatient(ctx, patientID)
}
