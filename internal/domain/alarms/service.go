package alarms

import (
	"context"
	"errors"
	"strings"
	"time"

	"medication-adherence/internal/domain/adherence"
	"medication-adherence/internal/domain/medicines"
	"medication-adherence/internal/platform/logger"
	"medication-adherence/internal/platform/metrics"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("alarm not found")
)

type ServiceOptions struct {
	Repo      Repository
	Medicines MedicineLister
	Doses     DoseRecorder
	Logger    logger.Logger
	Location  *time.Location // zona del paciente (default UTC)
}

type Service struct {
	repo      Repository
	medicines MedicineLister
	doses     DoseRecorder
	log       logger.Logger
	loc       *time.Location
	now       func() time.Time
}

func NewService(opts ServiceOptions) *Service {
	s := &Service{
		repo:      opts.Repo,
		medicines: opts.Medicines,
		doses:     opts.Doses,
		log:       opts.Logger,
		loc:       opts.Location,
		now:       time.Now,
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	return s
}

// MealTimes devuelve las del paciente o los defaults.
func (s *Service) MealTimes(ctx context.Context, patientID string) (MealTimes, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return MealTimes{}, ErrInvalidInput
	}
	m, ok, err := s.repo.GetMealTimes(ctx, patientID)
	if err != nil {
		return MealTimes{}, err
	}
	if !ok {
		return DefaultMealTimes(), nil
	}
	return m, nil
}

func (s *Service) SetMealTimes(ctx context.Context, patientID string, in MealTimes) (MealTimes, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return MealTimes{}, ErrInvalidInput
	}
	m, err := NormalizeMealTimes(in)
	if err != nil {
		return MealTimes{}, err
	}
	if err := s.repo.SaveMealTimes(ctx, patientID, m); err != nil {
		return MealTimes{}, err
	}
	return m, nil
}

// List devuelve todas las alarmas del paciente, sin filtrar por día.
func (s *Service) List(ctx context.Context, patientID string) ([]Alarm, error) {
	meds, meals, err := s.load(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return Build(meds, meals), nil
}

// Upcoming devuelve las alarmas de hoy que todavía no sonaron.
func (s *Service) Upcoming(ctx context.Context, patientID string) (Today, error) {
	now := s.now().In(s.loc)
	due, err := s.dueToday(ctx, patientID, now)
	if err != nil {
		return Today{}, err
	}
	return Today{
		Date:        adherence.FormatLogDate(now),
		CurrentTime: now.Format(clockLayout),
		Alarms:      Upcoming(due, now),
	}, nil
}

// Mark registra el estado de una alarma de hoy: un log por medicamento, en la
// franja de la alarma. Solo taken/missed/delayed.
func (s *Service) Mark(ctx context.Context, patientID string, code int, status string) ([]adherence.LogEntry, error) {
	st, ok := adherence.ParseStatus(status)
	if !ok || st == adherence.StatusPending {
		return nil, ErrInvalidInput
	}

	now := s.now().In(s.loc)
	due, err := s.dueToday(ctx, patientID, now)
	if err != nil {
		return nil, err
	}

	var alarm *Alarm
	for i := range due {
		if due[i].Code == code {
			alarm = &due[i]
			break
		}
	}
	if alarm == nil {
		return nil, ErrNotFound
	}

	today, _ := adherence.ParseLogDate(adherence.FormatLogDate(now), s.loc)
	out := make([]adherence.LogEntry, 0, len(alarm.Medicines))
	for _, m := range alarm.Medicines {
		e, err := s.doses.AppendLog(ctx, strings.TrimSpace(patientID), adherence.AppendInput{
			Date:     today,
			Medicine: m.Name,
			Time:     string(alarm.Slot),
			Status:   string(st),
		})
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}

	metrics.AlarmMarks.WithLabelValues(string(st)).Inc()
	s.log.Info("alarm marked", map[string]any{
		"patient_id": patientID,
		"alarm_code": code,
		"status":     string(st),
		"medicines":  len(out),
	})
	return out, nil
}

func (s *Service) dueToday(ctx context.Context, patientID string, now time.Time) ([]Alarm, error) {
	meds, meals, err := s.load(ctx, patientID)
	if err != nil {
		return nil, err
	}
	due := make([]medicines.Medicine, 0, len(meds))
	for _, m := range meds {
		if DueOn(m, now) {
			due = append(due, m)
		}
	}
	return Build(due, meals), nil
}

func (s *Service) load(ctx context.Context, patientID string) ([]medicines.Medicine, MealTimes, error) {
	meals, err := s.MealTimes(ctx, patientID)
	if err != nil {
		return nil, MealTimes{}, err
	}
	meds, err := s.medicines.ListByPatient(ctx, strings.TrimSpace(patientID))
	if err != nil {
		return nil, MealTimes{}, err
	}
	return meds, meals, nil
}
