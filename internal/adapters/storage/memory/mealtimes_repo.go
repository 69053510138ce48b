package memory

import (
	"context"
	"sync"

	"medication-adherence/internal/domain/alarms"
)

type mealTimesRepo struct {
	mu        sync.RWMutex
	byPatient map[string]alarms.MealTimes
}

func NewMealTimesRepo() alarms.Repository {
	return &mealTimesRepo{
		byPatient: make(map[string]alarms.MealTimes),
	}
}

func (r *mealTimesRepo) GetMealTimes(ctx context.Context, patientID string) (alarms.MealTimes, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byPatient[patientID]
	return m, ok, nil
}

func (r *mealTimesRepo) SaveMealTimes(ctx context.Context, patientID string, m alarms.MealTimes) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byPatient[patientID] = m
	return nil
}
