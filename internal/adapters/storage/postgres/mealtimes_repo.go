package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"medication-adherence/internal/domain/alarms"
)

type MealTimesRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewMealTimesRepo(db *sql.DB) *MealTimesRepo {
	return &MealTimesRepo{db: db, now: time.Now}
}

func (r *MealTimesRepo) GetMealTimes(ctx context.Context, patientID string) (alarms.MealTimes, bool, error) {
	var m alarms.MealTimes
	err := r.db.QueryRowContext(ctx, `
		SELECT breakfast, lunch, dinner
		FROM patient_meal_times
		WHERE patient_id = $1
	`, patientID).Scan(&m.Breakfast, &m.Lunch, &m.Dinner)
	if errors.Is(err, sql.ErrNoRows) {
		return alarms.MealTimes{}, false, nil
	}
	if err != nil {
		return alarms.MealTimes{}, false, err
	}
	return m, true, nil
}

// SaveMealTimes es un upsert: una fila por paciente.
func (r *MealTimesRepo) SaveMealTimes(ctx context.Context, patientID string, m alarms.MealTimes) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO patient_meal_times (patient_id, breakfast, lunch, dinner, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (patient_id) DO UPDATE SET
			breakfast  = EXCLUDED.breakfast,
			lunch      = EXCLUDED.lunch,
			dinner     = EXCLUDED.dinner,
			updated_at = EXCLUDED.updated_at
	`, patientID, m.Breakfast, m.Lunch, m.Dinner, r.now().UTC())
	return err
}
