package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"medication-adherence/internal/domain/medicines"
	"medication-adherence/internal/domain/schedule"
)

type MedicinesRepo struct {
	db *sql.DB
}

func NewMedicinesRepo(db *sql.DB) *MedicinesRepo {
	return &MedicinesRepo{db: db}
}

const medicineColumns = `
	id, patient_id,
	name, type,
	intake_times, custom_times,
	frequency, dose_count, is_critical, duration_days,
	created_at
`

func (r *MedicinesRepo) Create(ctx context.Context, m medicines.Medicine) error {
	intake, err := json.Marshal(nonNil(intakeStrings(m.IntakeTimes)))
	if err != nil {
		return err
	}
	custom, err := json.Marshal(nonNil(m.CustomTimes))
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO patient_medicines (`+medicineColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		m.ID,
		m.PatientID,
		m.Name,
		string(m.Type),
		intake,
		custom,
		string(m.Frequency),
		m.DoseCount,
		m.IsCritical,
		m.DurationDays,
		m.CreatedAt,
	)
	return err
}

func (r *MedicinesRepo) GetByID(ctx context.Context, id string) (medicines.Medicine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return medicines.Medicine{}, medicines.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+medicineColumns+`
		FROM patient_medicines
		WHERE id = $1
	`, id)

	m, err := scanMedicine(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return medicines.Medicine{}, medicines.ErrNotFound
		}
		return medicines.Medicine{}, err
	}
	return m, nil
}

func (r *MedicinesRepo) ListByPatient(ctx context.Context, patientID string) ([]medicines.Medicine, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+medicineColumns+`
		FROM patient_medicines
		WHERE patient_id = $1
		ORDER BY created_at ASC, id ASC
	`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medicines.Medicine, 0)
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedicine(s rowScanner) (medicines.Medicine, error) {
	var m medicines.Medicine
	var typ, freq string
	var intake, custom []byte

	if err := s.Scan(
		&m.ID,
		&m.PatientID,
		&m.Name,
		&typ,
		&intake,
		&custom,
		&freq,
		&m.DoseCount,
		&m.IsCritical,
		&m.DurationDays,
		&m.CreatedAt,
	); err != nil {
		return medicines.Medicine{}, err
	}

	m.Type = schedule.MedicineType(typ)
	m.Frequency = schedule.Frequency(freq)

	var labels []string
	if err := json.Unmarshal(intake, &labels); err != nil {
		return medicines.Medicine{}, err
	}
	m.IntakeTimes = make([]schedule.IntakeTime, 0, len(labels))
	for _, l := range labels {
		m.IntakeTimes = append(m.IntakeTimes, schedule.IntakeTime(l))
	}

	m.CustomTimes = []string{}
	if err := json.Unmarshal(custom, &m.CustomTimes); err != nil {
		return medicines.Medicine{}, err
	}
	return m, nil
}

func intakeStrings(in []schedule.IntakeTime) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		out = append(out, string(t))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
