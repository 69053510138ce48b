package postgres

import (
	"context"
	"database/sql"
)

// Las fechas de logs son DATE: el día calendario ya viene resuelto en la zona
// del paciente y no se vuelve a convertir al leer.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS patient_medicines (
	id            TEXT PRIMARY KEY,
	patient_id    TEXT NOT NULL,
	name          TEXT NOT NULL,
	type          TEXT NOT NULL,
	intake_times  JSONB NOT NULL DEFAULT '[]',
	custom_times  JSONB NOT NULL DEFAULT '[]',
	frequency     TEXT NOT NULL,
	dose_count    INTEGER NOT NULL,
	is_critical   BOOLEAN NOT NULL DEFAULT FALSE,
	duration_days INTEGER NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_patient_medicines_patient
	ON patient_medicines (patient_id, created_at);

CREATE TABLE IF NOT EXISTS dose_logs (
	id          TEXT PRIMARY KEY,
	patient_id  TEXT NOT NULL,
	log_date    DATE NOT NULL,
	medicine    TEXT NOT NULL,
	slot        TEXT NOT NULL,
	status      TEXT NOT NULL,
	recorded_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_dose_logs_patient_date
	ON dose_logs (patient_id, log_date DESC);

CREATE TABLE IF NOT EXISTS patient_meal_times (
	patient_id TEXT PRIMARY KEY,
	breakfast  TEXT NOT NULL,
	lunch      TEXT NOT NULL,
	dinner     TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`

// EnsureSchema crea las tablas si no existen. Idempotente.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaDDL)
	return err
}
