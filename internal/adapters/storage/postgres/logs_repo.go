package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"medication-adherence/internal/domain/adherence"
)

type LogsRepo struct {
	db  *sql.DB
	loc *time.Location
}

// NewLogsRepo recibe la zona en la que se reconstruye log_date al leer.
func NewLogsRepo(db *sql.DB, loc *time.Location) *LogsRepo {
	if loc == nil {
		loc = time.UTC
	}
	return &LogsRepo{db: db, loc: loc}
}

func (r *LogsRepo) Append(ctx context.Context, e adherence.LogEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dose_logs (
			id, patient_id,
			log_date, medicine, slot, status,
			recorded_at
		) VALUES ($1,$2,$3::date,$4,$5,$6,$7)
	`,
		e.ID,
		e.PatientID,
		adherence.FormatLogDate(e.Date),
		e.Medicine,
		string(e.Time),
		string(e.Status),
		e.RecordedAt,
	)
	return err
}

func (r *LogsRepo) ListByPatient(ctx context.Context, patientID string, filter adherence.ListFilter) ([]adherence.LogEntry, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, nil
	}

	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, patient_id,
			to_char(log_date, 'YYYY-MM-DD'), medicine, slot, status,
			recorded_at
		FROM dose_logs
		WHERE patient_id = $1
	`)

	args := []any{patientID}
	argN := 2

	if m := strings.TrimSpace(filter.Medicine); m != "" {
		sb.WriteString(fmt.Sprintf(" AND medicine = $%d", argN))
		args = append(args, m)
		argN++
	}

	// from/to inclusivos, comparados como día calendario
	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND log_date >= $%d::date", argN))
		args = append(args, adherence.FormatLogDate(*filter.From))
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND log_date <= $%d::date", argN))
		args = append(args, adherence.FormatLogDate(*filter.To))
		argN++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	sb.WriteString(" ORDER BY log_date DESC, recorded_at DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adherence.LogEntry, 0)
	for rows.Next() {
		var e adherence.LogEntry
		var day, slot, status string

		if err := rows.Scan(
			&e.ID,
			&e.PatientID,
			&day,
			&e.Medicine,
			&slot,
			&status,
			&e.RecordedAt,
		); err != nil {
			return nil, err
		}

		e.Date, _ = adherence.ParseLogDate(day, r.loc)
		e.Time = adherence.Slot(slot)
		e.Status = adherence.Status(status)

		out = append(out, e)
	}

	return out, rows.Err()
}
