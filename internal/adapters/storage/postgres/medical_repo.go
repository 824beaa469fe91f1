package postgres

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"tailtime/internal/domain/medical"
)

type MedicalRepo struct {
	db *sql.DB
}

func NewMedicalRepo(db *sql.DB) *MedicalRepo {
	return &MedicalRepo{db: db}
}

func (r *MedicalRepo) Create(ctx context.Context, rec medical.Record) error {
	var next sql.NullTime
	if rec.NextDueDate != nil {
		next = sql.NullTime{Time: *rec.NextDueDate, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medical_records (
			id, user_id, category, title,
			date_given, next_due_date,
			notes, value, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		rec.ID,
		rec.UserID,
		string(rec.Category),
		rec.Title,
		rec.DateGiven,
		next,
		rec.Notes,
		rec.Value,
		rec.CreatedAt,
	)
	return errors.Wrap(err, "postgres: insert medical record")
}

func (r *MedicalRepo) ListByUser(ctx context.Context, userID string, category medical.Category) ([]medical.Record, error) {
	query := `
		SELECT
			id, user_id, category, title,
			date_given, next_due_date,
			notes, value, created_at
		FROM medical_records
		WHERE user_id = $1`
	args := []any{userID}
	if category != "" {
		query += ` AND category = $2`
		args = append(args, string(category))
	}
	query += ` ORDER BY date_given DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: list medical records")
	}
	defer rows.Close()

	out := make([]medical.Record, 0)
	for rows.Next() {
		var rec medical.Record
		var cat string
		var next sql.NullTime
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&cat,
			&rec.Title,
			&rec.DateGiven,
			&next,
			&rec.Notes,
			&rec.Value,
			&rec.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "postgres: scan medical record")
		}
		rec.Category = medical.Category(cat)
		if next.Valid {
			t := next.Time
			rec.NextDueDate = &t
		}
		out = append(out, rec)
	}

	return out, errors.Wrap(rows.Err(), "postgres: list medical records")
}
