package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"tailtime/internal/domain/activity"
)

type ActivityRepo struct {
	db *sql.DB
}

func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

func (r *ActivityRepo) Append(ctx context.Context, l activity.Log) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_logs (
			id, user_id, type, sub_type,
			value, duration, date, notes,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		l.ID,
		l.UserID,
		string(l.Type),
		l.SubType,
		l.Value,
		l.Duration,
		l.Date,
		l.Notes,
		l.CreatedAt,
	)
	return errors.Wrap(err, "postgres: insert activity log")
}

func (r *ActivityRepo) List(ctx context.Context, userID string, f activity.Filter) ([]activity.Log, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, user_id, type, sub_type,
			value, duration, date, notes,
			created_at
		FROM activity_logs
		WHERE user_id = $1
	`)

	args := []any{userID}
	argN := 2

	if f.Type != "" {
		sb.WriteString(fmt.Sprintf(" AND type = $%d", argN))
		args = append(args, string(f.Type))
		argN++
	}
	if !f.From.IsZero() {
		sb.WriteString(fmt.Sprintf(" AND date >= $%d", argN))
		args = append(args, f.From)
		argN++
	}
	if !f.To.IsZero() {
		sb.WriteString(fmt.Sprintf(" AND date <= $%d", argN))
		args = append(args, f.To)
	}
	sb.WriteString(" ORDER BY date ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: list activity logs")
	}
	defer rows.Close()

	out := make([]activity.Log, 0)
	for rows.Next() {
		var l activity.Log
		var typ string
		if err := rows.Scan(
			&l.ID,
			&l.UserID,
			&typ,
			&l.SubType,
			&l.Value,
			&l.Duration,
			&l.Date,
			&l.Notes,
			&l.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "postgres: scan activity log")
		}
		l.Type = activity.Type(typ)
		out = append(out, l)
	}

	return out, errors.Wrap(rows.Err(), "postgres: list activity logs")
}

// WeeklyTotals agrupa con EXTRACT(DOW) (0 = domingo) y suma 1 para quedar en 1..7.
func (r *ActivityRepo) WeeklyTotals(ctx context.Context, q activity.RollupQuery) ([]activity.DayTotal, error) {
	var agg string
	switch q.Metric {
	case activity.MetricDuration:
		agg = "SUM(duration)"
	case activity.MetricCount:
		agg = "COUNT(*)::float8"
	default:
		agg = "SUM(value)"
	}

	zone, offset := zoneArgs(q.Location, rollupNow(q))
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			EXTRACT(DOW FROM (date AT TIME ZONE $4) + make_interval(secs => $5))::int + 1 AS dow,
			`+agg+` AS total
		FROM activity_logs
		WHERE user_id = $1 AND type = $2 AND date >= $3
		GROUP BY dow
	`, q.UserID, string(q.Type), q.Since, zone, offset)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: weekly totals")
	}
	defer rows.Close()

	out := make([]activity.DayTotal, 0, 7)
	for rows.Next() {
		var d activity.DayTotal
		if err := rows.Scan(&d.DayOfWeek, &d.Total); err != nil {
			return nil, errors.Wrap(err, "postgres: scan weekly totals")
		}
		out = append(out, d)
	}
	return out, errors.Wrap(rows.Err(), "postgres: weekly totals")
}

func rollupNow(q activity.RollupQuery) time.Time {
	if q.Now.IsZero() {
		return time.Now()
	}
	return q.Now
}

// zoneArgs: Postgres entiende nombres IANA pero no "Local"; en ese caso
// se agrupa en UTC desplazado por el offset de la zona local en now.
func zoneArgs(loc *time.Location, now time.Time) (string, float64) {
	if loc == nil {
		loc = time.Local
	}
	name := loc.String()
	if name != "" && name != "Local" {
		return name, 0
	}
	_, offset := now.In(loc).Zone()
	return "UTC", float64(offset)
}
