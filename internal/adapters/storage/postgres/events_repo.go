package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"tailtime/internal/domain/events"
)

const eventColumns = `id, user_id, title, date, type, is_completed, created_at, updated_at`

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

func (r *EventsRepo) Create(ctx context.Context, e events.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (`+eventColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		e.ID,
		e.UserID,
		e.Title,
		e.Date,
		string(e.Type),
		e.IsCompleted,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return errors.Wrap(err, "postgres: insert event")
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return events.Event{}, events.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return events.Event{}, events.ErrNotFound
	}
	return e, err
}

func (r *EventsRepo) ListByUser(ctx context.Context, userID string, filter events.ListFilter) ([]events.Event, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + eventColumns + ` FROM events WHERE user_id = $1`)

	args := []any{userID}
	argN := 2

	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(t))
			argN++
		}
		sb.WriteString(" AND type IN (" + strings.Join(placeholders, ",") + ")")
	}

	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND date >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND date <= $%d", argN))
		args = append(args, *filter.To)
		argN++
	}
	if filter.Pending {
		sb.WriteString(" AND NOT is_completed")
	}

	sb.WriteString(" ORDER BY date ASC")
	if filter.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: list events")
	}
	defer rows.Close()

	out := make([]events.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, errors.Wrap(rows.Err(), "postgres: list events")
}

func (r *EventsRepo) Update(ctx context.Context, e events.Event) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE events SET
			title = $2,
			date = $3,
			type = $4,
			is_completed = $5,
			updated_at = $6
		WHERE id = $1
	`,
		e.ID,
		e.Title,
		e.Date,
		string(e.Type),
		e.IsCompleted,
		e.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "postgres: update event")
	}
	return expectOne(res, events.ErrNotFound)
}

func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "postgres: delete event")
	}
	return expectOne(res, events.ErrNotFound)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (events.Event, error) {
	var e events.Event
	var typ string
	if err := s.Scan(
		&e.ID,
		&e.UserID,
		&e.Title,
		&e.Date,
		&typ,
		&e.IsCompleted,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return events.Event{}, err
		}
		return events.Event{}, errors.Wrap(err, "postgres: scan event")
	}
	e.Type = events.EventType(typ)
	return e, nil
}
