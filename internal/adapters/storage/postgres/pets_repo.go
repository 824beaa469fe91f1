package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"

	"tailtime/internal/domain/pets"
)

const petColumns = `
	id, owner_user_id,
	name, species, breed, age, weight, photo_url,
	task_breakfast, task_morning_walk, task_dinner, task_medication,
	daily_steps, daily_walk_minutes, daily_sleep, daily_meals,
	created_at, updated_at`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		p.Species,
		p.Breed,
		p.Age,
		p.Weight,
		p.PhotoURL,
		p.Tasks.Breakfast,
		p.Tasks.MorningWalk,
		p.Tasks.Dinner,
		p.Tasks.Medication,
		p.DailySteps,
		p.Daily.WalkMinutes,
		p.Daily.SleepHours,
		p.Daily.Meals,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return pets.ErrAlreadyExists
	}
	return errors.Wrap(err, "postgres: insert pet")
}

// Update no toca owner ni contadores: esos se mueven con IncrementDaily/SetDaily/ResetDaily.
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets SET
			name = $2,
			species = $3,
			breed = $4,
			age = $5,
			weight = $6,
			photo_url = $7,
			task_breakfast = $8,
			task_morning_walk = $9,
			task_dinner = $10,
			task_medication = $11,
			updated_at = $12
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Species,
		p.Breed,
		p.Age,
		p.Weight,
		p.PhotoURL,
		p.Tasks.Breakfast,
		p.Tasks.MorningWalk,
		p.Tasks.Dinner,
		p.Tasks.Medication,
		p.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "postgres: update pet")
	}
	return expectOne(res, pets.ErrNotFound)
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	return scanPet(row)
}

func (r *PetsRepo) GetByOwner(ctx context.Context, ownerUserID string) (pets.Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return pets.Pet{}, pets.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE owner_user_id = $1`, ownerUserID)
	return scanPet(row)
}

// IncrementDaily: un solo UPDATE, la suma la hace Postgres.
func (r *PetsRepo) IncrementDaily(ctx context.Context, ownerUserID string, delta pets.ActivityCounters) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets SET
			daily_walk_minutes = daily_walk_minutes + $2,
			daily_sleep = daily_sleep + $3,
			daily_meals = daily_meals + $4
		WHERE owner_user_id = $1
	`, ownerUserID, delta.WalkMinutes, delta.SleepHours, delta.Meals)
	if err != nil {
		return errors.Wrap(err, "postgres: increment daily counters")
	}
	return expectOne(res, pets.ErrNotFound)
}

func (r *PetsRepo) SetDaily(ctx context.Context, ownerUserID string, c pets.ActivityCounters) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets SET
			daily_walk_minutes = $2,
			daily_sleep = $3,
			daily_meals = $4
		WHERE owner_user_id = $1
	`, ownerUserID, c.WalkMinutes, c.SleepHours, c.Meals)
	if err != nil {
		return errors.Wrap(err, "postgres: set daily counters")
	}
	return expectOne(res, pets.ErrNotFound)
}

func (r *PetsRepo) ResetDaily(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets SET
			daily_steps = 0,
			daily_walk_minutes = 0,
			daily_sleep = 0,
			daily_meals = 0,
			task_breakfast = FALSE,
			task_morning_walk = FALSE,
			task_dinner = FALSE,
			task_medication = FALSE
	`)
	if err != nil {
		return 0, errors.Wrap(err, "postgres: reset daily counters")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "postgres: reset daily counters")
	}
	return n, nil
}

func scanPet(row *sql.Row) (pets.Pet, error) {
	var p pets.Pet
	if err := row.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.Age,
		&p.Weight,
		&p.PhotoURL,
		&p.Tasks.Breakfast,
		&p.Tasks.MorningWalk,
		&p.Tasks.Dinner,
		&p.Tasks.Medication,
		&p.DailySteps,
		&p.Daily.WalkMinutes,
		&p.Daily.SleepHours,
		&p.Daily.Meals,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, errors.Wrap(err, "postgres: scan pet")
	}
	return p, nil
}

// expectOne traduce "0 filas afectadas" al not found del dominio.
func expectOne(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "postgres: rows affected")
	}
	if n == 0 {
		return notFound
	}
	return nil
}
