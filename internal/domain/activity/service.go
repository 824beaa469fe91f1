package activity

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tailtime/internal/domain/pets"
)

var ErrInvalidInput = errors.New("invalid input")

const weeklyWindow = 7 * 24 * time.Hour

// PetCounters es lo que activity necesita del agregado mascota.
// *pets.Service lo implementa.
type PetCounters interface {
	GetByOwner(ctx context.Context, ownerUserID string) (pets.Pet, error)
	IncrementDaily(ctx context.Context, ownerUserID string, delta pets.ActivityCounters) error
	SetDaily(ctx context.Context, ownerUserID string, c pets.ActivityCounters) error
}

type Service struct {
	repo Repository
	pets PetCounters
	log  *zap.Logger
	loc  *time.Location
	now  func() time.Time
}

// NewService: loc define qué es "hoy" y el día de semana del rollup. nil = time.Local.
func NewService(repo Repository, petCounters PetCounters, log *zap.Logger, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo: repo,
		pets: petCounters,
		log:  log,
		loc:  loc,
		now:  time.Now,
	}
}

func (s *Service) Location() *time.Location { return s.loc }

type LogInput struct {
	UserID   string
	Type     Type
	SubType  string
	Value    *float64 // requerido, puede ser 0
	Duration float64
	Date     *time.Time // nil = ahora
	Notes    string
}

// Log persiste la entrada y, si es de hoy, actualiza los contadores de la mascota.
// Falla del update de contadores no afecta el resultado: solo se loguea.
func (s *Service) Log(ctx context.Context, in LogInput) (Log, error) {
	if strings.TrimSpace(in.UserID) == "" || !in.Type.Valid() || in.Value == nil {
		return Log{}, ErrInvalidInput
	}
	if *in.Value < 0 || in.Duration < 0 {
		return Log{}, ErrInvalidInput
	}

	now := s.now()
	date := now
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}

	l := Log{
		ID:        uuid.NewString(),
		UserID:    strings.TrimSpace(in.UserID),
		Type:      in.Type,
		SubType:   strings.TrimSpace(in.SubType),
		Value:     *in.Value,
		Duration:  in.Duration,
		Date:      date,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: now,
	}

	if err := s.repo.Append(ctx, l); err != nil {
		return Log{}, err
	}

	s.applyToday(ctx, l)
	return l, nil
}

func (s *Service) applyToday(ctx context.Context, l Log) {
	if s.pets == nil || !s.isToday(l.Date) {
		return
	}

	var delta pets.ActivityCounters
	addTo(&delta, l)

	err := s.pets.IncrementDaily(ctx, l.UserID, delta)
	switch {
	case err == nil:
	case errors.Is(err, pets.ErrNotFound):
		s.log.Warn("activity: owner has no pet, daily counters skipped",
			zap.String("user_id", l.UserID),
			zap.String("log_id", l.ID),
		)
	default:
		s.log.Error("activity: daily counter update failed",
			zap.String("user_id", l.UserID),
			zap.String("log_id", l.ID),
			zap.Error(err),
		)
	}
}

// addTo: walk suma minutos, sleep suma value, meal cuenta 1 sin importar value.
func addTo(c *pets.ActivityCounters, l Log) {
	switch l.Type {
	case TypeWalk:
		c.WalkMinutes += l.Duration
	case TypeSleep:
		c.SleepHours += l.Value
	case TypeMeal:
		c.Meals++
	}
}

func (s *Service) isToday(t time.Time) bool {
	y1, m1, d1 := t.In(s.loc).Date()
	y2, m2, d2 := s.now().In(s.loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (s *Service) startOfDay(t time.Time) time.Time {
	y, m, d := t.In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

func (s *Service) List(ctx context.Context, userID string, f Filter) ([]Log, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	if f.Type != "" && !f.Type.Valid() {
		return nil, ErrInvalidInput
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, strings.TrimSpace(userID), f)
}

// WeeklyStats agrega los últimos 7 días (ventana móvil) por día de semana.
// El tipo no se valida: un tipo desconocido suma value y normalmente no tiene filas.
func (s *Service) WeeklyStats(ctx context.Context, userID, typ string) ([]DayTotal, error) {
	userID = strings.TrimSpace(userID)
	typ = strings.TrimSpace(typ)
	if userID == "" || typ == "" {
		return nil, ErrInvalidInput
	}

	t := Type(typ)
	now := s.now()
	out, err := s.repo.WeeklyTotals(ctx, RollupQuery{
		UserID:   userID,
		Type:     t,
		Since:    now.Add(-weeklyWindow),
		Now:      now,
		Metric:   MetricFor(t),
		Location: s.loc,
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].DayOfWeek < out[j].DayOfWeek })
	return out, nil
}

// RebuildDaily recalcula los contadores de hoy desde el historial y los pisa en la mascota.
func (s *Service) RebuildDaily(ctx context.Context, userID string) (pets.Pet, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return pets.Pet{}, ErrInvalidInput
	}

	from := s.startOfDay(s.now())
	to := from.AddDate(0, 0, 1).Add(-time.Nanosecond)

	logs, err := s.repo.List(ctx, userID, Filter{From: from, To: to})
	if err != nil {
		return pets.Pet{}, err
	}

	var c pets.ActivityCounters
	for _, l := range logs {
		addTo(&c, l)
	}

	if err := s.pets.SetDaily(ctx, userID, c); err != nil {
		return pets.Pet{}, err
	}
	return s.pets.GetByOwner(ctx, userID)
}
