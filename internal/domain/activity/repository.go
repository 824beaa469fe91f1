package activity

import "context"

type Repository interface {
	Append(ctx context.Context, l Log) error
	// List devuelve ordenado por Date ascendente.
	List(ctx context.Context, userID string, f Filter) ([]Log, error)
	// WeeklyTotals agrega en el store; días sin entradas no aparecen.
	WeeklyTotals(ctx context.Context, q RollupQuery) ([]DayTotal, error)
}
