package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
)

type PgxCounterRepository struct {
	BaseRepository
}

// newPgxCounterRepository creates a new repository for named atomic counters.
func newPgxCounterRepository(pool *pgxpool.Pool) portsrepo.CounterRepository {
	return &PgxCounterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCounterRepository implements portsrepo.CounterRepository
var _ portsrepo.CounterRepository = (*PgxCounterRepository)(nil)

// ReserveNext increments the named counter and returns the new value.
// The single INSERT .. ON CONFLICT .. RETURNING statement is the atomic
// read-modify-write: Postgres row locking serializes concurrent callers, so
// two racing reservations always see two distinct values and neither
// increment is lost. A missing counter row starts from 0.
func (r *PgxCounterRepository) ReserveNext(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO counters (name, value)
		VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE
		SET value = counters.value + 1
		RETURNING value;
	`
	var value int64
	if err := r.Pool.QueryRow(ctx, query, name).Scan(&value); err != nil {
		return 0, apperrors.NewAppError(500, "failed to reserve next value for counter "+name, err)
	}
	return value, nil
}

// CurrentValue reads the counter without modifying it. A missing row reads
// as 0, matching what the first ReserveNext would build on.
func (r *PgxCounterRepository) CurrentValue(ctx context.Context, name string) (int64, error) {
	query := `SELECT value FROM counters WHERE name = $1;`

	var value int64
	err := r.Pool.QueryRow(ctx, query, name).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, apperrors.NewAppError(500, "failed to read counter "+name, err)
	}
	return value, nil
}
