package repositories

import "context"

// CounterRepository is the external atomic counter cell backing document
// numbering. Implementations must make ReserveNext a single atomic
// read-modify-write: two concurrent callers always receive two different
// values and neither increment is lost.
type CounterRepository interface {
	// ReserveNext atomically increments the named counter and returns the
	// new value. The returned value is consumed whether or not the caller
	// goes on to use it.
	ReserveNext(ctx context.Context, name string) (int64, error)

	// CurrentValue reads the counter without modifying it. Returns 0 when
	// the counter does not exist. The read is advisory only; it may be
	// stale by the time the caller acts on it.
	CurrentValue(ctx context.Context, name string) (int64, error)
}
