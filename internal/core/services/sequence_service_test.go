package services_test

import (
	"context"
	"sync"
	"testing"

	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
	"github.com/kambeshwar/creditnote_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inMemoryCounterRepository is a mutex-guarded counter used to exercise the
// sequence service without a database. Its atomicity contract matches the
// Postgres implementation's.
type inMemoryCounterRepository struct {
	mu     sync.Mutex
	values map[string]int64
}

var _ portsrepo.CounterRepository = (*inMemoryCounterRepository)(nil)

func newInMemoryCounterRepository() *inMemoryCounterRepository {
	return &inMemoryCounterRepository{values: make(map[string]int64)}
}

func (r *inMemoryCounterRepository) ReserveNext(ctx context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[name]++
	return r.values[name], nil
}

func (r *inMemoryCounterRepository) CurrentValue(ctx context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[name], nil
}

func TestSequenceService_ReserveNext_Monotonic(t *testing.T) {
	ctx := context.Background()
	svc := services.NewSequenceService(newInMemoryCounterRepository())

	first, err := svc.ReserveNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := svc.ReserveNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second)

	current, err := svc.CurrentValue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), current)
}

func TestSequenceService_CurrentValue_MissingCounterReadsZero(t *testing.T) {
	ctx := context.Background()
	svc := services.NewSequenceService(newInMemoryCounterRepository())

	current, err := svc.CurrentValue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), current)
}

func TestSequenceService_ReserveNext_ConcurrentNoDuplicates(t *testing.T) {
	const workers = 50

	ctx := context.Background()
	svc := services.NewSequenceService(newInMemoryCounterRepository())

	results := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := svc.ReserveNext(ctx)
			assert.NoError(t, err)
			results <- v
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool, workers)
	for v := range results {
		assert.False(t, seen[v], "value %d reserved twice", v)
		seen[v] = true
	}
	// Every value in 1..workers must have been handed out exactly once.
	for i := int64(1); i <= workers; i++ {
		assert.True(t, seen[i], "value %d never reserved", i)
	}
}
