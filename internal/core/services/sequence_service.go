package services

import (
	"context"
	"fmt"

	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
)

// counterName is the single counter backing credit note numbering.
const counterName = "cnCounter"

type SequenceService struct {
	counterRepo portsrepo.CounterRepository
}

func NewSequenceService(counterRepo portsrepo.CounterRepository) *SequenceService {
	return &SequenceService{counterRepo: counterRepo}
}

// ReserveNext atomically consumes and returns the next sequence value.
// The value is spent whether or not the caller goes on to use it; an abandoned
// value is a permanent gap in the numbering.
func (s *SequenceService) ReserveNext(ctx context.Context) (int64, error) {
	value, err := s.counterRepo.ReserveNext(ctx, counterName)
	if err != nil {
		return 0, fmt.Errorf("failed to reserve next sequence value: %w", err)
	}
	return value, nil
}

// CurrentValue reads the counter without consuming anything. Advisory only.
func (s *SequenceService) CurrentValue(ctx context.Context) (int64, error) {
	value, err := s.counterRepo.CurrentValue(ctx, counterName)
	if err != nil {
		return 0, fmt.Errorf("failed to read current sequence value: %w", err)
	}
	return value, nil
}
