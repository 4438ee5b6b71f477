package repositories

import (
	"context"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
)

// PartyReader defines read operations for party data
type PartyReader interface {
	// FindPartyByID retrieves a specific party by its ID.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves all parties sorted by name.
	ListParties(ctx context.Context) ([]domain.Party, error)
}

// PartyWriter defines write operations for party data
type PartyWriter interface {
	// SaveParty persists a new party.
	SaveParty(ctx context.Context, party domain.Party) error

	// UpdateParty updates an existing party.
	UpdateParty(ctx context.Context, party domain.Party) error

	// UpdatePartyEmail updates only the email of a party.
	UpdatePartyEmail(ctx context.Context, partyID, email, updatedBy string) error

	// DeleteParty removes a party.
	DeleteParty(ctx context.Context, partyID string) error

	// ReplaceAllParties atomically replaces the whole party set with the
	// given one. Used by the bulk import.
	ReplaceAllParties(ctx context.Context, parties []domain.Party) error
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
