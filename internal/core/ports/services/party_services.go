package services

import (
	"context"
	"io"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
)

// PartyReaderSvc defines read operations for parties
type PartyReaderSvc interface {
	// GetPartyByID retrieves a specific party.
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves all parties sorted by name.
	ListParties(ctx context.Context) ([]domain.Party, error)
}

// PartyWriterSvc defines write operations for parties
type PartyWriterSvc interface {
	// CreateParty creates a new party.
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error)

	// UpdateParty updates an existing party.
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error)

	// UpdatePartyEmail patches only the party email.
	UpdatePartyEmail(ctx context.Context, partyID, email, updaterUserID string) error

	// DeleteParty removes a party.
	DeleteParty(ctx context.Context, partyID, deleterUserID string) error

	// ImportParties parses an XLSX workbook and atomically replaces the
	// whole party set with its contents.
	ImportParties(ctx context.Context, r io.Reader, filename, uploaderUserID string) (*dto.ImportPartiesResponse, error)
}

// PartySvcFacade combines all party service interfaces
type PartySvcFacade interface {
	PartyReaderSvc
	PartyWriterSvc
}
