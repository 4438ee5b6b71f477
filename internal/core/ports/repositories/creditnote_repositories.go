package repositories

import (
	"context"
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
)

// CreditNoteFilter narrows credit note listings. Zero values mean "no filter".
type CreditNoteFilter struct {
	Search   string // matched against note number and party name
	FromDate time.Time
	ToDate   time.Time
	Status   domain.NoteStatus
}

// CreditNoteWriter defines write operations for issued credit notes
type CreditNoteWriter interface {
	// SaveCreditNote persists an issued (or failed) credit note record.
	SaveCreditNote(ctx context.Context, note domain.CreditNote) error
}

// CreditNoteReader defines read operations for issued credit notes
type CreditNoteReader interface {
	// FindCreditNoteByNumber retrieves a specific note by its document number.
	FindCreditNoteByNumber(ctx context.Context, number string) (*domain.CreditNote, error)

	// ListCreditNotes retrieves notes matching the filter, newest first.
	ListCreditNotes(ctx context.Context, filter CreditNoteFilter) ([]domain.CreditNote, error)
}

// CreditNoteRepositoryFacade combines all credit-note repository interfaces
type CreditNoteRepositoryFacade interface {
	CreditNoteReader
	CreditNoteWriter
}
