package services

import (
	"context"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
)

// SequenceSvcFacade allocates document numbers from the shared counter.
type SequenceSvcFacade interface {
	// ReserveNext atomically consumes and returns the next sequence value.
	// A reserved value that is never used becomes a permanent gap.
	ReserveNext(ctx context.Context) (int64, error)

	// CurrentValue reads the counter without consuming anything. Advisory:
	// a concurrent reservation may invalidate it immediately.
	CurrentValue(ctx context.Context) (int64, error)
}

// DocumentRenderer produces the paginated credit note document.
// Rendering the same note twice yields byte-identical output.
type DocumentRenderer interface {
	Render(ctx context.Context, note domain.CreditNote, profile domain.CompanyProfile, variant domain.RenderVariant) ([]byte, error)
}

// CreditNoteDispatcher hands the finished record and both rendered copies
// to the external persistence/mailing endpoint. A dispatch error means the
// note was not issued, even though its number was already consumed.
type CreditNoteDispatcher interface {
	Dispatch(ctx context.Context, note domain.CreditNote, partyPDF, printPDF []byte) error

	// Resend asks the endpoint to re-deliver an already issued note from its
	// archived document. No PDFs travel with the request.
	Resend(ctx context.Context, note domain.CreditNote, recipient domain.ResendRecipient) error
}

// CreditNoteSvcFacade is the issuing workflow.
type CreditNoteSvcFacade interface {
	// IssueCreditNote runs the full pipeline: resolve period, compute the
	// breakdown, reserve a number, render both copies, dispatch, persist.
	IssueCreditNote(ctx context.Context, req dto.IssueCreditNoteRequest, issuerUserID string) (*dto.IssueCreditNoteResponse, error)

	// PreviewCreditNote renders the party copy with the advisory next
	// number without reserving anything or touching any state.
	PreviewCreditNote(ctx context.Context, req dto.IssueCreditNoteRequest) (*dto.PreviewCreditNoteResponse, error)

	// ResendCreditNote re-delivers an issued note to the party or the head
	// office through the dispatch endpoint.
	ResendCreditNote(ctx context.Context, number string, recipient domain.ResendRecipient) error
}
