package dispatch

import (
	"context"
	"log/slog"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/middleware"
)

// MirroredDispatcher wraps the primary dispatcher with the optional sheet
// mirror. The webhook result decides success; a mirror failure only logs.
type MirroredDispatcher struct {
	primary portssvc.CreditNoteDispatcher
	mirror  *SheetMirror
}

func NewMirroredDispatcher(primary portssvc.CreditNoteDispatcher, mirror *SheetMirror) *MirroredDispatcher {
	return &MirroredDispatcher{primary: primary, mirror: mirror}
}

var _ portssvc.CreditNoteDispatcher = (*MirroredDispatcher)(nil)

func (d *MirroredDispatcher) Dispatch(ctx context.Context, note domain.CreditNote, partyPDF, printPDF []byte) error {
	if err := d.primary.Dispatch(ctx, note, partyPDF, printPDF); err != nil {
		return err
	}

	if d.mirror != nil {
		if err := d.mirror.Append(ctx, note); err != nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Ledger mirror append failed",
				slog.String("number", note.Number),
				slog.String("error", err.Error()))
		}
	}
	return nil
}

// Resend goes to the primary only; the mirror row already exists.
func (d *MirroredDispatcher) Resend(ctx context.Context, note domain.CreditNote, recipient domain.ResendRecipient) error {
	return d.primary.Resend(ctx, note, recipient)
}
