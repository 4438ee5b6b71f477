package dispatch

import (
	"context"
	"fmt"
	"os"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// SheetMirror appends a ledger row for each issued note to a Google Sheet.
// The sheet is a convenience copy for the back office; the database stays the
// source of truth, so mirror failures are reported but not fatal.
type SheetMirror struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheetMirror builds the mirror from a service-account credentials file.
func NewSheetMirror(ctx context.Context, spreadsheetID, credentialsFile string) (*SheetMirror, error) {
	creds, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet credentials file: %w", err)
	}

	config, err := google.JWTConfigFromJSON(creds, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sheet credentials: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &SheetMirror{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Append writes one ledger row for the note.
func (m *SheetMirror) Append(ctx context.Context, note domain.CreditNote) error {
	row := []interface{}{
		note.Number,
		note.IssueDate.Format(displayDateLayout),
		note.Party.Name,
		note.Party.City,
		note.Period.Label,
		note.Purpose,
		note.Breakdown.BaseAmount.InexactFloat64(),
		note.Breakdown.Percentage.InexactFloat64(),
		note.Breakdown.CreditAmount.InexactFloat64(),
		note.Breakdown.RoundOff.InexactFloat64(),
		note.Breakdown.FinalAmount,
		string(note.Status),
	}

	valueRange := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := m.svc.Spreadsheets.Values.Append(
		m.spreadsheetID,
		"Credit Notes!A:L",
		valueRange,
	).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append ledger row for %s: %w", note.Number, err)
	}
	return nil
}
