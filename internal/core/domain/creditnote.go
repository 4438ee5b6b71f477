package domain

import (
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	"github.com/kambeshwar/creditnote_backend/internal/utils/numwords"
	"github.com/shopspring/decimal"
)

// PeriodMode selects how the reporting period of a credit note is derived.
type PeriodMode string

const (
	PeriodQuarter PeriodMode = "quarter" // preceding financial quarter (FY starts in April)
	PeriodMonth   PeriodMode = "month"   // preceding calendar month
	PeriodCustom  PeriodMode = "custom"  // caller-supplied range
)

// ReportingPeriod is the date range a credit note settles, with its display label.
// Immutable value; computed fresh for every note.
type ReportingPeriod struct {
	From  time.Time `json:"from"`
	To    time.Time `json:"to"`
	Label string    `json:"label"` // e.g. "Q2 2025-26" or "July 2025"
}

// MonetaryBreakdown holds the computed figures of a credit note.
// Invariant: CreditAmount + RoundOff == decimal(FinalAmount) exactly,
// because RoundOff is defined as FinalAmount - CreditAmount.
type MonetaryBreakdown struct {
	BaseAmount   decimal.Decimal `json:"baseAmount"`   // net sales, excluding GST
	Percentage   decimal.Decimal `json:"percentage"`   // credit percentage applied to the base
	CreditAmount decimal.Decimal `json:"creditAmount"` // base * percentage / 100, full precision
	RoundOff     decimal.Decimal `json:"roundOff"`     // signed adjustment to the nearest rupee
	FinalAmount  int64           `json:"finalAmount"`  // whole-rupee instrument amount
}

// PartySnapshot captures the recipient's details at issuance time.
// It is intentionally not a live link to the Party record.
type PartySnapshot struct {
	Name           string `json:"name"`
	Address1       string `json:"address1"`
	Address2       string `json:"address2"`
	City           string `json:"city"`
	Email          string `json:"email,omitempty"`
	WhatsappNumber string `json:"whatsappNumber,omitempty"`
}

// NoteStatus tracks what happened to a credit note after its number was reserved.
type NoteStatus string

const (
	// NoteIssued means rendering and dispatch both succeeded.
	NoteIssued NoteStatus = "ISSUED"
	// NoteDispatchFailed means a number was consumed but the note never went out.
	// The number is a permanent gap in the sequence; it is never reused.
	NoteDispatchFailed NoteStatus = "DISPATCH_FAILED"
)

// CreditNote is the financial record assembled once per workflow run.
// Immutable after creation.
type CreditNote struct {
	NoteID    string            `json:"noteID"` // Primary Key (UUID)
	Number    string            `json:"number"` // e.g. "KA-EN-CN123"; unique per sequence store
	IssueDate time.Time         `json:"issueDate"`
	Party     PartySnapshot     `json:"party"`
	Period    ReportingPeriod   `json:"period"`
	Purpose   string            `json:"purpose"`
	Breakdown MonetaryBreakdown `json:"breakdown"`
	Status    NoteStatus        `json:"status"`
	AuditFields
}

// RenderVariant distinguishes the two produced copies of a credit note document.
type RenderVariant string

const (
	// VariantParty is the copy sent to the party; carries the digital-copy annotation.
	VariantParty RenderVariant = "party"
	// VariantPrint is the copy sent to the printer; signed by hand, no annotation.
	VariantPrint RenderVariant = "print"
)

// ResendRecipient selects who an already issued note is re-sent to.
type ResendRecipient string

const (
	ResendToParty      ResendRecipient = "party"
	ResendToHeadOffice ResendRecipient = "ho"
)

// Validate checks the text fields the document layout depends on.
// Called before any drawing begins; a note that passes here renders without error.
func (n CreditNote) Validate() error {
	switch {
	case n.Number == "":
		return apperrors.NewValidationError("credit note number is required")
	case n.Party.Name == "":
		return apperrors.NewValidationError("party name is required")
	case n.Purpose == "":
		return apperrors.NewValidationError("purpose is required")
	case n.Period.Label == "":
		return apperrors.NewValidationError("period label is required")
	case n.Period.To.Before(n.Period.From):
		return apperrors.NewValidationError("period end precedes period start")
	case n.Breakdown.FinalAmount > numwords.MaxAmount:
		return apperrors.NewValidationError("final amount exceeds 999,99,99,999, the largest amount that can be written in words")
	}
	return nil
}
