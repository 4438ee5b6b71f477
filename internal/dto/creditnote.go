package dto

import (
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IssueCreditNoteRequest defines the data needed to issue a credit note.
// Period fields other than PeriodMode are only consulted in custom mode.
type IssueCreditNoteRequest struct {
	PartyID     string          `json:"partyID" binding:"required"`
	IssueDate   string          `json:"issueDate" binding:"omitempty,datetime=2006-01-02"` // defaults to today
	PeriodMode  string          `json:"periodMode" binding:"required,oneof=quarter month custom"`
	PeriodFrom  string          `json:"periodFrom" binding:"omitempty,datetime=2006-01-02"`
	PeriodTo    string          `json:"periodTo" binding:"omitempty,datetime=2006-01-02"`
	PeriodLabel string          `json:"periodLabel"`
	Purpose     string          `json:"purpose" binding:"required"`
	BaseAmount  decimal.Decimal `json:"baseAmount" binding:"required"`
	Percentage  decimal.Decimal `json:"percentage" binding:"required"`
	// PartyEmail, when set and different from the stored one, is persisted
	// back to the party before dispatch.
	PartyEmail string `json:"partyEmail" binding:"omitempty,email"`
}

// CreditNoteResponse defines the data returned for an issued credit note.
type CreditNoteResponse struct {
	NoteID       string          `json:"noteID"`
	Number       string          `json:"number"`
	IssueDate    time.Time       `json:"issueDate"`
	PartyName    string          `json:"partyName"`
	PartyCity    string          `json:"partyCity"`
	PeriodFrom   time.Time       `json:"periodFrom"`
	PeriodTo     time.Time       `json:"periodTo"`
	PeriodLabel  string          `json:"periodLabel"`
	Purpose      string          `json:"purpose"`
	BaseAmount   decimal.Decimal `json:"baseAmount"`
	Percentage   decimal.Decimal `json:"percentage"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	RoundOff     decimal.Decimal `json:"roundOff"`
	FinalAmount  int64           `json:"finalAmount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToCreditNoteResponse converts a domain.CreditNote to CreditNoteResponse DTO
func ToCreditNoteResponse(n *domain.CreditNote) CreditNoteResponse {
	return CreditNoteResponse{
		NoteID:       n.NoteID,
		Number:       n.Number,
		IssueDate:    n.IssueDate,
		PartyName:    n.Party.Name,
		PartyCity:    n.Party.City,
		PeriodFrom:   n.Period.From,
		PeriodTo:     n.Period.To,
		PeriodLabel:  n.Period.Label,
		Purpose:      n.Purpose,
		BaseAmount:   n.Breakdown.BaseAmount,
		Percentage:   n.Breakdown.Percentage,
		CreditAmount: n.Breakdown.CreditAmount,
		RoundOff:     n.Breakdown.RoundOff,
		FinalAmount:  n.Breakdown.FinalAmount,
		Status:       string(n.Status),
		CreatedAt:    n.CreatedAt,
	}
}

// ToListCreditNoteResponse converts a slice of domain.CreditNote to DTOs
func ToListCreditNoteResponse(notes []domain.CreditNote) []CreditNoteResponse {
	res := make([]CreditNoteResponse, len(notes))
	for i := range notes {
		res[i] = ToCreditNoteResponse(&notes[i])
	}
	return res
}

// IssueCreditNoteResponse returns the issued record and both rendered copies.
type IssueCreditNoteResponse struct {
	Note           CreditNoteResponse `json:"note"`
	PartyPDFBase64 string             `json:"partyPdfBase64"`
	PrintPDFBase64 string             `json:"printPdfBase64"`
}

// ResendCreditNoteRequest selects the recipient for a re-delivery.
type ResendCreditNoteRequest struct {
	Recipient string `json:"recipient" binding:"required,oneof=party ho"`
}

// PreviewCreditNoteResponse returns a rendered preview. The number shown is
// advisory: another client may reserve it before this caller submits.
type PreviewCreditNoteResponse struct {
	Number    string `json:"number"`
	Advisory  bool   `json:"advisory"`
	PDFBase64 string `json:"pdfBase64"`
}
