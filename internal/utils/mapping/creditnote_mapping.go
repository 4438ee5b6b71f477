package mapping

import (
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	"github.com/kambeshwar/creditnote_backend/internal/models"
)

// ToModelCreditNote flattens a domain CreditNote into its row form.
func ToModelCreditNote(d domain.CreditNote) models.CreditNote {
	return models.CreditNote{
		NoteID:        d.NoteID,
		NoteNumber:    d.Number,
		IssueDate:     d.IssueDate,
		PartyName:     d.Party.Name,
		PartyAddress1: d.Party.Address1,
		PartyAddress2: d.Party.Address2,
		PartyCity:     d.Party.City,
		PartyEmail:    d.Party.Email,
		PartyWhatsapp: d.Party.WhatsappNumber,
		PeriodFrom:    d.Period.From,
		PeriodTo:      d.Period.To,
		PeriodLabel:   d.Period.Label,
		Purpose:       d.Purpose,
		BaseAmount:    d.Breakdown.BaseAmount,
		Percentage:    d.Breakdown.Percentage,
		CreditAmount:  d.Breakdown.CreditAmount,
		RoundOff:      d.Breakdown.RoundOff,
		FinalAmount:   d.Breakdown.FinalAmount,
		Status:        string(d.Status),
		AuditFields:   toModelAuditFields(d.AuditFields),
	}
}

// ToDomainCreditNote rebuilds a domain CreditNote from its row form.
func ToDomainCreditNote(m models.CreditNote) domain.CreditNote {
	return domain.CreditNote{
		NoteID:    m.NoteID,
		Number:    m.NoteNumber,
		IssueDate: m.IssueDate,
		Party: domain.PartySnapshot{
			Name:           m.PartyName,
			Address1:       m.PartyAddress1,
			Address2:       m.PartyAddress2,
			City:           m.PartyCity,
			Email:          m.PartyEmail,
			WhatsappNumber: m.PartyWhatsapp,
		},
		Period: domain.ReportingPeriod{
			From:  m.PeriodFrom,
			To:    m.PeriodTo,
			Label: m.PeriodLabel,
		},
		Purpose: m.Purpose,
		Breakdown: domain.MonetaryBreakdown{
			BaseAmount:   m.BaseAmount,
			Percentage:   m.Percentage,
			CreditAmount: m.CreditAmount,
			RoundOff:     m.RoundOff,
			FinalAmount:  m.FinalAmount,
		},
		Status:      domain.NoteStatus(m.Status),
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCreditNoteSlice converts a slice of model CreditNotes to domain CreditNotes
func ToDomainCreditNoteSlice(ms []models.CreditNote) []domain.CreditNote {
	ds := make([]domain.CreditNote, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCreditNote(m)
	}
	return ds
}
