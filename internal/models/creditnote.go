package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditNote mirrors a row of the credit_notes table. The party block is a
// snapshot taken at issuance, the period and breakdown are flattened columns.
type CreditNote struct {
	NoteID         string          `json:"noteID"`
	NoteNumber     string          `json:"noteNumber"`
	IssueDate      time.Time       `json:"issueDate"`
	PartyName      string          `json:"partyName"`
	PartyAddress1  string          `json:"partyAddress1"`
	PartyAddress2  string          `json:"partyAddress2"`
	PartyCity      string          `json:"partyCity"`
	PartyEmail     string          `json:"partyEmail"`
	PartyWhatsapp  string          `json:"partyWhatsapp"`
	PeriodFrom     time.Time       `json:"periodFrom"`
	PeriodTo       time.Time       `json:"periodTo"`
	PeriodLabel    string          `json:"periodLabel"`
	Purpose        string          `json:"purpose"`
	BaseAmount     decimal.Decimal `json:"baseAmount"`
	Percentage     decimal.Decimal `json:"percentage"`
	CreditAmount   decimal.Decimal `json:"creditAmount"`
	RoundOff       decimal.Decimal `json:"roundOff"`
	FinalAmount    int64           `json:"finalAmount"`
	Status         string          `json:"status"`
	AuditFields
}
