package domain

import "github.com/shopspring/decimal"

// Template is a reusable preset binding a party to a purpose text and percentage.
type Template struct {
	TemplateID string          `json:"templateID"` // Primary Key (UUID)
	Name       string          `json:"name"`
	PartyID    string          `json:"partyID"`
	PartyName  string          `json:"partyName"` // denormalized for display
	Purpose    string          `json:"purpose"`
	Percentage decimal.Decimal `json:"percentage"`
	AuditFields
}
