package models

import "github.com/shopspring/decimal"

// Template mirrors a row of the templates table.
type Template struct {
	TemplateID string          `json:"templateID"`
	Name       string          `json:"name"`
	PartyID    string          `json:"partyID"`
	PartyName  string          `json:"partyName"`
	Purpose    string          `json:"purpose"`
	Percentage decimal.Decimal `json:"percentage"`
	AuditFields
}
