package models

// Party mirrors a row of the parties table.
type Party struct {
	PartyID        string `json:"partyID"`
	Name           string `json:"name"`
	Address1       string `json:"address1"`
	Address2       string `json:"address2"`
	Address3       string `json:"address3"`
	City           string `json:"city"`
	Email          string `json:"email"`
	WhatsappNumber string `json:"whatsappNumber"`
	GSTIN          string `json:"gstin"`
	AuditFields
}
