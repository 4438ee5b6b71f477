package domain

// Party is a trading partner that credit notes are issued to.
type Party struct {
	PartyID        string `json:"partyID"` // Primary Key (UUID)
	Name           string `json:"name"`
	Address1       string `json:"address1"`
	Address2       string `json:"address2"`
	Address3       string `json:"address3,omitempty"`
	City           string `json:"city"`
	Email          string `json:"email,omitempty"`
	WhatsappNumber string `json:"whatsappNumber,omitempty"`
	GSTIN          string `json:"gstin,omitempty"`
	AuditFields
}
