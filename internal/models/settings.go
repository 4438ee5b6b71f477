package models

// CompanyProfile mirrors the single row of the company_profile table.
type CompanyProfile struct {
	ProfileID    int    `json:"profileID"` // always 1
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	ContactInfo  string `json:"contactInfo"`
	GSTIN        string `json:"gstin"`
	UDYAM        string `json:"udyam"`
	StateCode    string `json:"stateCode"`
	NotePrefix   string `json:"notePrefix"`
	AuditFields
}
