package domain

// CompanyProfile is the issuing entity's letterhead and statutory identifiers.
// A single row; reads fall back to DefaultCompanyProfile when unset.
type CompanyProfile struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	ContactInfo  string `json:"contactInfo"`
	GSTIN        string `json:"gstin"`
	UDYAM        string `json:"udyam"`
	StateCode    string `json:"stateCode"`
	NotePrefix   string `json:"notePrefix"` // prepended to the sequence value, e.g. "KA-EN-CN"
	AuditFields
}

// DefaultCompanyProfile returns the profile used until settings are saved.
func DefaultCompanyProfile() CompanyProfile {
	return CompanyProfile{
		Name:         "KAMBESHWAR AGENCIES",
		AddressLine1: "Upper Ground Floor, Shop No. 6, Essar Trade Centre",
		AddressLine2: "Shashikant Narvekar Road, Morod, Mapusa, North Goa - 403507",
		ContactInfo:  "Phone: 0832-2266714 / 9422593814 / 9423546561",
		GSTIN:        "30AOEPB9968G1ZZ",
		UDYAM:        "UDYAM-GA-01-0014437",
		StateCode:    "30 (Goa)",
		NotePrefix:   "KA-EN-CN",
	}
}
