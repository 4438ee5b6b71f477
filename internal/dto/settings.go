package dto

import "github.com/kambeshwar/creditnote_backend/internal/core/domain"

// UpdateSettingsRequest replaces the company profile.
type UpdateSettingsRequest struct {
	Name         string `json:"name" binding:"required"`
	AddressLine1 string `json:"addressLine1" binding:"required"`
	AddressLine2 string `json:"addressLine2"`
	ContactInfo  string `json:"contactInfo"`
	GSTIN        string `json:"gstin" binding:"required"`
	UDYAM        string `json:"udyam"`
	StateCode    string `json:"stateCode"`
	NotePrefix   string `json:"notePrefix" binding:"required"`
}

// SettingsResponse defines the data returned for the company profile.
type SettingsResponse struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	ContactInfo  string `json:"contactInfo"`
	GSTIN        string `json:"gstin"`
	UDYAM        string `json:"udyam"`
	StateCode    string `json:"stateCode"`
	NotePrefix   string `json:"notePrefix"`
}

// ToSettingsResponse converts a domain.CompanyProfile to SettingsResponse DTO
func ToSettingsResponse(p domain.CompanyProfile) SettingsResponse {
	return SettingsResponse{
		Name:         p.Name,
		AddressLine1: p.AddressLine1,
		AddressLine2: p.AddressLine2,
		ContactInfo:  p.ContactInfo,
		GSTIN:        p.GSTIN,
		UDYAM:        p.UDYAM,
		StateCode:    p.StateCode,
		NotePrefix:   p.NotePrefix,
	}
}
