package dto

import (
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
)

// CreatePartyRequest defines the data needed to create a new party.
type CreatePartyRequest struct {
	Name           string `json:"name" binding:"required"`
	Address1       string `json:"address1" binding:"required"`
	Address2       string `json:"address2"`
	Address3       string `json:"address3"`
	City           string `json:"city" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	WhatsappNumber string `json:"whatsappNumber"`
	GSTIN          string `json:"gstin"`
}

// UpdatePartyRequest defines the data for updating an existing party.
type UpdatePartyRequest struct {
	Name           string `json:"name" binding:"required"`
	Address1       string `json:"address1" binding:"required"`
	Address2       string `json:"address2"`
	Address3       string `json:"address3"`
	City           string `json:"city" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	WhatsappNumber string `json:"whatsappNumber"`
	GSTIN          string `json:"gstin"`
}

// UpdatePartyEmailRequest patches only the party email.
type UpdatePartyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID        string    `json:"partyID"`
	Name           string    `json:"name"`
	Address1       string    `json:"address1"`
	Address2       string    `json:"address2"`
	Address3       string    `json:"address3,omitempty"`
	City           string    `json:"city"`
	Email          string    `json:"email,omitempty"`
	WhatsappNumber string    `json:"whatsappNumber,omitempty"`
	GSTIN          string    `json:"gstin,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:        p.PartyID,
		Name:           p.Name,
		Address1:       p.Address1,
		Address2:       p.Address2,
		Address3:       p.Address3,
		City:           p.City,
		Email:          p.Email,
		WhatsappNumber: p.WhatsappNumber,
		GSTIN:          p.GSTIN,
		CreatedAt:      p.CreatedAt,
		LastUpdatedAt:  p.LastUpdatedAt,
	}
}

// ToListPartyResponse converts a slice of domain.Party to PartyResponse DTOs
func ToListPartyResponse(parties []domain.Party) []PartyResponse {
	res := make([]PartyResponse, len(parties))
	for i := range parties {
		res[i] = ToPartyResponse(&parties[i])
	}
	return res
}

// ImportPartiesResponse reports the outcome of a bulk XLSX upload.
type ImportPartiesResponse struct {
	Imported int      `json:"imported"`
	Skipped  []string `json:"skipped,omitempty"` // row descriptions that could not be parsed
}
