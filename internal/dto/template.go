package dto

import (
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTemplateRequest defines the data needed to create a new template.
type CreateTemplateRequest struct {
	Name       string          `json:"name" binding:"required"`
	PartyID    string          `json:"partyID" binding:"required"`
	Purpose    string          `json:"purpose" binding:"required"`
	Percentage decimal.Decimal `json:"percentage" binding:"required"`
}

// UpdateTemplateRequest defines the data for updating an existing template.
type UpdateTemplateRequest struct {
	Name       string          `json:"name" binding:"required"`
	PartyID    string          `json:"partyID" binding:"required"`
	Purpose    string          `json:"purpose" binding:"required"`
	Percentage decimal.Decimal `json:"percentage" binding:"required"`
}

// TemplateResponse defines the data returned for a template.
type TemplateResponse struct {
	TemplateID    string          `json:"templateID"`
	Name          string          `json:"name"`
	PartyID       string          `json:"partyID"`
	PartyName     string          `json:"partyName"`
	Purpose       string          `json:"purpose"`
	Percentage    decimal.Decimal `json:"percentage"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToTemplateResponse converts a domain.Template to TemplateResponse DTO
func ToTemplateResponse(t *domain.Template) TemplateResponse {
	return TemplateResponse{
		TemplateID:    t.TemplateID,
		Name:          t.Name,
		PartyID:       t.PartyID,
		PartyName:     t.PartyName,
		Purpose:       t.Purpose,
		Percentage:    t.Percentage,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ToListTemplateResponse converts a slice of domain.Template to DTOs
func ToListTemplateResponse(templates []domain.Template) []TemplateResponse {
	res := make([]TemplateResponse, len(templates))
	for i := range templates {
		res[i] = ToTemplateResponse(&templates[i])
	}
	return res
}
