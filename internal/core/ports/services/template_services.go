package services

import (
	"context"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
)

// TemplateSvcFacade defines operations for credit note templates
type TemplateSvcFacade interface {
	// CreateTemplate creates a new template; the party name is snapshotted
	// from the referenced party.
	CreateTemplate(ctx context.Context, req dto.CreateTemplateRequest, creatorUserID string) (*domain.Template, error)

	// GetTemplateByID retrieves a specific template.
	GetTemplateByID(ctx context.Context, templateID string) (*domain.Template, error)

	// ListTemplates retrieves all templates sorted by name.
	ListTemplates(ctx context.Context) ([]domain.Template, error)

	// UpdateTemplate updates an existing template.
	UpdateTemplate(ctx context.Context, templateID string, req dto.UpdateTemplateRequest, updaterUserID string) (*domain.Template, error)

	// DeleteTemplate removes a template.
	DeleteTemplate(ctx context.Context, templateID, deleterUserID string) error
}
