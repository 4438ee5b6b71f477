package repositories

import (
	"context"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
)

// TemplateReader defines read operations for template data
type TemplateReader interface {
	// FindTemplateByID retrieves a specific template by its ID.
	FindTemplateByID(ctx context.Context, templateID string) (*domain.Template, error)

	// ListTemplates retrieves all templates sorted by name.
	ListTemplates(ctx context.Context) ([]domain.Template, error)
}

// TemplateWriter defines write operations for template data
type TemplateWriter interface {
	// SaveTemplate persists a new template.
	SaveTemplate(ctx context.Context, template domain.Template) error

	// UpdateTemplate updates an existing template.
	UpdateTemplate(ctx context.Context, template domain.Template) error

	// DeleteTemplate removes a template.
	DeleteTemplate(ctx context.Context, templateID string) error
}

// TemplateRepositoryFacade combines all template-related repository interfaces
type TemplateRepositoryFacade interface {
	TemplateReader
	TemplateWriter
}
