package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
)

type TemplateService struct {
	templateRepo portsrepo.TemplateRepositoryFacade
	partyRepo    portsrepo.PartyReader
	audit        portssvc.AuditSvcFacade
}

func NewTemplateService(templateRepo portsrepo.TemplateRepositoryFacade, partyRepo portsrepo.PartyReader, audit portssvc.AuditSvcFacade) *TemplateService {
	return &TemplateService{templateRepo: templateRepo, partyRepo: partyRepo, audit: audit}
}

var _ portssvc.TemplateSvcFacade = (*TemplateService)(nil)

func (s *TemplateService) CreateTemplate(ctx context.Context, req dto.CreateTemplateRequest, creatorUserID string) (*domain.Template, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, req.PartyID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve party for template in service: %w", err)
	}

	now := time.Now()
	template := domain.Template{
		TemplateID: uuid.NewString(),
		Name:       req.Name,
		PartyID:    party.PartyID,
		PartyName:  party.Name,
		Purpose:    req.Purpose,
		Percentage: req.Percentage,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.templateRepo.SaveTemplate(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create template in service: %w", err)
	}

	s.audit.Record(ctx, domain.AuditCreateTemplate, "Created template: "+template.Name, now)
	return &template, nil
}

func (s *TemplateService) GetTemplateByID(ctx context.Context, templateID string) (*domain.Template, error) {
	template, err := s.templateRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get template by ID in service: %w", err)
	}
	return template, nil
}

func (s *TemplateService) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	templates, err := s.templateRepo.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates in service: %w", err)
	}
	if templates == nil {
		return []domain.Template{}, nil
	}
	return templates, nil
}

func (s *TemplateService) UpdateTemplate(ctx context.Context, templateID string, req dto.UpdateTemplateRequest, updaterUserID string) (*domain.Template, error) {
	existing, err := s.templateRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to find template for update in service: %w", err)
	}

	party, err := s.partyRepo.FindPartyByID(ctx, req.PartyID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve party for template update in service: %w", err)
	}

	now := time.Now()
	existing.Name = req.Name
	existing.PartyID = party.PartyID
	existing.PartyName = party.Name
	existing.Purpose = req.Purpose
	existing.Percentage = req.Percentage
	existing.LastUpdatedAt = now
	existing.LastUpdatedBy = updaterUserID

	if err := s.templateRepo.UpdateTemplate(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update template in service: %w", err)
	}

	s.audit.Record(ctx, domain.AuditUpdateTemplate, "Updated template: "+existing.Name, now)
	return existing, nil
}

func (s *TemplateService) DeleteTemplate(ctx context.Context, templateID, deleterUserID string) error {
	existing, err := s.templateRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return fmt.Errorf("failed to find template for delete in service: %w", err)
	}

	if err := s.templateRepo.DeleteTemplate(ctx, templateID); err != nil {
		return fmt.Errorf("failed to delete template in service: %w", err)
	}

	s.audit.Record(ctx, domain.AuditDeleteTemplate, "Deleted template: "+existing.Name, time.Now())
	return nil
}
