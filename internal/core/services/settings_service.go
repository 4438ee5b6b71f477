package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
)

type SettingsService struct {
	settingsRepo portsrepo.SettingsRepositoryFacade
	audit        portssvc.AuditSvcFacade
}

func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade, audit portssvc.AuditSvcFacade) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo, audit: audit}
}

var _ portssvc.SettingsSvcFacade = (*SettingsService)(nil)

// GetSettings retrieves the company profile, falling back to the built-in
// defaults when none has been saved yet.
func (s *SettingsService) GetSettings(ctx context.Context) (domain.CompanyProfile, error) {
	profile, err := s.settingsRepo.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.DefaultCompanyProfile(), nil
		}
		return domain.CompanyProfile{}, fmt.Errorf("failed to get settings in service: %w", err)
	}
	return *profile, nil
}

// UpdateSettings replaces the company profile.
func (s *SettingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, updaterUserID string) (domain.CompanyProfile, error) {
	now := time.Now()

	profile := domain.CompanyProfile{
		Name:         req.Name,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		ContactInfo:  req.ContactInfo,
		GSTIN:        req.GSTIN,
		UDYAM:        req.UDYAM,
		StateCode:    req.StateCode,
		NotePrefix:   req.NotePrefix,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     updaterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterUserID,
		},
	}

	if err := s.settingsRepo.SaveProfile(ctx, profile); err != nil {
		return domain.CompanyProfile{}, fmt.Errorf("failed to update settings in service: %w", err)
	}

	s.audit.Record(ctx, domain.AuditUpdateSettings, "Updated company profile", now)
	return profile, nil
}
