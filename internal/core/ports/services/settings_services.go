package services

import (
	"context"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
)

// SettingsSvcFacade manages the company profile.
type SettingsSvcFacade interface {
	// GetSettings retrieves the company profile, falling back to the
	// built-in defaults when none has been saved.
	GetSettings(ctx context.Context) (domain.CompanyProfile, error)

	// UpdateSettings replaces the company profile.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, updaterUserID string) (domain.CompanyProfile, error)
}
