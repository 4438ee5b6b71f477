package repositories

import (
	"context"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
)

// SettingsRepositoryFacade manages the single company profile row.
type SettingsRepositoryFacade interface {
	// GetProfile retrieves the company profile. Returns apperrors.ErrNotFound
	// when none has been saved yet; callers fall back to the defaults.
	GetProfile(ctx context.Context) (*domain.CompanyProfile, error)

	// SaveProfile upserts the company profile.
	SaveProfile(ctx context.Context, profile domain.CompanyProfile) error
}
