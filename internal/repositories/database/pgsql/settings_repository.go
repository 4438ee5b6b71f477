package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
	"github.com/kambeshwar/creditnote_backend/internal/models"
	"github.com/kambeshwar/creditnote_backend/internal/utils/mapping"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for the company profile.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// GetProfile retrieves the company profile row.
func (r *PgxSettingsRepository) GetProfile(ctx context.Context) (*domain.CompanyProfile, error) {
	query := `
		SELECT profile_id, name, address_line1, address_line2, contact_info,
		       gstin, udyam, state_code, note_prefix,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM company_profile WHERE profile_id = 1;
	`

	var m models.CompanyProfile
	err := r.Pool.QueryRow(ctx, query).Scan(
		&m.ProfileID,
		&m.Name,
		&m.AddressLine1,
		&m.AddressLine2,
		&m.ContactInfo,
		&m.GSTIN,
		&m.UDYAM,
		&m.StateCode,
		&m.NotePrefix,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to load company profile", err)
	}

	profile := mapping.ToDomainCompanyProfile(m)
	return &profile, nil
}

// SaveProfile upserts the single company profile row.
func (r *PgxSettingsRepository) SaveProfile(ctx context.Context, profile domain.CompanyProfile) error {
	m := mapping.ToModelCompanyProfile(profile)
	query := `
		INSERT INTO company_profile (
			profile_id, name, address_line1, address_line2, contact_info,
			gstin, udyam, state_code, note_prefix,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (profile_id) DO UPDATE SET
			name = EXCLUDED.name,
			address_line1 = EXCLUDED.address_line1,
			address_line2 = EXCLUDED.address_line2,
			contact_info = EXCLUDED.contact_info,
			gstin = EXCLUDED.gstin,
			udyam = EXCLUDED.udyam,
			state_code = EXCLUDED.state_code,
			note_prefix = EXCLUDED.note_prefix,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.Name, m.AddressLine1, m.AddressLine2, m.ContactInfo,
		m.GSTIN, m.UDYAM, m.StateCode, m.NotePrefix,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save company profile", err)
	}
	return nil
}
