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

type PgxTemplateRepository struct {
	BaseRepository
}

// newPgxTemplateRepository creates a new repository for issuance templates.
func newPgxTemplateRepository(pool *pgxpool.Pool) portsrepo.TemplateRepositoryFacade {
	return &PgxTemplateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TemplateRepositoryFacade = (*PgxTemplateRepository)(nil)

const templateColumns = `
	template_id, name, party_id, party_name, purpose, percentage,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanTemplate(row pgx.Row) (*models.Template, error) {
	var m models.Template
	err := row.Scan(
		&m.TemplateID,
		&m.Name,
		&m.PartyID,
		&m.PartyName,
		&m.Purpose,
		&m.Percentage,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveTemplate persists a new template.
func (r *PgxTemplateRepository) SaveTemplate(ctx context.Context, template domain.Template) error {
	m := mapping.ToModelTemplate(template)
	query := `
		INSERT INTO templates (` + templateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TemplateID, m.Name, m.PartyID, m.PartyName, m.Purpose, m.Percentage,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert template "+m.TemplateID, err)
	}
	return nil
}

// FindTemplateByID retrieves a specific template by its ID.
func (r *PgxTemplateRepository) FindTemplateByID(ctx context.Context, templateID string) (*domain.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates WHERE template_id = $1;`

	m, err := scanTemplate(r.Pool.QueryRow(ctx, query, templateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find template by ID "+templateID, err)
	}

	template := mapping.ToDomainTemplate(*m)
	return &template, nil
}

// ListTemplates retrieves all templates sorted by name.
func (r *PgxTemplateRepository) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query templates", err)
	}
	defer rows.Close()

	templates := []models.Template{}
	for rows.Next() {
		m, err := scanTemplate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan template row", err)
		}
		templates = append(templates, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating template rows", err)
	}

	return mapping.ToDomainTemplateSlice(templates), nil
}

// UpdateTemplate updates an existing template.
func (r *PgxTemplateRepository) UpdateTemplate(ctx context.Context, template domain.Template) error {
	m := mapping.ToModelTemplate(template)
	query := `
		UPDATE templates
		SET name = $2,
		    party_id = $3,
		    party_name = $4,
		    purpose = $5,
		    percentage = $6,
		    last_updated_at = $7,
		    last_updated_by = $8
		WHERE template_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.TemplateID, m.Name, m.PartyID, m.PartyName, m.Purpose, m.Percentage,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update template "+m.TemplateID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("template " + m.TemplateID + " not found for update")
	}
	return nil
}

// DeleteTemplate removes a template.
func (r *PgxTemplateRepository) DeleteTemplate(ctx context.Context, templateID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM templates WHERE template_id = $1;`, templateID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete template "+templateID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("template " + templateID + " not found for delete")
	}
	return nil
}
