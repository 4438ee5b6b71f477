package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
	"github.com/kambeshwar/creditnote_backend/internal/models"
	"github.com/kambeshwar/creditnote_backend/internal/utils/mapping"
)

type PgxAuditRepository struct {
	BaseRepository
}

// newPgxAuditRepository creates a new repository for the audit log.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// AppendEntry persists a new audit entry.
func (r *PgxAuditRepository) AppendEntry(ctx context.Context, entry domain.AuditEntry) error {
	m := mapping.ToModelAuditEntry(entry)
	query := `
		INSERT INTO audit_log (entry_id, occurred_at, action, details)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, m.EntryID, m.Timestamp, m.Action, m.Details)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit entry", err)
	}
	return nil
}

// ListEntries retrieves the newest entries first, up to limit.
func (r *PgxAuditRepository) ListEntries(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	query := `
		SELECT entry_id, occurred_at, action, details
		FROM audit_log
		ORDER BY occurred_at DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query audit log", err)
	}
	defer rows.Close()

	entries := []models.AuditEntry{}
	for rows.Next() {
		var m models.AuditEntry
		if err := rows.Scan(&m.EntryID, &m.Timestamp, &m.Action, &m.Details); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan audit row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating audit rows", err)
	}

	return mapping.ToDomainAuditEntrySlice(entries), nil
}
