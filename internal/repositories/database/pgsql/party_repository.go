package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
	"github.com/kambeshwar/creditnote_backend/internal/models"
	"github.com/kambeshwar/creditnote_backend/internal/utils/mapping"
)

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for party data.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPartyRepository implements portsrepo.PartyRepositoryFacade
var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

const partyColumns = `
	party_id, name, address1, address2, address3, city, email, whatsapp_number, gstin,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanParty(row pgx.Row) (*models.Party, error) {
	var m models.Party
	err := row.Scan(
		&m.PartyID,
		&m.Name,
		&m.Address1,
		&m.Address2,
		&m.Address3,
		&m.City,
		&m.Email,
		&m.WhatsappNumber,
		&m.GSTIN,
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

// SaveParty persists a new party.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		INSERT INTO parties (` + partyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PartyID, m.Name, m.Address1, m.Address2, m.Address3, m.City,
		m.Email, m.WhatsappNumber, m.GSTIN,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert party "+m.PartyID, err)
	}
	return nil
}

// FindPartyByID retrieves a party by its ID.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE party_id = $1;`

	m, err := scanParty(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find party by ID "+partyID, err)
	}

	party := mapping.ToDomainParty(*m)
	return &party, nil
}

// ListParties retrieves all parties sorted by name.
func (r *PgxPartyRepository) ListParties(ctx context.Context) ([]domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query parties", err)
	}
	defer rows.Close()

	parties := []models.Party{}
	for rows.Next() {
		m, err := scanParty(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan party row", err)
		}
		parties = append(parties, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating party rows", err)
	}

	return mapping.ToDomainPartySlice(parties), nil
}

// UpdateParty updates an existing party.
func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		UPDATE parties
		SET name = $2,
		    address1 = $3,
		    address2 = $4,
		    address3 = $5,
		    city = $6,
		    email = $7,
		    whatsapp_number = $8,
		    gstin = $9,
		    last_updated_at = $10,
		    last_updated_by = $11
		WHERE party_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.PartyID, m.Name, m.Address1, m.Address2, m.Address3, m.City,
		m.Email, m.WhatsappNumber, m.GSTIN,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update party "+m.PartyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("party " + m.PartyID + " not found for update")
	}
	return nil
}

// UpdatePartyEmail updates only the email column of a party.
func (r *PgxPartyRepository) UpdatePartyEmail(ctx context.Context, partyID, email, updatedBy string) error {
	query := `
		UPDATE parties
		SET email = $2, last_updated_at = $3, last_updated_by = $4
		WHERE party_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, partyID, email, time.Now().UTC(), updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update email for party "+partyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("party " + partyID + " not found for update")
	}
	return nil
}

// DeleteParty removes a party.
func (r *PgxPartyRepository) DeleteParty(ctx context.Context, partyID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM parties WHERE party_id = $1;`, partyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete party "+partyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("party " + partyID + " not found for delete")
	}
	return nil
}

// ReplaceAllParties deletes every party and inserts the given set within a
// single DB transaction, mirroring the all-or-nothing bulk upload.
func (r *PgxPartyRepository) ReplaceAllParties(ctx context.Context, parties []domain.Party) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	if _, err := tx.Exec(ctx, `DELETE FROM parties;`); err != nil {
		return apperrors.NewAppError(500, "failed to clear parties for bulk replace", err)
	}

	batch := &pgx.Batch{}
	insertQuery := `
		INSERT INTO parties (` + partyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	for _, p := range parties {
		m := mapping.ToModelParty(p)
		batch.Queue(insertQuery,
			m.PartyID, m.Name, m.Address1, m.Address2, m.Address3, m.City,
			m.Email, m.WhatsappNumber, m.GSTIN,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute bulk party insert", err)
	}

	return r.Commit(ctx, tx)
}
