package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
	"github.com/kambeshwar/creditnote_backend/internal/models"
	"github.com/kambeshwar/creditnote_backend/internal/utils/mapping"
)

type PgxCreditNoteRepository struct {
	BaseRepository
}

// newPgxCreditNoteRepository creates a new repository for issued credit notes.
func newPgxCreditNoteRepository(pool *pgxpool.Pool) portsrepo.CreditNoteRepositoryFacade {
	return &PgxCreditNoteRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CreditNoteRepositoryFacade = (*PgxCreditNoteRepository)(nil)

const creditNoteColumns = `
	note_id, note_number, issue_date,
	party_name, party_address1, party_address2, party_city, party_email, party_whatsapp,
	period_from, period_to, period_label, purpose,
	base_amount, percentage, credit_amount, round_off, final_amount, status,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanCreditNote(row pgx.Row) (*models.CreditNote, error) {
	var m models.CreditNote
	err := row.Scan(
		&m.NoteID,
		&m.NoteNumber,
		&m.IssueDate,
		&m.PartyName,
		&m.PartyAddress1,
		&m.PartyAddress2,
		&m.PartyCity,
		&m.PartyEmail,
		&m.PartyWhatsapp,
		&m.PeriodFrom,
		&m.PeriodTo,
		&m.PeriodLabel,
		&m.Purpose,
		&m.BaseAmount,
		&m.Percentage,
		&m.CreditAmount,
		&m.RoundOff,
		&m.FinalAmount,
		&m.Status,
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

// SaveCreditNote persists an issued (or failed) credit note record. A note
// number collision surfaces as apperrors.ErrDuplicate.
func (r *PgxCreditNoteRepository) SaveCreditNote(ctx context.Context, note domain.CreditNote) error {
	m := mapping.ToModelCreditNote(note)
	query := `
		INSERT INTO credit_notes (` + creditNoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.NoteID, m.NoteNumber, m.IssueDate,
		m.PartyName, m.PartyAddress1, m.PartyAddress2, m.PartyCity, m.PartyEmail, m.PartyWhatsapp,
		m.PeriodFrom, m.PeriodTo, m.PeriodLabel, m.Purpose,
		m.BaseAmount, m.Percentage, m.CreditAmount, m.RoundOff, m.FinalAmount, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(409, "credit note number "+m.NoteNumber+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert credit note "+m.NoteNumber, err)
	}
	return nil
}

// FindCreditNoteByNumber retrieves a specific note by its document number.
func (r *PgxCreditNoteRepository) FindCreditNoteByNumber(ctx context.Context, number string) (*domain.CreditNote, error) {
	query := `SELECT ` + creditNoteColumns + ` FROM credit_notes WHERE note_number = $1;`

	m, err := scanCreditNote(r.Pool.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find credit note "+number, err)
	}

	note := mapping.ToDomainCreditNote(*m)
	return &note, nil
}

// ListCreditNotes retrieves notes matching the filter, newest first.
func (r *PgxCreditNoteRepository) ListCreditNotes(ctx context.Context, filter portsrepo.CreditNoteFilter) ([]domain.CreditNote, error) {
	query := `SELECT ` + creditNoteColumns + ` FROM credit_notes WHERE 1=1`
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (note_number ILIKE $%d OR party_name ILIKE $%d)", n, n)
	}
	if !filter.FromDate.IsZero() {
		args = append(args, filter.FromDate)
		query += fmt.Sprintf(" AND issue_date >= $%d", len(args))
	}
	if !filter.ToDate.IsZero() {
		args = append(args, filter.ToDate)
		query += fmt.Sprintf(" AND issue_date <= $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY issue_date DESC, note_number DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query credit notes", err)
	}
	defer rows.Close()

	notes := []models.CreditNote{}
	for rows.Next() {
		m, err := scanCreditNote(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan credit note row", err)
		}
		notes = append(notes, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating credit note rows", err)
	}

	return mapping.ToDomainCreditNoteSlice(notes), nil
}
