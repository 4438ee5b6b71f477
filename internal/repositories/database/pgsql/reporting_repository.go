package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for dashboard aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// MonthlyTotals returns per-month issued totals for the trailing window,
// oldest first. Months without any notes are filled with zeros so chart
// consumers always get exactly `months` buckets.
func (r *PgxReportingRepository) MonthlyTotals(ctx context.Context, now time.Time, months int) ([]portsrepo.MonthlyTotal, error) {
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	query := `
		SELECT date_trunc('month', issue_date) AS month,
		       COUNT(*) AS cnt,
		       COALESCE(SUM(final_amount), 0) AS total
		FROM credit_notes
		WHERE status = $1 AND issue_date >= $2
		GROUP BY 1
		ORDER BY 1;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.NoteIssued), windowStart)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query monthly totals", err)
	}
	defer rows.Close()

	byMonth := map[time.Time]portsrepo.MonthlyTotal{}
	for rows.Next() {
		var t portsrepo.MonthlyTotal
		if err := rows.Scan(&t.Month, &t.Count, &t.Total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan monthly total row", err)
		}
		key := time.Date(t.Month.Year(), t.Month.Month(), 1, 0, 0, 0, 0, time.UTC)
		t.Month = key
		byMonth[key] = t
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating monthly total rows", err)
	}

	totals := make([]portsrepo.MonthlyTotal, 0, months)
	for i := 0; i < months; i++ {
		month := windowStart.AddDate(0, i, 0)
		if t, ok := byMonth[month]; ok {
			totals = append(totals, t)
			continue
		}
		totals = append(totals, portsrepo.MonthlyTotal{Month: month, Total: decimal.Zero})
	}
	return totals, nil
}

// TopParties returns the parties with the highest issued totals, highest first.
func (r *PgxReportingRepository) TopParties(ctx context.Context, limit int) ([]portsrepo.PartyTotal, error) {
	query := `
		SELECT party_name, COUNT(*) AS cnt, COALESCE(SUM(final_amount), 0) AS total
		FROM credit_notes
		WHERE status = $1
		GROUP BY party_name
		ORDER BY total DESC, party_name
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.NoteIssued), limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query party totals", err)
	}
	defer rows.Close()

	totals := []portsrepo.PartyTotal{}
	for rows.Next() {
		var t portsrepo.PartyTotal
		if err := rows.Scan(&t.PartyName, &t.Count, &t.Total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan party total row", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating party total rows", err)
	}
	return totals, nil
}
