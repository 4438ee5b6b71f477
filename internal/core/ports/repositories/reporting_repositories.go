package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyTotal is the issued amount aggregated over one calendar month.
type MonthlyTotal struct {
	Month time.Time // first day of the month, UTC
	Count int64
	Total decimal.Decimal
}

// PartyTotal is the issued amount aggregated per recipient party name.
type PartyTotal struct {
	PartyName string
	Count     int64
	Total     decimal.Decimal
}

// ReportingRepositoryFacade provides the dashboard aggregates.
// Only notes with status ISSUED contribute to the figures.
type ReportingRepositoryFacade interface {
	// MonthlyTotals returns per-month totals for the months months ending
	// with the month containing now, oldest first. Months without notes
	// appear with zero totals.
	MonthlyTotals(ctx context.Context, now time.Time, months int) ([]MonthlyTotal, error)

	// TopParties returns the parties with the highest issued totals, capped
	// at limit, highest first.
	TopParties(ctx context.Context, limit int) ([]PartyTotal, error)
}
