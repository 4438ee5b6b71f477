// Package fiscal computes reporting periods for credit notes.
// The business's financial year runs April through March; quarters are
// Q1 Apr-Jun, Q2 Jul-Sep, Q3 Oct-Dec, Q4 Jan-Mar.
package fiscal

import (
	"fmt"
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
)

// All date arithmetic happens in UTC. The ranges end up on financial
// instruments, so the local timezone must never shift the apparent day.

// PreviousQuarter returns the financial quarter immediately preceding the one
// containing today, with its exact first and last calendar day.
//
// The mapping is an explicit table per current quarter, not date subtraction:
// the Jan-Mar edge (financial Q4) must resolve to Q3 of the same started-year
// pair, one quarter back, not a full year back.
func PreviousQuarter(today time.Time) domain.ReportingPeriod {
	y := today.UTC().Year()

	switch today.UTC().Month() {
	case time.April, time.May, time.June: // current Q1, previous is Q4 of the prior FY
		return domain.ReportingPeriod{
			From:  time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
			To:    time.Date(y, time.March, 31, 0, 0, 0, 0, time.UTC),
			Label: quarterLabel(4, y-1),
		}
	case time.July, time.August, time.September: // current Q2, previous is Q1
		return domain.ReportingPeriod{
			From:  time.Date(y, time.April, 1, 0, 0, 0, 0, time.UTC),
			To:    time.Date(y, time.June, 30, 0, 0, 0, 0, time.UTC),
			Label: quarterLabel(1, y),
		}
	case time.October, time.November, time.December: // current Q3, previous is Q2
		return domain.ReportingPeriod{
			From:  time.Date(y, time.July, 1, 0, 0, 0, 0, time.UTC),
			To:    time.Date(y, time.September, 30, 0, 0, 0, 0, time.UTC),
			Label: quarterLabel(2, y),
		}
	default: // Jan-Mar: current Q4 of the FY started y-1, previous is Q3 of that same FY
		return domain.ReportingPeriod{
			From:  time.Date(y-1, time.October, 1, 0, 0, 0, 0, time.UTC),
			To:    time.Date(y-1, time.December, 31, 0, 0, 0, 0, time.UTC),
			Label: quarterLabel(3, y-1),
		}
	}
}

// quarterLabel renders "Q<k> <startYear>-<YY>" where startYear is the year the
// financial year began and YY is the two-digit year it ends in.
func quarterLabel(quarter, startYear int) string {
	return fmt.Sprintf("Q%d %d-%02d", quarter, startYear, (startYear+1)%100)
}

// PreviousMonth returns the preceding calendar month's first and last day,
// labelled with the full month name and year.
func PreviousMonth(today time.Time) domain.ReportingPeriod {
	t := today.UTC()
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	last := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	return domain.ReportingPeriod{
		From:  first,
		To:    last,
		Label: first.Format("January 2006"),
	}
}

// Custom validates a caller-supplied period. No date arithmetic is performed.
func Custom(from, to time.Time, label string) (domain.ReportingPeriod, error) {
	if to.Before(from) {
		return domain.ReportingPeriod{}, apperrors.NewValidationError("period end precedes period start")
	}
	if label == "" {
		return domain.ReportingPeriod{}, apperrors.NewValidationError("period label is required")
	}
	return domain.ReportingPeriod{From: from.UTC(), To: to.UTC(), Label: label}, nil
}
