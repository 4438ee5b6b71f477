package fiscal_test

import (
	"testing"
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	"github.com/kambeshwar/creditnote_backend/internal/utils/fiscal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPreviousQuarter_AllMonths(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		from  time.Time
		to    time.Time
		label string
	}{
		{"january resolves to Q3 of same FY pair", date(2026, time.January, 15), date(2025, time.October, 1), date(2025, time.December, 31), "Q3 2025-26"},
		{"february resolves to Q3 of same FY pair", date(2026, time.February, 28), date(2025, time.October, 1), date(2025, time.December, 31), "Q3 2025-26"},
		{"march resolves to Q3 of same FY pair", date(2026, time.March, 31), date(2025, time.October, 1), date(2025, time.December, 31), "Q3 2025-26"},
		{"april resolves to Q4 of prior FY", date(2025, time.April, 1), date(2025, time.January, 1), date(2025, time.March, 31), "Q4 2024-25"},
		{"may resolves to Q4 of prior FY", date(2025, time.May, 20), date(2025, time.January, 1), date(2025, time.March, 31), "Q4 2024-25"},
		{"june resolves to Q4 of prior FY", date(2025, time.June, 30), date(2025, time.January, 1), date(2025, time.March, 31), "Q4 2024-25"},
		{"july resolves to Q1", date(2025, time.July, 1), date(2025, time.April, 1), date(2025, time.June, 30), "Q1 2025-26"},
		{"august resolves to Q1", date(2025, time.August, 15), date(2025, time.April, 1), date(2025, time.June, 30), "Q1 2025-26"},
		{"september resolves to Q1", date(2025, time.September, 30), date(2025, time.April, 1), date(2025, time.June, 30), "Q1 2025-26"},
		{"october resolves to Q2", date(2025, time.October, 1), date(2025, time.July, 1), date(2025, time.September, 30), "Q2 2025-26"},
		{"november resolves to Q2", date(2025, time.November, 11), date(2025, time.July, 1), date(2025, time.September, 30), "Q2 2025-26"},
		{"december resolves to Q2", date(2025, time.December, 31), date(2025, time.July, 1), date(2025, time.September, 30), "Q2 2025-26"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fiscal.PreviousQuarter(tt.today)
			assert.Equal(t, tt.from, p.From)
			assert.Equal(t, tt.to, p.To)
			assert.Equal(t, tt.label, p.Label)
		})
	}
}

// The previous quarter must end exactly one day before the first day of the
// financial quarter containing today, for every month of the year.
func TestPreviousQuarter_ContiguousWithCurrent(t *testing.T) {
	quarterStartMonth := map[time.Month]time.Month{
		time.January: time.January, time.February: time.January, time.March: time.January,
		time.April: time.April, time.May: time.April, time.June: time.April,
		time.July: time.July, time.August: time.July, time.September: time.July,
		time.October: time.October, time.November: time.October, time.December: time.October,
	}

	for m := time.January; m <= time.December; m++ {
		today := date(2025, m, 14)
		p := fiscal.PreviousQuarter(today)

		currentStart := date(2025, quarterStartMonth[m], 1)
		assert.Equal(t, currentStart.AddDate(0, 0, -1), p.To, "month %s", m)
		assert.Equal(t, p.To.AddDate(0, -3, 0).AddDate(0, 0, 1), p.From, "month %s", m)
	}
}

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		from  time.Time
		to    time.Time
		label string
	}{
		{"mid month", date(2025, time.August, 30), date(2025, time.July, 1), date(2025, time.July, 31), "July 2025"},
		{"january wraps to december", date(2025, time.January, 5), date(2024, time.December, 1), date(2024, time.December, 31), "December 2024"},
		{"march after leap february", date(2024, time.March, 10), date(2024, time.February, 1), date(2024, time.February, 29), "February 2024"},
		{"march after non-leap february", date(2025, time.March, 10), date(2025, time.February, 1), date(2025, time.February, 28), "February 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fiscal.PreviousMonth(tt.today)
			assert.Equal(t, tt.from, p.From)
			assert.Equal(t, tt.to, p.To)
			assert.Equal(t, tt.label, p.Label)
		})
	}
}

// A caller in a timezone west of UTC must not see the range shift by a day.
func TestPreviousMonth_TimezoneImmune(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	// 2025-08-31 23:00 in UTC-8 is already 2025-09-01 in UTC.
	today := time.Date(2025, time.August, 31, 23, 0, 0, 0, loc)

	p := fiscal.PreviousMonth(today)
	assert.Equal(t, date(2025, time.August, 1), p.From)
	assert.Equal(t, date(2025, time.August, 31), p.To)
	assert.Equal(t, "August 2025", p.Label)
}

func TestCustom(t *testing.T) {
	from := date(2025, time.April, 1)
	to := date(2025, time.June, 30)

	p, err := fiscal.Custom(from, to, "Special Settlement")
	require.NoError(t, err)
	assert.Equal(t, from, p.From)
	assert.Equal(t, to, p.To)
	assert.Equal(t, "Special Settlement", p.Label)

	_, err = fiscal.Custom(to, from, "Backwards")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = fiscal.Custom(from, to, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Single-day period is allowed.
	_, err = fiscal.Custom(from, from, "One Day")
	assert.NoError(t, err)
}
