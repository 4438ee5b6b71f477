package accounting_test

import (
	"fmt"
	"testing"

	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	"github.com/kambeshwar/creditnote_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBreakdown(t *testing.T) {
	tests := []struct {
		base       string
		percentage string
		credit     string
		roundOff   string
		final      int64
	}{
		{"500000", "2", "10000", "0", 10000},
		{"123456.78", "3.5", "4320.9873", "0.0127", 4321},
		{"100000", "2.5", "2500", "0", 2500},
		{"33333", "1.5", "499.995", "0.005", 500},
		{"100", "0.25", "0.25", "-0.25", 0},
		{"10020", "0.5", "50.1", "-0.1", 50}, // rounds down, negative round-off
		{"100", "0.5", "0.5", "0.5", 1},      // exact half rounds away from zero
		{"0", "2", "0", "0", 0},
		{"500000", "0", "0", "0", 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s@%s%%", tt.base, tt.percentage), func(t *testing.T) {
			b, err := accounting.ComputeBreakdown(decimal.RequireFromString(tt.base), decimal.RequireFromString(tt.percentage))
			require.NoError(t, err)

			assert.True(t, b.CreditAmount.Equal(decimal.RequireFromString(tt.credit)), "credit: got %s", b.CreditAmount)
			assert.True(t, b.RoundOff.Equal(decimal.RequireFromString(tt.roundOff)), "roundOff: got %s", b.RoundOff)
			assert.Equal(t, tt.final, b.FinalAmount)

			// The defining invariant: credit + roundOff == final, exactly.
			sum := b.CreditAmount.Add(b.RoundOff)
			assert.True(t, sum.Equal(decimal.NewFromInt(b.FinalAmount)), "credit+roundOff: got %s", sum)
		})
	}
}

func TestComputeBreakdown_RejectsNegativeInput(t *testing.T) {
	_, err := accounting.ComputeBreakdown(decimal.NewFromInt(-1), decimal.NewFromInt(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = accounting.ComputeBreakdown(decimal.NewFromInt(1000), decimal.NewFromFloat(-0.5))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
