package accounting

import (
	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeBreakdown derives the monetary figures of a credit note from the
// net sales base and the credit percentage.
//
// The credit amount is base * percentage / 100 at full decimal precision.
// The final instrument amount is the credit amount rounded half away from
// zero to the nearest whole rupee; the round-off is the signed difference,
// so CreditAmount + RoundOff equals FinalAmount exactly by construction.
func ComputeBreakdown(baseAmount, percentage decimal.Decimal) (domain.MonetaryBreakdown, error) {
	if baseAmount.IsNegative() {
		return domain.MonetaryBreakdown{}, apperrors.NewValidationError("base amount must not be negative")
	}
	if percentage.IsNegative() {
		return domain.MonetaryBreakdown{}, apperrors.NewValidationError("percentage must not be negative")
	}

	// Shift(-2) divides by 100 exactly; Div would round at a fixed precision.
	credit := baseAmount.Mul(percentage).Shift(-2)
	final := credit.Round(0) // Round is half away from zero
	roundOff := final.Sub(credit)

	return domain.MonetaryBreakdown{
		BaseAmount:   baseAmount,
		Percentage:   percentage,
		CreditAmount: credit,
		RoundOff:     roundOff,
		FinalAmount:  final.IntPart(),
	}, nil
}
