// Package numwords renders whole-rupee amounts as English words using the
// Indian grouping convention (crore, lakh, thousand). The caller adds any
// currency wording around the result.
package numwords

import (
	"strings"

	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
)

// MaxAmount is the largest convertible amount: the crore group is capped at
// three digits, so anything at or above 1000 crore is rejected.
const MaxAmount int64 = 9_999_999_999

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// The Indian groups are irregular relative to uniform base-1000 grouping:
// each divisor is consumed greedily before the next-smaller one.
var groups = []struct {
	divisor int64
	name    string
}{
	{10_000_000, "Crore"},
	{100_000, "Lakh"},
	{1_000, "Thousand"},
}

// ToWords converts a non-negative whole amount to words, e.g.
// 1234567 -> "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven".
// Zero converts to "Zero". Negative amounts and amounts above MaxAmount
// are rejected.
func ToWords(amount int64) (string, error) {
	if amount < 0 {
		return "", apperrors.NewValidationError("amount must not be negative")
	}
	if amount > MaxAmount {
		return "", apperrors.NewValidationError("amount exceeds 999 crore")
	}
	if amount == 0 {
		return "Zero", nil
	}

	var parts []string
	n := amount
	for _, g := range groups {
		if n >= g.divisor {
			parts = append(parts, underThousand(n/g.divisor), g.name)
			n %= g.divisor
		}
	}
	if n > 0 {
		parts = append(parts, underThousand(n))
	}

	// strings.Fields collapses the double spaces left by empty sub-parts.
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " "), nil
}

// underThousand expands 0-999 with a hundreds prefix and the 0-99 tables.
func underThousand(n int64) string {
	var sb strings.Builder
	if n >= 100 {
		sb.WriteString(ones[n/100])
		sb.WriteString(" Hundred ")
		n %= 100
	}
	if n >= 20 {
		sb.WriteString(tens[n/10])
		sb.WriteString(" ")
		n %= 10
	}
	if n > 0 {
		sb.WriteString(ones[n])
	}
	return strings.TrimSpace(sb.String())
}
