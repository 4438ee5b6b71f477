package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR formats an amount with Indian digit grouping and two decimal
// places, prefixed with the rupee marker used on documents.
// Example: 1234567.8 -> "Rs. 12,34,567.80"
func FormatINR(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	formatted := groupIndian(intPart) + "." + frac
	if neg {
		return "Rs. -" + formatted
	}
	return "Rs. " + formatted
}

// FormatINRSigned is FormatINR with an explicit plus sign on non-negative
// values. Used for the round-off line, where the sign is the information.
func FormatINRSigned(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return FormatINR(amount)
	}
	return "Rs. +" + strings.TrimPrefix(FormatINR(amount), "Rs. ")
}

// groupIndian inserts commas per the Indian convention: the last three
// digits form one group, every preceding pair forms another.
// "1234567" -> "12,34,567"
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	groups := []string{digits[len(digits)-3:]}
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",")
}
