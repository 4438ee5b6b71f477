package utils_test

import (
	"testing"

	"github.com/kambeshwar/creditnote_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "Rs. 0.00"},
		{"999", "Rs. 999.00"},
		{"1000", "Rs. 1,000.00"},
		{"99999", "Rs. 99,999.00"},
		{"100000", "Rs. 1,00,000.00"},
		{"1234567.8", "Rs. 12,34,567.80"},
		{"10000000", "Rs. 1,00,00,000.00"},
		{"123456789.05", "Rs. 12,34,56,789.05"},
		{"-4321.5", "Rs. -4,321.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.FormatINR(decimal.RequireFromString(tt.in)), "input %s", tt.in)
	}
}

func TestFormatINRSigned(t *testing.T) {
	assert.Equal(t, "Rs. +0.01", utils.FormatINRSigned(decimal.RequireFromString("0.0127").Round(2)))
	assert.Equal(t, "Rs. +0.00", utils.FormatINRSigned(decimal.Zero))
	assert.Equal(t, "Rs. -0.10", utils.FormatINRSigned(decimal.RequireFromString("-0.1")))
}
