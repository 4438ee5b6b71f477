package numwords_test

import (
	"testing"

	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	"github.com/kambeshwar/creditnote_backend/internal/utils/numwords"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWords(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Zero"},
		{1, "One"},
		{13, "Thirteen"},
		{20, "Twenty"},
		{21, "Twenty One"},
		{99, "Ninety Nine"},
		{100, "One Hundred"},
		{101, "One Hundred One"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{1001, "One Thousand One"},
		{10000, "Ten Thousand"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{100000, "One Lakh"},
		{100001, "One Lakh One"},
		{1234567, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven"},
		{9999999, "Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{10000000, "One Crore"},
		{10000001, "One Crore One"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
		{123456789, "Twelve Crore Thirty Four Lakh Fifty Six Thousand Seven Hundred Eighty Nine"},
		{9999999999, "Nine Hundred Ninety Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{10000100, "One Crore One Hundred"},
		{4321, "Four Thousand Three Hundred Twenty One"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := numwords.ToWords(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToWords_Bounds(t *testing.T) {
	_, err := numwords.ToWords(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = numwords.ToWords(numwords.MaxAmount + 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = numwords.ToWords(numwords.MaxAmount)
	assert.NoError(t, err)
}
