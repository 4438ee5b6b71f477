package pdf_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	"github.com/kambeshwar/creditnote_backend/internal/pdf"
	"github.com/kambeshwar/creditnote_backend/internal/utils/numwords"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	t := time.Date(2025, time.July, 15, 10, 30, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func renderableNote() domain.CreditNote {
	return domain.CreditNote{
		NoteID:    "5f1c9e9a-0000-4000-8000-000000000001",
		Number:    "KA-EN-CN124",
		IssueDate: time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC),
		Party: domain.PartySnapshot{
			Name:     "Sunrise Distributors",
			Address1: "Plot 14, Industrial Estate",
			Address2: "Corlim",
			City:     "Panaji",
			Email:    "accounts@sunrise.example",
		},
		Period: domain.ReportingPeriod{
			From:  time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			To:    time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
			Label: "Q1 2025-26",
		},
		Purpose: "Quarterly Sales Incentive on net sales for the period",
		Breakdown: domain.MonetaryBreakdown{
			BaseAmount:   decimal.NewFromInt(250000),
			Percentage:   decimal.NewFromFloat(2.5),
			CreditAmount: decimal.NewFromInt(6250),
			RoundOff:     decimal.Zero,
			FinalAmount:  6250,
		},
		Status: domain.NoteIssued,
	}
}

func TestRenderer_Render_ProducesPDF(t *testing.T) {
	r := pdf.NewRenderer(pdf.NewWatermarkCache(""), pdf.WithClock(fixedClock()))

	out, err := r.Render(context.Background(), renderableNote(), domain.DefaultCompanyProfile(), domain.VariantParty)

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output must start with the PDF magic")
}

func TestRenderer_Render_Deterministic(t *testing.T) {
	r := pdf.NewRenderer(pdf.NewWatermarkCache(""), pdf.WithClock(fixedClock()))
	note := renderableNote()
	profile := domain.DefaultCompanyProfile()

	first, err := r.Render(context.Background(), note, profile, domain.VariantPrint)
	require.NoError(t, err)
	second, err := r.Render(context.Background(), note, profile, domain.VariantPrint)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same note and clock must render byte-identical documents")
}

func TestRenderer_Render_VariantsDiffer(t *testing.T) {
	r := pdf.NewRenderer(pdf.NewWatermarkCache(""), pdf.WithClock(fixedClock()))
	note := renderableNote()
	profile := domain.DefaultCompanyProfile()

	partyCopy, err := r.Render(context.Background(), note, profile, domain.VariantParty)
	require.NoError(t, err)
	printCopy, err := r.Render(context.Background(), note, profile, domain.VariantPrint)
	require.NoError(t, err)

	// The party copy carries the digital-copy annotation, the print copy
	// does not. Everything else on the page is identical.
	assert.NotEqual(t, partyCopy, printCopy)
}

func TestRenderer_Render_RejectsInvalidNote(t *testing.T) {
	r := pdf.NewRenderer(pdf.NewWatermarkCache(""), pdf.WithClock(fixedClock()))
	note := renderableNote()
	note.Purpose = ""

	out, err := r.Render(context.Background(), note, domain.DefaultCompanyProfile(), domain.VariantParty)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestRenderer_Render_RejectsAmountBeyondWordsLimit(t *testing.T) {
	r := pdf.NewRenderer(pdf.NewWatermarkCache(""), pdf.WithClock(fixedClock()))
	note := renderableNote()
	// One rupee past the 999-crore limit of the amount-in-words line.
	note.Breakdown.FinalAmount = numwords.MaxAmount + 1

	out, err := r.Render(context.Background(), note, domain.DefaultCompanyProfile(), domain.VariantParty)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestRenderer_Render_LargeAmount(t *testing.T) {
	r := pdf.NewRenderer(pdf.NewWatermarkCache(""), pdf.WithClock(fixedClock()))
	note := renderableNote()
	note.Breakdown.BaseAmount = decimal.NewFromInt(98765432)
	note.Breakdown.CreditAmount = decimal.NewFromFloat(2469135.80)
	note.Breakdown.RoundOff = decimal.NewFromFloat(0.20)
	note.Breakdown.FinalAmount = 2469136

	out, err := r.Render(context.Background(), note, domain.DefaultCompanyProfile(), domain.VariantParty)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
