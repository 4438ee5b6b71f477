package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/utils"
	"github.com/kambeshwar/creditnote_backend/internal/utils/numwords"
	"github.com/shopspring/decimal"
)

// A4 portrait layout constants, in millimetres.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	leftMargin   = 18.0
	topMargin    = 12.0
	contentWidth = pageWidth - 2*leftMargin
	centerX      = pageWidth / 2

	watermarkWidth   = 100.0
	watermarkOpacity = 0.08

	tableLabelWidth = 110.0
	tableRowHeight  = 10.0

	// The acknowledgment block never starts above this line even when the
	// body above it is short.
	footerFloorY = 240.0

	displayDateLayout = "02/01/2006"
)

var termsAndConditions = []string{
	"1. This Credit Note is non-refundable and cannot be exchanged for cash.",
	"2. The value can only be used for the adjustment of outstanding or future invoices.",
	"3. This Credit Note is issued exclusively to the party named herein and is non-transferable.",
	"4. Any discrepancies must be reported in writing within 7 business days of receipt.",
	"5. All disputes are subject to the exclusive jurisdiction of the courts in Goa.",
	"6. The issuer reserves the right to amend these terms at its sole discretion.",
}

// Renderer draws credit note documents with a fixed-cursor A4 layout.
// The same note always renders to byte-identical output because the only
// non-input value on the page, the generation timestamp, comes from the
// injected clock.
type Renderer struct {
	watermark *WatermarkCache
	now       func() time.Time
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithClock overrides the wall clock used for the generation timestamp.
func WithClock(now func() time.Time) RendererOption {
	return func(r *Renderer) { r.now = now }
}

func NewRenderer(watermark *WatermarkCache, opts ...RendererOption) *Renderer {
	r := &Renderer{watermark: watermark, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ portssvc.DocumentRenderer = (*Renderer)(nil)

// Render produces the single-page credit note document for the given variant.
func (r *Renderer) Render(ctx context.Context, note domain.CreditNote, profile domain.CompanyProfile, variant domain.RenderVariant) ([]byte, error) {
	if err := note.Validate(); err != nil {
		return nil, err
	}

	now := r.now()
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(now)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	r.drawWatermark(ctx, doc)

	y := r.drawMasthead(doc, profile)
	y = r.drawTitle(doc, y)
	y = r.drawInfoBlock(doc, note, y)
	y = r.drawPurpose(doc, note, y)
	y = r.drawCalculationTable(doc, note, y)
	y = r.drawTotals(doc, note, y)
	y = r.drawTerms(doc, y)
	r.drawAcknowledgment(doc, profile, variant, y)
	r.drawFooter(doc, now)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write document for %s: %w", note.Number, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawWatermark(ctx context.Context, doc *fpdf.Fpdf) {
	wm := r.watermark.Image(ctx)
	if wm == nil {
		return
	}

	height := float64(wm.Height) * watermarkWidth / float64(wm.Width)
	x := (pageWidth - watermarkWidth) / 2
	y := (pageHeight - height) / 2

	doc.RegisterImageOptionsReader("watermark", fpdf.ImageOptions{ImageType: wm.ImageType}, bytes.NewReader(wm.Data))
	doc.SetAlpha(watermarkOpacity, "Normal")
	doc.ImageOptions("watermark", x, y, watermarkWidth, height, false, fpdf.ImageOptions{ImageType: wm.ImageType}, 0, "")
	doc.SetAlpha(1, "Normal")
}

func textCentered(doc *fpdf.Fpdf, y float64, s string) {
	doc.Text(centerX-doc.GetStringWidth(s)/2, y, s)
}

func textRight(doc *fpdf.Fpdf, y float64, s string) {
	doc.Text(leftMargin+contentWidth-doc.GetStringWidth(s), y, s)
}

func (r *Renderer) drawMasthead(doc *fpdf.Fpdf, profile domain.CompanyProfile) float64 {
	y := topMargin

	doc.SetFont("Times", "B", 24)
	textCentered(doc, y+6, strings.ToUpper(profile.Name))
	y += 8
	doc.SetLineWidth(0.25)
	doc.Line(leftMargin, y, leftMargin+contentWidth, y)
	y += 5

	doc.SetFont("Times", "", 10)
	for _, line := range []string{profile.AddressLine1, profile.AddressLine2, profile.ContactInfo} {
		if line == "" {
			continue
		}
		textCentered(doc, y, line)
		y += 4
	}
	y += 1
	textCentered(doc, y, fmt.Sprintf("GSTIN: %s | UDYAM: %s | State Code: %s", profile.GSTIN, profile.UDYAM, profile.StateCode))
	y += 4
	doc.Line(leftMargin, y, leftMargin+contentWidth, y)
	return y + 6
}

func (r *Renderer) drawTitle(doc *fpdf.Fpdf, y float64) float64 {
	doc.SetLineWidth(0.5)
	doc.Line(leftMargin, y, leftMargin+contentWidth, y)
	y += 10
	doc.SetFont("Times", "B", 20)
	textCentered(doc, y, "CREDIT NOTE")
	y += 8
	doc.Line(leftMargin, y, leftMargin+contentWidth, y)
	return y + 8
}

// drawInfoBlock renders the recipient column and the document detail column,
// separated by a vertical rule.
func (r *Renderer) drawInfoBlock(doc *fpdf.Fpdf, note domain.CreditNote, y float64) float64 {
	startY := y
	detailsX := leftMargin + 105
	ruleX := leftMargin + 99
	valueX := detailsX + 32

	doc.SetFontSize(10)

	doc.SetFont("Times", "B", 10)
	doc.Text(leftMargin, y, "BILL TO:")
	doc.SetFont("Times", "", 10)
	doc.Text(leftMargin, y+5, "M/s. "+note.Party.Name)
	doc.Text(leftMargin, y+10, note.Party.Address1)
	doc.Text(leftMargin, y+15, note.Party.Address2)
	doc.Text(leftMargin, y+20, note.Party.City)

	details := []struct {
		label, value string
	}{
		{"Credit Note No.:", note.Number},
		{"Date:", note.IssueDate.Format(displayDateLayout)},
		{"Scheme Period:", note.Period.From.Format(displayDateLayout) + " to " + note.Period.To.Format(displayDateLayout)},
		{"Month:", note.Period.Label},
	}
	for i, d := range details {
		doc.SetFont("Times", "B", 10)
		doc.Text(detailsX, y+float64(i*5), d.label)
		doc.SetFont("Times", "", 10)
		doc.Text(valueX, y+float64(i*5), d.value)
	}

	y += 25
	doc.SetLineWidth(0.25)
	doc.Line(ruleX, startY-2, ruleX, y-2)
	return y + 8
}

func (r *Renderer) drawPurpose(doc *fpdf.Fpdf, note domain.CreditNote, y float64) float64 {
	doc.SetFont("Times", "B", 12)
	doc.Text(leftMargin, y, "PURPOSE:")
	y += 2

	doc.SetFont("Times", "", 10)
	doc.SetXY(leftMargin, y)
	doc.MultiCell(contentWidth, 4, note.Purpose, "", "L", false)
	return doc.GetY() + 6
}

func (r *Renderer) drawCalculationTable(doc *fpdf.Fpdf, note domain.CreditNote, y float64) float64 {
	doc.SetFont("Times", "B", 12)
	doc.Text(leftMargin, y, "CALCULATION DETAILS:")
	y += 3

	b := note.Breakdown
	rows := []struct {
		label, value string
	}{
		{"Net Sales Amount (Excluding GST)", utils.FormatINR(b.BaseAmount)},
		{fmt.Sprintf("Credit Note @ %s%% on Net Sales Amount", b.Percentage.String()), utils.FormatINR(b.CreditAmount)},
		{"Round Off", utils.FormatINRSigned(b.RoundOff)},
		{"Final Credit Note Amount", utils.FormatINR(decimal.NewFromInt(b.FinalAmount))},
	}

	doc.SetLineWidth(0.2)
	doc.SetCellMargin(4)
	for i, row := range rows {
		last := i == len(rows)-1
		if last {
			doc.SetFont("Times", "B", 10)
			doc.SetFillColor(224, 224, 224)
		} else {
			doc.SetFont("Times", "", 10)
			doc.SetFillColor(255, 255, 255)
		}
		doc.SetXY(leftMargin, y)
		doc.CellFormat(tableLabelWidth, tableRowHeight, row.label, "1", 0, "L", last, 0, "")
		doc.CellFormat(contentWidth-tableLabelWidth, tableRowHeight, row.value, "1", 0, "R", last, 0, "")
		y += tableRowHeight
	}
	doc.SetCellMargin(0)
	return y + 8
}

func (r *Renderer) drawTotals(doc *fpdf.Fpdf, note domain.CreditNote, y float64) float64 {
	final := decimal.NewFromInt(note.Breakdown.FinalAmount)

	doc.SetFont("Times", "B", 12)
	doc.Text(leftMargin, y, "TOTAL CREDIT NOTE AMOUNT: "+utils.FormatINR(final))
	y += 8

	doc.Text(leftMargin, y, "AMOUNT IN WORDS:")
	y += 5

	words, err := numwords.ToWords(note.Breakdown.FinalAmount)
	if err != nil {
		// Amount exceeded the supported range; the note would have failed
		// validation upstream, but never leave the line blank.
		words = "Amount Out Of Range"
	}
	doc.SetFont("Times", "", 10)
	doc.SetXY(leftMargin, y-3)
	doc.MultiCell(contentWidth, 4, "Rupees "+words+" Only", "", "L", false)
	return doc.GetY() + 7
}

func (r *Renderer) drawTerms(doc *fpdf.Fpdf, y float64) float64 {
	doc.SetFont("Times", "B", 12)
	doc.Text(leftMargin, y, "TERMS & CONDITIONS:")
	y += 5

	doc.SetFont("Times", "", 9)
	for _, term := range termsAndConditions {
		doc.Text(leftMargin, y, term)
		y += 4
	}
	if y < footerFloorY {
		y = footerFloorY
	}
	return y
}

func (r *Renderer) drawAcknowledgment(doc *fpdf.Fpdf, profile domain.CompanyProfile, variant domain.RenderVariant, y float64) {
	doc.SetFont("Times", "", 9)
	doc.Text(leftMargin, y, "Customer Acknowledgment:")
	textRight(doc, y, "For "+strings.ToUpper(profile.Name)+":")
	y += 20
	doc.Text(leftMargin, y, "Date: ___________________")

	if variant == domain.VariantParty {
		doc.SetFont("Times", "I", 9)
		textRight(doc, y, "Digital Copy. Signature not required.")
	}
}

func (r *Renderer) drawFooter(doc *fpdf.Fpdf, now time.Time) {
	footerY := pageHeight - 10
	doc.SetLineWidth(0.25)
	doc.Line(leftMargin, footerY-4, leftMargin+contentWidth, footerY-4)
	doc.SetFont("Times", "", 8)
	textCentered(doc, footerY, "This is a computer generated document. Generated on "+now.Format("02/01/2006, 15:04:05"))
}
