package dispatch

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// maxResponseBytes caps the webhook response read.
const maxResponseBytes = 1 << 20

// noteData is the record shape the archival endpoint expects. Field names
// are part of its contract; do not rename.
type noteData struct {
	CNNumber      string          `json:"cn_number"`
	Date          string          `json:"date"`
	PartyName     string          `json:"party_name"`
	PartyAddress1 string          `json:"party_address1"`
	PartyAddress2 string          `json:"party_address2"`
	PartyCity     string          `json:"party_city"`
	PartyEmail    string          `json:"party_email"`
	PeriodFrom    string          `json:"period_from"`
	PeriodTo      string          `json:"period_to"`
	Month         string          `json:"month"`
	Purpose       string          `json:"purpose"`
	NetSales      decimal.Decimal `json:"net_sales"`
	CNPercentage  decimal.Decimal `json:"cn_percentage"`
	CreditAmount  decimal.Decimal `json:"credit_amount"`
	RoundOff      decimal.Decimal `json:"round_off"`
	FinalAmount   int64           `json:"final_amount"`
}

type processRequest struct {
	Action           string   `json:"action"`
	CNData           noteData `json:"cnData"`
	PartyPDFBase64   string   `json:"partyPdfBase64"`
	PrinterPDFBase64 string   `json:"printerPdfBase64"`
}

type resendRequest struct {
	Action    string   `json:"action"`
	CNData    noteData `json:"cnData"`
	Recipient string   `json:"recipient"`
}

// scriptResponse carries the endpoint's verdict. Success is a pointer so a
// body that omits the flag is distinguishable from an explicit false; only
// an explicit false counts as a rejection.
type scriptResponse struct {
	Success     *bool  `json:"success"`
	Message     string `json:"message"`
	ErrorDetail string `json:"errorDetail"`
}

const displayDateLayout = "02/01/2006"

func toNoteData(note domain.CreditNote) noteData {
	return noteData{
		CNNumber:      note.Number,
		Date:          note.IssueDate.Format(displayDateLayout),
		PartyName:     note.Party.Name,
		PartyAddress1: note.Party.Address1,
		PartyAddress2: note.Party.Address2,
		PartyCity:     note.Party.City,
		PartyEmail:    note.Party.Email,
		PeriodFrom:    note.Period.From.Format(displayDateLayout),
		PeriodTo:      note.Period.To.Format(displayDateLayout),
		Month:         note.Period.Label,
		Purpose:       note.Purpose,
		NetSales:      note.Breakdown.BaseAmount,
		CNPercentage:  note.Breakdown.Percentage,
		CreditAmount:  note.Breakdown.CreditAmount,
		RoundOff:      note.Breakdown.RoundOff,
		FinalAmount:   note.Breakdown.FinalAmount,
	}
}

// ScriptDispatcher POSTs the finished record and both rendered copies to the
// archival/mailing webhook. The endpoint archives the PDFs and emails them;
// its JSON body carries the success flag regardless of HTTP status.
type ScriptDispatcher struct {
	url    string
	client *http.Client
}

func NewScriptDispatcher(url string, timeout time.Duration) *ScriptDispatcher {
	return &ScriptDispatcher{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

var _ portssvc.CreditNoteDispatcher = (*ScriptDispatcher)(nil)

func (d *ScriptDispatcher) Dispatch(ctx context.Context, note domain.CreditNote, partyPDF, printPDF []byte) error {
	payload := processRequest{
		Action:           "processCN",
		CNData:           toNoteData(note),
		PartyPDFBase64:   base64.StdEncoding.EncodeToString(partyPDF),
		PrinterPDFBase64: base64.StdEncoding.EncodeToString(printPDF),
	}
	if err := d.post(ctx, payload, note.Number); err != nil {
		return err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Credit note dispatched",
		slog.String("number", note.Number),
		slog.String("party", note.Party.Name))
	return nil
}

func (d *ScriptDispatcher) Resend(ctx context.Context, note domain.CreditNote, recipient domain.ResendRecipient) error {
	payload := resendRequest{
		Action:    "resendCN",
		CNData:    toNoteData(note),
		Recipient: string(recipient),
	}
	if err := d.post(ctx, payload, note.Number); err != nil {
		return err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Credit note resent",
		slog.String("number", note.Number),
		slog.String("recipient", string(recipient)))
	return nil
}

// post sends one JSON payload to the webhook and interprets its reply. A
// non-2xx status or an explicit success:false in the body is a failure;
// anything else, including a body with no success flag, is accepted.
func (d *ScriptDispatcher) post(ctx context.Context, payload any, number string) error {
	if d.url == "" {
		return fmt.Errorf("no dispatch endpoint configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build dispatch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("dispatch request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read dispatch response: %w", err)
	}

	var sr scriptResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return fmt.Errorf("dispatch endpoint returned status %d with a non-JSON body", resp.StatusCode)
	}

	statusOK := resp.StatusCode >= 200 && resp.StatusCode <= 299
	if !statusOK || (sr.Success != nil && !*sr.Success) {
		msg := sr.Message
		if msg == "" {
			msg = "an unknown error occurred"
		}
		if sr.ErrorDetail != "" {
			msg += ": " + sr.ErrorDetail
		}
		return fmt.Errorf("dispatch rejected for %s: %s", number, msg)
	}
	return nil
}
