package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
	"github.com/kambeshwar/creditnote_backend/internal/middleware"
	"github.com/kambeshwar/creditnote_backend/internal/utils/accounting"
	"github.com/kambeshwar/creditnote_backend/internal/utils/fiscal"
)

const issueDateLayout = "2006-01-02"

// CreditNoteService runs the issuing workflow: resolve the period, compute
// the breakdown, reserve a number, render both copies, dispatch, persist.
type CreditNoteService struct {
	partyRepo      portsrepo.PartyRepositoryFacade
	creditNoteRepo portsrepo.CreditNoteRepositoryFacade
	settings       portssvc.SettingsSvcFacade
	sequence       portssvc.SequenceSvcFacade
	renderer       portssvc.DocumentRenderer
	dispatcher     portssvc.CreditNoteDispatcher
	audit          portssvc.AuditSvcFacade
}

func NewCreditNoteService(
	partyRepo portsrepo.PartyRepositoryFacade,
	creditNoteRepo portsrepo.CreditNoteRepositoryFacade,
	settings portssvc.SettingsSvcFacade,
	sequence portssvc.SequenceSvcFacade,
	renderer portssvc.DocumentRenderer,
	dispatcher portssvc.CreditNoteDispatcher,
	audit portssvc.AuditSvcFacade,
) *CreditNoteService {
	return &CreditNoteService{
		partyRepo:      partyRepo,
		creditNoteRepo: creditNoteRepo,
		settings:       settings,
		sequence:       sequence,
		renderer:       renderer,
		dispatcher:     dispatcher,
		audit:          audit,
	}
}

var _ portssvc.CreditNoteSvcFacade = (*CreditNoteService)(nil)

// resolvePeriod derives the reporting period from the request and issue date.
func resolvePeriod(req dto.IssueCreditNoteRequest, issueDate time.Time) (domain.ReportingPeriod, error) {
	switch domain.PeriodMode(req.PeriodMode) {
	case domain.PeriodQuarter:
		return fiscal.PreviousQuarter(issueDate), nil
	case domain.PeriodMonth:
		return fiscal.PreviousMonth(issueDate), nil
	case domain.PeriodCustom:
		from, err := time.ParseInLocation(issueDateLayout, req.PeriodFrom, time.UTC)
		if err != nil {
			return domain.ReportingPeriod{}, apperrors.NewValidationError("invalid periodFrom date")
		}
		to, err := time.ParseInLocation(issueDateLayout, req.PeriodTo, time.UTC)
		if err != nil {
			return domain.ReportingPeriod{}, apperrors.NewValidationError("invalid periodTo date")
		}
		return fiscal.Custom(from, to, req.PeriodLabel)
	default:
		return domain.ReportingPeriod{}, apperrors.NewValidationError("unknown period mode: " + req.PeriodMode)
	}
}

// buildNote assembles and validates the unsaved note from the request. The
// sequence value is the only input that is not a pure function of the request.
func (s *CreditNoteService) buildNote(ctx context.Context, req dto.IssueCreditNoteRequest, number string, issuerUserID string) (*domain.CreditNote, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, req.PartyID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve party for credit note: %w", err)
	}

	issueDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.IssueDate != "" {
		issueDate, err = time.ParseInLocation(issueDateLayout, req.IssueDate, time.UTC)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid issue date")
		}
	}

	period, err := resolvePeriod(req, issueDate)
	if err != nil {
		return nil, err
	}

	if !req.BaseAmount.IsPositive() {
		return nil, apperrors.NewValidationError("base amount must be greater than zero")
	}
	if !req.Percentage.IsPositive() {
		return nil, apperrors.NewValidationError("percentage must be greater than zero")
	}

	breakdown, err := accounting.ComputeBreakdown(req.BaseAmount, req.Percentage)
	if err != nil {
		return nil, err
	}

	email := party.Email
	if req.PartyEmail != "" {
		email = req.PartyEmail
	}

	now := time.Now()
	note := domain.CreditNote{
		NoteID:    uuid.NewString(),
		Number:    number,
		IssueDate: issueDate,
		Party: domain.PartySnapshot{
			Name:           party.Name,
			Address1:       party.Address1,
			Address2:       joinAddress(party.Address2, party.Address3),
			City:           party.City,
			Email:          email,
			WhatsappNumber: party.WhatsappNumber,
		},
		Period:    period,
		Purpose:   req.Purpose,
		Breakdown: breakdown,
		Status:    domain.NoteIssued,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     issuerUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: issuerUserID,
		},
	}

	if err := note.Validate(); err != nil {
		return nil, err
	}
	return &note, nil
}

func joinAddress(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + ", " + b
}

// IssueCreditNote runs the full pipeline. The sequence value is consumed
// before rendering: if anything after the reservation fails, that number is
// a permanent gap and the failure is recorded against it.
func (s *CreditNoteService) IssueCreditNote(ctx context.Context, req dto.IssueCreditNoteRequest, issuerUserID string) (*dto.IssueCreditNoteResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profile, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	// Validate everything we can before spending a sequence value.
	if _, err := s.buildNote(ctx, req, profile.NotePrefix+"0", issuerUserID); err != nil {
		return nil, err
	}

	seq, err := s.sequence.ReserveNext(ctx)
	if err != nil {
		return nil, err
	}

	number := profile.NotePrefix + strconv.FormatInt(seq, 10)
	note, err := s.buildNote(ctx, req, number, issuerUserID)
	if err != nil {
		// Number already consumed; record the gap.
		s.audit.Record(ctx, domain.AuditDispatchFailed, "Number "+number+" consumed but note invalid: "+err.Error(), time.Now())
		return nil, err
	}

	// Persist the updated party email before dispatch so the mailer sees it.
	if req.PartyEmail != "" {
		if err := s.partyRepo.UpdatePartyEmail(ctx, req.PartyID, req.PartyEmail, issuerUserID); err != nil {
			logger.Warn("Failed to persist updated party email", slog.String("party_id", req.PartyID), slog.String("error", err.Error()))
		}
	}

	partyPDF, err := s.renderer.Render(ctx, *note, profile, domain.VariantParty)
	if err != nil {
		s.recordGap(ctx, *note, "render (party copy) failed: "+err.Error())
		return nil, fmt.Errorf("failed to render party copy: %w", err)
	}
	printPDF, err := s.renderer.Render(ctx, *note, profile, domain.VariantPrint)
	if err != nil {
		s.recordGap(ctx, *note, "render (print copy) failed: "+err.Error())
		return nil, fmt.Errorf("failed to render print copy: %w", err)
	}

	if err := s.dispatcher.Dispatch(ctx, *note, partyPDF, printPDF); err != nil {
		s.recordGap(ctx, *note, "dispatch failed: "+err.Error())
		return nil, fmt.Errorf("failed to dispatch credit note %s: %w", note.Number, err)
	}

	if err := s.creditNoteRepo.SaveCreditNote(ctx, *note); err != nil {
		return nil, fmt.Errorf("failed to persist credit note %s: %w", note.Number, err)
	}

	logger.Info("Credit note issued",
		slog.String("number", note.Number),
		slog.String("party", note.Party.Name),
		slog.Int64("final_amount", note.Breakdown.FinalAmount))
	s.audit.Record(ctx, domain.AuditCreateCN,
		fmt.Sprintf("Issued %s to %s for Rs. %d", note.Number, note.Party.Name, note.Breakdown.FinalAmount), time.Now())

	resp := &dto.IssueCreditNoteResponse{
		Note:           dto.ToCreditNoteResponse(note),
		PartyPDFBase64: base64.StdEncoding.EncodeToString(partyPDF),
		PrintPDFBase64: base64.StdEncoding.EncodeToString(printPDF),
	}
	return resp, nil
}

// ResendCreditNote asks the dispatch endpoint to re-deliver an issued note
// from its archive. No sequence value is spent and no PDF is re-rendered.
func (s *CreditNoteService) ResendCreditNote(ctx context.Context, number string, recipient domain.ResendRecipient) error {
	if recipient != domain.ResendToParty && recipient != domain.ResendToHeadOffice {
		return apperrors.NewValidationError("recipient must be 'party' or 'ho'")
	}

	note, err := s.creditNoteRepo.FindCreditNoteByNumber(ctx, number)
	if err != nil {
		return err
	}
	if note.Status != domain.NoteIssued {
		return apperrors.NewValidationError("credit note " + number + " was never dispatched; nothing to resend")
	}

	if err := s.dispatcher.Resend(ctx, *note, recipient); err != nil {
		return fmt.Errorf("failed to resend credit note %s: %w", number, err)
	}

	action := domain.AuditResendCNHO
	detail := fmt.Sprintf("Credit Note %s re-sent to Head Office.", note.Number)
	if recipient == domain.ResendToParty {
		action = domain.AuditResendCNParty
		detail = fmt.Sprintf("Credit Note %s re-sent to party (%s).", note.Number, note.Party.Name)
	}
	s.audit.Record(ctx, action, detail, time.Now())

	middleware.GetLoggerFromCtx(ctx).Info("Credit note resent",
		slog.String("number", note.Number),
		slog.String("recipient", string(recipient)))
	return nil
}

// recordGap saves the failed note so the consumed number stays visible,
// and writes the audit trail entry for it.
func (s *CreditNoteService) recordGap(ctx context.Context, note domain.CreditNote, reason string) {
	note.Status = domain.NoteDispatchFailed
	if err := s.creditNoteRepo.SaveCreditNote(ctx, note); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to persist dispatch-failed note",
			slog.String("number", note.Number),
			slog.String("error", err.Error()))
	}
	s.audit.Record(ctx, domain.AuditDispatchFailed, note.Number+": "+reason, time.Now())
}

// PreviewCreditNote renders the party copy with the advisory next number.
// Nothing is reserved or persisted; a concurrent issue can take the number.
func (s *CreditNoteService) PreviewCreditNote(ctx context.Context, req dto.IssueCreditNoteRequest) (*dto.PreviewCreditNoteResponse, error) {
	profile, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.sequence.CurrentValue(ctx)
	if err != nil {
		return nil, err
	}
	number := profile.NotePrefix + strconv.FormatInt(current+1, 10)

	note, err := s.buildNote(ctx, req, number, "preview")
	if err != nil {
		return nil, err
	}

	pdf, err := s.renderer.Render(ctx, *note, profile, domain.VariantParty)
	if err != nil {
		return nil, fmt.Errorf("failed to render preview: %w", err)
	}

	return &dto.PreviewCreditNoteResponse{
		Number:    number,
		Advisory:  true,
		PDFBase64: base64.StdEncoding.EncodeToString(pdf),
	}, nil
}
