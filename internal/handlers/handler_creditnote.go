package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
	"github.com/kambeshwar/creditnote_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// creditNoteHandler handles the issuing workflow endpoints.
type creditNoteHandler struct {
	creditNoteService portssvc.CreditNoteSvcFacade
}

func newCreditNoteHandler(cs portssvc.CreditNoteSvcFacade) *creditNoteHandler {
	return &creditNoteHandler{creditNoteService: cs}
}

// RegisterCreditNoteRoutes registers the issue and preview endpoints.
// The optional rate limiter guards the issue endpoint: every accepted request
// consumes a sequence number for good.
func RegisterCreditNoteRoutes(rg *gin.RouterGroup, creditNoteService portssvc.CreditNoteSvcFacade, issueLimiter gin.HandlerFunc) {
	h := newCreditNoteHandler(creditNoteService)

	notes := rg.Group("/credit-notes")
	{
		if issueLimiter != nil {
			notes.POST("", issueLimiter, h.issueCreditNote)
		} else {
			notes.POST("", h.issueCreditNote)
		}
		notes.POST("/preview", h.previewCreditNote)
		notes.POST("/:number/resend", h.resendCreditNote)
	}
}

// issueCreditNote godoc
// @Summary Issue a credit note
// @Description Runs the full pipeline: compute, number, render both copies, dispatch, persist
// @Tags credit-notes
// @Accept json
// @Produce json
// @Param note body dto.IssueCreditNoteRequest true "Issue request"
// @Success 201 {object} dto.IssueCreditNoteResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Failure 502 {object} ErrorResponse "Dispatch failed; the consumed number is recorded as a gap"
// @Security BearerAuth
// @Router /credit-notes [post]
func (h *creditNoteHandler) issueCreditNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.IssueCreditNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for IssueCreditNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	issuerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.creditNoteService.IssueCreditNote(c.Request.Context(), req, issuerUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to issue credit note", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to issue credit note: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// resendCreditNote godoc
// @Summary Resend a credit note
// @Description Asks the dispatch endpoint to re-deliver an issued note to the party or the head office
// @Tags credit-notes
// @Accept json
// @Produce json
// @Param number path string true "Credit note number"
// @Param recipient body dto.ResendCreditNoteRequest true "Recipient: party or ho"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Credit note not found"
// @Failure 502 {object} ErrorResponse "Dispatch endpoint rejected the resend"
// @Security BearerAuth
// @Router /credit-notes/{number}/resend [post]
func (h *creditNoteHandler) resendCreditNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number := c.Param("number")

	var req dto.ResendCreditNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ResendCreditNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	err := h.creditNoteService.ResendCreditNote(c.Request.Context(), number, domain.ResendRecipient(req.Recipient))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Credit note not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to resend credit note", slog.String("number", number), slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to resend credit note: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Credit note " + number + " resent to " + req.Recipient})
}

// previewCreditNote godoc
// @Summary Preview a credit note
// @Description Renders the party copy with the advisory next number; consumes nothing
// @Tags credit-notes
// @Accept json
// @Produce json
// @Param note body dto.IssueCreditNoteRequest true "Preview request"
// @Success 200 {object} dto.PreviewCreditNoteResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Security BearerAuth
// @Router /credit-notes/preview [post]
func (h *creditNoteHandler) previewCreditNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.IssueCreditNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewCreditNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.creditNoteService.PreviewCreditNote(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to preview credit note", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to preview credit note"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
