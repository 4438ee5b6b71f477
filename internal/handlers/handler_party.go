package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
	"github.com/kambeshwar/creditnote_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxImportSize caps the bulk upload workbook at 10 MiB.
const maxImportSize = 10 << 20

// partyHandler handles HTTP requests related to parties.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
}

// newPartyHandler creates a new partyHandler.
func newPartyHandler(ps portssvc.PartySvcFacade) *partyHandler {
	return &partyHandler{partyService: ps}
}

// registerPartyRoutes registers routes related to parties.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	h := newPartyHandler(partyService)

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:id", h.getPartyByID)
		parties.PUT("/:id", h.updateParty)
		parties.PATCH("/:id/email", h.updatePartyEmail)
		parties.DELETE("/:id", h.deleteParty)
		parties.POST("/import", h.importParties)
	}
}

// createParty godoc
// @Summary Create a new party
// @Description Adds a new trading partner
// @Tags parties
// @Accept json
// @Produce json
// @Param party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create party in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create party"})
		return
	}

	logger.Info("Party created successfully", slog.String("party_id", party.PartyID))
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// listParties godoc
// @Summary List all parties
// @Description Retrieves all trading partners sorted by name
// @Tags parties
// @Produce json
// @Success 200 {array} dto.PartyResponse
// @Failure 500 {object} ErrorResponse "Failed to list parties"
// @Security BearerAuth
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	parties, err := h.partyService.ListParties(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list parties from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list parties"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPartyResponse(parties))
}

// getPartyByID godoc
// @Summary Get a party by ID
// @Description Retrieves details for a specific party
// @Tags parties
// @Produce json
// @Param id path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} ErrorResponse "Party not found"
// @Security BearerAuth
// @Router /parties/{id} [get]
func (h *partyHandler) getPartyByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	party, err := h.partyService.GetPartyByID(c.Request.Context(), partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else {
			logger.Error("Failed to get party from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve party"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// updateParty godoc
// @Summary Update a party
// @Description Replaces all editable fields of an existing party
// @Tags parties
// @Accept json
// @Produce json
// @Param id path string true "Party ID"
// @Param party body dto.UpdatePartyRequest true "Party details"
// @Success 200 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Security BearerAuth
// @Router /parties/{id} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	party, err := h.partyService.UpdateParty(c.Request.Context(), partyID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else {
			logger.Error("Failed to update party in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update party"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// updatePartyEmail godoc
// @Summary Update only a party's email
// @Description Patches the email address used for document dispatch
// @Tags parties
// @Accept json
// @Produce json
// @Param id path string true "Party ID"
// @Param email body dto.UpdatePartyEmailRequest true "New email"
// @Success 204 "Updated"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Security BearerAuth
// @Router /parties/{id}/email [patch]
func (h *partyHandler) updatePartyEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	var req dto.UpdatePartyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePartyEmail", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.partyService.UpdatePartyEmail(c.Request.Context(), partyID, req.Email, updaterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else {
			logger.Error("Failed to update party email in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update party email"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteParty godoc
// @Summary Delete a party
// @Description Removes a party; existing credit notes keep their snapshot
// @Tags parties
// @Param id path string true "Party ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Security BearerAuth
// @Router /parties/{id} [delete]
func (h *partyHandler) deleteParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.partyService.DeleteParty(c.Request.Context(), partyID, deleterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else {
			logger.Error("Failed to delete party in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete party"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// importParties godoc
// @Summary Bulk import parties from XLSX
// @Description Replaces the entire party set with the uploaded workbook's rows
// @Tags parties
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "XLSX workbook"
// @Success 200 {object} dto.ImportPartiesResponse
// @Failure 400 {object} ErrorResponse "Invalid workbook"
// @Security BearerAuth
// @Router /parties/import [post]
func (h *partyHandler) importParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	uploaderUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing workbook file: " + err.Error()})
		return
	}
	if fileHeader.Size > maxImportSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Workbook exceeds the 10 MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read workbook"})
		return
	}
	defer file.Close()

	resp, err := h.partyService.ImportParties(c.Request.Context(), file, fileHeader.Filename, uploaderUserID)
	if err != nil {
		logger.Warn("Party import rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
