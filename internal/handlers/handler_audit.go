package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
	"github.com/kambeshwar/creditnote_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(as portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: as}
}

// registerAuditRoutes registers routes related to the audit log.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)
	rg.GET("/audit", h.listEntries)
}

// listEntries godoc
// @Summary List audit log entries
// @Description Retrieves the newest administrative actions first
// @Tags audit
// @Produce json
// @Param limit query int false "Maximum entries to return (default 100)"
// @Success 200 {array} dto.AuditEntryResponse
// @Failure 500 {object} ErrorResponse "Failed to list audit entries"
// @Security BearerAuth
// @Router /audit [get]
func (h *auditHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	entries, err := h.auditService.List(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list audit entries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAuditEntryResponse(entries))
}
