package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
	"github.com/kambeshwar/creditnote_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const queryDateLayout = "2006-01-02"

// reportingHandler serves the dashboard and the reports screen.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers dashboard and report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	rg.GET("/dashboard/stats", h.dashboardStats)
	reports := rg.Group("/reports")
	{
		reports.GET("/credit-notes", h.listCreditNotes)
		reports.GET("/credit-notes/export", h.exportCreditNotes)
	}
}

// filterFromQuery builds the listing filter from query parameters.
func filterFromQuery(c *gin.Context) portsrepo.CreditNoteFilter {
	filter := portsrepo.CreditNoteFilter{
		Search: c.Query("search"),
		Status: domain.NoteStatus(c.Query("status")),
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.ParseInLocation(queryDateLayout, from, time.UTC); err == nil {
			filter.FromDate = t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.ParseInLocation(queryDateLayout, to, time.UTC); err == nil {
			filter.ToDate = t
		}
	}
	return filter
}

// dashboardStats godoc
// @Summary Dashboard statistics
// @Description This month's totals, the recent monthly chart and the top parties
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 500 {object} ErrorResponse "Failed to compute stats"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *reportingHandler) dashboardStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.reportingService.DashboardStats(c.Request.Context(), time.Now().UTC())
	if err != nil {
		logger.Error("Failed to compute dashboard stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// listCreditNotes godoc
// @Summary List issued credit notes
// @Description Retrieves notes matching the filter, newest first
// @Tags reporting
// @Produce json
// @Param search query string false "Matched against note number and party name"
// @Param from query string false "Earliest issue date (YYYY-MM-DD)"
// @Param to query string false "Latest issue date (YYYY-MM-DD)"
// @Param status query string false "ISSUED or DISPATCH_FAILED"
// @Success 200 {array} dto.CreditNoteResponse
// @Failure 500 {object} ErrorResponse "Failed to list credit notes"
// @Security BearerAuth
// @Router /reports/credit-notes [get]
func (h *reportingHandler) listCreditNotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	notes, err := h.reportingService.ListCreditNotes(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		logger.Error("Failed to list credit notes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list credit notes"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCreditNoteResponse(notes))
}

// exportCreditNotes godoc
// @Summary Export issued credit notes as XLSX
// @Description Streams the filtered notes as a workbook download
// @Tags reporting
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param search query string false "Matched against note number and party name"
// @Param from query string false "Earliest issue date (YYYY-MM-DD)"
// @Param to query string false "Latest issue date (YYYY-MM-DD)"
// @Param status query string false "ISSUED or DISPATCH_FAILED"
// @Success 200 {file} binary
// @Failure 500 {object} ErrorResponse "Failed to export credit notes"
// @Security BearerAuth
// @Router /reports/credit-notes/export [get]
func (h *reportingHandler) exportCreditNotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := h.reportingService.ExportCreditNotesXLSX(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		logger.Error("Failed to export credit notes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export credit notes"})
		return
	}

	filename := "credit-notes-" + time.Now().UTC().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
