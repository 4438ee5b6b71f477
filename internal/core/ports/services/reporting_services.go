package services

import (
	"context"
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
)

// ReportingSvcFacade serves the dashboard and the reports screen.
type ReportingSvcFacade interface {
	// DashboardStats aggregates this month's figures, the recent monthly
	// totals and the top parties by issued amount.
	DashboardStats(ctx context.Context, now time.Time) (*dto.DashboardStatsResponse, error)

	// ListCreditNotes retrieves issued notes matching the filter, newest first.
	ListCreditNotes(ctx context.Context, filter portsrepo.CreditNoteFilter) ([]domain.CreditNote, error)

	// ExportCreditNotesXLSX renders the filtered notes as an XLSX workbook.
	ExportCreditNotesXLSX(ctx context.Context, filter portsrepo.CreditNoteFilter) ([]byte, error)
}
