package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	dashboardMonths   = 6
	dashboardTopLimit = 5
	exportSheetName   = "Credit Notes"
	exportDateLayout  = "02-01-2006"
)

type ReportingService struct {
	reportingRepo  portsrepo.ReportingRepositoryFacade
	creditNoteRepo portsrepo.CreditNoteReader
}

func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade, creditNoteRepo portsrepo.CreditNoteReader) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo, creditNoteRepo: creditNoteRepo}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// DashboardStats aggregates this month's figures, the recent monthly totals
// and the top parties by issued amount.
func (s *ReportingService) DashboardStats(ctx context.Context, now time.Time) (*dto.DashboardStatsResponse, error) {
	monthly, err := s.reportingRepo.MonthlyTotals(ctx, now, dashboardMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly totals in service: %w", err)
	}

	topParties, err := s.reportingRepo.TopParties(ctx, dashboardTopLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top parties in service: %w", err)
	}

	resp := &dto.DashboardStatsResponse{
		TotalThisMonth:   decimal.Zero,
		AverageThisMonth: decimal.Zero,
		MonthlyTotals:    make([]dto.MonthlyTotalDTO, 0, len(monthly)),
		TopParties:       make([]dto.PartyTotalDTO, 0, len(topParties)),
	}

	for _, mt := range monthly {
		resp.MonthlyTotals = append(resp.MonthlyTotals, dto.MonthlyTotalDTO{
			Label: mt.Month.Format("January 2006"),
			Count: mt.Count,
			Total: mt.Total,
		})
	}

	// The last bucket is the month containing now.
	if len(monthly) > 0 {
		current := monthly[len(monthly)-1]
		resp.CountThisMonth = current.Count
		resp.TotalThisMonth = current.Total
		if current.Count > 0 {
			resp.AverageThisMonth = current.Total.Div(decimal.NewFromInt(current.Count)).Round(2)
		}
	}

	for _, pt := range topParties {
		resp.TopParties = append(resp.TopParties, dto.PartyTotalDTO{
			PartyName: pt.PartyName,
			Count:     pt.Count,
			Total:     pt.Total,
		})
	}

	return resp, nil
}

// ListCreditNotes retrieves issued notes matching the filter, newest first.
func (s *ReportingService) ListCreditNotes(ctx context.Context, filter portsrepo.CreditNoteFilter) ([]domain.CreditNote, error) {
	notes, err := s.creditNoteRepo.ListCreditNotes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit notes in service: %w", err)
	}
	if notes == nil {
		return []domain.CreditNote{}, nil
	}
	return notes, nil
}

// ExportCreditNotesXLSX renders the filtered notes as an XLSX workbook with
// one row per note and a totals row at the bottom.
func (s *ReportingService) ExportCreditNotesXLSX(ctx context.Context, filter portsrepo.CreditNoteFilter) ([]byte, error) {
	notes, err := s.ListCreditNotes(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create export sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []string{"CN Number", "Issue Date", "Party", "City", "Period", "Purpose", "Base Amount", "%", "Credit Amount", "Round Off", "Final Amount", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheetName, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write export header: %w", err)
		}
	}

	total := decimal.Zero
	for i, note := range notes {
		rowNum := i + 2
		values := []interface{}{
			note.Number,
			note.IssueDate.Format(exportDateLayout),
			note.Party.Name,
			note.Party.City,
			note.Period.Label,
			note.Purpose,
			note.Breakdown.BaseAmount.InexactFloat64(),
			note.Breakdown.Percentage.InexactFloat64(),
			note.Breakdown.CreditAmount.InexactFloat64(),
			note.Breakdown.RoundOff.InexactFloat64(),
			note.Breakdown.FinalAmount,
			string(note.Status),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, rowNum)
			if err := f.SetCellValue(exportSheetName, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write export row %d: %w", rowNum, err)
			}
		}
		if note.Status == domain.NoteIssued {
			total = total.Add(decimal.NewFromInt(note.Breakdown.FinalAmount))
		}
	}

	totalRow := len(notes) + 2
	labelCell, _ := excelize.CoordinatesToCellName(10, totalRow)
	valueCell, _ := excelize.CoordinatesToCellName(11, totalRow)
	if err := f.SetCellValue(exportSheetName, labelCell, "Total (Issued)"); err != nil {
		return nil, fmt.Errorf("failed to write export total label: %w", err)
	}
	if err := f.SetCellValue(exportSheetName, valueCell, total.InexactFloat64()); err != nil {
		return nil, fmt.Errorf("failed to write export total: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export workbook: %w", err)
	}
	return buf.Bytes(), nil
}
