package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
	"github.com/kambeshwar/creditnote_backend/internal/middleware"
	"github.com/xuri/excelize/v2"
)

type PartyService struct {
	partyRepo portsrepo.PartyRepositoryFacade
	audit     portssvc.AuditSvcFacade
}

func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade, audit portssvc.AuditSvcFacade) *PartyService {
	return &PartyService{partyRepo: partyRepo, audit: audit}
}

var _ portssvc.PartySvcFacade = (*PartyService)(nil)

func (s *PartyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	now := time.Now()

	party := domain.Party{
		PartyID:        uuid.NewString(),
		Name:           req.Name,
		Address1:       req.Address1,
		Address2:       req.Address2,
		Address3:       req.Address3,
		City:           req.City,
		Email:          req.Email,
		WhatsappNumber: req.WhatsappNumber,
		GSTIN:          req.GSTIN,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		return nil, fmt.Errorf("failed to create party in service: %w", err)
	}

	s.audit.Record(ctx, domain.AuditCreateParty, "Created party: "+party.Name, now)
	return &party, nil
}

func (s *PartyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get party by ID in service: %w", err)
	}
	return party, nil
}

func (s *PartyService) ListParties(ctx context.Context) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListParties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties in service: %w", err)
	}
	if parties == nil {
		return []domain.Party{}, nil
	}
	return parties, nil
}

func (s *PartyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error) {
	existing, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find party for update in service: %w", err)
	}

	now := time.Now()
	existing.Name = req.Name
	existing.Address1 = req.Address1
	existing.Address2 = req.Address2
	existing.Address3 = req.Address3
	existing.City = req.City
	existing.Email = req.Email
	existing.WhatsappNumber = req.WhatsappNumber
	existing.GSTIN = req.GSTIN
	existing.LastUpdatedAt = now
	existing.LastUpdatedBy = updaterUserID

	if err := s.partyRepo.UpdateParty(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update party in service: %w", err)
	}

	s.audit.Record(ctx, domain.AuditUpdateParty, "Updated party: "+existing.Name, now)
	return existing, nil
}

func (s *PartyService) UpdatePartyEmail(ctx context.Context, partyID, email, updaterUserID string) error {
	if err := s.partyRepo.UpdatePartyEmail(ctx, partyID, email, updaterUserID); err != nil {
		return fmt.Errorf("failed to update party email in service: %w", err)
	}
	return nil
}

func (s *PartyService) DeleteParty(ctx context.Context, partyID, deleterUserID string) error {
	existing, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return fmt.Errorf("failed to find party for delete in service: %w", err)
	}

	if err := s.partyRepo.DeleteParty(ctx, partyID); err != nil {
		return fmt.Errorf("failed to delete party in service: %w", err)
	}

	s.audit.Record(ctx, domain.AuditDeleteParty, "Deleted party: "+existing.Name, time.Now())
	return nil
}

// importColumns is the expected header order of the bulk upload workbook.
// Matches the layout the admin exports from the distributor portal.
var importColumns = []string{"Name", "Address1", "Address2", "Address3", "City", "Email", "Whatsapp", "GSTIN"}

// ImportParties parses an XLSX workbook and atomically replaces the whole
// party set with its contents. Rows missing a name or city are skipped and
// reported back; a workbook with no usable rows is rejected outright.
func (s *PartyService) ImportParties(ctx context.Context, r io.Reader, filename, uploaderUserID string) (*dto.ImportPartiesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", filename, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("workbook %s has no data rows", filename)
	}

	now := time.Now()
	parties := make([]domain.Party, 0, len(rows)-1)
	skipped := []string{}

	// Row 1 is the header; cell reads past the row's last populated column
	// come back as missing entries, so pad before indexing.
	for i, row := range rows[1:] {
		cells := make([]string, len(importColumns))
		for j := range cells {
			if j < len(row) {
				cells[j] = strings.TrimSpace(row[j])
			}
		}

		name, city := cells[0], cells[4]
		if name == "" || city == "" {
			skipped = append(skipped, fmt.Sprintf("row %d: missing name or city", i+2))
			continue
		}

		parties = append(parties, domain.Party{
			PartyID:        uuid.NewString(),
			Name:           name,
			Address1:       cells[1],
			Address2:       cells[2],
			Address3:       cells[3],
			City:           city,
			Email:          cells[5],
			WhatsappNumber: cells[6],
			GSTIN:          cells[7],
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     uploaderUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: uploaderUserID,
			},
		})
	}

	if len(parties) == 0 {
		return nil, fmt.Errorf("workbook %s has no usable rows", filename)
	}

	if err := s.partyRepo.ReplaceAllParties(ctx, parties); err != nil {
		return nil, fmt.Errorf("failed to replace parties in service: %w", err)
	}

	logger.Info("Party set replaced from workbook",
		slog.String("filename", filename),
		slog.Int("imported", len(parties)),
		slog.Int("skipped", len(skipped)))
	s.audit.Record(ctx, domain.AuditUploadParties,
		fmt.Sprintf("Replaced parties from %s: %d imported, %d skipped", filename, len(parties), len(skipped)), now)

	return &dto.ImportPartiesResponse{Imported: len(parties), Skipped: skipped}, nil
}
