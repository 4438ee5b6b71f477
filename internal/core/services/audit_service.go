package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
	"github.com/kambeshwar/creditnote_backend/internal/middleware"
)

type AuditService struct {
	auditRepo portsrepo.AuditRepositoryFacade
}

func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// Record appends an audit entry. A failed write is logged and swallowed so
// the audited operation itself never fails because of it.
func (s *AuditService) Record(ctx context.Context, action, details string, at time.Time) {
	entry := domain.AuditEntry{
		EntryID:   uuid.NewString(),
		Timestamp: at,
		Action:    action,
		Details:   details,
	}
	if err := s.auditRepo.AppendEntry(ctx, entry); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to append audit entry",
			slog.String("action", action),
			slog.String("error", err.Error()))
	}
}

// List retrieves the newest entries first, up to limit.
func (s *AuditService) List(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	entries, err := s.auditRepo.ListEntries(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries in service: %w", err)
	}
	if entries == nil {
		return []domain.AuditEntry{}, nil
	}
	return entries, nil
}
