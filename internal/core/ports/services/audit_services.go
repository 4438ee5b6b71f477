package services

import (
	"context"
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
)

// AuditSvcFacade records and reads administrative actions.
type AuditSvcFacade interface {
	// Record appends an audit entry. Failures are logged and swallowed:
	// audit writes must never fail the operation being audited.
	Record(ctx context.Context, action, details string, at time.Time)

	// List retrieves the newest entries first, up to limit.
	List(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}
