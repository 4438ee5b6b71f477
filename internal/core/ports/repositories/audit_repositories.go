package repositories

import (
	"context"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
)

// AuditWriter appends entries to the audit log.
type AuditWriter interface {
	// AppendEntry persists a new audit entry.
	AppendEntry(ctx context.Context, entry domain.AuditEntry) error
}

// AuditReader reads the audit log.
type AuditReader interface {
	// ListEntries retrieves the newest entries first, up to limit.
	ListEntries(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

// AuditRepositoryFacade combines audit log read and write operations
type AuditRepositoryFacade interface {
	AuditReader
	AuditWriter
}
