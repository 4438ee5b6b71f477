package mapping

import (
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	"github.com/kambeshwar/creditnote_backend/internal/models"
)

// ToModelAuditEntry converts a domain AuditEntry to a model AuditEntry
func ToModelAuditEntry(d domain.AuditEntry) models.AuditEntry {
	return models.AuditEntry{
		EntryID:   d.EntryID,
		Timestamp: d.Timestamp,
		Action:    d.Action,
		Details:   d.Details,
	}
}

// ToDomainAuditEntry converts a model AuditEntry to a domain AuditEntry
func ToDomainAuditEntry(m models.AuditEntry) domain.AuditEntry {
	return domain.AuditEntry{
		EntryID:   m.EntryID,
		Timestamp: m.Timestamp,
		Action:    m.Action,
		Details:   m.Details,
	}
}

// ToDomainAuditEntrySlice converts a slice of model AuditEntries to domain AuditEntries
func ToDomainAuditEntrySlice(ms []models.AuditEntry) []domain.AuditEntry {
	ds := make([]domain.AuditEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditEntry(m)
	}
	return ds
}
