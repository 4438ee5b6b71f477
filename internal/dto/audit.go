package dto

import (
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
)

// AuditEntryResponse defines the data returned for an audit log entry.
type AuditEntryResponse struct {
	EntryID   string    `json:"entryID"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
}

// ToListAuditEntryResponse converts domain.AuditEntry values to DTOs
func ToListAuditEntryResponse(entries []domain.AuditEntry) []AuditEntryResponse {
	res := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = AuditEntryResponse{
			EntryID:   e.EntryID,
			Timestamp: e.Timestamp,
			Action:    e.Action,
			Details:   e.Details,
		}
	}
	return res
}
