package models

import "time"

// AuditEntry mirrors a row of the audit_log table.
type AuditEntry struct {
	EntryID   string    `json:"entryID"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
}
