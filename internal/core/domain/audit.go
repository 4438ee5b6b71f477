package domain

import "time"

// Audit actions recorded by the application.
const (
	AuditCreateCN       = "CREATE_CN"
	AuditDispatchFailed = "DISPATCH_FAILED"
	AuditResendCNParty  = "RESEND_CN_PARTY"
	AuditResendCNHO     = "RESEND_CN_HO"
	AuditCreateParty    = "CREATE_PARTY"
	AuditUpdateParty    = "UPDATE_PARTY"
	AuditDeleteParty    = "DELETE_PARTY"
	AuditUploadParties  = "UPLOAD_PARTIES"
	AuditCreateTemplate = "CREATE_TEMPLATE"
	AuditUpdateTemplate = "UPDATE_TEMPLATE"
	AuditDeleteTemplate = "DELETE_TEMPLATE"
	AuditUpdateSettings = "UPDATE_SETTINGS"
)

// AuditEntry is an append-only record of an administrative action.
type AuditEntry struct {
	EntryID   string    `json:"entryID"` // Primary Key (UUID)
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
}
