package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		PartyRepo:      newPgxPartyRepository(pool),
		TemplateRepo:   newPgxTemplateRepository(pool),
		SettingsRepo:   newPgxSettingsRepository(pool),
		AuditRepo:      newPgxAuditRepository(pool),
		CounterRepo:    newPgxCounterRepository(pool),
		CreditNoteRepo: newPgxCreditNoteRepository(pool),
		ReportingRepo:  newPgxReportingRepository(pool),
	}
}
