package services

import (
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The renderer and dispatcher are constructed by the caller since they carry
// their own configuration (layout assets, endpoint URLs).
func NewServiceContainer(
	cfg *config.Config,
	repos *portsrepo.RepositoryProvider,
	renderer portssvc.DocumentRenderer,
	dispatcher portssvc.CreditNoteDispatcher,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit first since nearly every other service records through it.
	container.Audit = NewAuditService(repos.AuditRepo)

	container.Auth = NewAuthService(cfg)
	container.Party = NewPartyService(repos.PartyRepo, container.Audit)
	container.Template = NewTemplateService(repos.TemplateRepo, repos.PartyRepo, container.Audit)
	container.Settings = NewSettingsService(repos.SettingsRepo, container.Audit)
	container.Sequence = NewSequenceService(repos.CounterRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.CreditNoteRepo)

	container.CreditNote = NewCreditNoteService(
		repos.PartyRepo,
		repos.CreditNoteRepo,
		container.Settings,
		container.Sequence,
		renderer,
		dispatcher,
		container.Audit,
	)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.AuditSvcFacade      = (*AuditService)(nil)
	_ portssvc.AuthSvcFacade       = (*AuthService)(nil)
	_ portssvc.PartySvcFacade      = (*PartyService)(nil)
	_ portssvc.TemplateSvcFacade   = (*TemplateService)(nil)
	_ portssvc.SettingsSvcFacade   = (*SettingsService)(nil)
	_ portssvc.SequenceSvcFacade   = (*SequenceService)(nil)
	_ portssvc.CreditNoteSvcFacade = (*CreditNoteService)(nil)
	_ portssvc.ReportingSvcFacade  = (*ReportingService)(nil)
)
