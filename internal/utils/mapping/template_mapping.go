package mapping

import (
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	"github.com/kambeshwar/creditnote_backend/internal/models"
)

// ToModelTemplate converts a domain Template to a model Template
func ToModelTemplate(d domain.Template) models.Template {
	return models.Template{
		TemplateID:  d.TemplateID,
		Name:        d.Name,
		PartyID:     d.PartyID,
		PartyName:   d.PartyName,
		Purpose:     d.Purpose,
		Percentage:  d.Percentage,
		AuditFields: toModelAuditFields(d.AuditFields),
	}
}

// ToDomainTemplate converts a model Template to a domain Template
func ToDomainTemplate(m models.Template) domain.Template {
	return domain.Template{
		TemplateID:  m.TemplateID,
		Name:        m.Name,
		PartyID:     m.PartyID,
		PartyName:   m.PartyName,
		Purpose:     m.Purpose,
		Percentage:  m.Percentage,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTemplateSlice converts a slice of model Templates to domain Templates
func ToDomainTemplateSlice(ms []models.Template) []domain.Template {
	ds := make([]domain.Template, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTemplate(m)
	}
	return ds
}
