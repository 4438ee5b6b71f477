package mapping

import (
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	"github.com/kambeshwar/creditnote_backend/internal/models"
)

// ToModelCompanyProfile converts a domain CompanyProfile to a model CompanyProfile
func ToModelCompanyProfile(d domain.CompanyProfile) models.CompanyProfile {
	return models.CompanyProfile{
		ProfileID:    1,
		Name:         d.Name,
		AddressLine1: d.AddressLine1,
		AddressLine2: d.AddressLine2,
		ContactInfo:  d.ContactInfo,
		GSTIN:        d.GSTIN,
		UDYAM:        d.UDYAM,
		StateCode:    d.StateCode,
		NotePrefix:   d.NotePrefix,
		AuditFields:  toModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompanyProfile converts a model CompanyProfile to a domain CompanyProfile
func ToDomainCompanyProfile(m models.CompanyProfile) domain.CompanyProfile {
	return domain.CompanyProfile{
		Name:         m.Name,
		AddressLine1: m.AddressLine1,
		AddressLine2: m.AddressLine2,
		ContactInfo:  m.ContactInfo,
		GSTIN:        m.GSTIN,
		UDYAM:        m.UDYAM,
		StateCode:    m.StateCode,
		NotePrefix:   m.NotePrefix,
		AuditFields:  toDomainAuditFields(m.AuditFields),
	}
}
