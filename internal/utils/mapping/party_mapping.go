package mapping

import (
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	"github.com/kambeshwar/creditnote_backend/internal/models"
)

// ToModelParty converts a domain Party to a model Party
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:        d.PartyID,
		Name:           d.Name,
		Address1:       d.Address1,
		Address2:       d.Address2,
		Address3:       d.Address3,
		City:           d.City,
		Email:          d.Email,
		WhatsappNumber: d.WhatsappNumber,
		GSTIN:          d.GSTIN,
		AuditFields:    toModelAuditFields(d.AuditFields),
	}
}

// ToDomainParty converts a model Party to a domain Party
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:        m.PartyID,
		Name:           m.Name,
		Address1:       m.Address1,
		Address2:       m.Address2,
		Address3:       m.Address3,
		City:           m.City,
		Email:          m.Email,
		WhatsappNumber: m.WhatsappNumber,
		GSTIN:          m.GSTIN,
		AuditFields:    toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPartySlice converts a slice of model Parties to domain Parties
func ToDomainPartySlice(ms []models.Party) []domain.Party {
	ds := make([]domain.Party, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParty(m)
	}
	return ds
}
