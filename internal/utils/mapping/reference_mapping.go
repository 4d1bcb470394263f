package mapping

import (
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	"github.com/quadrantpm/property_ledger/internal/models"
)

// ToDomainFund converts a model Fund to a domain Fund
func ToDomainFund(m models.Fund) domain.Fund {
	return domain.Fund{
		FundID:      m.FundID,
		BuildingID:  m.BuildingID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBankTransaction converts a model BankTransaction to a domain BankTransaction
func ToDomainBankTransaction(m models.BankTransaction) domain.BankTransaction {
	return domain.BankTransaction{
		BankTxnID:     m.BankTxnID,
		BankAccountID: m.BankAccountID,
		Date:          m.Date,
		Amount:        m.Amount,
		Description:   m.Description,
	}
}

// ToModelAuditLogEntry converts a domain AuditLogEntry to a model AuditLogEntry
func ToModelAuditLogEntry(d domain.AuditLogEntry) models.AuditLogEntry {
	return models.AuditLogEntry{
		AuditID:   d.AuditID,
		Actor:     d.Actor,
		Entity:    d.Entity,
		Action:    d.Action,
		EntityID:  d.EntityID,
		Detail:    d.Detail,
		CreatedAt: d.CreatedAt,
	}
}
