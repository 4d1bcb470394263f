package mapping

import (
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	"github.com/quadrantpm/property_ledger/internal/models"
)

// ToModelJournal converts a domain Journal to a model Journal
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:   d.JournalID,
		JournalDate: d.JournalDate,
		Memo:        d.Memo,
		BuildingID:  d.BuildingID,
		ScheduleID:  d.ScheduleID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a model Journal to a domain Journal
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:   m.JournalID,
		JournalDate: m.JournalDate,
		Memo:        m.Memo,
		BuildingID:  m.BuildingID,
		ScheduleID:  m.ScheduleID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:       d.LineID,
		JournalID:    d.JournalID,
		AccountID:    d.AccountID,
		Debit:        d.Debit,
		Credit:       d.Credit,
		UnitID:       d.UnitID,
		ContractorID: d.ContractorID,
		WorksOrderID: d.WorksOrderID,
		FundID:       d.FundID,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:       m.LineID,
		JournalID:    m.JournalID,
		AccountID:    m.AccountID,
		Debit:        m.Debit,
		Credit:       m.Credit,
		UnitID:       m.UnitID,
		ContractorID: m.ContractorID,
		WorksOrderID: m.WorksOrderID,
		FundID:       m.FundID,
	}
}

// ToDomainJournalLines converts a slice of model JournalLines to domain JournalLines
func ToDomainJournalLines(ms []models.JournalLine) []domain.JournalLine {
	lines := make([]domain.JournalLine, 0, len(ms))
	for _, m := range ms {
		lines = append(lines, ToDomainJournalLine(m))
	}
	return lines
}
