package mapping

import (
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	"github.com/quadrantpm/property_ledger/internal/models"
)

// ToDomainDemandHeader converts a model DemandHeader to a domain DemandHeader
func ToDomainDemandHeader(m models.DemandHeader) domain.DemandHeader {
	return domain.DemandHeader{
		DemandHeaderID: m.DemandHeaderID,
		BuildingID:     m.BuildingID,
		UnitID:         m.UnitID,
		ScheduleID:     m.ScheduleID,
		PeriodStart:    m.PeriodStart,
		PeriodEnd:      m.PeriodEnd,
		Total:          m.Total,
		Status:         domain.DemandStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDemandLine converts a model DemandLine to a domain DemandLine
func ToDomainDemandLine(m models.DemandLine) domain.DemandLine {
	return domain.DemandLine{
		DemandLineID:   m.DemandLineID,
		DemandHeaderID: m.DemandHeaderID,
		Narrative:      m.Narrative,
		Amount:         m.Amount,
	}
}

// ToDomainReceipt converts a model Receipt to a domain Receipt
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:     m.ReceiptID,
		BankAccountID: m.BankAccountID,
		BuildingID:    m.BuildingID,
		Date:          m.Date,
		Amount:        m.Amount,
		PayerRef:      m.PayerRef,
		RawRef:        m.RawRef,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAllocation converts a domain Allocation to a model Allocation
func ToModelAllocation(d domain.Allocation) models.Allocation {
	return models.Allocation{
		AllocationID:   d.AllocationID,
		ReceiptID:      d.ReceiptID,
		DemandHeaderID: d.DemandHeaderID,
		Amount:         d.Amount,
	}
}
