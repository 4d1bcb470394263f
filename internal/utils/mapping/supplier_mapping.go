package mapping

import (
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	"github.com/quadrantpm/property_ledger/internal/models"
)

// ToDomainSupplierInvoice converts a model SupplierInvoice to a domain SupplierInvoice
func ToDomainSupplierInvoice(m models.SupplierInvoice) domain.SupplierInvoice {
	return domain.SupplierInvoice{
		InvoiceID:     m.InvoiceID,
		BuildingID:    m.BuildingID,
		ContractorID:  m.ContractorID,
		WorksOrderID:  m.WorksOrderID,
		ScheduleID:    m.ScheduleID,
		InvoiceNumber: m.InvoiceNumber,
		Date:          m.Date,
		NetTotal:      m.NetTotal,
		VATTotal:      m.VATTotal,
		GrossTotal:    m.GrossTotal,
		Status:        domain.InvoiceStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoiceLine converts a model InvoiceLine to a domain InvoiceLine
func ToDomainInvoiceLine(m models.InvoiceLine) domain.InvoiceLine {
	return domain.InvoiceLine{
		InvoiceLineID: m.InvoiceLineID,
		InvoiceID:     m.InvoiceID,
		AccountID:     m.AccountID,
		Narrative:     m.Narrative,
		Net:           m.Net,
		VAT:           m.VAT,
		Gross:         m.Gross,
	}
}

// ToDomainSupplierPayment converts a model SupplierPayment to a domain SupplierPayment
func ToDomainSupplierPayment(m models.SupplierPayment) domain.SupplierPayment {
	return domain.SupplierPayment{
		PaymentID:     m.PaymentID,
		BankAccountID: m.BankAccountID,
		BuildingID:    m.BuildingID,
		Date:          m.Date,
		Amount:        m.Amount,
		PayeeRef:      m.PayeeRef,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
