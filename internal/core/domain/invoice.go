package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of a supplier invoice. Only draft or
// approved invoices may be posted; posting sets the status to posted.
type InvoiceStatus string

const (
	InvoiceDraft    InvoiceStatus = "draft"
	InvoiceApproved InvoiceStatus = "approved"
	InvoicePosted   InvoiceStatus = "posted"
)

// SupplierInvoice is an outgoing liability owed to a contractor.
type SupplierInvoice struct {
	InvoiceID     string          `json:"invoiceID"`
	BuildingID    string          `json:"buildingID"`
	ContractorID  string          `json:"contractorID"`
	WorksOrderID  *string         `json:"worksOrderID,omitempty"`
	ScheduleID    *string         `json:"scheduleID,omitempty"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Date          time.Time       `json:"date"`
	NetTotal      decimal.Decimal `json:"netTotal"`
	VATTotal      decimal.Decimal `json:"vatTotal"`
	GrossTotal    decimal.Decimal `json:"grossTotal"`
	Status        InvoiceStatus   `json:"status"`
	AuditFields
	Lines []InvoiceLine `json:"lines,omitempty"`
}

// InvoiceLine carries net/VAT/gross amounts against a designated expense
// account.
type InvoiceLine struct {
	InvoiceLineID string          `json:"invoiceLineID"`
	InvoiceID     string          `json:"invoiceID"`
	AccountID     string          `json:"accountID"` // Expense account for the net amount
	Narrative     string          `json:"narrative"`
	Net           decimal.Decimal `json:"net"`
	VAT           decimal.Decimal `json:"vat"`
	Gross         decimal.Decimal `json:"gross"`
}
