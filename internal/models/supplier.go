package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierInvoice is an ap_invoices row.
type SupplierInvoice struct {
	InvoiceID     string          `db:"invoice_id"`
	BuildingID    string          `db:"building_id"`
	ContractorID  string          `db:"contractor_id"`
	WorksOrderID  *string         `db:"works_order_id"`
	ScheduleID    *string         `db:"schedule_id"`
	InvoiceNumber string          `db:"invoice_number"`
	Date          time.Time       `db:"date"`
	NetTotal      decimal.Decimal `db:"net_total"`
	VATTotal      decimal.Decimal `db:"vat_total"`
	GrossTotal    decimal.Decimal `db:"gross_total"`
	Status        string          `db:"status"`
	AuditFields
}

// InvoiceLine is an ap_invoice_lines row.
type InvoiceLine struct {
	InvoiceLineID string          `db:"invoice_line_id"`
	InvoiceID     string          `db:"invoice_id"`
	AccountID     string          `db:"account_id"`
	Narrative     string          `db:"narrative"`
	Net           decimal.Decimal `db:"net"`
	VAT           decimal.Decimal `db:"vat"`
	Gross         decimal.Decimal `db:"gross"`
}

// SupplierPayment is an ap_payments row joined to its bank account.
type SupplierPayment struct {
	PaymentID     string          `db:"payment_id"`
	BankAccountID string          `db:"bank_account_id"`
	BuildingID    string          `db:"building_id"` // From bank_accounts join
	Date          time.Time       `db:"date"`
	Amount        decimal.Decimal `db:"amount"`
	PayeeRef      string          `db:"payee_ref"`
	AuditFields
}
