package repositories

import (
	"context"
	"time"

	"github.com/quadrantpm/property_ledger/internal/core/domain"
)

// InvoiceRepository provides access to supplier invoice records.
type InvoiceRepository interface {
	// FindInvoiceByID retrieves a supplier invoice with its lines.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.SupplierInvoice, error)

	// UpdateInvoiceStatus transitions an invoice's status.
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error
}

// PaymentRepository provides access to supplier payment records.
type PaymentRepository interface {
	// FindPaymentByID retrieves a supplier payment with its building resolved
	// through the owning bank account.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.SupplierPayment, error)
}
