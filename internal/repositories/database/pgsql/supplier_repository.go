package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quadrantpm/property_ledger/internal/apperrors"
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	portsrepo "github.com/quadrantpm/property_ledger/internal/core/ports/repositories"
	"github.com/quadrantpm/property_ledger/internal/models"
	"github.com/quadrantpm/property_ledger/internal/utils/mapping"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for supplier invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepository
var _ portsrepo.InvoiceRepository = (*PgxInvoiceRepository)(nil)

// FindInvoiceByID retrieves a supplier invoice with its lines.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.SupplierInvoice, error) {
	query := `
		SELECT invoice_id, building_id, contractor_id, works_order_id, schedule_id,
		       invoice_number, date, net_total, vat_total, gross_total, status,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM ap_invoices
		WHERE invoice_id = $1;
	`
	var m models.SupplierInvoice
	err := r.Pool.QueryRow(ctx, query, invoiceID).Scan(
		&m.InvoiceID,
		&m.BuildingID,
		&m.ContractorID,
		&m.WorksOrderID,
		&m.ScheduleID,
		&m.InvoiceNumber,
		&m.Date,
		&m.NetTotal,
		&m.VATTotal,
		&m.GrossTotal,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("invoice not found: " + invoiceID)
		}
		return nil, apperrors.NewAppError(500, "failed to query invoice "+invoiceID, err)
	}

	invoice := mapping.ToDomainSupplierInvoice(m)

	lineQuery := `
		SELECT invoice_line_id, invoice_id, account_id, narrative, net, vat, gross
		FROM ap_invoice_lines
		WHERE invoice_id = $1
		ORDER BY invoice_line_id;
	`
	rows, err := r.Pool.Query(ctx, lineQuery, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoice lines for "+invoiceID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var lm models.InvoiceLine
		if err := rows.Scan(&lm.InvoiceLineID, &lm.InvoiceID, &lm.AccountID, &lm.Narrative, &lm.Net, &lm.VAT, &lm.Gross); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice line row", err)
		}
		invoice.Lines = append(invoice.Lines, mapping.ToDomainInvoiceLine(lm))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice line rows", err)
	}
	return &invoice, nil
}

// UpdateInvoiceStatus transitions an invoice's status.
func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE ap_invoices
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE invoice_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, invoiceID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of invoice "+invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice not found: " + invoiceID)
	}
	return nil
}

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for supplier payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepository
var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

// FindPaymentByID retrieves a supplier payment; the building is resolved
// through the owning bank account.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.SupplierPayment, error) {
	query := `
		SELECT p.payment_id, p.bank_account_id, ba.building_id,
		       p.date, p.amount, p.payee_ref,
		       p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
		FROM ap_payments p
		JOIN bank_accounts ba ON ba.bank_account_id = p.bank_account_id
		WHERE p.payment_id = $1;
	`
	var m models.SupplierPayment
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(
		&m.PaymentID,
		&m.BankAccountID,
		&m.BuildingID,
		&m.Date,
		&m.Amount,
		&m.PayeeRef,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("payment not found: " + paymentID)
		}
		return nil, apperrors.NewAppError(500, "failed to query payment "+paymentID, err)
	}
	payment := mapping.ToDomainSupplierPayment(m)
	return &payment, nil
}
