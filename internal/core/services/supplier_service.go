package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quadrantpm/property_ledger/internal/apperrors"
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	portsrepo "github.com/quadrantpm/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/quadrantpm/property_ledger/internal/core/ports/services"
	"github.com/quadrantpm/property_ledger/internal/dto"
	"github.com/quadrantpm/property_ledger/internal/middleware"
)

// supplierService posts supplier invoices and supplier payments.
type supplierService struct {
	invoiceRepo portsrepo.InvoiceRepository
	paymentRepo portsrepo.PaymentRepository
	accountSvc  portssvc.AccountSvcFacade
	journalSvc  portssvc.JournalSvcFacade
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(invoiceRepo portsrepo.InvoiceRepository, paymentRepo portsrepo.PaymentRepository, accountSvc portssvc.AccountSvcFacade, journalSvc portssvc.JournalSvcFacade) portssvc.SupplierSvcFacade {
	return &supplierService{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		accountSvc:  accountSvc,
		journalSvc:  journalSvc,
	}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

// PostSupplierInvoice posts a draft or approved invoice. Each invoice line
// becomes a net-amount debit against its designated expense account; lines
// carrying VAT add a second debit against VAT Payable; one final credit
// against A/P Control carries the gross total. All lines are tagged with the
// contractor and works order. On success the invoice transitions to posted.
func (s *supplierService) PostSupplierInvoice(ctx context.Context, invoiceID string, actorID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", invoiceID, err)
	}

	if invoice.Status != domain.InvoiceDraft && invoice.Status != domain.InvoiceApproved {
		return nil, fmt.Errorf("%w: invoice %s is not in draft or approved status (status is %s)",
			apperrors.ErrPrecondition, invoiceID, invoice.Status)
	}

	apAccount, err := s.accountSvc.ResolveControlAccount(ctx, domain.ControlAPControl)
	if err != nil {
		return nil, err
	}

	// VAT Payable is only required when the invoice actually carries VAT.
	var vatAccount *domain.Account
	if invoice.VATTotal.IsPositive() {
		vatAccount, err = s.accountSvc.ResolveControlAccount(ctx, domain.ControlVATPayable)
		if err != nil {
			return nil, err
		}
	}

	contractorID := invoice.ContractorID
	lines := make([]dto.JournalLineInput, 0, 2*len(invoice.Lines)+1)
	for _, invLine := range invoice.Lines {
		lines = append(lines, dto.JournalLineInput{
			AccountID:    invLine.AccountID,
			Debit:        invLine.Net,
			ContractorID: &contractorID,
			WorksOrderID: invoice.WorksOrderID,
		})
		if invLine.VAT.IsPositive() && vatAccount != nil {
			lines = append(lines, dto.JournalLineInput{
				AccountID:    vatAccount.AccountID,
				Debit:        invLine.VAT,
				ContractorID: &contractorID,
				WorksOrderID: invoice.WorksOrderID,
			})
		}
	}
	lines = append(lines, dto.JournalLineInput{
		AccountID:    apAccount.AccountID,
		Credit:       invoice.GrossTotal,
		ContractorID: &contractorID,
		WorksOrderID: invoice.WorksOrderID,
	})

	req := dto.PostJournalRequest{
		Date:       invoice.Date,
		Memo:       fmt.Sprintf("Supplier Invoice - %s", invoice.InvoiceNumber),
		BuildingID: invoice.BuildingID,
		ScheduleID: invoice.ScheduleID,
		Lines:      lines,
	}

	journal, err := s.journalSvc.PostJournal(ctx, req, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, domain.InvoicePosted, actorID, time.Now().UTC()); err != nil {
		logger.Error("Invoice status update failed after journal commit",
			slog.String("error", err.Error()),
			slog.String("invoice_id", invoiceID),
			slog.String("journal_id", journal.JournalID))
		return journal, fmt.Errorf("%w: journal %s posted but invoice %s status update failed: %v",
			apperrors.ErrPostedFollowUpFailed, journal.JournalID, invoiceID, err)
	}

	logger.Info("Supplier invoice posted",
		slog.String("invoice_id", invoiceID),
		slog.String("journal_id", journal.JournalID),
		slog.Int("line_count", len(lines)))
	return journal, nil
}

// PostSupplierPayment posts a supplier payment: debit A/P Control, credit
// Bank. The payment record itself is not mutated; its lifecycle belongs to
// the caller.
func (s *supplierService) PostSupplierPayment(ctx context.Context, paymentID string, actorID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("payment %s: %w", paymentID, err)
	}

	bankAccount, err := s.accountSvc.ResolveControlAccount(ctx, domain.ControlBank)
	if err != nil {
		return nil, err
	}
	apAccount, err := s.accountSvc.ResolveControlAccount(ctx, domain.ControlAPControl)
	if err != nil {
		return nil, err
	}

	req := dto.PostJournalRequest{
		Date:       payment.Date,
		Memo:       fmt.Sprintf("Supplier Payment - %s", payment.PayeeRef),
		BuildingID: payment.BuildingID,
		Lines: []dto.JournalLineInput{
			{AccountID: apAccount.AccountID, Debit: payment.Amount},
			{AccountID: bankAccount.AccountID, Credit: payment.Amount},
		},
	}

	journal, err := s.journalSvc.PostJournal(ctx, req, actorID)
	if err != nil {
		return nil, err
	}

	logger.Info("Supplier payment posted",
		slog.String("payment_id", paymentID),
		slog.String("journal_id", journal.JournalID))
	return journal, nil
}
