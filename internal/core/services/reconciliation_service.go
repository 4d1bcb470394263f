package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quadrantpm/property_ledger/internal/core/domain"
	portsrepo "github.com/quadrantpm/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/quadrantpm/property_ledger/internal/core/ports/services"
	"github.com/quadrantpm/property_ledger/internal/dto"
	"github.com/quadrantpm/property_ledger/internal/middleware"
)

// reconciliationService posts journals that match receipts and payments
// against imported bank-statement lines. The statement figure, not the
// original domain amount, is authoritative for these entries.
type reconciliationService struct {
	receiptRepo portsrepo.ReceiptRepository
	paymentRepo portsrepo.PaymentRepository
	bankTxnRepo portsrepo.BankTransactionRepository
	accountSvc  portssvc.AccountSvcFacade
	journalSvc  portssvc.JournalSvcFacade
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(receiptRepo portsrepo.ReceiptRepository, paymentRepo portsrepo.PaymentRepository, bankTxnRepo portsrepo.BankTransactionRepository, accountSvc portssvc.AccountSvcFacade, journalSvc portssvc.JournalSvcFacade) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		receiptRepo: receiptRepo,
		paymentRepo: paymentRepo,
		bankTxnRepo: bankTxnRepo,
		accountSvc:  accountSvc,
		journalSvc:  journalSvc,
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// PostBankReceipt reconciles a receipt against a bank-statement line: debit
// Bank and credit A/R Control for the bank transaction amount.
func (s *reconciliationService) PostBankReceipt(ctx context.Context, receiptID string, bankTxnID string, actorID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		return nil, fmt.Errorf("receipt %s: %w", receiptID, err)
	}
	bankTxn, err := s.bankTxnRepo.FindBankTransactionByID(ctx, bankTxnID)
	if err != nil {
		return nil, fmt.Errorf("bank transaction %s: %w", bankTxnID, err)
	}

	bankAccount, err := s.accountSvc.ResolveControlAccount(ctx, domain.ControlBank)
	if err != nil {
		return nil, err
	}
	arAccount, err := s.accountSvc.ResolveControlAccount(ctx, domain.ControlARControl)
	if err != nil {
		return nil, err
	}

	req := dto.PostJournalRequest{
		Date:       bankTxn.Date,
		Memo:       fmt.Sprintf("Bank Receipt Reconciliation - %s", bankTxn.Description),
		BuildingID: receipt.BuildingID,
		Lines: []dto.JournalLineInput{
			{AccountID: bankAccount.AccountID, Debit: bankTxn.Amount},
			{AccountID: arAccount.AccountID, Credit: bankTxn.Amount},
		},
	}

	journal, err := s.journalSvc.PostJournal(ctx, req, actorID)
	if err != nil {
		return nil, err
	}

	logger.Info("Bank receipt reconciled",
		slog.String("receipt_id", receiptID),
		slog.String("bank_txn_id", bankTxnID),
		slog.String("journal_id", journal.JournalID))
	return journal, nil
}

// PostBankPayment reconciles a supplier payment against a bank-statement
// line. Bank outflows arrive as negative amounts in the feed, so the absolute
// value is posted: debit A/P Control, credit Bank.
func (s *reconciliationService) PostBankPayment(ctx context.Context, paymentID string, bankTxnID string, actorID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("payment %s: %w", paymentID, err)
	}
	bankTxn, err := s.bankTxnRepo.FindBankTransactionByID(ctx, bankTxnID)
	if err != nil {
		return nil, fmt.Errorf("bank transaction %s: %w", bankTxnID, err)
	}

	bankAccount, err := s.accountSvc.ResolveControlAccount(ctx, domain.ControlBank)
	if err != nil {
		return nil, err
	}
	apAccount, err := s.accountSvc.ResolveControlAccount(ctx, domain.ControlAPControl)
	if err != nil {
		return nil, err
	}

	amount := bankTxn.Amount.Abs()
	req := dto.PostJournalRequest{
		Date:       bankTxn.Date,
		Memo:       fmt.Sprintf("Bank Payment Reconciliation - %s", bankTxn.Description),
		BuildingID: payment.BuildingID,
		Lines: []dto.JournalLineInput{
			{AccountID: apAccount.AccountID, Debit: amount},
			{AccountID: bankAccount.AccountID, Credit: amount},
		},
	}

	journal, err := s.journalSvc.PostJournal(ctx, req, actorID)
	if err != nil {
		return nil, err
	}

	logger.Info("Bank payment reconciled",
		slog.String("payment_id", paymentID),
		slog.String("bank_txn_id", bankTxnID),
		slog.String("journal_id", journal.JournalID))
	return journal, nil
}
