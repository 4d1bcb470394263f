package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/quadrantpm/property_ledger/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	demandRepo := newPgxDemandRepository(dbPool)
	receiptRepo := newPgxReceiptRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	fundRepo := newPgxFundRepository(dbPool)
	bankTxnRepo := newPgxBankTransactionRepository(dbPool)
	auditRepo := newPgxAuditRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo: accountRepo,
		JournalRepo: journalRepo,
		DemandRepo:  demandRepo,
		ReceiptRepo: receiptRepo,
		InvoiceRepo: invoiceRepo,
		PaymentRepo: paymentRepo,
		FundRepo:    fundRepo,
		BankTxnRepo: bankTxnRepo,
		AuditRepo:   auditRepo,
	}
}
