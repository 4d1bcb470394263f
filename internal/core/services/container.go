package services

import (
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	portsrepo "github.com/quadrantpm/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/quadrantpm/property_ledger/internal/core/ports/services"
)

// NewServiceContainer wires all posting services from the repository
// provider. The chart code map makes the chart-of-accounts dependency
// explicit; pass nil to use the documented defaults.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, codes domain.ChartCodes) *portssvc.ServiceContainer {
	accountSvc := NewAccountService(repos.AccountRepo, codes)
	auditSvc := NewAuditService(repos.AuditRepo)
	journalSvc := NewJournalService(repos.JournalRepo, auditSvc)

	return &portssvc.ServiceContainer{
		Account:        accountSvc,
		Journal:        journalSvc,
		Demand:         NewDemandService(repos.DemandRepo, accountSvc, journalSvc),
		Receipt:        NewReceiptService(repos.ReceiptRepo, repos.DemandRepo, accountSvc, journalSvc),
		Supplier:       NewSupplierService(repos.InvoiceRepo, repos.PaymentRepo, accountSvc, journalSvc),
		Fund:           NewFundService(repos.FundRepo, accountSvc, journalSvc),
		Reconciliation: NewReconciliationService(repos.ReceiptRepo, repos.PaymentRepo, repos.BankTxnRepo, accountSvc, journalSvc),
		Balance:        NewBalanceService(repos.AccountRepo),
	}
}
