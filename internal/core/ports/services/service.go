package services

// ServiceContainer aggregates all service facades for handler wiring.
type ServiceContainer struct {
	Account        AccountSvcFacade
	Journal        JournalSvcFacade
	Demand         DemandSvcFacade
	Receipt        ReceiptSvcFacade
	Supplier       SupplierSvcFacade
	Fund           FundSvcFacade
	Reconciliation ReconciliationSvcFacade
	Balance        BalanceSvcFacade
}
