package repositories

// RepositoryProvider aggregates all repository facades so the service
// container can be wired from a single value.
type RepositoryProvider struct {
	AccountRepo AccountRepositoryFacade
	JournalRepo JournalRepositoryFacade
	DemandRepo  DemandRepository
	ReceiptRepo ReceiptRepository
	InvoiceRepo InvoiceRepository
	PaymentRepo PaymentRepository
	FundRepo    FundRepository
	BankTxnRepo BankTransactionRepository
	AuditRepo   AuditRepository
}
