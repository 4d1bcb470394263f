package services

import (
	"context"
	"time"

	"github.com/quadrantpm/property_ledger/internal/core/domain"
	"github.com/quadrantpm/property_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// DemandSvcFacade posts service-charge demands to the ledger.
type DemandSvcFacade interface {
	// PostDemand posts a draft demand (debit A/R Control, credit Service
	// Charge Income) and transitions it to sent.
	PostDemand(ctx context.Context, demandHeaderID string, actorID string) (*domain.Journal, error)
}

// ReceiptSvcFacade posts cash receipts and allocates them to demands.
type ReceiptSvcFacade interface {
	// PostReceipt posts a receipt (debit Bank, credit A/R Control) and inserts
	// one allocation row per input allocation. Allocations must sum to the
	// receipt amount.
	PostReceipt(ctx context.Context, receiptID string, allocations []dto.AllocationInput, actorID string) (*domain.Journal, error)

	// GetDemandOutstanding returns a demand's total minus the sum of its
	// allocations, for allocation UIs.
	GetDemandOutstanding(ctx context.Context, demandHeaderID string) (decimal.Decimal, error)
}

// SupplierSvcFacade posts supplier invoices and payments.
type SupplierSvcFacade interface {
	// PostSupplierInvoice posts a draft/approved invoice (expense and VAT
	// debits per line, one A/P Control credit for the gross total) and
	// transitions it to posted.
	PostSupplierInvoice(ctx context.Context, invoiceID string, actorID string) (*domain.Journal, error)

	// PostSupplierPayment posts a supplier payment (debit A/P Control, credit
	// Bank).
	PostSupplierPayment(ctx context.Context, paymentID string, actorID string) (*domain.Journal, error)
}

// FundSvcFacade moves balance between two funds of the same building.
type FundSvcFacade interface {
	PostFundTransfer(ctx context.Context, req dto.PostFundTransferRequest, actorID string) (*domain.Journal, error)
}

// ReconciliationSvcFacade posts reconciliation journals matching domain
// records against bank-statement lines. The bank-statement figure is
// authoritative for these entries.
type ReconciliationSvcFacade interface {
	PostBankReceipt(ctx context.Context, receiptID string, bankTxnID string, actorID string) (*domain.Journal, error)
	PostBankPayment(ctx context.Context, paymentID string, bankTxnID string, actorID string) (*domain.Journal, error)
}

// BalanceSvcFacade independently recomputes account balances for
// reconciliation cross-checks. Read-only.
type BalanceSvcFacade interface {
	// ValidateBankBalance returns the account's ledger balance as of the
	// given date; asOf nil defaults to today.
	ValidateBankBalance(ctx context.Context, bankAccountID string, asOf *time.Time) (decimal.Decimal, error)
}
