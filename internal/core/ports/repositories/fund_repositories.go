package repositories

import (
	"context"

	"github.com/quadrantpm/property_ledger/internal/core/domain"
)

// FundRepository provides access to building fund records.
type FundRepository interface {
	// FindFundByID retrieves a fund by its identifier.
	FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error)
}

// BankTransactionRepository provides access to imported bank-statement lines.
type BankTransactionRepository interface {
	// FindBankTransactionByID retrieves a bank transaction by its identifier.
	FindBankTransactionByID(ctx context.Context, bankTxnID string) (*domain.BankTransaction, error)
}
