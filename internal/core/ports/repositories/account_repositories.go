package repositories

import (
	"context"
	"time"

	"github.com/quadrantpm/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for chart-of-accounts data. The chart
// is reference data: there are no write operations in this subsystem.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its human code (e.g. "1000").
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// FindAccountByName retrieves an account by its display name. Fund
	// accounts are resolved this way.
	FindAccountByName(ctx context.Context, name string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// BalanceReader defines the storage-side balance computation used by the
// balance verifier.
type BalanceReader interface {
	// GetAccountBalanceAsOf computes an account's balance (sum of debits minus
	// sum of credits across posted journal lines) over journals dated strictly
	// before the cutoff timestamp.
	GetAccountBalanceAsOf(ctx context.Context, accountID string, cutoff time.Time) (decimal.Decimal, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	BalanceReader
}
