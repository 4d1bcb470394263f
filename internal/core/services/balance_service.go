package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	portsrepo "github.com/quadrantpm/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/quadrantpm/property_ledger/internal/core/ports/services"
)

// balanceService recomputes account balances from the ledger, used by
// reconciliation UIs to cross-check against bank statements. Read-only.
type balanceService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.BalanceSvcFacade {
	return &balanceService{accountRepo: accountRepo}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// ValidateBankBalance returns the account's running balance as of the given
// date. A nil asOf defaults to today (UTC).
func (s *balanceService) ValidateBankBalance(ctx context.Context, bankAccountID string, asOf *time.Time) (decimal.Decimal, error) {
	date := time.Now().UTC()
	if asOf != nil {
		date = *asOf
	}
	// Balances are day-granular and include everything posted on the asOf
	// day itself, so the repository cutoff is the start of the next day.
	cutoff := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)

	balance, err := s.accountRepo.GetAccountBalanceAsOf(ctx, bankAccountID, cutoff)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute balance for account %s: %w", bankAccountID, err)
	}
	return balance, nil
}
