package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/quadrantpm/property_ledger/internal/apperrors"
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	portsrepo "github.com/quadrantpm/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/quadrantpm/property_ledger/internal/core/ports/services"
)

// accountService resolves chart-of-accounts entries. Control accounts are
// looked up through the injected role -> code map; fund accounts by the fund
// name. Pure reads.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	codes       domain.ChartCodes
}

// NewAccountService creates a new AccountService. A nil codes map falls back
// to the documented default code contract.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, codes domain.ChartCodes) portssvc.AccountSvcFacade {
	if codes == nil {
		codes = domain.DefaultChartCodes()
	}
	return &accountService{
		accountRepo: accountRepo,
		codes:       codes,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// GetAccountByID retrieves an account by its identifier.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return account, nil
}

// ResolveControlAccount resolves a logical control-account role to its chart
// account. A missing mapping or missing account is a configuration error:
// the chart must be provisioned before any posting workflow can succeed.
func (s *accountService) ResolveControlAccount(ctx context.Context, role domain.ControlAccount) (*domain.Account, error) {
	code, ok := s.codes[role]
	if !ok {
		return nil, fmt.Errorf("%w: no account code configured for role %q", apperrors.ErrConfiguration, role)
	}

	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s account (code %s) not found in chart of accounts", apperrors.ErrConfiguration, role, code)
		}
		return nil, fmt.Errorf("failed to resolve %s account: %w", role, err)
	}
	return account, nil
}

// ResolveFundAccount resolves the dedicated ledger account matching a fund's
// name.
func (s *accountService) ResolveFundAccount(ctx context.Context, fund domain.Fund) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByName(ctx, fund.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: fund account %q not found in chart of accounts", apperrors.ErrConfiguration, fund.Name)
		}
		return nil, fmt.Errorf("failed to resolve fund account %q: %w", fund.Name, err)
	}
	return account, nil
}

// ListAccounts retrieves a paginated list of chart accounts.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
