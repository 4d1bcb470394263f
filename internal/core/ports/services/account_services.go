package services

import (
	"context"

	"github.com/quadrantpm/property_ledger/internal/core/domain"
)

// AccountSvcFacade is the chart-of-accounts lookup component. Pure reads;
// the chart itself is provisioned by external setup.
type AccountSvcFacade interface {
	// GetAccountByID retrieves an account by its identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ResolveControlAccount resolves a logical control-account role (Bank,
	// A/R Control, ...) through the configured code map. Absence of the
	// account is a configuration error, not a business error.
	ResolveControlAccount(ctx context.Context, role domain.ControlAccount) (*domain.Account, error)

	// ResolveFundAccount resolves the dedicated ledger account for a fund,
	// matched by the fund's name.
	ResolveFundAccount(ctx context.Context, fund domain.Fund) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of chart accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AuditSvcFacade appends immutable audit records. Logging failures are
// surfaced to observability but never fail the caller's primary operation.
type AuditSvcFacade interface {
	Log(ctx context.Context, actor, entity, action, entityID string, detail map[string]any)
}
