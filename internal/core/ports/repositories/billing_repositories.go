package repositories

import (
	"context"
	"time"

	"github.com/quadrantpm/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DemandRepository provides access to service-charge demand records.
type DemandRepository interface {
	// FindDemandHeaderByID retrieves a demand header with its lines.
	FindDemandHeaderByID(ctx context.Context, demandHeaderID string) (*domain.DemandHeader, error)

	// UpdateDemandStatus transitions a demand header's status.
	UpdateDemandStatus(ctx context.Context, demandHeaderID string, status domain.DemandStatus, updatedBy string, updatedAt time.Time) error
}

// ReceiptRepository provides access to receipts and their allocations.
type ReceiptRepository interface {
	// FindReceiptByID retrieves a receipt with its building resolved through
	// the owning bank account.
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)

	// SaveAllocations inserts allocation rows linking a receipt to demand
	// headers.
	SaveAllocations(ctx context.Context, allocations []domain.Allocation) error

	// SumAllocationsByDemandHeader totals the amounts already allocated
	// against a demand header.
	SumAllocationsByDemandHeader(ctx context.Context, demandHeaderID string) (decimal.Decimal, error)
}
