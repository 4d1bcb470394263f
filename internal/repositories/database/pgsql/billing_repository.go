package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quadrantpm/property_ledger/internal/apperrors"
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	portsrepo "github.com/quadrantpm/property_ledger/internal/core/ports/repositories"
	"github.com/quadrantpm/property_ledger/internal/models"
	"github.com/quadrantpm/property_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxDemandRepository struct {
	BaseRepository
}

// newPgxDemandRepository creates a new repository for demand data.
func newPgxDemandRepository(pool *pgxpool.Pool) portsrepo.DemandRepository {
	return &PgxDemandRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxDemandRepository implements portsrepo.DemandRepository
var _ portsrepo.DemandRepository = (*PgxDemandRepository)(nil)

// FindDemandHeaderByID retrieves a demand header with its lines.
func (r *PgxDemandRepository) FindDemandHeaderByID(ctx context.Context, demandHeaderID string) (*domain.DemandHeader, error) {
	query := `
		SELECT demand_header_id, building_id, unit_id, schedule_id,
		       period_start, period_end, total, status,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM ar_demand_headers
		WHERE demand_header_id = $1;
	`
	var m models.DemandHeader
	err := r.Pool.QueryRow(ctx, query, demandHeaderID).Scan(
		&m.DemandHeaderID,
		&m.BuildingID,
		&m.UnitID,
		&m.ScheduleID,
		&m.PeriodStart,
		&m.PeriodEnd,
		&m.Total,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("demand header not found: " + demandHeaderID)
		}
		return nil, apperrors.NewAppError(500, "failed to query demand header "+demandHeaderID, err)
	}

	header := mapping.ToDomainDemandHeader(m)

	lineQuery := `
		SELECT demand_line_id, demand_header_id, narrative, amount
		FROM ar_demand_lines
		WHERE demand_header_id = $1
		ORDER BY demand_line_id;
	`
	rows, err := r.Pool.Query(ctx, lineQuery, demandHeaderID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query demand lines for "+demandHeaderID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var lm models.DemandLine
		if err := rows.Scan(&lm.DemandLineID, &lm.DemandHeaderID, &lm.Narrative, &lm.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan demand line row", err)
		}
		header.Lines = append(header.Lines, mapping.ToDomainDemandLine(lm))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating demand line rows", err)
	}
	return &header, nil
}

// UpdateDemandStatus transitions a demand header's status.
func (r *PgxDemandRepository) UpdateDemandStatus(ctx context.Context, demandHeaderID string, status domain.DemandStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE ar_demand_headers
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE demand_header_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, demandHeaderID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of demand "+demandHeaderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("demand header not found: " + demandHeaderID)
	}
	return nil
}

type PgxReceiptRepository struct {
	BaseRepository
}

// newPgxReceiptRepository creates a new repository for receipt and allocation data.
func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepository {
	return &PgxReceiptRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReceiptRepository implements portsrepo.ReceiptRepository
var _ portsrepo.ReceiptRepository = (*PgxReceiptRepository)(nil)

// FindReceiptByID retrieves a receipt; the building is resolved through the
// owning bank account so callers never traverse that relationship themselves.
func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	query := `
		SELECT rc.receipt_id, rc.bank_account_id, ba.building_id,
		       rc.date, rc.amount, rc.payer_ref, rc.raw_ref,
		       rc.created_at, rc.created_by, rc.last_updated_at, rc.last_updated_by
		FROM ar_receipts rc
		JOIN bank_accounts ba ON ba.bank_account_id = rc.bank_account_id
		WHERE rc.receipt_id = $1;
	`
	var m models.Receipt
	err := r.Pool.QueryRow(ctx, query, receiptID).Scan(
		&m.ReceiptID,
		&m.BankAccountID,
		&m.BuildingID,
		&m.Date,
		&m.Amount,
		&m.PayerRef,
		&m.RawRef,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("receipt not found: " + receiptID)
		}
		return nil, apperrors.NewAppError(500, "failed to query receipt "+receiptID, err)
	}
	receipt := mapping.ToDomainReceipt(m)
	return &receipt, nil
}

// SaveAllocations inserts allocation rows in a single batch.
func (r *PgxReceiptRepository) SaveAllocations(ctx context.Context, allocations []domain.Allocation) error {
	if len(allocations) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO ar_allocations (allocation_id, receipt_id, demand_header_id, amount)
		VALUES ($1, $2, $3, $4);
	`
	for _, alloc := range allocations {
		m := mapping.ToModelAllocation(alloc)
		batch.Queue(query, m.AllocationID, m.ReceiptID, m.DemandHeaderID, m.Amount)
	}

	br := r.Pool.SendBatch(ctx, batch)
	defer br.Close()
	for range allocations {
		if _, err := br.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert allocations", err)
		}
	}
	return nil
}

// SumAllocationsByDemandHeader totals amounts already allocated to a demand.
func (r *PgxReceiptRepository) SumAllocationsByDemandHeader(ctx context.Context, demandHeaderID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM ar_allocations WHERE demand_header_id = $1;`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, demandHeaderID).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum allocations for demand "+demandHeaderID, err)
	}
	return total, nil
}
