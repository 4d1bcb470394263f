package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quadrantpm/property_ledger/internal/apperrors"
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	portsrepo "github.com/quadrantpm/property_ledger/internal/core/ports/repositories"
	"github.com/quadrantpm/property_ledger/internal/models"
	"github.com/quadrantpm/property_ledger/internal/utils/mapping"
)

type PgxFundRepository struct {
	BaseRepository
}

// newPgxFundRepository creates a new repository for building fund data.
func newPgxFundRepository(pool *pgxpool.Pool) portsrepo.FundRepository {
	return &PgxFundRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxFundRepository implements portsrepo.FundRepository
var _ portsrepo.FundRepository = (*PgxFundRepository)(nil)

// FindFundByID retrieves a fund by its ID.
func (r *PgxFundRepository) FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error) {
	query := `
		SELECT fund_id, building_id, name,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM funds
		WHERE fund_id = $1;
	`
	var m models.Fund
	err := r.Pool.QueryRow(ctx, query, fundID).Scan(
		&m.FundID,
		&m.BuildingID,
		&m.Name,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("fund not found: " + fundID)
		}
		return nil, apperrors.NewAppError(500, "failed to query fund "+fundID, err)
	}
	fund := mapping.ToDomainFund(m)
	return &fund, nil
}

type PgxBankTransactionRepository struct {
	BaseRepository
}

// newPgxBankTransactionRepository creates a new repository for bank-statement lines.
func newPgxBankTransactionRepository(pool *pgxpool.Pool) portsrepo.BankTransactionRepository {
	return &PgxBankTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBankTransactionRepository implements portsrepo.BankTransactionRepository
var _ portsrepo.BankTransactionRepository = (*PgxBankTransactionRepository)(nil)

// FindBankTransactionByID retrieves a bank transaction by its ID.
func (r *PgxBankTransactionRepository) FindBankTransactionByID(ctx context.Context, bankTxnID string) (*domain.BankTransaction, error) {
	query := `
		SELECT bank_txn_id, bank_account_id, date, amount, description
		FROM bank_txns
		WHERE bank_txn_id = $1;
	`
	var m models.BankTransaction
	err := r.Pool.QueryRow(ctx, query, bankTxnID).Scan(
		&m.BankTxnID,
		&m.BankAccountID,
		&m.Date,
		&m.Amount,
		&m.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("bank transaction not found: " + bankTxnID)
		}
		return nil, apperrors.NewAppError(500, "failed to query bank transaction "+bankTxnID, err)
	}
	txn := mapping.ToDomainBankTransaction(m)
	return &txn, nil
}
