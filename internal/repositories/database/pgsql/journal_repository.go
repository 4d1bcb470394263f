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

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal and line data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
// together with the single-transaction write capability.
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)
var _ portsrepo.JournalUnitWriter = (*PgxJournalRepository)(nil)

const insertJournalQuery = `
	INSERT INTO gl_journals (
		journal_id, journal_date, memo, building_id, schedule_id,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`

const insertJournalLineQuery = `
	INSERT INTO gl_lines (
		line_id, journal_id, account_id, debit, credit,
		unit_id, contractor_id, works_order_id, fund_id
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`

func journalInsertArgs(journal domain.Journal) []any {
	m := mapping.ToModelJournal(journal)
	return []any{
		m.JournalID,
		m.JournalDate,
		m.Memo,
		m.BuildingID,
		m.ScheduleID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

func queueJournalLines(batch *pgx.Batch, lines []domain.JournalLine) {
	for _, line := range lines {
		m := mapping.ToModelJournalLine(line)
		batch.Queue(insertJournalLineQuery,
			m.LineID,
			m.JournalID,
			m.AccountID,
			m.Debit,
			m.Credit,
			m.UnitID,
			m.ContractorID,
			m.WorksOrderID,
			m.FundID,
		)
	}
}

// SaveJournalWithLines persists a journal header and all of its lines inside
// one database transaction.
func (r *PgxJournalRepository) SaveJournalWithLines(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, insertJournalQuery, journalInsertArgs(journal)...); err != nil {
		return apperrors.NewAppError(500, "failed to insert journal "+journal.JournalID, err)
	}

	batch := &pgx.Batch{}
	queueJournalLines(batch, lines)
	br := tx.SendBatch(ctx, batch)
	for range lines {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to insert journal lines", err)
		}
	}
	// The batch must be closed before the transaction can commit.
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert journal lines", err)
	}

	return r.Commit(ctx, tx)
}

// SaveJournal persists a journal header row.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	if _, err := r.Pool.Exec(ctx, insertJournalQuery, journalInsertArgs(journal)...); err != nil {
		return apperrors.NewAppError(500, "failed to insert journal "+journal.JournalID, err)
	}
	return nil
}

// SaveJournalLines persists all lines of a journal in a single batch.
func (r *PgxJournalRepository) SaveJournalLines(ctx context.Context, lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	queueJournalLines(batch, lines)

	br := r.Pool.SendBatch(ctx, batch)
	defer br.Close()
	for range lines {
		if _, err := br.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert journal lines", err)
		}
	}
	return nil
}

// DeleteJournal removes a journal header. Lines cascade at the schema level,
// but the caller only invokes this before any line exists.
func (r *PgxJournalRepository) DeleteJournal(ctx context.Context, journalID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM gl_journals WHERE journal_id = $1;`, journalID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete journal "+journalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("journal not found: " + journalID)
	}
	return nil
}

const journalColumns = `
	journal_id, journal_date, memo, building_id, schedule_id,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanJournal(row pgx.Row) (*models.Journal, error) {
	var m models.Journal
	err := row.Scan(
		&m.JournalID,
		&m.JournalDate,
		&m.Memo,
		&m.BuildingID,
		&m.ScheduleID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindJournalByID retrieves a journal header by its ID.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM gl_journals WHERE journal_id = $1;`
	m, err := scanJournal(r.Pool.QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("journal not found: " + journalID)
		}
		return nil, apperrors.NewAppError(500, "failed to query journal "+journalID, err)
	}
	journal := mapping.ToDomainJournal(*m)
	return &journal, nil
}

// FindLinesByJournalID retrieves all lines belonging to a journal.
func (r *PgxJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, journal_id, account_id, debit, credit,
		       unit_id, contractor_id, works_order_id, fund_id
		FROM gl_lines
		WHERE journal_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for journal "+journalID, err)
	}
	defer rows.Close()

	lines := make([]models.JournalLine, 0)
	for rows.Next() {
		var m models.JournalLine
		err := rows.Scan(
			&m.LineID,
			&m.JournalID,
			&m.AccountID,
			&m.Debit,
			&m.Credit,
			&m.UnitID,
			&m.ContractorID,
			&m.WorksOrderID,
			&m.FundID,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal line rows", err)
	}
	return mapping.ToDomainJournalLines(lines), nil
}

// ListJournalsByBuilding retrieves a page of journal headers for a building,
// newest first.
func (r *PgxJournalRepository) ListJournalsByBuilding(ctx context.Context, buildingID string, limit int, offset int) ([]domain.Journal, error) {
	query := `
		SELECT ` + journalColumns + `
		FROM gl_journals
		WHERE building_id = $1
		ORDER BY journal_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, buildingID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list journals for building "+buildingID, err)
	}
	defer rows.Close()

	journals := make([]domain.Journal, 0)
	for rows.Next() {
		m, err := scanJournal(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal row", err)
		}
		journals = append(journals, mapping.ToDomainJournal(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal rows", err)
	}
	return journals, nil
}
