package repositories

import (
	"context"

	"github.com/quadrantpm/property_ledger/internal/core/domain"
)

// JournalWriter defines write operations for journal data. The three methods
// stay separate so the posting engine can fall back to the compensating-delete
// path against stores that cannot offer a single transaction.
type JournalWriter interface {
	// SaveJournal persists a journal header.
	SaveJournal(ctx context.Context, journal domain.Journal) error

	// SaveJournalLines persists all lines of a journal in one batch.
	SaveJournalLines(ctx context.Context, lines []domain.JournalLine) error

	// DeleteJournal removes a journal header by ID. Used only as the
	// compensating rollback when line insertion fails.
	DeleteJournal(ctx context.Context, journalID string) error
}

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindJournalByID retrieves a specific journal header by its identifier.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindLinesByJournalID retrieves all lines belonging to a journal.
	FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error)

	// ListJournalsByBuilding retrieves a paginated list of journal headers for
	// a building, newest first.
	ListJournalsByBuilding(ctx context.Context, buildingID string, limit int, offset int) ([]domain.Journal, error)
}

// JournalUnitWriter is an optional write capability. A repository backed by a
// transactional store persists the header and its lines in one storage
// transaction; the posting engine prefers this over the stepwise write
// whenever the repository offers it.
type JournalUnitWriter interface {
	SaveJournalWithLines(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
