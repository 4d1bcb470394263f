package services

import (
	"context"

	"github.com/quadrantpm/property_ledger/internal/core/domain"
	"github.com/quadrantpm/property_ledger/internal/dto"
)

// JournalSvcFacade is the single choke point through which every posting
// workflow writes ledger rows. No workflow persists journals directly.
type JournalSvcFacade interface {
	// PostJournal validates the candidate lines, persists the journal header
	// and lines atomically (compensating header delete on line failure), logs
	// an audit record, and returns the created journal.
	PostJournal(ctx context.Context, req dto.PostJournalRequest, createdBy string) (*domain.Journal, error)

	// GetJournalWithLines retrieves a journal header together with its lines.
	GetJournalWithLines(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournalsByBuilding retrieves a page of journal headers for a
	// building, newest first.
	ListJournalsByBuilding(ctx context.Context, buildingID string, limit int, offset int) ([]domain.Journal, error)
}
