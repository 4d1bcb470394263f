package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quadrantpm/property_ledger/internal/core/domain"
	portsrepo "github.com/quadrantpm/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/quadrantpm/property_ledger/internal/core/ports/services"
	"github.com/quadrantpm/property_ledger/internal/dto"
	"github.com/quadrantpm/property_ledger/internal/middleware"
	"github.com/quadrantpm/property_ledger/internal/utils/accounting"
)

var (
	ErrJournalMinEntries = errors.New("journal must have at least two lines")
	ErrJournalUnbalanced = errors.New("journal not balanced")
	ErrLineDebitCredit   = errors.New("line must have exactly one of debit/credit")
)

// journalService is the journal validator and writer: the single choke point
// through which every posting workflow writes ledger rows.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	auditSvc    portssvc.AuditSvcFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		auditSvc:    auditSvc,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// validateLines enforces the double-entry invariants on candidate lines
// before anything is persisted. Pure validation; no side effects.
func (s *journalService) validateLines(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return ErrJournalMinEntries
	}

	for _, line := range lines {
		hasDebit := line.Debit.IsPositive()
		hasCredit := line.Credit.IsPositive()
		if line.Debit.IsNegative() || line.Credit.IsNegative() || hasDebit == hasCredit {
			return fmt.Errorf("%w (account %s: debit=%s, credit=%s)",
				ErrLineDebitCredit, line.AccountID, line.Debit.String(), line.Credit.String())
		}
	}

	debits, credits := accounting.SumDebitsAndCredits(lines)
	if !accounting.WithinTolerance(debits, credits) {
		return fmt.Errorf("%w: debits=%s, credits=%s",
			ErrJournalUnbalanced, debits.String(), credits.String())
	}

	return nil
}

// saveJournalUnit persists a header and its lines as one logical unit. When
// the repository can write both in a single storage transaction it does so;
// otherwise the header and lines are written stepwise and the header is
// deleted again if line insertion fails, so the ledger never holds a
// line-less journal.
func (s *journalService) saveJournalUnit(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if unitWriter, ok := s.journalRepo.(portsrepo.JournalUnitWriter); ok {
		if err := unitWriter.SaveJournalWithLines(ctx, journal, lines); err != nil {
			logger.Error("Failed to insert journal",
				slog.String("error", err.Error()), slog.String("journal_id", journal.JournalID))
			return fmt.Errorf("failed to save journal: %w", err)
		}
		return nil
	}

	if err := s.journalRepo.SaveJournal(ctx, journal); err != nil {
		logger.Error("Failed to insert journal header",
			slog.String("error", err.Error()), slog.String("journal_id", journal.JournalID))
		return fmt.Errorf("failed to save journal: %w", err)
	}

	if err := s.journalRepo.SaveJournalLines(ctx, lines); err != nil {
		logger.Error("Failed to insert journal lines, rolling back header",
			slog.String("error", err.Error()), slog.String("journal_id", journal.JournalID))
		if delErr := s.journalRepo.DeleteJournal(ctx, journal.JournalID); delErr != nil {
			// The ledger now holds a line-less header; this needs operator attention.
			logger.Error("Compensating delete of journal header failed",
				slog.String("error", delErr.Error()), slog.String("journal_id", journal.JournalID))
			return fmt.Errorf("failed to save journal lines: %w (compensating delete failed: %v)", err, delErr)
		}
		return fmt.Errorf("failed to save journal lines: %w", err)
	}

	return nil
}

// PostJournal validates and persists a journal with its lines. The header and
// lines form one logical unit; see saveJournalUnit for the write strategy.
func (s *journalService) PostJournal(ctx context.Context, req dto.PostJournalRequest, createdBy string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	journalID := uuid.NewString()

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, in := range req.Lines {
		lines[i] = domain.JournalLine{
			LineID:       uuid.NewString(),
			JournalID:    journalID,
			AccountID:    in.AccountID,
			Debit:        in.Debit,
			Credit:       in.Credit,
			UnitID:       in.UnitID,
			ContractorID: in.ContractorID,
			WorksOrderID: in.WorksOrderID,
			FundID:       in.FundID,
		}
	}

	if err := s.validateLines(lines); err != nil {
		return nil, err
	}

	journal := domain.Journal{
		JournalID:   journalID,
		JournalDate: req.Date,
		Memo:        req.Memo,
		BuildingID:  req.BuildingID,
		ScheduleID:  req.ScheduleID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}

	if err := s.saveJournalUnit(ctx, journal, lines); err != nil {
		return nil, err
	}

	debits, credits := accounting.SumDebitsAndCredits(lines)
	s.auditSvc.Log(ctx, createdBy, "gl_journals", "create", journalID, map[string]any{
		"memo":          req.Memo,
		"total_debits":  debits.String(),
		"total_credits": credits.String(),
	})

	logger.Info("Journal posted",
		slog.String("journal_id", journalID),
		slog.String("building_id", req.BuildingID),
		slog.Int("line_count", len(lines)))

	journal.Lines = lines
	return &journal, nil
}

// GetJournalWithLines retrieves a journal header together with its lines.
func (s *journalService) GetJournalWithLines(ctx context.Context, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}

	lines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for journal %s: %w", journalID, err)
	}
	journal.Lines = lines

	return journal, nil
}

// ListJournalsByBuilding retrieves a page of journal headers for a building.
func (s *journalService) ListJournalsByBuilding(ctx context.Context, buildingID string, limit int, offset int) ([]domain.Journal, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	journals, err := s.journalRepo.ListJournalsByBuilding(ctx, buildingID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list journals for building %s: %w", buildingID, err)
	}
	return journals, nil
}
