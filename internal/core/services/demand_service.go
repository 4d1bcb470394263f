package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quadrantpm/property_ledger/internal/apperrors"
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	portsrepo "github.com/quadrantpm/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/quadrantpm/property_ledger/internal/core/ports/services"
	"github.com/quadrantpm/property_ledger/internal/dto"
	"github.com/quadrantpm/property_ledger/internal/middleware"
)

// demandService posts service-charge demands to the ledger.
type demandService struct {
	demandRepo portsrepo.DemandRepository
	accountSvc portssvc.AccountSvcFacade
	journalSvc portssvc.JournalSvcFacade
}

// NewDemandService creates a new DemandService.
func NewDemandService(demandRepo portsrepo.DemandRepository, accountSvc portssvc.AccountSvcFacade, journalSvc portssvc.JournalSvcFacade) portssvc.DemandSvcFacade {
	return &demandService{
		demandRepo: demandRepo,
		accountSvc: accountSvc,
		journalSvc: journalSvc,
	}
}

var _ portssvc.DemandSvcFacade = (*demandService)(nil)

// PostDemand posts a draft demand: debit A/R Control and credit Service
// Charge Income for the header total, both tagged with the billed unit. On
// success the demand transitions draft -> sent. The status update happens
// after the journal commit; if it fails the journal stays posted and the
// caller gets ErrPostedFollowUpFailed.
func (s *demandService) PostDemand(ctx context.Context, demandHeaderID string, actorID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	header, err := s.demandRepo.FindDemandHeaderByID(ctx, demandHeaderID)
	if err != nil {
		return nil, fmt.Errorf("demand header %s: %w", demandHeaderID, err)
	}

	if header.Status != domain.DemandDraft {
		return nil, fmt.Errorf("%w: demand %s is not in draft status (status is %s)",
			apperrors.ErrPrecondition, demandHeaderID, header.Status)
	}

	arAccount, err := s.accountSvc.ResolveControlAccount(ctx, domain.ControlARControl)
	if err != nil {
		return nil, err
	}
	incomeAccount, err := s.accountSvc.ResolveControlAccount(ctx, domain.ControlServiceChargeIncome)
	if err != nil {
		return nil, err
	}

	unitID := header.UnitID
	req := dto.PostJournalRequest{
		Date:       time.Now().UTC(),
		Memo:       fmt.Sprintf("Service Charge Demand - %s to %s", header.PeriodStart.Format("2006-01-02"), header.PeriodEnd.Format("2006-01-02")),
		BuildingID: header.BuildingID,
		ScheduleID: header.ScheduleID,
		Lines: []dto.JournalLineInput{
			{AccountID: arAccount.AccountID, Debit: header.Total, UnitID: &unitID},
			{AccountID: incomeAccount.AccountID, Credit: header.Total, UnitID: &unitID},
		},
	}

	journal, err := s.journalSvc.PostJournal(ctx, req, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.demandRepo.UpdateDemandStatus(ctx, demandHeaderID, domain.DemandSent, actorID, time.Now().UTC()); err != nil {
		logger.Error("Demand status update failed after journal commit",
			slog.String("error", err.Error()),
			slog.String("demand_header_id", demandHeaderID),
			slog.String("journal_id", journal.JournalID))
		return journal, fmt.Errorf("%w: journal %s posted but demand %s status update failed: %v",
			apperrors.ErrPostedFollowUpFailed, journal.JournalID, demandHeaderID, err)
	}

	logger.Info("Demand posted",
		slog.String("demand_header_id", demandHeaderID),
		slog.String("journal_id", journal.JournalID))
	return journal, nil
}
