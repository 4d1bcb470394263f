package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quadrantpm/property_ledger/internal/apperrors"
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	portsrepo "github.com/quadrantpm/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/quadrantpm/property_ledger/internal/core/ports/services"
	"github.com/quadrantpm/property_ledger/internal/dto"
	"github.com/quadrantpm/property_ledger/internal/middleware"
)

// fundService moves balance between ring-fenced funds of one building.
type fundService struct {
	fundRepo   portsrepo.FundRepository
	accountSvc portssvc.AccountSvcFacade
	journalSvc portssvc.JournalSvcFacade
}

// NewFundService creates a new FundService.
func NewFundService(fundRepo portsrepo.FundRepository, accountSvc portssvc.AccountSvcFacade, journalSvc portssvc.JournalSvcFacade) portssvc.FundSvcFacade {
	return &fundService{
		fundRepo:   fundRepo,
		accountSvc: accountSvc,
		journalSvc: journalSvc,
	}
}

var _ portssvc.FundSvcFacade = (*fundService)(nil)

// PostFundTransfer posts a transfer between two funds: debit the destination
// fund's account, credit the source fund's account. Both funds must exist and
// belong to the same building; cross-building transfers are rejected before
// any write.
func (s *fundService) PostFundTransfer(ctx context.Context, req dto.PostFundTransferRequest, actorID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}

	fromFund, err := s.fundRepo.FindFundByID(ctx, req.FromFundID)
	if err != nil {
		return nil, fmt.Errorf("fund %s: %w", req.FromFundID, err)
	}
	toFund, err := s.fundRepo.FindFundByID(ctx, req.ToFundID)
	if err != nil {
		return nil, fmt.Errorf("fund %s: %w", req.ToFundID, err)
	}

	if fromFund.BuildingID != toFund.BuildingID {
		return nil, fmt.Errorf("%w: funds must belong to the same building (%s is in %s, %s is in %s)",
			apperrors.ErrValidation, fromFund.Name, fromFund.BuildingID, toFund.Name, toFund.BuildingID)
	}

	fromAccount, err := s.accountSvc.ResolveFundAccount(ctx, *fromFund)
	if err != nil {
		return nil, err
	}
	toAccount, err := s.accountSvc.ResolveFundAccount(ctx, *toFund)
	if err != nil {
		return nil, err
	}

	fromFundID := req.FromFundID
	toFundID := req.ToFundID
	journalReq := dto.PostJournalRequest{
		Date:       time.Now().UTC(),
		Memo:       fmt.Sprintf("Fund Transfer: %s to %s - %s", fromFund.Name, toFund.Name, req.Memo),
		BuildingID: req.BuildingID,
		Lines: []dto.JournalLineInput{
			{AccountID: toAccount.AccountID, Debit: req.Amount, FundID: &toFundID},
			{AccountID: fromAccount.AccountID, Credit: req.Amount, FundID: &fromFundID},
		},
	}

	journal, err := s.journalSvc.PostJournal(ctx, journalReq, actorID)
	if err != nil {
		return nil, err
	}

	logger.Info("Fund transfer posted",
		slog.String("from_fund_id", req.FromFundID),
		slog.String("to_fund_id", req.ToFundID),
		slog.String("journal_id", journal.JournalID))
	return journal, nil
}
