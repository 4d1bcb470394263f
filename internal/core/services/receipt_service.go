package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quadrantpm/property_ledger/internal/apperrors"
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	portsrepo "github.com/quadrantpm/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/quadrantpm/property_ledger/internal/core/ports/services"
	"github.com/quadrantpm/property_ledger/internal/dto"
	"github.com/quadrantpm/property_ledger/internal/middleware"
	"github.com/quadrantpm/property_ledger/internal/utils/accounting"
)

// receiptService posts cash receipts and allocates them against demands.
type receiptService struct {
	receiptRepo portsrepo.ReceiptRepository
	demandRepo  portsrepo.DemandRepository
	accountSvc  portssvc.AccountSvcFacade
	journalSvc  portssvc.JournalSvcFacade
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(receiptRepo portsrepo.ReceiptRepository, demandRepo portsrepo.DemandRepository, accountSvc portssvc.AccountSvcFacade, journalSvc portssvc.JournalSvcFacade) portssvc.ReceiptSvcFacade {
	return &receiptService{
		receiptRepo: receiptRepo,
		demandRepo:  demandRepo,
		accountSvc:  accountSvc,
		journalSvc:  journalSvc,
	}
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// PostReceipt posts a receipt: debit Bank and credit A/R Control for the full
// receipt amount, then one allocation row per input allocation. The
// allocation total must equal the receipt amount; that is checked before any
// write. Allocation inserts run after the journal commit; a failure there
// leaves the journal posted and returns ErrPostedFollowUpFailed.
func (s *receiptService) PostReceipt(ctx context.Context, receiptID string, allocations []dto.AllocationInput, actorID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		return nil, fmt.Errorf("receipt %s: %w", receiptID, err)
	}

	bankAccount, err := s.accountSvc.ResolveControlAccount(ctx, domain.ControlBank)
	if err != nil {
		return nil, err
	}
	arAccount, err := s.accountSvc.ResolveControlAccount(ctx, domain.ControlARControl)
	if err != nil {
		return nil, err
	}

	totalAllocated := decimal.Zero
	for _, alloc := range allocations {
		totalAllocated = totalAllocated.Add(alloc.Amount)
	}
	if !accounting.WithinTolerance(totalAllocated, receipt.Amount) {
		return nil, fmt.Errorf("%w: allocation total must equal receipt amount (allocated %s, receipt %s)",
			apperrors.ErrValidation, totalAllocated.String(), receipt.Amount.String())
	}

	ref := receipt.PayerRef
	if ref == "" {
		ref = receipt.RawRef
	}

	req := dto.PostJournalRequest{
		Date:       receipt.Date,
		Memo:       fmt.Sprintf("Receipt - %s", ref),
		BuildingID: receipt.BuildingID,
		Lines: []dto.JournalLineInput{
			{AccountID: bankAccount.AccountID, Debit: receipt.Amount},
			{AccountID: arAccount.AccountID, Credit: receipt.Amount},
		},
	}

	journal, err := s.journalSvc.PostJournal(ctx, req, actorID)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.Allocation, len(allocations))
	for i, alloc := range allocations {
		rows[i] = domain.Allocation{
			AllocationID:   uuid.NewString(),
			ReceiptID:      receiptID,
			DemandHeaderID: alloc.DemandHeaderID,
			Amount:         alloc.Amount,
		}
	}
	if err := s.receiptRepo.SaveAllocations(ctx, rows); err != nil {
		logger.Error("Allocation insert failed after journal commit",
			slog.String("error", err.Error()),
			slog.String("receipt_id", receiptID),
			slog.String("journal_id", journal.JournalID))
		return journal, fmt.Errorf("%w: journal %s posted but allocations for receipt %s failed: %v",
			apperrors.ErrPostedFollowUpFailed, journal.JournalID, receiptID, err)
	}

	logger.Info("Receipt posted",
		slog.String("receipt_id", receiptID),
		slog.String("journal_id", journal.JournalID),
		slog.Int("allocation_count", len(rows)))
	return journal, nil
}

// GetDemandOutstanding returns a demand's total minus the amounts already
// allocated against it.
func (s *receiptService) GetDemandOutstanding(ctx context.Context, demandHeaderID string) (decimal.Decimal, error) {
	header, err := s.demandRepo.FindDemandHeaderByID(ctx, demandHeaderID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("demand header %s: %w", demandHeaderID, err)
	}

	allocated, err := s.receiptRepo.SumAllocationsByDemandHeader(ctx, demandHeaderID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum allocations for demand %s: %w", demandHeaderID, err)
	}

	return header.Total.Sub(allocated), nil
}
