package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/quadrantpm/property_ledger/internal/apperrors"
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	portssvc "github.com/quadrantpm/property_ledger/internal/core/ports/services"
	"github.com/quadrantpm/property_ledger/internal/core/services"
	"github.com/quadrantpm/property_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FundServiceTestSuite struct {
	suite.Suite
	mockFundRepo   *MockFundRepository
	mockAccountSvc *MockAccountService
	mockJournalSvc *MockJournalService
	service        portssvc.FundSvcFacade
	buildingID     string
	actorID        string
	reserveFund    domain.Fund
	generalFund    domain.Fund
	reserveAccount domain.Account
	generalAccount domain.Account
}

func (suite *FundServiceTestSuite) SetupTest() {
	suite.mockFundRepo = new(MockFundRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockJournalSvc = new(MockJournalService)
	suite.service = services.NewFundService(suite.mockFundRepo, suite.mockAccountSvc, suite.mockJournalSvc)

	suite.buildingID = uuid.NewString()
	suite.actorID = uuid.NewString()
	suite.reserveFund = domain.Fund{FundID: uuid.NewString(), BuildingID: suite.buildingID, Name: "Reserve Fund"}
	suite.generalFund = domain.Fund{FundID: uuid.NewString(), BuildingID: suite.buildingID, Name: "General Fund"}
	suite.reserveAccount = domain.Account{AccountID: uuid.NewString(), Name: "Reserve Fund", AccountType: domain.FundClass}
	suite.generalAccount = domain.Account{AccountID: uuid.NewString(), Name: "General Fund", AccountType: domain.FundClass}
}

func (suite *FundServiceTestSuite) transferRequest(amount decimal.Decimal) dto.PostFundTransferRequest {
	return dto.PostFundTransferRequest{
		FromFundID: suite.generalFund.FundID,
		ToFundID:   suite.reserveFund.FundID,
		Amount:     amount,
		BuildingID: suite.buildingID,
		Memo:       "Q1 reserve top-up",
	}
}

func (suite *FundServiceTestSuite) TestPostFundTransfer_Success() {
	ctx := context.Background()
	req := suite.transferRequest(decimal.NewFromFloat(1000.00))
	postedJournal := &domain.Journal{JournalID: uuid.NewString(), BuildingID: suite.buildingID}

	suite.mockFundRepo.On("FindFundByID", ctx, suite.generalFund.FundID).Return(&suite.generalFund, nil).Once()
	suite.mockFundRepo.On("FindFundByID", ctx, suite.reserveFund.FundID).Return(&suite.reserveFund, nil).Once()
	suite.mockAccountSvc.On("ResolveFundAccount", ctx, suite.generalFund).Return(&suite.generalAccount, nil).Once()
	suite.mockAccountSvc.On("ResolveFundAccount", ctx, suite.reserveFund).Return(&suite.reserveAccount, nil).Once()
	suite.mockJournalSvc.On("PostJournal", ctx, mock.MatchedBy(func(jr dto.PostJournalRequest) bool {
		if len(jr.Lines) != 2 {
			return false
		}
		debit, credit := jr.Lines[0], jr.Lines[1]
		return jr.Memo == "Fund Transfer: General Fund to Reserve Fund - Q1 reserve top-up" &&
			jr.BuildingID == suite.buildingID &&
			debit.AccountID == suite.reserveAccount.AccountID &&
			debit.Debit.Equal(req.Amount) &&
			debit.FundID != nil && *debit.FundID == suite.reserveFund.FundID &&
			credit.AccountID == suite.generalAccount.AccountID &&
			credit.Credit.Equal(req.Amount) &&
			credit.FundID != nil && *credit.FundID == suite.generalFund.FundID
	}), suite.actorID).Return(postedJournal, nil).Once()

	journal, err := suite.service.PostFundTransfer(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(postedJournal.JournalID, journal.JournalID)
	suite.mockFundRepo.AssertExpectations(suite.T())
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestPostFundTransfer_NonPositiveAmount() {
	ctx := context.Background()
	req := suite.transferRequest(decimal.Zero)

	_, err := suite.service.PostFundTransfer(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockFundRepo.AssertNotCalled(suite.T(), "FindFundByID", mock.Anything, mock.Anything)
}

func (suite *FundServiceTestSuite) TestPostFundTransfer_CrossBuildingRejected() {
	ctx := context.Background()
	otherBuilding := uuid.NewString()
	foreignFund := domain.Fund{FundID: uuid.NewString(), BuildingID: otherBuilding, Name: "Reserve Fund"}
	req := dto.PostFundTransferRequest{
		FromFundID: suite.generalFund.FundID,
		ToFundID:   foreignFund.FundID,
		Amount:     decimal.NewFromInt(100),
		BuildingID: suite.buildingID,
	}

	suite.mockFundRepo.On("FindFundByID", ctx, suite.generalFund.FundID).Return(&suite.generalFund, nil).Once()
	suite.mockFundRepo.On("FindFundByID", ctx, foreignFund.FundID).Return(&foreignFund, nil).Once()

	_, err := suite.service.PostFundTransfer(ctx, req, suite.actorID)

	// No journal may be written for a cross-building transfer.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "same building")
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "PostJournal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FundServiceTestSuite) TestPostFundTransfer_MissingFundAccount() {
	ctx := context.Background()
	req := suite.transferRequest(decimal.NewFromInt(100))

	suite.mockFundRepo.On("FindFundByID", ctx, suite.generalFund.FundID).Return(&suite.generalFund, nil).Once()
	suite.mockFundRepo.On("FindFundByID", ctx, suite.reserveFund.FundID).Return(&suite.reserveFund, nil).Once()
	suite.mockAccountSvc.On("ResolveFundAccount", ctx, suite.generalFund).Return(nil, apperrors.ErrConfiguration).Once()

	_, err := suite.service.PostFundTransfer(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConfiguration)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "PostJournal", mock.Anything, mock.Anything, mock.Anything)
}

func TestFundService(t *testing.T) {
	suite.Run(t, new(FundServiceTestSuite))
}
