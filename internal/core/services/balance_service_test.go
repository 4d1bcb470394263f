package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	portssvc "github.com/quadrantpm/property_ledger/internal/core/ports/services"
	"github.com/quadrantpm/property_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BalanceServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.BalanceSvcFacade
	accountID       string
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewBalanceService(suite.mockAccountRepo)
	suite.accountID = uuid.NewString()
}

func (suite *BalanceServiceTestSuite) TestValidateBankBalance_CutoffCoversWholeAsOfDay() {
	ctx := context.Background()
	asOf := time.Date(2026, 6, 15, 14, 30, 45, 0, time.UTC)
	// The asOf day is inclusive, so the repository cutoff is the next midnight.
	expected := time.Date(2026, 6, 16, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("GetAccountBalanceAsOf", ctx, suite.accountID, expected).Return(decimal.NewFromFloat(1234.56), nil).Once()

	balance, err := suite.service.ValidateBankBalance(ctx, suite.accountID, &asOf)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromFloat(1234.56)))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestValidateBankBalance_DefaultsToToday() {
	ctx := context.Background()
	now := time.Now().UTC()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)

	suite.mockAccountRepo.On("GetAccountBalanceAsOf", ctx, suite.accountID, tomorrow).Return(decimal.Zero, nil).Once()

	balance, err := suite.service.ValidateBankBalance(ctx, suite.accountID, nil)

	suite.Require().NoError(err)
	suite.True(balance.IsZero())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestValidateBankBalance_TodayIncludesIntradayPostings() {
	ctx := context.Background()
	// Posting workflows stamp journals with full timestamps; a journal posted
	// moments ago must fall inside the default "today" window.
	postedAt := time.Now().UTC()

	suite.mockAccountRepo.On("GetAccountBalanceAsOf", ctx, suite.accountID, mock.MatchedBy(func(cutoff time.Time) bool {
		return cutoff.After(postedAt)
	})).Return(decimal.NewFromFloat(250.00), nil).Once()

	balance, err := suite.service.ValidateBankBalance(ctx, suite.accountID, nil)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromFloat(250.00)))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestValidateBankBalance_RepoError() {
	ctx := context.Background()
	asOf := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("GetAccountBalanceAsOf", ctx, suite.accountID, mock.AnythingOfType("time.Time")).Return(nil, context.DeadlineExceeded).Once()

	_, err := suite.service.ValidateBankBalance(ctx, suite.accountID, &asOf)

	suite.Require().Error(err)
	suite.ErrorIs(err, context.DeadlineExceeded)
}

func TestBalanceService(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
