package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/quadrantpm/property_ledger/internal/apperrors"
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	portssvc "github.com/quadrantpm/property_ledger/internal/core/ports/services"
	"github.com/quadrantpm/property_ledger/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, nil)
}

func (suite *AccountServiceTestSuite) TestResolveControlAccount_DefaultCodes() {
	ctx := context.Background()
	bank := &domain.Account{AccountID: uuid.NewString(), Code: "1000", Name: "Bank", AccountType: domain.Asset}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1000").Return(bank, nil).Once()

	account, err := suite.service.ResolveControlAccount(ctx, domain.ControlBank)

	suite.Require().NoError(err)
	suite.Equal(bank.AccountID, account.AccountID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestResolveControlAccount_CustomCodes() {
	ctx := context.Background()
	codes := domain.ChartCodes{domain.ControlBank: "9999"}
	service := services.NewAccountService(suite.mockAccountRepo, codes)
	bank := &domain.Account{AccountID: uuid.NewString(), Code: "9999", Name: "Bank", AccountType: domain.Asset}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "9999").Return(bank, nil).Once()

	account, err := service.ResolveControlAccount(ctx, domain.ControlBank)

	suite.Require().NoError(err)
	suite.Equal(bank.AccountID, account.AccountID)
}

func (suite *AccountServiceTestSuite) TestResolveControlAccount_UnconfiguredRole() {
	ctx := context.Background()
	service := services.NewAccountService(suite.mockAccountRepo, domain.ChartCodes{})

	_, err := service.ResolveControlAccount(ctx, domain.ControlVATPayable)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConfiguration)
}

func (suite *AccountServiceTestSuite) TestResolveControlAccount_MissingFromChart() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "2300").Return(nil, apperrors.NewNotFoundError("account not found")).Once()

	_, err := suite.service.ResolveControlAccount(ctx, domain.ControlVATPayable)

	// A provisioning gap is a configuration error, not a lookup miss.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConfiguration)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestResolveFundAccount_ByName() {
	ctx := context.Background()
	fund := domain.Fund{FundID: uuid.NewString(), BuildingID: uuid.NewString(), Name: "Reserve Fund"}
	account := &domain.Account{AccountID: uuid.NewString(), Name: "Reserve Fund", AccountType: domain.FundClass}

	suite.mockAccountRepo.On("FindAccountByName", ctx, "Reserve Fund").Return(account, nil).Once()

	got, err := suite.service.ResolveFundAccount(ctx, fund)

	suite.Require().NoError(err)
	suite.Equal(account.AccountID, got.AccountID)
}

func (suite *AccountServiceTestSuite) TestResolveFundAccount_Missing() {
	ctx := context.Background()
	fund := domain.Fund{FundID: uuid.NewString(), Name: "Sinking Fund"}

	suite.mockAccountRepo.On("FindAccountByName", ctx, "Sinking Fund").Return(nil, apperrors.NewNotFoundError("account not found")).Once()

	_, err := suite.service.ResolveFundAccount(ctx, fund)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConfiguration)
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
