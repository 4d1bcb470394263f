package services_test

import (
	"context"
	"testing"
	"time"

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

type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockReceiptRepo *MockReceiptRepository
	mockPaymentRepo *MockPaymentRepository
	mockBankTxnRepo *MockBankTransactionRepository
	mockAccountSvc  *MockAccountService
	mockJournalSvc  *MockJournalService
	service         portssvc.ReconciliationSvcFacade
	bankAccount     domain.Account
	arAccount       domain.Account
	apAccount       domain.Account
	buildingID      string
	actorID         string
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockReceiptRepo = new(MockReceiptRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockBankTxnRepo = new(MockBankTransactionRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockJournalSvc = new(MockJournalService)
	suite.service = services.NewReconciliationService(suite.mockReceiptRepo, suite.mockPaymentRepo, suite.mockBankTxnRepo, suite.mockAccountSvc, suite.mockJournalSvc)

	suite.buildingID = uuid.NewString()
	suite.actorID = uuid.NewString()
	suite.bankAccount = domain.Account{AccountID: uuid.NewString(), Code: "1000", Name: "Bank", AccountType: domain.Asset}
	suite.arAccount = domain.Account{AccountID: uuid.NewString(), Code: "1100", Name: "A/R Control", AccountType: domain.Asset}
	suite.apAccount = domain.Account{AccountID: uuid.NewString(), Code: "2000", Name: "A/P Control", AccountType: domain.Liability}
}

func (suite *ReconciliationServiceTestSuite) TestPostBankReceipt_UsesStatementAmount() {
	ctx := context.Background()
	receipt := &domain.Receipt{
		ReceiptID:  uuid.NewString(),
		BuildingID: suite.buildingID,
		Amount:     decimal.NewFromFloat(199.99), // Recorded amount differs from the statement
	}
	bankTxn := &domain.BankTransaction{
		BankTxnID:   uuid.NewString(),
		Date:        time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromFloat(200.00),
		Description: "FPS CREDIT SMITH",
	}
	postedJournal := &domain.Journal{JournalID: uuid.NewString()}

	suite.mockReceiptRepo.On("FindReceiptByID", ctx, receipt.ReceiptID).Return(receipt, nil).Once()
	suite.mockBankTxnRepo.On("FindBankTransactionByID", ctx, bankTxn.BankTxnID).Return(bankTxn, nil).Once()
	suite.mockAccountSvc.On("ResolveControlAccount", ctx, domain.ControlBank).Return(&suite.bankAccount, nil).Once()
	suite.mockAccountSvc.On("ResolveControlAccount", ctx, domain.ControlARControl).Return(&suite.arAccount, nil).Once()
	suite.mockJournalSvc.On("PostJournal", ctx, mock.MatchedBy(func(req dto.PostJournalRequest) bool {
		return req.Memo == "Bank Receipt Reconciliation - FPS CREDIT SMITH" &&
			req.Date.Equal(bankTxn.Date) &&
			req.BuildingID == suite.buildingID &&
			len(req.Lines) == 2 &&
			req.Lines[0].AccountID == suite.bankAccount.AccountID &&
			req.Lines[0].Debit.Equal(bankTxn.Amount) &&
			req.Lines[1].AccountID == suite.arAccount.AccountID &&
			req.Lines[1].Credit.Equal(bankTxn.Amount)
	}), suite.actorID).Return(postedJournal, nil).Once()

	journal, err := suite.service.PostBankReceipt(ctx, receipt.ReceiptID, bankTxn.BankTxnID, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(postedJournal.JournalID, journal.JournalID)
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestPostBankPayment_AbsoluteValueOfOutflow() {
	ctx := context.Background()
	payment := &domain.SupplierPayment{
		PaymentID:  uuid.NewString(),
		BuildingID: suite.buildingID,
		Amount:     decimal.NewFromFloat(500.00),
	}
	bankTxn := &domain.BankTransaction{
		BankTxnID:   uuid.NewString(),
		Date:        time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromFloat(-500.00), // Outflows are negative in the feed
		Description: "BACS ACME LIFTS",
	}
	postedJournal := &domain.Journal{JournalID: uuid.NewString()}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, payment.PaymentID).Return(payment, nil).Once()
	suite.mockBankTxnRepo.On("FindBankTransactionByID", ctx, bankTxn.BankTxnID).Return(bankTxn, nil).Once()
	suite.mockAccountSvc.On("ResolveControlAccount", ctx, domain.ControlBank).Return(&suite.bankAccount, nil).Once()
	suite.mockAccountSvc.On("ResolveControlAccount", ctx, domain.ControlAPControl).Return(&suite.apAccount, nil).Once()
	suite.mockJournalSvc.On("PostJournal", ctx, mock.MatchedBy(func(req dto.PostJournalRequest) bool {
		expected := decimal.NewFromFloat(500.00)
		return req.Memo == "Bank Payment Reconciliation - BACS ACME LIFTS" &&
			len(req.Lines) == 2 &&
			req.Lines[0].AccountID == suite.apAccount.AccountID &&
			req.Lines[0].Debit.Equal(expected) &&
			req.Lines[1].AccountID == suite.bankAccount.AccountID &&
			req.Lines[1].Credit.Equal(expected)
	}), suite.actorID).Return(postedJournal, nil).Once()

	journal, err := suite.service.PostBankPayment(ctx, payment.PaymentID, bankTxn.BankTxnID, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(postedJournal.JournalID, journal.JournalID)
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestPostBankReceipt_BankTxnNotFound() {
	ctx := context.Background()
	receipt := &domain.Receipt{ReceiptID: uuid.NewString(), BuildingID: suite.buildingID}
	bankTxnID := uuid.NewString()

	suite.mockReceiptRepo.On("FindReceiptByID", ctx, receipt.ReceiptID).Return(receipt, nil).Once()
	suite.mockBankTxnRepo.On("FindBankTransactionByID", ctx, bankTxnID).Return(nil, apperrors.NewNotFoundError("bank transaction not found")).Once()

	_, err := suite.service.PostBankReceipt(ctx, receipt.ReceiptID, bankTxnID, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "PostJournal", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconciliationService(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
