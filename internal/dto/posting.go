package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLineInput is one candidate line of a journal to post. Exactly one of
// Debit/Credit must be strictly positive.
type JournalLineInput struct {
	AccountID    string          `json:"accountID" binding:"required"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	UnitID       *string         `json:"unitID,omitempty"`
	ContractorID *string         `json:"contractorID,omitempty"`
	WorksOrderID *string         `json:"worksOrderID,omitempty"`
	FundID       *string         `json:"fundID,omitempty"`
}

// PostJournalRequest carries a candidate journal for the journal writer.
type PostJournalRequest struct {
	Date       time.Time          `json:"date" binding:"required"`
	Memo       string             `json:"memo" binding:"required"`
	BuildingID string             `json:"buildingID" binding:"required"`
	ScheduleID *string            `json:"scheduleID,omitempty"`
	Lines      []JournalLineInput `json:"lines" binding:"required,min=2,dive"`
}

// AllocationInput links part of a receipt to a demand header.
type AllocationInput struct {
	DemandHeaderID string          `json:"demandHeaderID" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
}

// PostReceiptRequest is the HTTP body for posting a receipt.
type PostReceiptRequest struct {
	Allocations []AllocationInput `json:"allocations" binding:"required,min=1,dive"`
}

// PostFundTransferRequest moves an amount between two funds of one building.
type PostFundTransferRequest struct {
	FromFundID string          `json:"fromFundID" binding:"required"`
	ToFundID   string          `json:"toFundID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	BuildingID string          `json:"buildingID" binding:"required"`
	Memo       string          `json:"memo"`
}

// PostReconciliationRequest matches a domain record to a bank-statement line.
type PostReconciliationRequest struct {
	ReceiptID string `json:"receiptID,omitempty"`
	PaymentID string `json:"paymentID,omitempty"`
	BankTxnID string `json:"bankTxnID" binding:"required"`
}
