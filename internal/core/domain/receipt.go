package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is an incoming payment against a building's bank account.
// BuildingID is resolved through the bank account when the receipt is loaded,
// so workflows never traverse that relationship themselves.
type Receipt struct {
	ReceiptID     string          `json:"receiptID"`
	BankAccountID string          `json:"bankAccountID"`
	BuildingID    string          `json:"buildingID"` // Resolved via bank account
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	PayerRef      string          `json:"payerRef"`
	RawRef        string          `json:"rawRef"`
	AuditFields
}

// Allocation links a receipt (or a portion of it) to a demand header.
// For a posting batch, allocation amounts must sum to the receipt amount.
type Allocation struct {
	AllocationID   string          `json:"allocationID"`
	ReceiptID      string          `json:"receiptID"`
	DemandHeaderID string          `json:"demandHeaderID"`
	Amount         decimal.Decimal `json:"amount"`
}
