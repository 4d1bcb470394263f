package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierPayment is an outgoing cash record against a building's bank
// account. Its lifecycle is managed by the caller; posting only writes the
// ledger entry.
type SupplierPayment struct {
	PaymentID     string          `json:"paymentID"`
	BankAccountID string          `json:"bankAccountID"`
	BuildingID    string          `json:"buildingID"` // Resolved via bank account
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	PayeeRef      string          `json:"payeeRef"`
	AuditFields
}
