package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is an externally sourced bank-statement line. The sign of
// Amount indicates direction: inflows positive, outflows negative. Used only
// to drive reconciliation journals; never mutated here.
type BankTransaction struct {
	BankTxnID     string          `json:"bankTxnID"`
	BankAccountID string          `json:"bankAccountID"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
}
