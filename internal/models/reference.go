package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fund is a funds row.
type Fund struct {
	FundID     string `db:"fund_id"`
	BuildingID string `db:"building_id"`
	Name       string `db:"name"`
	AuditFields
}

// BankTransaction is a bank_txns row.
type BankTransaction struct {
	BankTxnID     string          `db:"bank_txn_id"`
	BankAccountID string          `db:"bank_account_id"`
	Date          time.Time       `db:"date"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
}

// AuditLogEntry is an audit_log row; Detail is stored as JSONB.
type AuditLogEntry struct {
	AuditID   string         `db:"audit_id"`
	Actor     string         `db:"actor"`
	Entity    string         `db:"entity"`
	Action    string         `db:"action"`
	EntityID  string         `db:"entity_id"`
	Detail    map[string]any `db:"detail"`
	CreatedAt time.Time      `db:"created_at"`
}
