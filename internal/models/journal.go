package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal is a gl_journals row.
type Journal struct {
	JournalID   string    `db:"journal_id"`
	JournalDate time.Time `db:"journal_date"`
	Memo        string    `db:"memo"`
	BuildingID  string    `db:"building_id"`
	ScheduleID  *string   `db:"schedule_id"` // Nullable
	AuditFields
}

// JournalLine is a gl_lines row.
type JournalLine struct {
	LineID       string          `db:"line_id"`
	JournalID    string          `db:"journal_id"`
	AccountID    string          `db:"account_id"`
	Debit        decimal.Decimal `db:"debit"`
	Credit       decimal.Decimal `db:"credit"`
	UnitID       *string         `db:"unit_id"`
	ContractorID *string         `db:"contractor_id"`
	WorksOrderID *string         `db:"works_order_id"`
	FundID       *string         `db:"fund_id"`
}
