package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DemandHeader is an ar_demand_headers row.
type DemandHeader struct {
	DemandHeaderID string          `db:"demand_header_id"`
	BuildingID     string          `db:"building_id"`
	UnitID         string          `db:"unit_id"`
	ScheduleID     *string         `db:"schedule_id"`
	PeriodStart    time.Time       `db:"period_start"`
	PeriodEnd      time.Time       `db:"period_end"`
	Total          decimal.Decimal `db:"total"`
	Status         string          `db:"status"`
	AuditFields
}

// DemandLine is an ar_demand_lines row.
type DemandLine struct {
	DemandLineID   string          `db:"demand_line_id"`
	DemandHeaderID string          `db:"demand_header_id"`
	Narrative      string          `db:"narrative"`
	Amount         decimal.Decimal `db:"amount"`
}

// Receipt is an ar_receipts row joined to its bank account for the building.
type Receipt struct {
	ReceiptID     string          `db:"receipt_id"`
	BankAccountID string          `db:"bank_account_id"`
	BuildingID    string          `db:"building_id"` // From bank_accounts join
	Date          time.Time       `db:"date"`
	Amount        decimal.Decimal `db:"amount"`
	PayerRef      string          `db:"payer_ref"`
	RawRef        string          `db:"raw_ref"`
	AuditFields
}

// Allocation is an ar_allocations row.
type Allocation struct {
	AllocationID   string          `db:"allocation_id"`
	ReceiptID      string          `db:"receipt_id"`
	DemandHeaderID string          `db:"demand_header_id"`
	Amount         decimal.Decimal `db:"amount"`
}
