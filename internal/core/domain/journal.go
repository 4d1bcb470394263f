package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal is a header record for one atomic accounting event. A journal exists
// only if it is balanced; it and its lines are created as a single logical
// unit and are never updated or deleted afterwards (the compensating delete on
// line-insert failure is the sole exception).
type Journal struct {
	JournalID   string    `json:"journalID"` // Primary key (UUID)
	JournalDate time.Time `json:"journalDate"`
	Memo        string    `json:"memo"`
	BuildingID  string    `json:"buildingID"`
	ScheduleID  *string   `json:"scheduleID,omitempty"` // Originating service-charge schedule, if any
	AuditFields
	Lines []JournalLine `json:"lines,omitempty"` // Loaded separately
}

// JournalLine is one row within a journal. Exactly one of Debit/Credit is
// strictly positive; the other is exactly zero.
type JournalLine struct {
	LineID    string          `json:"lineID"`
	JournalID string          `json:"journalID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`

	// Optional dimensional tags.
	UnitID       *string `json:"unitID,omitempty"`
	ContractorID *string `json:"contractorID,omitempty"`
	WorksOrderID *string `json:"worksOrderID,omitempty"`
	FundID       *string `json:"fundID,omitempty"`
}
