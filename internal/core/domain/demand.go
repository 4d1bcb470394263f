package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DemandStatus is the lifecycle state of a service-charge demand. This
// subsystem only performs the draft -> sent transition; part-paid/paid are
// driven by allocation elsewhere.
type DemandStatus string

const (
	DemandDraft    DemandStatus = "draft"
	DemandSent     DemandStatus = "sent"
	DemandPartPaid DemandStatus = "part-paid"
	DemandPaid     DemandStatus = "paid"
)

// DemandHeader is a service-charge billing record for a unit over a period.
type DemandHeader struct {
	DemandHeaderID string          `json:"demandHeaderID"`
	BuildingID     string          `json:"buildingID"`
	UnitID         string          `json:"unitID"`
	ScheduleID     *string         `json:"scheduleID,omitempty"`
	PeriodStart    time.Time       `json:"periodStart"`
	PeriodEnd      time.Time       `json:"periodEnd"`
	Total          decimal.Decimal `json:"total"`
	Status         DemandStatus    `json:"status"`
	AuditFields
	Lines []DemandLine `json:"lines,omitempty"`
}

// DemandLine is a single charge within a demand.
type DemandLine struct {
	DemandLineID   string          `json:"demandLineID"`
	DemandHeaderID string          `json:"demandHeaderID"`
	Narrative      string          `json:"narrative"`
	Amount         decimal.Decimal `json:"amount"`
}
