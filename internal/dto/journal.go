package dto

import (
	"time"

	"github.com/quadrantpm/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID       string          `json:"lineID"`
	AccountID    string          `json:"accountID"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	UnitID       *string         `json:"unitID,omitempty"`
	ContractorID *string         `json:"contractorID,omitempty"`
	WorksOrderID *string         `json:"worksOrderID,omitempty"`
	FundID       *string         `json:"fundID,omitempty"`
}

// JournalResponse defines the data returned for a journal header.
type JournalResponse struct {
	JournalID  string                `json:"journalID"`
	Date       time.Time             `json:"date"`
	Memo       string                `json:"memo"`
	BuildingID string                `json:"buildingID"`
	ScheduleID *string               `json:"scheduleID,omitempty"`
	CreatedAt  time.Time             `json:"createdAt"`
	CreatedBy  string                `json:"createdBy"`
	Lines      []JournalLineResponse `json:"lines,omitempty"`
}

// PostingResponse is returned by every posting endpoint.
type PostingResponse struct {
	JournalID string `json:"journalID"`
}

// BalanceResponse is returned by the balance verifier endpoint.
type BalanceResponse struct {
	AccountID string          `json:"accountID"`
	AsOf      time.Time       `json:"asOf"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToJournalLineResponse converts a domain.JournalLine to its DTO.
func ToJournalLineResponse(line *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:       line.LineID,
		AccountID:    line.AccountID,
		Debit:        line.Debit,
		Credit:       line.Credit,
		UnitID:       line.UnitID,
		ContractorID: line.ContractorID,
		WorksOrderID: line.WorksOrderID,
		FundID:       line.FundID,
	}
}

// ToJournalResponse converts a domain.Journal (with any loaded lines) to its DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:  j.JournalID,
		Date:       j.JournalDate,
		Memo:       j.Memo,
		BuildingID: j.BuildingID,
		ScheduleID: j.ScheduleID,
		CreatedAt:  j.CreatedAt,
		CreatedBy:  j.CreatedBy,
	}
	if len(j.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(j.Lines))
		for i := range j.Lines {
			resp.Lines[i] = ToJournalLineResponse(&j.Lines[i])
		}
	}
	return resp
}

// ToJournalResponses converts a slice of domain journals to DTOs.
func ToJournalResponses(journals []domain.Journal) []JournalResponse {
	responses := make([]JournalResponse, len(journals))
	for i := range journals {
		responses[i] = ToJournalResponse(&journals[i])
	}
	return responses
}
