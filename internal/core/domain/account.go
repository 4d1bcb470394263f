package domain

// AccountType defines the fundamental accounting class of a ledger account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
	FundClass AccountType = "FUND"
)

// Well-known control account codes. These are a fixed contract with the
// chart-of-accounts setup; posting fails with a configuration error when any
// required code has not been provisioned. Fund accounts are resolved by fund
// name rather than a fixed code.
const (
	CodeBank                = "1000"
	CodeARControl           = "1100"
	CodeAPControl           = "2000"
	CodeVATPayable          = "2300"
	CodeServiceChargeIncome = "4000"
)

// ControlAccount names a logical ledger role that posting workflows resolve
// to a concrete account. Keeping the role -> code mapping explicit (rather
// than scattering code literals through workflows) makes the chart dependency
// injectable and testable.
type ControlAccount string

const (
	ControlBank                ControlAccount = "bank"
	ControlARControl           ControlAccount = "ar_control"
	ControlAPControl           ControlAccount = "ap_control"
	ControlVATPayable          ControlAccount = "vat_payable"
	ControlServiceChargeIncome ControlAccount = "service_charge_income"
)

// ChartCodes maps logical control-account roles to chart codes.
type ChartCodes map[ControlAccount]string

// DefaultChartCodes returns the documented code contract.
func DefaultChartCodes() ChartCodes {
	return ChartCodes{
		ControlBank:                CodeBank,
		ControlARControl:           CodeARControl,
		ControlAPControl:           CodeAPControl,
		ControlVATPayable:          CodeVATPayable,
		ControlServiceChargeIncome: CodeServiceChargeIncome,
	}
}

// Account is an entry in the chart of accounts. Reference data only: this
// subsystem looks accounts up and never mutates them.
type Account struct {
	AccountID   string      `json:"accountID"` // Primary key (UUID)
	Code        string      `json:"code"`      // Human code, e.g. "1000" = Bank
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	AuditFields
}
