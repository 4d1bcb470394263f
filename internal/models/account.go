package models

// Account is a chart-of-accounts row.
type Account struct {
	AccountID   string `db:"account_id"`
	Code        string `db:"code"`
	Name        string `db:"name"`
	AccountType string `db:"account_type"`
	AuditFields
}
