package accounting

import (
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RoundingTolerance absorbs floating-point rounding when comparing monetary
// sums: amounts within 0.01 of each other are treated as equal.
var RoundingTolerance = decimal.New(1, -2) // 0.01

// WithinTolerance reports whether a and b differ by no more than the rounding
// tolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(RoundingTolerance)
}

// SumDebitsAndCredits totals the debit and credit sides of a set of journal
// lines.
func SumDebitsAndCredits(lines []domain.JournalLine) (debits, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, line := range lines {
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}
	return debits, credits
}
