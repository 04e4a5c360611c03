package domain

import "github.com/shopspring/decimal"

// Deductions carries the caller's deduction election. When a Schedule A
// result has been computed it wins over the UseStandard flag.
type Deductions struct {
	StandardDeduction  decimal.Decimal
	ItemizedDeductions decimal.Decimal
	UseStandard        bool
	ScheduleA          *ScheduleAResult
}

// Amount returns the active deduction. Exactly one path is active: a
// computed Schedule A result, otherwise the standard/itemized election.
func (d Deductions) Amount() decimal.Decimal {
	if d.ScheduleA != nil {
		return d.ScheduleA.DeductionAmount
	}
	if d.UseStandard {
		return d.StandardDeduction
	}
	return decimal.Max(d.ItemizedDeductions, decimal.Zero)
}

// TaxCredits holds the named credits that reduce tax after the bracket
// computation. All amounts are non-negative.
type TaxCredits struct {
	ChildTaxCredit      decimal.Decimal
	DependentCareCredit decimal.Decimal
	EarnedIncomeCredit  decimal.Decimal
	EducationCredits    decimal.Decimal
	OtherCredits        decimal.Decimal
}

// Total sums every credit.
func (tc TaxCredits) Total() decimal.Decimal {
	return tc.ChildTaxCredit.
		Add(tc.DependentCareCredit).
		Add(tc.EarnedIncomeCredit).
		Add(tc.EducationCredits).
		Add(tc.OtherCredits)
}
