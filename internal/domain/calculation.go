package domain

import "github.com/shopspring/decimal"

// BracketLine is one row of the bracket breakdown: the income that fell
// into a bracket and the tax it generated. Upper is nil for the open-ended
// top bracket. Preferential marks lines produced by the qualified
// dividend / long-term gain stack.
type BracketLine struct {
	Lower        decimal.Decimal
	Upper        *decimal.Decimal
	Rate         decimal.Decimal
	Income       decimal.Decimal
	Tax          decimal.Decimal
	Preferential bool
}

// TaxCalculation is the jurisdiction-scoped result of one calculation run.
// All monetary fields are rounded to two decimal places at assembly.
// Jurisdiction-specific fields (CA*, SDI) are zero outside their path.
type TaxCalculation struct {
	Jurisdiction string
	TaxYear      int

	GrossIncome         decimal.Decimal
	Adjustments         decimal.Decimal
	AdjustedGrossIncome decimal.Decimal
	Deductions          decimal.Decimal
	DeductionMethod     string
	TaxableIncome       decimal.Decimal

	TaxBeforeCredits decimal.Decimal
	Credits          decimal.Decimal
	TaxAfterCredits  decimal.Decimal

	TaxWithheld       decimal.Decimal
	EstimatedPayments decimal.Decimal

	SelfEmploymentTax     decimal.Decimal
	AdditionalMedicareTax decimal.Decimal
	NetInvestmentTax      decimal.Decimal
	OrdinaryIncomeTax     decimal.Decimal
	PreferentialIncomeTax decimal.Decimal

	ChildTaxCredit decimal.Decimal

	BracketBreakdown []BracketLine

	ScheduleA *ScheduleAResult
	ScheduleE *ScheduleESummary

	// California-specific lines.
	CAMentalHealthTax decimal.Decimal
	CAExemptionCredit decimal.Decimal
	CARentersCredit   decimal.Decimal
	CASDI             decimal.Decimal
}

// TotalPayments is withholding plus estimated payments.
func (tc TaxCalculation) TotalPayments() decimal.Decimal {
	return tc.TaxWithheld.Add(tc.EstimatedPayments)
}

// RefundOrOwed is payments minus liability; positive means a refund.
func (tc TaxCalculation) RefundOrOwed() decimal.Decimal {
	return tc.TotalPayments().Sub(tc.TaxAfterCredits)
}

// EffectiveRate is tax after credits over gross income, zero when there is
// no income.
func (tc TaxCalculation) EffectiveRate() decimal.Decimal {
	if tc.GrossIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return tc.TaxAfterCredits.Div(tc.GrossIncome)
}
