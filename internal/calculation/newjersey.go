package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxprep/taxengine/internal/domain"
	"github.com/taxprep/taxengine/internal/rates"
)

// NewJerseyTaxCalculator computes the NJ-1040 Gross Income Tax.
// Simplified: the filing threshold stands in for a standard deduction.
type NewJerseyTaxCalculator struct {
	FilingStatus domain.FilingStatus
	TaxYear      int

	brackets  rates.Table
	threshold decimal.Decimal
}

// NewNewJerseyTaxCalculator creates an NJ calculator.
func NewNewJerseyTaxCalculator(status domain.FilingStatus, taxYear int) (*NewJerseyTaxCalculator, error) {
	brackets, err := rates.NewJerseyBrackets(taxYear, status)
	if err != nil {
		return nil, err
	}
	return &NewJerseyTaxCalculator{
		FilingStatus: status,
		TaxYear:      taxYear,
		brackets:     brackets,
		threshold:    rates.NewJerseyFilingThreshold(status),
	}, nil
}

func newNewJerseyCalculator(status domain.FilingStatus, taxYear int) (StateCalculator, error) {
	return NewNewJerseyTaxCalculator(status, taxYear)
}

// Calculate runs the NJ-1040 pipeline.
func (nc *NewJerseyTaxCalculator) Calculate(in StateInput) (*domain.TaxCalculation, error) {
	grossIncome := in.Income.TotalIncome().Sub(in.USTreasuryInterest)
	taxableIncome := decimal.Max(grossIncome.Sub(nc.threshold), decimal.Zero)

	baseTax, breakdown, err := progressiveTax(nc.brackets, taxableIncome)
	if err != nil {
		return nil, err
	}
	totalCredits := in.Credits.Total()
	taxAfterCredits := decimal.Max(baseTax.Sub(totalCredits), decimal.Zero)

	return &domain.TaxCalculation{
		Jurisdiction:        "New Jersey",
		TaxYear:             nc.TaxYear,
		GrossIncome:         grossIncome.Round(2),
		Adjustments:         decimal.Zero,
		AdjustedGrossIncome: grossIncome.Round(2),
		Deductions:          nc.threshold.Round(2),
		DeductionMethod:     "standard",
		TaxableIncome:       taxableIncome.Round(2),
		TaxBeforeCredits:    baseTax.Round(2),
		Credits:             totalCredits.Round(2),
		TaxAfterCredits:     taxAfterCredits.Round(2),
		TaxWithheld:         in.StateWithheld.Round(2),
		EstimatedPayments:   in.EstimatedPayments.Round(2),
		BracketBreakdown:    breakdown,
		ScheduleE:           in.ScheduleE,
	}, nil
}
