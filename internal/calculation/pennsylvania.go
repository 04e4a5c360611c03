package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/taxprep/taxengine/internal/domain"
	"github.com/taxprep/taxengine/internal/rates"
)

// PennsylvaniaTaxCalculator computes the PA-40 flat 3.07% tax. PA has no
// standard deduction.
type PennsylvaniaTaxCalculator struct {
	FilingStatus domain.FilingStatus
	TaxYear      int
	Rate         decimal.Decimal
}

// NewPennsylvaniaTaxCalculator creates a PA calculator.
func NewPennsylvaniaTaxCalculator(status domain.FilingStatus, taxYear int) (*PennsylvaniaTaxCalculator, error) {
	if !rates.YearSupported(taxYear) {
		return nil, fmt.Errorf("no pennsylvania tax rate for year %d", taxYear)
	}
	return &PennsylvaniaTaxCalculator{
		FilingStatus: status,
		TaxYear:      taxYear,
		Rate:         rates.PAFlatRate,
	}, nil
}

func newPennsylvaniaCalculator(status domain.FilingStatus, taxYear int) (StateCalculator, error) {
	return NewPennsylvaniaTaxCalculator(status, taxYear)
}

// Calculate runs the PA-40 pipeline.
func (pc *PennsylvaniaTaxCalculator) Calculate(in StateInput) (*domain.TaxCalculation, error) {
	grossIncome := in.Income.TotalIncome().Sub(in.USTreasuryInterest)
	taxableIncome := decimal.Max(grossIncome, decimal.Zero)
	baseTax := taxableIncome.Mul(pc.Rate)
	totalCredits := in.Credits.Total()
	taxAfterCredits := decimal.Max(baseTax.Sub(totalCredits), decimal.Zero)

	breakdown := []domain.BracketLine{{
		Lower:  decimal.Zero,
		Rate:   pc.Rate,
		Income: taxableIncome,
		Tax:    baseTax,
	}}

	return &domain.TaxCalculation{
		Jurisdiction:        "Pennsylvania",
		TaxYear:             pc.TaxYear,
		GrossIncome:         grossIncome.Round(2),
		Adjustments:         decimal.Zero,
		AdjustedGrossIncome: grossIncome.Round(2),
		Deductions:          decimal.Zero,
		DeductionMethod:     "none",
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
