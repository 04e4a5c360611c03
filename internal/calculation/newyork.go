package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxprep/taxengine/internal/domain"
	"github.com/taxprep/taxengine/internal/rates"
)

// NewYorkTaxCalculator computes IT-201 liability. Simplified: no New York
// City resident tax.
type NewYorkTaxCalculator struct {
	FilingStatus domain.FilingStatus
	TaxYear      int

	brackets    rates.Table
	standardDed decimal.Decimal
}

// NewNewYorkTaxCalculator creates a NY calculator.
func NewNewYorkTaxCalculator(status domain.FilingStatus, taxYear int) (*NewYorkTaxCalculator, error) {
	brackets, err := rates.NewYorkBrackets(taxYear, status)
	if err != nil {
		return nil, err
	}
	standard, err := rates.NewYorkStandardDeduction(taxYear, status)
	if err != nil {
		return nil, err
	}
	return &NewYorkTaxCalculator{
		FilingStatus: status,
		TaxYear:      taxYear,
		brackets:     brackets,
		standardDed:  standard,
	}, nil
}

func newNewYorkCalculator(status domain.FilingStatus, taxYear int) (StateCalculator, error) {
	return NewNewYorkTaxCalculator(status, taxYear)
}

// Calculate runs the IT-201 pipeline. NY starts from federal-style AGI
// and allows a simplified itemized comparison: SALT-capped real estate
// taxes plus mortgage interest plus cash contributions against the NY
// standard deduction.
func (nc *NewYorkTaxCalculator) Calculate(in StateInput) (*domain.TaxCalculation, error) {
	grossIncome := in.Income.TotalIncome().Sub(in.USTreasuryInterest)
	nyAGI := grossIncome

	deductionAmount := nc.standardDed
	deductionMethod := "standard"
	if data := in.ScheduleAData; data != nil {
		itemized := decimal.Min(data.RealEstateTaxes, rates.SALTCap).
			Add(data.MortgageInterest).
			Add(data.CashContributions)
		if itemized.GreaterThan(nc.standardDed) {
			deductionAmount = itemized
			deductionMethod = "itemized"
		}
	}

	taxableIncome := decimal.Max(nyAGI.Sub(deductionAmount), decimal.Zero)
	baseTax, breakdown, err := progressiveTax(nc.brackets, taxableIncome)
	if err != nil {
		return nil, err
	}
	totalCredits := in.Credits.Total()
	taxAfterCredits := decimal.Max(baseTax.Sub(totalCredits), decimal.Zero)

	return &domain.TaxCalculation{
		Jurisdiction:        "New York",
		TaxYear:             nc.TaxYear,
		GrossIncome:         grossIncome.Round(2),
		Adjustments:         decimal.Zero,
		AdjustedGrossIncome: nyAGI.Round(2),
		Deductions:          deductionAmount.Round(2),
		DeductionMethod:     deductionMethod,
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
