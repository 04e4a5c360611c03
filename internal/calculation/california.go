package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxprep/taxengine/internal/domain"
	"github.com/taxprep/taxengine/internal/rates"
)

// CaliforniaTaxCalculator computes Form 540 liability: progressive
// brackets, the Mental Health Services surtax, the exemption credit with
// its high-income phase-out, and the renter's credit.
type CaliforniaTaxCalculator struct {
	FilingStatus domain.FilingStatus
	TaxYear      int

	brackets    rates.Table
	standardDed decimal.Decimal
}

// NewCaliforniaTaxCalculator creates a CA calculator, failing on
// unsupported years.
func NewCaliforniaTaxCalculator(status domain.FilingStatus, taxYear int) (*CaliforniaTaxCalculator, error) {
	brackets, err := rates.CaliforniaBrackets(taxYear, status)
	if err != nil {
		return nil, err
	}
	standard, err := rates.CaliforniaStandardDeduction(taxYear, status)
	if err != nil {
		return nil, err
	}
	return &CaliforniaTaxCalculator{
		FilingStatus: status,
		TaxYear:      taxYear,
		brackets:     brackets,
		standardDed:  standard,
	}, nil
}

func newCaliforniaCalculator(status domain.FilingStatus, taxYear int) (StateCalculator, error) {
	return NewCaliforniaTaxCalculator(status, taxYear)
}

// MentalHealthTax is the flat 1% Prop 63 surtax on taxable income above
// $1,000,000.
func (cc *CaliforniaTaxCalculator) MentalHealthTax(taxableIncome decimal.Decimal) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(rates.CAMentalHealthThreshold) {
		return decimal.Zero
	}
	return taxableIncome.Sub(rates.CAMentalHealthThreshold).Mul(rates.CAMentalHealthRate)
}

// ExemptionCredit computes the per-exemption credit, phased out by $6 per
// $2,500 (or fraction) of federal AGI above the threshold.
func (cc *CaliforniaTaxCalculator) ExemptionCredit(numExemptions int, federalAGI decimal.Decimal) (decimal.Decimal, error) {
	perExemption, err := rates.CAExemptionCredit(cc.TaxYear)
	if err != nil {
		return decimal.Zero, err
	}
	credit := perExemption.Mul(decimal.NewFromInt(int64(numExemptions)))
	if federalAGI.LessThanOrEqual(decimal.Zero) || credit.LessThanOrEqual(decimal.Zero) {
		return credit, nil
	}
	threshold, err := rates.CAExemptionPhaseOutThreshold(cc.TaxYear, cc.FilingStatus)
	if err != nil {
		return decimal.Zero, err
	}
	if federalAGI.LessThanOrEqual(threshold) {
		return credit, nil
	}
	increments := federalAGI.Sub(threshold).Div(rates.CAExemptionPhaseOutStep).Ceil()
	reduction := increments.Mul(rates.CAExemptionPhaseOutReduction)
	return decimal.Max(credit.Sub(reduction), decimal.Zero), nil
}

// RentersCredit returns the nonrefundable renter's credit when the
// taxpayer rented their residence and CA AGI is under the limit.
func (cc *CaliforniaTaxCalculator) RentersCredit(caAGI decimal.Decimal, isRenter bool) (decimal.Decimal, error) {
	if !isRenter {
		return decimal.Zero, nil
	}
	limit, err := rates.CARentersCreditAGILimit(cc.TaxYear, cc.FilingStatus)
	if err != nil {
		return decimal.Zero, err
	}
	if caAGI.GreaterThan(limit) {
		return decimal.Zero, nil
	}
	return rates.CARentersCredit(cc.TaxYear, cc.FilingStatus)
}

// SDI computes State Disability Insurance withholding on wages up to the
// wage base.
func (cc *CaliforniaTaxCalculator) SDI(wages decimal.Decimal) (decimal.Decimal, error) {
	base, err := rates.CASDIWageBase(cc.TaxYear)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.Min(wages, base).Mul(rates.CASDIRate), nil
}

// adjustments returns CA above-the-line adjustments. CA conforms to the
// federal half-SE-tax deduction.
func (cc *CaliforniaTaxCalculator) adjustments(income domain.TaxableIncome) decimal.Decimal {
	if income.SelfEmploymentIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	seNet := income.SelfEmploymentIncome.Mul(rates.SENetEarningsFactor)
	seTax := seNet.Mul(rates.SESocialSecurityRate.Add(rates.SEMedicareRate))
	return seTax.Div(two)
}

// Calculate runs the full Form 540 pipeline.
func (cc *CaliforniaTaxCalculator) Calculate(in StateInput) (*domain.TaxCalculation, error) {
	grossIncome := in.Income.TotalIncome().Sub(in.USTreasuryInterest)
	adjustments := cc.adjustments(in.Income)
	caAGI := grossIncome.Sub(adjustments)

	var scheduleA *domain.ScheduleAResult
	deductionAmount := cc.standardDed
	deductionMethod := "standard"

	switch {
	case in.ScheduleAData != nil:
		result, err := NewScheduleACalculator(cc.FilingStatus, cc.TaxYear).CalculateCalifornia(in.ScheduleAData, caAGI, cc.standardDed)
		if err != nil {
			return nil, err
		}
		scheduleA = result
		deductionAmount = result.DeductionAmount
		if result.UseItemized {
			deductionMethod = "itemized"
		}
	case !in.Deductions.UseStandard:
		itemized := in.Deductions.ItemizedDeductions
		deductionAmount = decimal.Max(itemized, cc.standardDed)
		if itemized.GreaterThan(cc.standardDed) {
			deductionMethod = "itemized"
		}
	}

	taxableIncome := decimal.Max(caAGI.Sub(deductionAmount), decimal.Zero)

	baseTax, breakdown, err := progressiveTax(cc.brackets, taxableIncome)
	if err != nil {
		return nil, err
	}
	mentalHealthTax := cc.MentalHealthTax(taxableIncome)
	taxBeforeCredits := baseTax.Add(mentalHealthTax)

	exemptionCredit, err := cc.ExemptionCredit(in.NumExemptions, in.FederalAGI)
	if err != nil {
		return nil, err
	}
	rentersCredit, err := cc.RentersCredit(caAGI, in.IsRenter)
	if err != nil {
		return nil, err
	}
	totalCredits := in.Credits.Total().Add(exemptionCredit).Add(rentersCredit)
	taxAfterCredits := decimal.Max(taxBeforeCredits.Sub(totalCredits), decimal.Zero)

	sdi, err := cc.SDI(in.Income.Wages)
	if err != nil {
		return nil, err
	}

	return &domain.TaxCalculation{
		Jurisdiction:        "California",
		TaxYear:             cc.TaxYear,
		GrossIncome:         grossIncome.Round(2),
		Adjustments:         adjustments.Round(2),
		AdjustedGrossIncome: caAGI.Round(2),
		Deductions:          deductionAmount.Round(2),
		DeductionMethod:     deductionMethod,
		TaxableIncome:       taxableIncome.Round(2),
		TaxBeforeCredits:    taxBeforeCredits.Round(2),
		Credits:             totalCredits.Round(2),
		TaxAfterCredits:     taxAfterCredits.Round(2),
		TaxWithheld:         in.StateWithheld.Round(2),
		EstimatedPayments:   in.EstimatedPayments.Round(2),

		BracketBreakdown: breakdown,
		ScheduleA:        scheduleA,
		ScheduleE:        in.ScheduleE,

		CAMentalHealthTax: mentalHealthTax.Round(2),
		CAExemptionCredit: exemptionCredit.Round(2),
		CARentersCredit:   rentersCredit.Round(2),
		CASDI:             sdi.Round(2),
	}, nil
}

// MarginalRate returns the CA bracket rate at the given taxable income.
func (cc *CaliforniaTaxCalculator) MarginalRate(taxableIncome decimal.Decimal) decimal.Decimal {
	return marginalRate(cc.brackets, taxableIncome)
}
