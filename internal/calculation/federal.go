package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxprep/taxengine/internal/domain"
	"github.com/taxprep/taxengine/internal/rates"
)

var two = decimal.NewFromInt(2)

// FederalInput is the snapshot one federal calculation run consumes.
type FederalInput struct {
	Income            domain.TaxableIncome
	Deductions        domain.Deductions
	Credits           domain.TaxCredits
	FederalWithheld   decimal.Decimal
	EstimatedPayments decimal.Decimal

	Age       int
	SpouseAge int
	IsBlind   bool

	QualifyingChildren int

	// MedicareWages (W-2 Box 5) drive the Additional Medicare computation
	// when present; gross wages are the fallback.
	MedicareWages decimal.Decimal

	ScheduleAData *domain.ScheduleAData
	ScheduleE     *domain.ScheduleESummary
}

// FederalTaxCalculator computes a complete Form 1040 liability for one
// tax year and filing status.
type FederalTaxCalculator struct {
	FilingStatus domain.FilingStatus
	TaxYear      int

	brackets      rates.Table
	preferential  rates.Table
	standardDed   decimal.Decimal
	additionalDed decimal.Decimal
}

// NewFederalTaxCalculator creates a federal calculator, failing on years
// without a complete table set.
func NewFederalTaxCalculator(status domain.FilingStatus, taxYear int) (*FederalTaxCalculator, error) {
	brackets, err := rates.FederalBrackets(taxYear, status)
	if err != nil {
		return nil, err
	}
	preferential, err := rates.PreferentialBrackets(taxYear, status)
	if err != nil {
		return nil, err
	}
	standard, err := rates.FederalStandardDeduction(taxYear, status)
	if err != nil {
		return nil, err
	}
	additional, err := rates.FederalAdditionalDeduction(taxYear, status)
	if err != nil {
		return nil, err
	}
	return &FederalTaxCalculator{
		FilingStatus:  status,
		TaxYear:       taxYear,
		brackets:      brackets,
		preferential:  preferential,
		standardDed:   standard,
		additionalDed: additional,
	}, nil
}

// StandardDeduction returns the standard deduction including the extra
// amounts for age 65+ and blindness. For joint filers the spouse's age
// adds another increment.
func (fc *FederalTaxCalculator) StandardDeduction(age, spouseAge int, isBlind bool) decimal.Decimal {
	deduction := fc.standardDed
	if age >= 65 {
		deduction = deduction.Add(fc.additionalDed)
	}
	if fc.FilingStatus == domain.FilingMarriedFilingJointly && spouseAge >= 65 {
		deduction = deduction.Add(fc.additionalDed)
	}
	if isBlind {
		deduction = deduction.Add(fc.additionalDed)
	}
	return deduction
}

// SelfEmploymentTax computes SE tax on net self-employment income and the
// deductible half. Net earnings are 92.35% of SE income; the Social
// Security portion is capped at the wage base; the 0.9% Additional
// Medicare on net earnings above the threshold is folded into the SE tax
// here, separately from the wage-based surtax in Calculate.
func (fc *FederalTaxCalculator) SelfEmploymentTax(selfEmploymentIncome decimal.Decimal) (tax, deductible decimal.Decimal, err error) {
	if selfEmploymentIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero, nil
	}
	wageBase, err := rates.SocialSecurityWageBase(fc.TaxYear)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	netEarnings := selfEmploymentIncome.Mul(rates.SENetEarningsFactor)
	ssTax := decimal.Min(netEarnings, wageBase).Mul(rates.SESocialSecurityRate)
	medicareTax := netEarnings.Mul(rates.SEMedicareRate)

	threshold := rates.AdditionalMedicareThreshold(fc.FilingStatus)
	if netEarnings.GreaterThan(threshold) {
		medicareTax = medicareTax.Add(netEarnings.Sub(threshold).Mul(rates.AdditionalMedicareRate))
	}

	tax = ssTax.Add(medicareTax)
	return tax, tax.Div(two), nil
}

// NetInvestmentIncomeTax computes the 3.8% NIIT. Net investment income is
// interest, dividends, and capital gains, plus rental income only when it
// is positive; rental losses never reduce the base.
func (fc *FederalTaxCalculator) NetInvestmentIncomeTax(income domain.TaxableIncome, agi decimal.Decimal) decimal.Decimal {
	threshold := rates.NIITThreshold(fc.FilingStatus)
	if agi.LessThanOrEqual(threshold) {
		return decimal.Zero
	}
	investmentIncome := income.InterestIncome.
		Add(income.DividendIncome).
		Add(income.CapitalGains()).
		Add(decimal.Max(income.RentalIncome, decimal.Zero))
	base := decimal.Min(investmentIncome, agi.Sub(threshold))
	if base.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return base.Mul(rates.NIITRate)
}

// AdditionalMedicareTax computes the 0.9% surtax on Medicare wages above
// the filing-status threshold.
func (fc *FederalTaxCalculator) AdditionalMedicareTax(medicareWages decimal.Decimal) decimal.Decimal {
	threshold := rates.AdditionalMedicareThreshold(fc.FilingStatus)
	if medicareWages.LessThanOrEqual(threshold) {
		return decimal.Zero
	}
	return medicareWages.Sub(threshold).Mul(rates.AdditionalMedicareRate)
}

// ChildTaxCredit computes the credit for qualifying children, reduced by
// $50 per full or partial $1,000 of AGI above the phase-out threshold.
func (fc *FederalTaxCalculator) ChildTaxCredit(qualifyingChildren int, agi decimal.Decimal) decimal.Decimal {
	if qualifyingChildren <= 0 {
		return decimal.Zero
	}
	credit := rates.CTCPerChild.Mul(decimal.NewFromInt(int64(qualifyingChildren)))
	threshold := rates.CTCPhaseOutThreshold(fc.FilingStatus)
	if agi.GreaterThan(threshold) {
		increments := agi.Sub(threshold).Div(rates.CTCPhaseOutStep).Ceil()
		credit = credit.Sub(increments.Mul(rates.CTCPhaseOutReduction))
	}
	return decimal.Max(credit, decimal.Zero)
}

// Calculate runs the full federal pipeline: SE tax, AGI, deduction
// selection, bracket tax with preferential stacking, surtaxes, and the
// Child Tax Credit. Monetary results are rounded once at assembly;
// intermediates keep full precision.
func (fc *FederalTaxCalculator) Calculate(in FederalInput) (*domain.TaxCalculation, error) {
	grossIncome := in.Income.TotalIncome()

	seTax, seDeduction, err := fc.SelfEmploymentTax(in.Income.SelfEmploymentIncome)
	if err != nil {
		return nil, err
	}
	adjustments := seDeduction
	agi := grossIncome.Sub(adjustments)

	// Deduction selection: a supplied Schedule A wins; otherwise the
	// caller's standard/itemized flag decides.
	standardDed := fc.StandardDeduction(in.Age, in.SpouseAge, in.IsBlind)
	deductions := in.Deductions
	deductions.StandardDeduction = standardDed
	if in.ScheduleAData != nil {
		deductions.ScheduleA = NewScheduleACalculator(fc.FilingStatus, fc.TaxYear).CalculateFederal(in.ScheduleAData, agi, standardDed)
	}

	scheduleA := deductions.ScheduleA
	deductionAmount := deductions.Amount()
	deductionMethod := "standard"
	if (scheduleA != nil && scheduleA.UseItemized) || (scheduleA == nil && !deductions.UseStandard) {
		deductionMethod = "itemized"
	}

	taxableIncome := decimal.Max(agi.Sub(deductionAmount), decimal.Zero)

	incomeTax, ordinaryTax, preferentialTax, breakdown, err := stackedTax(
		fc.brackets, fc.preferential, taxableIncome,
		in.Income.QualifiedDividends, in.Income.LongTermCapitalGains,
	)
	if err != nil {
		return nil, err
	}

	niit := fc.NetInvestmentIncomeTax(in.Income, agi)

	medicareWages := in.MedicareWages
	if medicareWages.IsZero() {
		medicareWages = in.Income.Wages
	}
	additionalMedicare := fc.AdditionalMedicareTax(medicareWages)

	taxBeforeCredits := incomeTax.Add(seTax).Add(additionalMedicare).Add(niit)

	childCredit := fc.ChildTaxCredit(in.QualifyingChildren, agi)
	totalCredits := in.Credits.Total().Add(childCredit)
	taxAfterCredits := decimal.Max(taxBeforeCredits.Sub(totalCredits), decimal.Zero)

	return &domain.TaxCalculation{
		Jurisdiction:        "Federal",
		TaxYear:             fc.TaxYear,
		GrossIncome:         grossIncome.Round(2),
		Adjustments:         adjustments.Round(2),
		AdjustedGrossIncome: agi.Round(2),
		Deductions:          deductionAmount.Round(2),
		DeductionMethod:     deductionMethod,
		TaxableIncome:       taxableIncome.Round(2),
		TaxBeforeCredits:    taxBeforeCredits.Round(2),
		Credits:             totalCredits.Round(2),
		TaxAfterCredits:     taxAfterCredits.Round(2),
		TaxWithheld:         in.FederalWithheld.Round(2),
		EstimatedPayments:   in.EstimatedPayments.Round(2),

		SelfEmploymentTax:     seTax.Round(2),
		AdditionalMedicareTax: additionalMedicare.Round(2),
		NetInvestmentTax:      niit.Round(2),
		OrdinaryIncomeTax:     ordinaryTax.Round(2),
		PreferentialIncomeTax: preferentialTax.Round(2),
		ChildTaxCredit:        childCredit.Round(2),

		BracketBreakdown: breakdown,
		ScheduleA:        scheduleA,
		ScheduleE:        in.ScheduleE,
	}, nil
}

// MarginalRate returns the ordinary bracket rate at the given taxable
// income.
func (fc *FederalTaxCalculator) MarginalRate(taxableIncome decimal.Decimal) decimal.Decimal {
	return marginalRate(fc.brackets, taxableIncome)
}
