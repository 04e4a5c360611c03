package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxprep/taxengine/internal/domain"
	"github.com/taxprep/taxengine/internal/rates"
)

// ScheduleACalculator computes itemized deductions and compares them to
// the standard deduction. The federal path applies the SALT cap and the
// $750k mortgage-debt limit; the California path keeps pre-TCJA rules: no
// SALT cap, a $1M debt limit, a 2% AGI floor on miscellaneous deductions,
// and a high-income limitation on the itemized total.
type ScheduleACalculator struct {
	FilingStatus domain.FilingStatus
	TaxYear      int
}

// NewScheduleACalculator creates a Schedule A calculator.
func NewScheduleACalculator(status domain.FilingStatus, taxYear int) *ScheduleACalculator {
	return &ScheduleACalculator{FilingStatus: status, TaxYear: taxYear}
}

// mortgageInterestDeduction prorates interest and points when the loan
// balance exceeds the acquisition-debt limit, then adds investment
// interest (which is not subject to the limit).
func mortgageInterestDeduction(data *domain.ScheduleAData, debtLimit decimal.Decimal) decimal.Decimal {
	interest := data.MortgageInterest.Add(data.MortgagePoints)
	if data.MortgageBalance.GreaterThan(debtLimit) && data.MortgageBalance.GreaterThan(decimal.Zero) {
		interest = interest.Mul(debtLimit).Div(data.MortgageBalance)
	}
	return interest.Add(data.InvestmentInterest)
}

// CalculateFederal computes the federal Schedule A result against the
// supplied standard deduction.
func (sc *ScheduleACalculator) CalculateFederal(data *domain.ScheduleAData, agi, standardDeduction decimal.Decimal) *domain.ScheduleAResult {
	medicalFloor := agi.Mul(rates.MedicalAGIFloorRate)
	medical := decimal.Max(data.MedicalExpenses.Sub(medicalFloor), decimal.Zero)

	saltUncapped := data.StateIncomeTaxPaid.
		Add(data.RealEstateTaxes).
		Add(data.PersonalPropertyTaxes).
		Add(data.TotalVehicleLicenseFees())
	salt := decimal.Min(saltUncapped, rates.FederalSALTCap(sc.FilingStatus))

	mortgage := mortgageInterestDeduction(data, rates.FederalMortgageDebtLimit(sc.FilingStatus))
	charitable := data.CashContributions.Add(data.NoncashContributions)
	other := data.CasualtyLosses.Add(data.OtherDeductions)

	totalItemized := medical.Add(salt).Add(mortgage).Add(charitable).Add(other)
	useItemized := totalItemized.GreaterThan(standardDeduction)
	amount := decimal.Max(totalItemized, standardDeduction)

	return &domain.ScheduleAResult{
		MedicalDeduction:          medical.Round(2),
		SALTDeduction:             salt.Round(2),
		SALTUncapped:              saltUncapped.Round(2),
		MortgageInterestDeduction: mortgage.Round(2),
		CharitableDeduction:       charitable.Round(2),
		OtherDeductions:           other.Round(2),
		TotalItemized:             totalItemized.Round(2),
		StandardDeduction:         standardDeduction,
		UseItemized:               useItemized,
		DeductionAmount:           amount.Round(2),
	}
}

// CalculateCalifornia computes the CA Schedule CA (540) itemized result.
// State income tax is excluded: California does not allow deducting its
// own income tax on its own return.
func (sc *ScheduleACalculator) CalculateCalifornia(data *domain.ScheduleAData, agi, standardDeduction decimal.Decimal) (*domain.ScheduleAResult, error) {
	medicalFloor := agi.Mul(rates.MedicalAGIFloorRate)
	medical := decimal.Max(data.MedicalExpenses.Sub(medicalFloor), decimal.Zero)

	saltUncapped := data.RealEstateTaxes.
		Add(data.PersonalPropertyTaxes).
		Add(data.TotalVehicleLicenseFees())
	salt := saltUncapped // no cap

	mortgage := mortgageInterestDeduction(data, rates.CAMortgageDebtLimitFor(sc.FilingStatus))
	charitable := data.CashContributions.Add(data.NoncashContributions)
	other := data.CasualtyLosses.Add(data.OtherDeductions)

	// Miscellaneous deductions over the 2% AGI floor.
	miscFloor := agi.Mul(rates.CAMiscFloorRate)
	misc := decimal.Max(data.StateMiscDeductions.Sub(miscFloor), decimal.Zero)

	totalItemized := medical.Add(salt).Add(mortgage).Add(charitable).Add(other).Add(misc)

	// High-income limitation: reduce by the lesser of 6% of the AGI excess
	// or 80% of the itemized total.
	limitation := decimal.Zero
	threshold, err := rates.CAItemizedLimitThreshold(sc.TaxYear, sc.FilingStatus)
	if err != nil {
		return nil, err
	}
	if agi.GreaterThan(threshold) {
		byIncome := agi.Sub(threshold).Mul(rates.CALimitationRate)
		byCap := totalItemized.Mul(rates.CALimitationCapRate)
		limitation = decimal.Min(byIncome, byCap)
		totalItemized = decimal.Max(totalItemized.Sub(limitation), decimal.Zero)
	}

	useItemized := totalItemized.GreaterThan(standardDeduction)
	amount := decimal.Max(totalItemized, standardDeduction)

	return &domain.ScheduleAResult{
		MedicalDeduction:          medical.Round(2),
		SALTDeduction:             salt.Round(2),
		SALTUncapped:              saltUncapped.Round(2),
		MortgageInterestDeduction: mortgage.Round(2),
		CharitableDeduction:       charitable.Round(2),
		OtherDeductions:           other.Round(2),
		MiscDeduction:             misc.Round(2),
		ItemizedLimitation:        limitation.Round(2),
		TotalItemized:             totalItemized.Round(2),
		StandardDeduction:         standardDeduction,
		UseItemized:               useItemized,
		DeductionAmount:           amount.Round(2),
	}, nil
}
