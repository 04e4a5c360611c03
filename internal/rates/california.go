package rates

import (
	"github.com/shopspring/decimal"
	"github.com/taxprep/taxengine/internal/domain"
)

var californiaBrackets = map[yearStatusKey]Table{
	{2025, domain.FilingSingle}: {
		b(10_756, 0.01), b(25_499, 0.02), b(40_245, 0.04), b(55_866, 0.06),
		b(70_606, 0.08), b(360_659, 0.093), b(432_787, 0.103), b(721_314, 0.113),
		top(0.123),
	},
	{2025, domain.FilingMarriedFilingJointly}: {
		b(21_512, 0.01), b(50_998, 0.02), b(80_490, 0.04), b(111_732, 0.06),
		b(141_212, 0.08), b(721_318, 0.093), b(865_574, 0.103), b(1_442_628, 0.113),
		top(0.123),
	},
	{2025, domain.FilingMarriedFilingSeparately}: {
		b(10_756, 0.01), b(25_499, 0.02), b(40_245, 0.04), b(55_866, 0.06),
		b(70_606, 0.08), b(360_659, 0.093), b(432_787, 0.103), b(721_314, 0.113),
		top(0.123),
	},
	{2025, domain.FilingHeadOfHousehold}: {
		b(21_512, 0.01), b(50_998, 0.02), b(65_744, 0.04), b(81_364, 0.06),
		b(96_107, 0.08), b(490_493, 0.093), b(588_593, 0.103), b(980_987, 0.113),
		top(0.123),
	},
	{2024, domain.FilingSingle}: {
		b(10_412, 0.01), b(24_684, 0.02), b(38_959, 0.04), b(54_081, 0.06),
		b(68_350, 0.08), b(349_137, 0.093), b(418_961, 0.103), b(698_271, 0.113),
		top(0.123),
	},
	{2024, domain.FilingMarriedFilingJointly}: {
		b(20_824, 0.01), b(49_368, 0.02), b(77_918, 0.04), b(108_162, 0.06),
		b(136_700, 0.08), b(698_274, 0.093), b(837_922, 0.103), b(1_396_542, 0.113),
		top(0.123),
	},
	{2024, domain.FilingMarriedFilingSeparately}: {
		b(10_412, 0.01), b(24_684, 0.02), b(38_959, 0.04), b(54_081, 0.06),
		b(68_350, 0.08), b(349_137, 0.093), b(418_961, 0.103), b(698_271, 0.113),
		top(0.123),
	},
	{2024, domain.FilingHeadOfHousehold}: {
		b(20_839, 0.01), b(49_371, 0.02), b(63_644, 0.04), b(78_765, 0.06),
		b(93_037, 0.08), b(474_824, 0.093), b(569_790, 0.103), b(949_649, 0.113),
		top(0.123),
	},
}

var californiaStandardDeduction = map[yearStatusKey]decimal.Decimal{
	{2025, domain.FilingSingle}:                  d(5_540),
	{2025, domain.FilingMarriedFilingJointly}:    d(11_080),
	{2025, domain.FilingMarriedFilingSeparately}: d(5_540),
	{2025, domain.FilingHeadOfHousehold}:         d(11_080),
	{2024, domain.FilingSingle}:                  d(5_363),
	{2024, domain.FilingMarriedFilingJointly}:    d(10_726),
	{2024, domain.FilingMarriedFilingSeparately}: d(5_363),
	{2024, domain.FilingHeadOfHousehold}:         d(10_726),
}

// Exemption credit phases out by $6 per $2,500 (or fraction) of federal AGI
// over the threshold.
var (
	californiaExemptionCredit = map[int]decimal.Decimal{
		2024: d(140),
		2025: d(144),
	}
	CAExemptionPhaseOutStep      = d(2_500)
	CAExemptionPhaseOutReduction = d(6)
)

var californiaExemptionPhaseOut = map[yearStatusKey]decimal.Decimal{
	{2025, domain.FilingSingle}:                  d(252_813),
	{2025, domain.FilingMarriedFilingJointly}:    d(505_626),
	{2025, domain.FilingMarriedFilingSeparately}: d(252_813),
	{2025, domain.FilingHeadOfHousehold}:         d(379_220),
	{2024, domain.FilingSingle}:                  d(244_860),
	{2024, domain.FilingMarriedFilingJointly}:    d(489_719),
	{2024, domain.FilingMarriedFilingSeparately}: d(244_860),
	{2024, domain.FilingHeadOfHousehold}:         d(367_290),
}

// Mental Health Services Tax (Prop 63): 1% of taxable income over $1M.
var (
	CAMentalHealthThreshold = d(1_000_000)
	CAMentalHealthRate      = r(0.01)
)

// State Disability Insurance.
var (
	CASDIRate     = r(0.009)
	caSDIWageBase = map[int]decimal.Decimal{
		2024: d(153_164),
		2025: d(153_164),
	}
)

var californiaRentersCredit = map[yearStatusKey]decimal.Decimal{
	{2025, domain.FilingSingle}:                  d(60),
	{2025, domain.FilingMarriedFilingJointly}:    d(120),
	{2025, domain.FilingMarriedFilingSeparately}: d(60),
	{2025, domain.FilingHeadOfHousehold}:         d(120),
	{2024, domain.FilingSingle}:                  d(60),
	{2024, domain.FilingMarriedFilingJointly}:    d(120),
	{2024, domain.FilingMarriedFilingSeparately}: d(60),
	{2024, domain.FilingHeadOfHousehold}:         d(120),
}

var californiaRentersCreditAGILimit = map[yearStatusKey]decimal.Decimal{
	{2025, domain.FilingSingle}:                  d(52_000),
	{2025, domain.FilingMarriedFilingJointly}:    d(104_000),
	{2025, domain.FilingMarriedFilingSeparately}: d(52_000),
	{2025, domain.FilingHeadOfHousehold}:         d(104_000),
	{2024, domain.FilingSingle}:                  d(50_746),
	{2024, domain.FilingMarriedFilingJointly}:    d(101_492),
	{2024, domain.FilingMarriedFilingSeparately}: d(50_746),
	{2024, domain.FilingHeadOfHousehold}:         d(101_492),
}

// California itemized deductions keep pre-TCJA treatment: no SALT cap, a
// higher mortgage debt limit, and miscellaneous deductions over a 2% AGI
// floor. High-income filers lose the lesser of 6% of the AGI excess or 80%
// of affected deductions.
var (
	CAMortgageDebtLimit    = d(1_000_000)
	CAMortgageDebtLimitMFS = d(500_000)
	CAMiscFloorRate        = r(0.02)
	CALimitationRate       = r(0.06)
	CALimitationCapRate    = r(0.80)
)

var californiaItemizedLimitThreshold = map[yearStatusKey]decimal.Decimal{
	{2025, domain.FilingSingle}:                  d(233_737),
	{2025, domain.FilingMarriedFilingJointly}:    d(467_476),
	{2025, domain.FilingMarriedFilingSeparately}: d(233_737),
	{2025, domain.FilingHeadOfHousehold}:         d(350_607),
	{2024, domain.FilingSingle}:                  d(226_380),
	{2024, domain.FilingMarriedFilingJointly}:    d(452_761),
	{2024, domain.FilingMarriedFilingSeparately}: d(226_380),
	{2024, domain.FilingHeadOfHousehold}:         d(339_571),
}

// CaliforniaBrackets returns the Form 540 schedule.
func CaliforniaBrackets(year int, status domain.FilingStatus) (Table, error) {
	return lookupTable("california", californiaBrackets, year, status)
}

// CaliforniaStandardDeduction returns the CA standard deduction.
func CaliforniaStandardDeduction(year int, status domain.FilingStatus) (decimal.Decimal, error) {
	return lookupAmount("california standard deduction", californiaStandardDeduction, year, status)
}

// CAExemptionCredit returns the per-exemption credit amount.
func CAExemptionCredit(year int) (decimal.Decimal, error) {
	c, ok := californiaExemptionCredit[year]
	if !ok {
		return decimal.Zero, unsupportedYear("california exemption credit", year)
	}
	return c, nil
}

// CAExemptionPhaseOutThreshold returns the federal-AGI level where the
// exemption credit starts to phase out.
func CAExemptionPhaseOutThreshold(year int, status domain.FilingStatus) (decimal.Decimal, error) {
	return lookupAmount("california exemption phaseout", californiaExemptionPhaseOut, year, status)
}

// CASDIWageBase returns the SDI wage base.
func CASDIWageBase(year int) (decimal.Decimal, error) {
	base, ok := caSDIWageBase[year]
	if !ok {
		return decimal.Zero, unsupportedYear("california SDI wage base", year)
	}
	return base, nil
}

// CARentersCredit returns the nonrefundable renter's credit amount.
func CARentersCredit(year int, status domain.FilingStatus) (decimal.Decimal, error) {
	return lookupAmount("california renters credit", californiaRentersCredit, year, status)
}

// CARentersCreditAGILimit returns the AGI ceiling for renter's credit
// eligibility.
func CARentersCreditAGILimit(year int, status domain.FilingStatus) (decimal.Decimal, error) {
	return lookupAmount("california renters credit AGI limit", californiaRentersCreditAGILimit, year, status)
}

// CAItemizedLimitThreshold returns the AGI level above which the itemized
// deduction limitation applies.
func CAItemizedLimitThreshold(year int, status domain.FilingStatus) (decimal.Decimal, error) {
	return lookupAmount("california itemized limitation", californiaItemizedLimitThreshold, year, status)
}

// CAMortgageDebtLimitFor returns California's acquisition-debt limit.
func CAMortgageDebtLimitFor(status domain.FilingStatus) decimal.Decimal {
	if status == domain.FilingMarriedFilingSeparately {
		return CAMortgageDebtLimitMFS
	}
	return CAMortgageDebtLimit
}
