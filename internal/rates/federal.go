package rates

import (
	"github.com/shopspring/decimal"
	"github.com/taxprep/taxengine/internal/domain"
)

var federalBrackets = map[yearStatusKey]Table{
	{2025, domain.FilingSingle}: {
		b(11_925, 0.10), b(48_475, 0.12), b(103_350, 0.22), b(197_300, 0.24),
		b(250_525, 0.32), b(626_350, 0.35), top(0.37),
	},
	{2025, domain.FilingMarriedFilingJointly}: {
		b(23_850, 0.10), b(96_950, 0.12), b(206_700, 0.22), b(394_600, 0.24),
		b(501_050, 0.32), b(751_600, 0.35), top(0.37),
	},
	{2025, domain.FilingMarriedFilingSeparately}: {
		b(11_925, 0.10), b(48_475, 0.12), b(103_350, 0.22), b(197_300, 0.24),
		b(250_525, 0.32), b(375_800, 0.35), top(0.37),
	},
	{2025, domain.FilingHeadOfHousehold}: {
		b(17_000, 0.10), b(64_850, 0.12), b(103_350, 0.22), b(197_300, 0.24),
		b(250_500, 0.32), b(626_350, 0.35), top(0.37),
	},
	{2024, domain.FilingSingle}: {
		b(11_600, 0.10), b(47_150, 0.12), b(100_525, 0.22), b(191_950, 0.24),
		b(243_725, 0.32), b(609_350, 0.35), top(0.37),
	},
	{2024, domain.FilingMarriedFilingJointly}: {
		b(23_200, 0.10), b(94_300, 0.12), b(201_050, 0.22), b(383_900, 0.24),
		b(487_450, 0.32), b(731_200, 0.35), top(0.37),
	},
	{2024, domain.FilingMarriedFilingSeparately}: {
		b(11_600, 0.10), b(47_150, 0.12), b(100_525, 0.22), b(191_950, 0.24),
		b(243_725, 0.32), b(365_600, 0.35), top(0.37),
	},
	{2024, domain.FilingHeadOfHousehold}: {
		b(16_550, 0.10), b(63_100, 0.12), b(100_500, 0.22), b(191_950, 0.24),
		b(243_700, 0.32), b(609_350, 0.35), top(0.37),
	},
}

// Preferential (qualified dividend / net long-term capital gain) schedules.
// Breakpoints are income-level thresholds shared with ordinary income.
var preferentialBrackets = map[yearStatusKey]Table{
	{2025, domain.FilingSingle}:                  {b(48_350, 0), b(533_400, 0.15), top(0.20)},
	{2025, domain.FilingMarriedFilingJointly}:    {b(96_700, 0), b(600_050, 0.15), top(0.20)},
	{2025, domain.FilingMarriedFilingSeparately}: {b(48_350, 0), b(300_000, 0.15), top(0.20)},
	{2025, domain.FilingHeadOfHousehold}:         {b(64_750, 0), b(566_700, 0.15), top(0.20)},
	{2024, domain.FilingSingle}:                  {b(47_025, 0), b(518_900, 0.15), top(0.20)},
	{2024, domain.FilingMarriedFilingJointly}:    {b(94_050, 0), b(583_750, 0.15), top(0.20)},
	{2024, domain.FilingMarriedFilingSeparately}: {b(47_025, 0), b(291_850, 0.15), top(0.20)},
	{2024, domain.FilingHeadOfHousehold}:         {b(63_000, 0), b(551_350, 0.15), top(0.20)},
}

var federalStandardDeduction = map[yearStatusKey]decimal.Decimal{
	{2025, domain.FilingSingle}:                  d(15_000),
	{2025, domain.FilingMarriedFilingJointly}:    d(30_000),
	{2025, domain.FilingMarriedFilingSeparately}: d(15_000),
	{2025, domain.FilingHeadOfHousehold}:         d(22_500),
	{2024, domain.FilingSingle}:                  d(14_600),
	{2024, domain.FilingMarriedFilingJointly}:    d(29_200),
	{2024, domain.FilingMarriedFilingSeparately}: d(14_600),
	{2024, domain.FilingHeadOfHousehold}:         d(21_900),
}

// Additional standard deduction per condition (age 65+, blindness).
var federalAdditionalDeduction = map[yearStatusKey]decimal.Decimal{
	{2025, domain.FilingSingle}:                  d(1_950),
	{2025, domain.FilingMarriedFilingJointly}:    d(1_550),
	{2025, domain.FilingMarriedFilingSeparately}: d(1_550),
	{2025, domain.FilingHeadOfHousehold}:         d(1_950),
	{2024, domain.FilingSingle}:                  d(1_950),
	{2024, domain.FilingMarriedFilingJointly}:    d(1_550),
	{2024, domain.FilingMarriedFilingSeparately}: d(1_550),
	{2024, domain.FilingHeadOfHousehold}:         d(1_950),
}

// FederalBrackets returns the ordinary-income schedule.
func FederalBrackets(year int, status domain.FilingStatus) (Table, error) {
	return lookupTable("federal", federalBrackets, year, status)
}

// PreferentialBrackets returns the qualified dividend / LTCG schedule.
func PreferentialBrackets(year int, status domain.FilingStatus) (Table, error) {
	return lookupTable("preferential", preferentialBrackets, year, status)
}

// FederalStandardDeduction returns the base standard deduction.
func FederalStandardDeduction(year int, status domain.FilingStatus) (decimal.Decimal, error) {
	return lookupAmount("federal standard deduction", federalStandardDeduction, year, status)
}

// FederalAdditionalDeduction returns the per-condition additional standard
// deduction for age 65+ or blindness.
func FederalAdditionalDeduction(year int, status domain.FilingStatus) (decimal.Decimal, error) {
	return lookupAmount("federal additional deduction", federalAdditionalDeduction, year, status)
}

// Self-employment tax parameters.
var (
	SENetEarningsFactor    = r(0.9235)
	SESocialSecurityRate   = r(0.124)
	SEMedicareRate         = r(0.029)
	AdditionalMedicareRate = r(0.009)
	NIITRate               = r(0.038)
)

var socialSecurityWageBase = map[int]decimal.Decimal{
	2024: d(168_600),
	2025: d(176_100),
}

// SocialSecurityWageBase returns the year's Social Security wage base.
func SocialSecurityWageBase(year int) (decimal.Decimal, error) {
	base, ok := socialSecurityWageBase[year]
	if !ok {
		return decimal.Zero, unsupportedYear("social security wage base", year)
	}
	return base, nil
}

// AdditionalMedicareThreshold returns the 0.9% surtax threshold. The same
// threshold applies to wages and to net self-employment earnings.
func AdditionalMedicareThreshold(status domain.FilingStatus) decimal.Decimal {
	switch status {
	case domain.FilingMarriedFilingJointly:
		return d(250_000)
	case domain.FilingMarriedFilingSeparately:
		return d(125_000)
	default:
		return d(200_000)
	}
}

// NIITThreshold returns the MAGI threshold for the 3.8% net investment
// income tax.
func NIITThreshold(status domain.FilingStatus) decimal.Decimal {
	switch status {
	case domain.FilingMarriedFilingJointly:
		return d(250_000)
	case domain.FilingMarriedFilingSeparately:
		return d(125_000)
	default:
		return d(200_000)
	}
}

// Child Tax Credit parameters: $2,000 per qualifying child, phased out by
// $50 per $1,000 (or fraction) of AGI above the threshold.
var (
	CTCPerChild          = d(2_000)
	CTCPhaseOutStep      = d(1_000)
	CTCPhaseOutReduction = d(50)
)

// CTCPhaseOutThreshold returns the AGI level where the credit starts to
// phase out.
func CTCPhaseOutThreshold(status domain.FilingStatus) decimal.Decimal {
	if status == domain.FilingMarriedFilingJointly {
		return d(400_000)
	}
	return d(200_000)
}

// Schedule A parameters.
var (
	MedicalAGIFloorRate  = r(0.075)
	SALTCap              = d(10_000)
	SALTCapMFS           = d(5_000)
	MortgageDebtLimit    = d(750_000)
	MortgageDebtLimitMFS = d(375_000)
)

// FederalSALTCap returns the state-and-local-tax deduction cap.
func FederalSALTCap(status domain.FilingStatus) decimal.Decimal {
	if status == domain.FilingMarriedFilingSeparately {
		return SALTCapMFS
	}
	return SALTCap
}

// FederalMortgageDebtLimit returns the acquisition-debt limit above which
// mortgage interest is prorated.
func FederalMortgageDebtLimit(status domain.FilingStatus) decimal.Decimal {
	if status == domain.FilingMarriedFilingSeparately {
		return MortgageDebtLimitMFS
	}
	return MortgageDebtLimit
}
