package rates

import (
	"github.com/shopspring/decimal"
	"github.com/taxprep/taxengine/internal/domain"
)

// States with no individual income tax. Returns for these residents carry
// no state calculation at all.
var noIncomeTaxStates = map[string]bool{
	"AK": true, "FL": true, "NV": true, "NH": true, "SD": true,
	"TN": true, "TX": true, "WA": true, "WY": true,
}

// StateHasNoIncomeTax reports whether the two-letter code names a state
// without an individual income tax.
func StateHasNoIncomeTax(code string) bool {
	return noIncomeTaxStates[code]
}

// New York IT-201. The 2025 schedule matches 2024.
var newYorkBrackets = map[yearStatusKey]Table{
	{2024, domain.FilingSingle}: {
		b(8_500, 0.04), b(11_700, 0.045), b(13_900, 0.0525), b(80_650, 0.055),
		b(215_400, 0.06), b(1_077_550, 0.0685), b(5_000_000, 0.0965),
		b(25_000_000, 0.103), top(0.109),
	},
	{2024, domain.FilingMarriedFilingJointly}: {
		b(17_150, 0.04), b(23_600, 0.045), b(27_900, 0.0525), b(161_550, 0.055),
		b(323_200, 0.06), b(2_155_350, 0.0685), b(5_000_000, 0.0965),
		b(25_000_000, 0.103), top(0.109),
	},
	{2024, domain.FilingMarriedFilingSeparately}: {
		b(8_500, 0.04), b(11_700, 0.045), b(13_900, 0.0525), b(80_650, 0.055),
		b(215_400, 0.06), b(1_077_550, 0.0685), b(5_000_000, 0.0965),
		b(25_000_000, 0.103), top(0.109),
	},
	{2024, domain.FilingHeadOfHousehold}: {
		b(12_800, 0.04), b(17_650, 0.045), b(20_900, 0.0525), b(107_650, 0.055),
		b(269_300, 0.06), b(1_616_450, 0.0685), b(5_000_000, 0.0965),
		b(25_000_000, 0.103), top(0.109),
	},
}

var newYorkStandardDeduction = map[yearStatusKey]decimal.Decimal{
	{2024, domain.FilingSingle}:                  d(8_000),
	{2024, domain.FilingMarriedFilingJointly}:    d(15_800),
	{2024, domain.FilingMarriedFilingSeparately}: d(8_000),
	{2024, domain.FilingHeadOfHousehold}:         d(11_200),
	{2025, domain.FilingSingle}:                  d(8_000),
	{2025, domain.FilingMarriedFilingJointly}:    d(16_050),
	{2025, domain.FilingMarriedFilingSeparately}: d(8_000),
	{2025, domain.FilingHeadOfHousehold}:         d(11_200),
}

// NewYorkBrackets returns the IT-201 schedule.
func NewYorkBrackets(year int, status domain.FilingStatus) (Table, error) {
	if year == 2025 {
		year = 2024
	}
	return lookupTable("new york", newYorkBrackets, year, status)
}

// NewYorkStandardDeduction returns the NY standard deduction.
func NewYorkStandardDeduction(year int, status domain.FilingStatus) (decimal.Decimal, error) {
	return lookupAmount("new york standard deduction", newYorkStandardDeduction, year, status)
}

// New Jersey Gross Income Tax (NJ-1040). Brackets are year-invariant in the
// supported range.
var newJerseyBrackets = map[domain.FilingStatus]Table{
	domain.FilingSingle: {
		b(20_000, 0.014), b(35_000, 0.0175), b(40_000, 0.035), b(75_000, 0.05525),
		b(500_000, 0.0637), b(1_000_000, 0.0897), top(0.1075),
	},
	domain.FilingMarriedFilingJointly: {
		b(20_000, 0.014), b(50_000, 0.0175), b(70_000, 0.0245), b(80_000, 0.035),
		b(150_000, 0.05525), b(500_000, 0.0637), b(1_000_000, 0.0897), top(0.1075),
	},
	domain.FilingMarriedFilingSeparately: {
		b(20_000, 0.014), b(35_000, 0.0175), b(40_000, 0.035), b(75_000, 0.05525),
		b(500_000, 0.0637), b(1_000_000, 0.0897), top(0.1075),
	},
	domain.FilingHeadOfHousehold: {
		b(20_000, 0.014), b(50_000, 0.0175), b(70_000, 0.0245), b(80_000, 0.035),
		b(150_000, 0.05525), b(500_000, 0.0637), b(1_000_000, 0.0897), top(0.1075),
	},
}

// NJ filing threshold, used as a standard-deduction equivalent.
var newJerseyFilingThreshold = map[domain.FilingStatus]decimal.Decimal{
	domain.FilingSingle:                  d(10_000),
	domain.FilingMarriedFilingJointly:    d(20_000),
	domain.FilingMarriedFilingSeparately: d(10_000),
	domain.FilingHeadOfHousehold:         d(20_000),
}

// NewJerseyBrackets returns the NJ-1040 schedule.
func NewJerseyBrackets(year int, status domain.FilingStatus) (Table, error) {
	if !YearSupported(year) {
		return nil, unsupportedYear("new jersey bracket table", year)
	}
	t, ok := newJerseyBrackets[status]
	if !ok {
		return nil, unsupportedYear("new jersey bracket table", year)
	}
	return t, nil
}

// NewJerseyFilingThreshold returns the income level below which NJ levies
// no tax.
func NewJerseyFilingThreshold(status domain.FilingStatus) decimal.Decimal {
	if t, ok := newJerseyFilingThreshold[status]; ok {
		return t
	}
	return d(10_000)
}

// Pennsylvania PA-40 flat rate.
var PAFlatRate = r(0.0307)
