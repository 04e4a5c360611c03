package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxprep/taxengine/internal/domain"
)

func TestCalculateStateTaxDispatch(t *testing.T) {
	input := StateInput{
		Income:     domain.TaxableIncome{Wages: dollars(80_000)},
		Deductions: domain.Deductions{UseStandard: true},
		FederalAGI: dollars(80_000),
	}

	tests := []struct {
		name         string
		code         string
		wantNil      bool
		jurisdiction string
	}{
		{"california", "CA", false, "California"},
		{"lowercase code", "ca", false, "California"},
		{"padded code", " NY ", false, "New York"},
		{"new jersey", "NJ", false, "New Jersey"},
		{"pennsylvania", "PA", false, "Pennsylvania"},
		{"no income tax state", "TX", true, ""},
		{"another no tax state", "WA", true, ""},
		{"unimplemented state", "OR", true, ""},
		{"empty code", "", true, ""},
		{"full state name", "California", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CalculateStateTax(tt.code, domain.FilingSingle, 2025, input)
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.jurisdiction, result.Jurisdiction)
		})
	}
}

func TestCalculateStateTaxUnsupportedYear(t *testing.T) {
	_, err := CalculateStateTax("CA", domain.FilingSingle, 2019, StateInput{})
	assert.Error(t, err)
}

func TestSupportedStates(t *testing.T) {
	states := SupportedStates()
	assert.Len(t, states, 4)
	for code := range states {
		assert.Contains(t, stateConstructors, code)
	}
}

func TestNewYorkCalculate(t *testing.T) {
	nc, err := NewNewYorkTaxCalculator(domain.FilingSingle, 2024)
	require.NoError(t, err)

	result, err := nc.Calculate(StateInput{
		Income:     domain.TaxableIncome{Wages: dollars(50_000)},
		Deductions: domain.Deductions{UseStandard: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "New York", result.Jurisdiction)
	assertDec(t, "8000.00", result.Deductions)
	assertDec(t, "42000.00", result.TaxableIncome)
	assertDec(t, "2145.00", result.TaxBeforeCredits)
}

func TestNewYorkItemizedShortcut(t *testing.T) {
	nc, err := NewNewYorkTaxCalculator(domain.FilingSingle, 2024)
	require.NoError(t, err)

	result, err := nc.Calculate(StateInput{
		Income: domain.TaxableIncome{Wages: dollars(100_000)},
		ScheduleAData: &domain.ScheduleAData{
			RealEstateTaxes:   dollars(14_000),
			MortgageInterest:  dollars(9_000),
			CashContributions: dollars(2_000),
		},
	})
	require.NoError(t, err)

	// Real estate taxes are SALT-capped at $10,000 before the comparison.
	assert.Equal(t, "itemized", result.DeductionMethod)
	assertDec(t, "21000.00", result.Deductions)
}

func TestNewJerseyCalculate(t *testing.T) {
	nc, err := NewNewJerseyTaxCalculator(domain.FilingSingle, 2025)
	require.NoError(t, err)

	result, err := nc.Calculate(StateInput{
		Income: domain.TaxableIncome{Wages: dollars(60_000)},
	})
	require.NoError(t, err)

	assert.Equal(t, "New Jersey", result.Jurisdiction)
	// Filing threshold stands in for a standard deduction.
	assertDec(t, "10000.00", result.Deductions)
	assertDec(t, "50000.00", result.TaxableIncome)
	assertDec(t, "1270.00", result.TaxBeforeCredits)
}

func TestNewJerseyBelowFilingThreshold(t *testing.T) {
	nc, err := NewNewJerseyTaxCalculator(domain.FilingMarriedFilingJointly, 2025)
	require.NoError(t, err)

	result, err := nc.Calculate(StateInput{
		Income: domain.TaxableIncome{Wages: dollars(18_000)},
	})
	require.NoError(t, err)
	assert.True(t, result.TaxableIncome.IsZero())
	assert.True(t, result.TaxAfterCredits.IsZero())
}

func TestPennsylvaniaCalculate(t *testing.T) {
	pc, err := NewPennsylvaniaTaxCalculator(domain.FilingSingle, 2025)
	require.NoError(t, err)

	result, err := pc.Calculate(StateInput{
		Income: domain.TaxableIncome{Wages: dollars(100_000)},
	})
	require.NoError(t, err)

	assert.Equal(t, "Pennsylvania", result.Jurisdiction)
	assert.Equal(t, "none", result.DeductionMethod)
	assertDec(t, "3070.00", result.TaxBeforeCredits)
	require.Len(t, result.BracketBreakdown, 1)
	assertDec(t, "0.03", result.BracketBreakdown[0].Rate.Round(2))
}

func TestPennsylvaniaUnsupportedYear(t *testing.T) {
	_, err := NewPennsylvaniaTaxCalculator(domain.FilingSingle, 2019)
	assert.Error(t, err)
}

func TestStateTreasuryInterestExcludedEverywhere(t *testing.T) {
	input := StateInput{
		Income: domain.TaxableIncome{
			Wages:          dollars(90_000),
			InterestIncome: dollars(5_000),
		},
		Deductions:         domain.Deductions{UseStandard: true},
		USTreasuryInterest: dollars(5_000),
		FederalAGI:         dollars(95_000),
	}

	for _, code := range []string{"CA", "NY", "NJ", "PA"} {
		result, err := CalculateStateTax(code, domain.FilingSingle, 2025, input)
		require.NoError(t, err, code)
		require.NotNil(t, result, code)
		assertDec(t, "90000.00", result.GrossIncome)
	}
}
