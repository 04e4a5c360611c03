package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxprep/taxengine/internal/domain"
	"github.com/taxprep/taxengine/internal/rates"
)

func dollars(i int64) decimal.Decimal { return decimal.NewFromInt(i) }

func assertDec(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Equal(t, expected, actual.StringFixed(2), "got %s", actual)
}

func single2025Brackets(t *testing.T) rates.Table {
	t.Helper()
	table, err := rates.FederalBrackets(2025, domain.FilingSingle)
	require.NoError(t, err)
	return table
}

func TestProgressiveTax(t *testing.T) {
	table := single2025Brackets(t)

	tests := []struct {
		name    string
		income  int64
		wantTax string
	}{
		{"zero income", 0, "0.00"},
		{"inside first bracket", 10_000, "1000.00"},
		{"first bracket boundary", 11_925, "1192.50"},
		{"eighty five thousand", 85_000, "13614.00"},
		{"top bracket", 1_000_000, "327020.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, breakdown, err := progressiveTax(table, dollars(tt.income))
			require.NoError(t, err)
			assertDec(t, tt.wantTax, tax)

			// Breakdown lines must sum back to the totals.
			sumIncome := decimal.Zero
			sumTax := decimal.Zero
			for _, line := range breakdown {
				sumIncome = sumIncome.Add(line.Income)
				sumTax = sumTax.Add(line.Tax)
			}
			assert.True(t, sumTax.Equal(tax))
			if tt.income > 0 {
				assert.True(t, sumIncome.Equal(dollars(tt.income)))
			}
		})
	}
}

func TestProgressiveTaxNegativeIncome(t *testing.T) {
	table := single2025Brackets(t)
	tax, breakdown, err := progressiveTax(table, dollars(-5_000))
	require.NoError(t, err)
	assert.True(t, tax.IsZero())
	assert.Empty(t, breakdown)
}

func TestProgressiveTaxBreakdownShape(t *testing.T) {
	table := single2025Brackets(t)
	_, breakdown, err := progressiveTax(table, dollars(85_000))
	require.NoError(t, err)
	require.Len(t, breakdown, 3)

	assertDec(t, "0.00", breakdown[0].Lower)
	require.NotNil(t, breakdown[0].Upper)
	assertDec(t, "11925.00", *breakdown[0].Upper)
	assertDec(t, "1192.50", breakdown[0].Tax)

	assertDec(t, "48475.00", breakdown[2].Lower)
	assertDec(t, "8035.50", breakdown[2].Tax)
	assert.False(t, breakdown[2].Preferential)
}

func TestProgressiveTaxOpenEndedLine(t *testing.T) {
	table := single2025Brackets(t)
	_, breakdown, err := progressiveTax(table, dollars(1_000_000))
	require.NoError(t, err)
	last := breakdown[len(breakdown)-1]
	assert.Nil(t, last.Upper)
	assertDec(t, "0.37", last.Rate)
}

func TestProgressiveTaxRejectsMalformedTable(t *testing.T) {
	bad := rates.Table{}
	_, _, err := progressiveTax(bad, dollars(50_000))
	assert.Error(t, err)
}

func TestProgressiveTaxMonotonic(t *testing.T) {
	table := single2025Brackets(t)
	prev := decimal.Zero
	for _, income := range []int64{1_000, 25_000, 85_000, 200_000, 700_000} {
		tax, _, err := progressiveTax(table, dollars(income))
		require.NoError(t, err)
		assert.True(t, tax.GreaterThan(prev), "tax should increase with income")
		prev = tax
	}
}

func TestMarginalRate(t *testing.T) {
	table := single2025Brackets(t)

	tests := []struct {
		income int64
		want   string
	}{
		{5_000, "0.10"},
		{11_925, "0.10"},
		{30_000, "0.12"},
		{85_000, "0.22"},
		{700_000, "0.37"},
	}
	for _, tt := range tests {
		assertDec(t, tt.want, marginalRate(table, dollars(tt.income)))
	}
}
