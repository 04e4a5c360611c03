package rates

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxprep/taxengine/internal/domain"
)

func TestTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr string
	}{
		{
			name:    "empty table",
			table:   Table{},
			wantErr: "empty",
		},
		{
			name:  "valid two-bracket table",
			table: Table{b(10_000, 0.10), top(0.20)},
		},
		{
			name:    "missing open-ended bracket",
			table:   Table{b(10_000, 0.10), b(20_000, 0.20)},
			wantErr: "open-ended",
		},
		{
			name:    "open-ended bracket in the middle",
			table:   Table{top(0.10), b(20_000, 0.20), top(0.30)},
			wantErr: "before end",
		},
		{
			name:    "non-increasing upper bounds",
			table:   Table{b(20_000, 0.10), b(20_000, 0.20), top(0.30)},
			wantErr: "not increasing",
		},
		{
			name:    "rate above one",
			table:   Table{Bracket{Upper: d(10_000), Rate: d(2)}, top(0.30)},
			wantErr: "out of range",
		},
		{
			name:    "negative rate",
			table:   Table{Bracket{Upper: d(10_000), Rate: d(-1)}, top(0.30)},
			wantErr: "out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTableRates(t *testing.T) {
	table := Table{b(10_000, 0.10), b(20_000, 0.20), top(0.30)}
	assert.True(t, table.BottomRate().Equal(r(0.10)))
	assert.True(t, table.TopRate().Equal(r(0.30)))

	var empty Table
	assert.True(t, empty.BottomRate().IsZero())
	assert.True(t, empty.TopRate().IsZero())
}

func TestYearSupported(t *testing.T) {
	assert.True(t, YearSupported(2024))
	assert.True(t, YearSupported(2025))
	assert.False(t, YearSupported(2023))
	assert.False(t, YearSupported(2026))
}

func TestAllPublishedTablesValidate(t *testing.T) {
	for _, year := range SupportedYears {
		for _, status := range domain.AllFilingStatuses {
			table, err := FederalBrackets(year, status)
			require.NoError(t, err)
			assert.NoError(t, table.Validate(), "federal %d %s", year, status)

			table, err = PreferentialBrackets(year, status)
			require.NoError(t, err)
			assert.NoError(t, table.Validate(), "preferential %d %s", year, status)

			table, err = CaliforniaBrackets(year, status)
			require.NoError(t, err)
			assert.NoError(t, table.Validate(), "california %d %s", year, status)

			table, err = NewYorkBrackets(year, status)
			require.NoError(t, err)
			assert.NoError(t, table.Validate(), "new york %d %s", year, status)

			table, err = NewJerseyBrackets(year, status)
			require.NoError(t, err)
			assert.NoError(t, table.Validate(), "new jersey %d %s", year, status)
		}
	}
}

func TestUnsupportedYearLookups(t *testing.T) {
	_, err := FederalBrackets(2019, domain.FilingSingle)
	assert.Error(t, err)

	_, err = FederalStandardDeduction(2019, domain.FilingSingle)
	assert.Error(t, err)

	_, err = SocialSecurityWageBase(2019)
	assert.Error(t, err)

	_, err = CaliforniaBrackets(2019, domain.FilingSingle)
	assert.Error(t, err)

	_, err = CAExemptionCredit(2019)
	assert.Error(t, err)

	_, err = NewJerseyBrackets(2019, domain.FilingSingle)
	assert.Error(t, err)
}

func TestLookupUnknownStatus(t *testing.T) {
	_, err := FederalBrackets(2025, domain.FilingStatus("common_law"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "common_law")
}

func equalDec(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Equal(t, expected, actual.StringFixed(2))
}
