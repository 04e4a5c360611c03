package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxprep/taxengine/internal/domain"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestAnnualDepreciationFullYear(t *testing.T) {
	sc := NewScheduleECalculator(2025)
	p := domain.RentalProperty{
		Address:       "10 Main St",
		PurchasePrice: dollars(380_000),
		PurchaseDate:  date("2018-03-01"),
		LandValue:     dollars(80_000),
	}

	dep, err := sc.AnnualDepreciation(p)
	require.NoError(t, err)
	// $300,000 basis over 27.5 years.
	assertDec(t, "10909.09", dep)
}

func TestAnnualDepreciationMidMonthConvention(t *testing.T) {
	sc := NewScheduleECalculator(2025)

	tests := []struct {
		name string
		date *time.Time
		want string
	}{
		{"no purchase date assumes full year", nil, "10909.09"},
		{"prior year full twelve months", date("2020-08-15"), "10909.09"},
		{"january purchase twelve months", date("2025-01-10"), "10909.09"},
		{"july purchase six months", date("2025-07-04"), "5454.55"},
		{"december purchase one month", date("2025-12-20"), "909.09"},
		{"future year no depreciation", date("2026-02-01"), "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.RentalProperty{
				PurchasePrice: dollars(380_000),
				PurchaseDate:  tt.date,
				LandValue:     dollars(80_000),
			}
			dep, err := sc.AnnualDepreciation(p)
			require.NoError(t, err)
			assertDec(t, tt.want, dep)
		})
	}
}

func TestAnnualDepreciationNegativePrice(t *testing.T) {
	sc := NewScheduleECalculator(2025)
	p := domain.RentalProperty{Address: "bad", PurchasePrice: dollars(-1)}
	_, err := sc.AnnualDepreciation(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative purchase price")
}

func TestAnnualDepreciationZeroBasis(t *testing.T) {
	sc := NewScheduleECalculator(2025)
	// Land value at or above the purchase price leaves nothing to
	// depreciate.
	p := domain.RentalProperty{PurchasePrice: dollars(100_000), LandValue: dollars(100_000)}
	dep, err := sc.AnnualDepreciation(p)
	require.NoError(t, err)
	assert.True(t, dep.IsZero())
}

func TestCalculateProperty(t *testing.T) {
	sc := NewScheduleECalculator(2025)
	p := domain.RentalProperty{
		Address:          "10 Main St",
		PurchasePrice:    dollars(380_000),
		PurchaseDate:     date("2018-03-01"),
		LandValue:        dollars(80_000),
		DaysRented:       365,
		RentalIncome:     dollars(30_000),
		MortgageInterest: dollars(9_000),
		PropertyTax:      dollars(4_000),
		Insurance:        dollars(1_500),
		Repairs:          dollars(2_000),
	}

	result, err := sc.CalculateProperty(p)
	require.NoError(t, err)
	assertDec(t, "30000.00", result.GrossIncome)
	assertDec(t, "16500.00", result.TotalExpenses)
	assertDec(t, "10909.09", result.Depreciation)
	assertDec(t, "2590.91", result.NetIncome)
}

func TestCalculatePropertyPersonalUseProration(t *testing.T) {
	sc := NewScheduleECalculator(2025)
	p := domain.RentalProperty{
		Address:         "Lake Cabin",
		PurchasePrice:   dollars(275_000),
		PurchaseDate:    date("2015-01-01"),
		DaysRented:      270,
		PersonalUseDays: 90,
		RentalIncome:    dollars(20_000),
		Repairs:         dollars(8_000),
	}

	result, err := sc.CalculateProperty(p)
	require.NoError(t, err)

	// 270 of 360 use days: 75% of expenses and depreciation.
	assertDec(t, "6000.00", result.TotalExpenses)
	assertDec(t, "7500.00", result.Depreciation)
	assertDec(t, "6500.00", result.NetIncome)
}

func TestCalculateSummary(t *testing.T) {
	sc := NewScheduleECalculator(2025)
	properties := []domain.RentalProperty{
		{
			Address:       "A",
			PurchasePrice: dollars(275_000),
			PurchaseDate:  date("2015-01-01"),
			DaysRented:    365,
			RentalIncome:  dollars(24_000),
			Repairs:       dollars(4_000),
		},
		{
			Address:      "B",
			DaysRented:   365,
			RentalIncome: dollars(12_000),
			Utilities:    dollars(15_000),
		},
	}

	summary, err := sc.CalculateSummary(properties, decimal.Zero)
	require.NoError(t, err)
	require.Len(t, summary.Properties, 2)

	assertDec(t, "36000.00", summary.TotalGrossIncome())
	assertDec(t, "10000.00", summary.Properties[0].NetIncome)
	assertDec(t, "-3000.00", summary.Properties[1].NetIncome)
	assertDec(t, "7000.00", summary.TotalNetIncome())
	assertDec(t, "7000.00", summary.AllowedNetIncome())
}

func TestCalculateSummaryPassiveLossAddback(t *testing.T) {
	sc := NewScheduleECalculator(2025)
	properties := []domain.RentalProperty{
		{Address: "loss", DaysRented: 365, RentalIncome: dollars(5_000), Repairs: dollars(12_000)},
	}

	summary, err := sc.CalculateSummary(properties, dollars(7_000))
	require.NoError(t, err)
	assertDec(t, "-7000.00", summary.TotalNetIncome())
	assertDec(t, "0.00", summary.AllowedNetIncome())
}

func TestCalculateSummaryPropagatesError(t *testing.T) {
	sc := NewScheduleECalculator(2025)
	_, err := sc.CalculateSummary([]domain.RentalProperty{
		{Address: "bad", PurchasePrice: dollars(-100)},
	}, decimal.Zero)
	assert.Error(t, err)
}
