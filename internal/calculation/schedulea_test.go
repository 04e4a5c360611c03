package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxprep/taxengine/internal/domain"
)

func TestScheduleAFederal(t *testing.T) {
	sc := NewScheduleACalculator(domain.FilingSingle, 2025)
	data := &domain.ScheduleAData{
		MedicalExpenses:    dollars(10_000),
		StateIncomeTaxPaid: dollars(8_000),
		RealEstateTaxes:    dollars(6_000),
		MortgageInterest:   dollars(12_000),
		MortgageBalance:    dollars(900_000),
		CashContributions:  dollars(3_000),
	}

	result := sc.CalculateFederal(data, dollars(100_000), dollars(15_000))

	// Medical over the 7.5% AGI floor.
	assertDec(t, "2500.00", result.MedicalDeduction)
	// SALT capped at $10,000 from an uncapped $14,000.
	assertDec(t, "10000.00", result.SALTDeduction)
	assertDec(t, "14000.00", result.SALTUncapped)
	// Interest prorated by the $750k debt limit on a $900k balance.
	assertDec(t, "10000.00", result.MortgageInterestDeduction)
	assertDec(t, "3000.00", result.CharitableDeduction)
	assertDec(t, "25500.00", result.TotalItemized)
	assert.True(t, result.UseItemized)
	assertDec(t, "25500.00", result.DeductionAmount)
}

func TestScheduleAFederalStandardWins(t *testing.T) {
	sc := NewScheduleACalculator(domain.FilingSingle, 2025)
	data := &domain.ScheduleAData{CashContributions: dollars(2_000)}

	result := sc.CalculateFederal(data, dollars(80_000), dollars(15_000))

	assert.False(t, result.UseItemized)
	assertDec(t, "15000.00", result.DeductionAmount)
	assertDec(t, "2000.00", result.TotalItemized)
}

func TestScheduleAFederalSALTCapMFS(t *testing.T) {
	sc := NewScheduleACalculator(domain.FilingMarriedFilingSeparately, 2025)
	data := &domain.ScheduleAData{
		StateIncomeTaxPaid: dollars(9_000),
	}
	result := sc.CalculateFederal(data, dollars(100_000), dollars(15_000))
	assertDec(t, "5000.00", result.SALTDeduction)
}

func TestScheduleAVehicleLicenseFees(t *testing.T) {
	sc := NewScheduleACalculator(domain.FilingSingle, 2025)
	data := &domain.ScheduleAData{
		VehicleRegistrations: []domain.VehicleRegistration{
			{VehicleLicenseFee: dollars(300), WeightFee: dollars(100)},
			{VehicleLicenseFee: dollars(200)},
		},
	}
	result := sc.CalculateFederal(data, dollars(50_000), dollars(15_000))
	// Only the license-fee portion counts toward SALT.
	assertDec(t, "500.00", result.SALTUncapped)
}

func TestScheduleACalifornia(t *testing.T) {
	sc := NewScheduleACalculator(domain.FilingSingle, 2025)
	data := &domain.ScheduleAData{
		MedicalExpenses:     dollars(10_000),
		StateIncomeTaxPaid:  dollars(8_000),
		RealEstateTaxes:     dollars(6_000),
		MortgageInterest:    dollars(12_000),
		MortgageBalance:     dollars(900_000),
		CashContributions:   dollars(3_000),
		StateMiscDeductions: dollars(5_000),
	}

	result, err := sc.CalculateCalifornia(data, dollars(100_000), dollars(5_540))
	require.NoError(t, err)

	// State income tax never deducts on the state's own return; no cap on
	// the rest.
	assertDec(t, "6000.00", result.SALTDeduction)
	// $900k balance is under California's $1M limit, so no proration.
	assertDec(t, "12000.00", result.MortgageInterestDeduction)
	// Misc over the 2% AGI floor.
	assertDec(t, "3000.00", result.MiscDeduction)
	assertDec(t, "2500.00", result.MedicalDeduction)
	assert.True(t, result.ItemizedLimitation.IsZero())
	assertDec(t, "26500.00", result.TotalItemized)
	assert.True(t, result.UseItemized)
}

func TestScheduleACaliforniaHighIncomeLimitation(t *testing.T) {
	sc := NewScheduleACalculator(domain.FilingSingle, 2025)
	data := &domain.ScheduleAData{
		RealEstateTaxes:  dollars(8_000),
		MortgageInterest: dollars(12_000),
	}

	// AGI $300,000 is $66,263 over the 2025 single threshold; 6% of the
	// excess is below 80% of the $20,000 itemized total.
	result, err := sc.CalculateCalifornia(data, dollars(300_000), dollars(5_540))
	require.NoError(t, err)

	assertDec(t, "3975.78", result.ItemizedLimitation)
	assertDec(t, "16024.22", result.TotalItemized)
}

func TestScheduleACaliforniaLimitationCappedAt80Percent(t *testing.T) {
	sc := NewScheduleACalculator(domain.FilingSingle, 2025)
	data := &domain.ScheduleAData{RealEstateTaxes: dollars(1_000)}

	// With a huge AGI excess the 80% cap binds instead.
	result, err := sc.CalculateCalifornia(data, dollars(2_000_000), dollars(5_540))
	require.NoError(t, err)

	assertDec(t, "800.00", result.ItemizedLimitation)
	assertDec(t, "200.00", result.TotalItemized)
	assert.False(t, result.UseItemized)
	assertDec(t, "5540.00", result.DeductionAmount)
}

func TestMortgageProration(t *testing.T) {
	tests := []struct {
		name      string
		interest  int64
		points    int64
		balance   int64
		limit     int64
		investint int64
		want      string
	}{
		{"under limit", 10_000, 0, 600_000, 750_000, 0, "10000.00"},
		{"no balance recorded", 10_000, 0, 0, 750_000, 0, "10000.00"},
		{"over limit prorated", 12_000, 0, 900_000, 750_000, 0, "10000.00"},
		{"points included in proration", 9_000, 3_000, 900_000, 750_000, 0, "10000.00"},
		{"investment interest not prorated", 12_000, 0, 900_000, 750_000, 500, "10500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := &domain.ScheduleAData{
				MortgageInterest:   dollars(tt.interest),
				MortgagePoints:     dollars(tt.points),
				MortgageBalance:    dollars(tt.balance),
				InvestmentInterest: dollars(tt.investint),
			}
			assertDec(t, tt.want, mortgageInterestDeduction(data, dollars(tt.limit)))
		})
	}
}
