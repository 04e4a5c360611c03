package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxprep/taxengine/internal/domain"
)

func newCalifornia(t *testing.T, status domain.FilingStatus, year int) *CaliforniaTaxCalculator {
	t.Helper()
	cc, err := NewCaliforniaTaxCalculator(status, year)
	require.NoError(t, err)
	return cc
}

func TestMentalHealthTax(t *testing.T) {
	cc := newCalifornia(t, domain.FilingSingle, 2025)

	assert.True(t, cc.MentalHealthTax(dollars(500_000)).IsZero())
	assert.True(t, cc.MentalHealthTax(dollars(1_000_000)).IsZero())
	// 1% of the $500,000 above the threshold.
	assertDec(t, "5000.00", cc.MentalHealthTax(dollars(1_500_000)))
}

func TestExemptionCredit(t *testing.T) {
	cc := newCalifornia(t, domain.FilingSingle, 2025)

	credit, err := cc.ExemptionCredit(1, dollars(100_000))
	require.NoError(t, err)
	assertDec(t, "144.00", credit)

	credit, err = cc.ExemptionCredit(3, dollars(100_000))
	require.NoError(t, err)
	assertDec(t, "432.00", credit)
}

func TestExemptionCreditPhaseOut(t *testing.T) {
	cc := newCalifornia(t, domain.FilingSingle, 2025)

	// $5,000 over the threshold: two $2,500 increments reduce by $12.
	credit, err := cc.ExemptionCredit(2, dollars(257_813))
	require.NoError(t, err)
	assertDec(t, "276.00", credit)

	// A fraction of an increment still counts as a whole one.
	credit, err = cc.ExemptionCredit(2, dollars(252_814))
	require.NoError(t, err)
	assertDec(t, "282.00", credit)

	// Deep into the phase-out the credit bottoms out at zero.
	credit, err = cc.ExemptionCredit(1, dollars(500_000))
	require.NoError(t, err)
	assert.True(t, credit.IsZero())
}

func TestRentersCredit(t *testing.T) {
	cc := newCalifornia(t, domain.FilingSingle, 2025)

	credit, err := cc.RentersCredit(dollars(50_000), true)
	require.NoError(t, err)
	assertDec(t, "60.00", credit)

	// Over the AGI limit.
	credit, err = cc.RentersCredit(dollars(53_000), true)
	require.NoError(t, err)
	assert.True(t, credit.IsZero())

	// Not a renter.
	credit, err = cc.RentersCredit(dollars(50_000), false)
	require.NoError(t, err)
	assert.True(t, credit.IsZero())

	joint := newCalifornia(t, domain.FilingMarriedFilingJointly, 2025)
	credit, err = joint.RentersCredit(dollars(100_000), true)
	require.NoError(t, err)
	assertDec(t, "120.00", credit)
}

func TestSDI(t *testing.T) {
	cc := newCalifornia(t, domain.FilingSingle, 2025)

	sdi, err := cc.SDI(dollars(80_000))
	require.NoError(t, err)
	assertDec(t, "720.00", sdi)

	// Wages above the base are capped.
	sdi, err = cc.SDI(dollars(200_000))
	require.NoError(t, err)
	assertDec(t, "1378.48", sdi.Round(2))
}

func TestCaliforniaCalculateStandardDeduction(t *testing.T) {
	cc := newCalifornia(t, domain.FilingSingle, 2025)

	result, err := cc.Calculate(StateInput{
		Income:        domain.TaxableIncome{Wages: dollars(80_000)},
		Deductions:    domain.Deductions{UseStandard: true},
		NumExemptions: 1,
		FederalAGI:    dollars(80_000),
		StateWithheld: dollars(4_000),
	})
	require.NoError(t, err)

	assert.Equal(t, "California", result.Jurisdiction)
	assertDec(t, "80000.00", result.GrossIncome)
	assertDec(t, "5540.00", result.Deductions)
	assertDec(t, "74460.00", result.TaxableIncome)
	assertDec(t, "3467.14", result.TaxBeforeCredits)
	assertDec(t, "144.00", result.CAExemptionCredit)
	assertDec(t, "3323.14", result.TaxAfterCredits)
	assert.True(t, result.CAMentalHealthTax.IsZero())
	assertDec(t, "720.00", result.CASDI)
}

func TestCaliforniaCalculateTreasuryInterestExcluded(t *testing.T) {
	cc := newCalifornia(t, domain.FilingSingle, 2025)

	result, err := cc.Calculate(StateInput{
		Income: domain.TaxableIncome{
			Wages:          dollars(80_000),
			InterestIncome: dollars(2_000),
		},
		Deductions:         domain.Deductions{UseStandard: true},
		USTreasuryInterest: dollars(2_000),
		NumExemptions:      1,
		FederalAGI:         dollars(82_000),
	})
	require.NoError(t, err)
	assertDec(t, "80000.00", result.GrossIncome)
}

func TestCaliforniaCalculateMentalHealthSurtax(t *testing.T) {
	cc := newCalifornia(t, domain.FilingSingle, 2025)

	result, err := cc.Calculate(StateInput{
		Income:        domain.TaxableIncome{Wages: dollars(1_505_540)},
		Deductions:    domain.Deductions{UseStandard: true},
		NumExemptions: 1,
		FederalAGI:    dollars(1_505_540),
	})
	require.NoError(t, err)

	assertDec(t, "1500000.00", result.TaxableIncome)
	assertDec(t, "5000.00", result.CAMentalHealthTax)
	assert.True(t, result.CAExemptionCredit.IsZero())
}

func TestCaliforniaCalculateItemized(t *testing.T) {
	cc := newCalifornia(t, domain.FilingSingle, 2025)

	result, err := cc.Calculate(StateInput{
		Income:     domain.TaxableIncome{Wages: dollars(100_000)},
		Deductions: domain.Deductions{UseStandard: true},
		ScheduleAData: &domain.ScheduleAData{
			StateIncomeTaxPaid: dollars(7_000),
			RealEstateTaxes:    dollars(6_000),
			MortgageInterest:   dollars(12_000),
			CashContributions:  dollars(3_000),
		},
		NumExemptions: 1,
		FederalAGI:    dollars(100_000),
	})
	require.NoError(t, err)

	require.NotNil(t, result.ScheduleA)
	assert.Equal(t, "itemized", result.DeductionMethod)
	// State income tax is excluded from the state's own SALT line.
	assertDec(t, "6000.00", result.ScheduleA.SALTDeduction)
	assertDec(t, "21000.00", result.Deductions)
}

func TestCaliforniaMarginalRate(t *testing.T) {
	cc := newCalifornia(t, domain.FilingSingle, 2025)
	assertDec(t, "0.01", cc.MarginalRate(dollars(5_000)))
	assertDec(t, "0.09", cc.MarginalRate(dollars(100_000)).Round(2))
	assertDec(t, "0.12", cc.MarginalRate(dollars(800_000)).Round(2))
}
