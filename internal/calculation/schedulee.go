package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/taxprep/taxengine/internal/domain"
)

// Residential rental property depreciates straight-line over 27.5 years.
var depreciationLife = decimal.NewFromFloat(27.5)

var (
	twelve   = decimal.NewFromInt(12)
	thirteen = decimal.NewFromInt(13)
)

// ScheduleECalculator computes per-property rental results for one tax
// year. Passive-activity-loss disallowance is supplied by the caller on
// the summary; the calculator itself never limits losses.
type ScheduleECalculator struct {
	TaxYear int
}

// NewScheduleECalculator creates a Schedule E calculator.
func NewScheduleECalculator(taxYear int) *ScheduleECalculator {
	return &ScheduleECalculator{TaxYear: taxYear}
}

// monthsInService applies the mid-month convention: a property placed in
// service during the tax year counts 13 minus the purchase month; prior
// years count a full 12, future years zero.
func (sc *ScheduleECalculator) monthsInService(p domain.RentalProperty) decimal.Decimal {
	if p.PurchaseDate == nil {
		return twelve
	}
	switch year := p.PurchaseDate.Year(); {
	case year < sc.TaxYear:
		return twelve
	case year > sc.TaxYear:
		return decimal.Zero
	}
	months := thirteen.Sub(decimal.NewFromInt(int64(p.PurchaseDate.Month())))
	if months.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return decimal.Min(months, twelve)
}

// AnnualDepreciation computes the property's straight-line depreciation
// for the tax year, before any personal-use proration.
func (sc *ScheduleECalculator) AnnualDepreciation(p domain.RentalProperty) (decimal.Decimal, error) {
	if p.PurchasePrice.LessThan(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("rental property %q: negative purchase price %s", p.Address, p.PurchasePrice)
	}
	basis := p.DepreciableBasis()
	if basis.IsZero() {
		return decimal.Zero, nil
	}
	months := sc.monthsInService(p)
	return basis.Div(depreciationLife).Mul(months).Div(twelve), nil
}

// CalculateProperty computes one property's Schedule E line. When there
// are personal-use days, expenses and depreciation are prorated by the
// rental share of total use days before computing net income.
func (sc *ScheduleECalculator) CalculateProperty(p domain.RentalProperty) (domain.ScheduleEResult, error) {
	depreciation, err := sc.AnnualDepreciation(p)
	if err != nil {
		return domain.ScheduleEResult{}, err
	}

	expenses := p.TotalExpenses()
	if p.PersonalUseDays > 0 {
		totalDays := p.DaysRented + p.PersonalUseDays
		if totalDays > 0 {
			rentalShare := decimal.NewFromInt(int64(p.DaysRented)).Div(decimal.NewFromInt(int64(totalDays)))
			expenses = expenses.Mul(rentalShare)
			depreciation = depreciation.Mul(rentalShare)
		}
	}

	gross := p.RentalIncome
	net := gross.Sub(expenses).Sub(depreciation)

	return domain.ScheduleEResult{
		Address:       p.Address,
		GrossIncome:   gross.Round(2),
		TotalExpenses: expenses.Round(2),
		Depreciation:  depreciation.Round(2),
		NetIncome:     net.Round(2),
	}, nil
}

// CalculateSummary computes every property and aggregates them.
// passiveLossDisallowed is the externally computed Form 8582-style
// disallowance carried on the summary.
func (sc *ScheduleECalculator) CalculateSummary(properties []domain.RentalProperty, passiveLossDisallowed decimal.Decimal) (*domain.ScheduleESummary, error) {
	summary := &domain.ScheduleESummary{PassiveLossDisallowed: passiveLossDisallowed}
	for _, p := range properties {
		result, err := sc.CalculateProperty(p)
		if err != nil {
			return nil, err
		}
		summary.Properties = append(summary.Properties, result)
	}
	return summary, nil
}
