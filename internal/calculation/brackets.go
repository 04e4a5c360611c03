package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxprep/taxengine/internal/domain"
	"github.com/taxprep/taxengine/internal/rates"
)

// progressiveTax walks an ordered bracket table and returns the total tax
// plus a per-bracket breakdown. Non-positive income short-circuits to zero
// with an empty breakdown. The table is validated before the walk so a
// malformed schedule surfaces as an error instead of a wrong number.
func progressiveTax(t rates.Table, taxableIncome decimal.Decimal) (decimal.Decimal, []domain.BracketLine, error) {
	if err := t.Validate(); err != nil {
		return decimal.Zero, nil, err
	}
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil, nil
	}

	total := decimal.Zero
	var breakdown []domain.BracketLine
	previousLimit := decimal.Zero

	for _, br := range t {
		if taxableIncome.LessThanOrEqual(previousLimit) {
			break
		}
		ceiling := taxableIncome
		if !br.Top {
			ceiling = decimal.Min(taxableIncome, br.Upper)
		}
		bracketIncome := ceiling.Sub(previousLimit)
		if bracketIncome.GreaterThan(decimal.Zero) {
			bracketTax := bracketIncome.Mul(br.Rate)
			total = total.Add(bracketTax)
			line := domain.BracketLine{
				Lower:  previousLimit,
				Rate:   br.Rate,
				Income: bracketIncome,
				Tax:    bracketTax,
			}
			if !br.Top {
				upper := br.Upper
				line.Upper = &upper
			}
			breakdown = append(breakdown, line)
		}
		if br.Top {
			break
		}
		previousLimit = br.Upper
	}

	return total, breakdown, nil
}

// marginalRate returns the rate of the first bracket whose upper bound is
// at or above the income, falling back to the top rate.
func marginalRate(t rates.Table, taxableIncome decimal.Decimal) decimal.Decimal {
	for _, br := range t {
		if br.Top || taxableIncome.LessThanOrEqual(br.Upper) {
			return br.Rate
		}
	}
	return t.TopRate()
}
