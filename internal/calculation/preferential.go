package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxprep/taxengine/internal/domain"
	"github.com/taxprep/taxengine/internal/rates"
)

// stackedTax splits taxable income into an ordinary portion and a
// preferential portion (qualified dividends plus net long-term gains) and
// taxes the preferential portion against its own schedule, stacked on top
// of the ordinary income rather than starting from zero. Bracket
// thresholds are income-level thresholds, so a preferential dollar sitting
// above a breakpoint is taxed at the higher preferential rate even though
// the same dollar of ordinary income would not be.
//
// With no preferential income this degenerates to a plain progressive walk
// over the ordinary table.
func stackedTax(
	ordinaryTable, preferentialTable rates.Table,
	taxableIncome, qualifiedDividends, netLongTermGain decimal.Decimal,
) (total, ordinaryTax, preferentialTax decimal.Decimal, breakdown []domain.BracketLine, err error) {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero, decimal.Zero, nil, nil
	}

	gains := decimal.Max(netLongTermGain, decimal.Zero)
	preferential := decimal.Min(qualifiedDividends.Add(gains), taxableIncome)
	if preferential.LessThanOrEqual(decimal.Zero) {
		ordinaryTax, breakdown, err = progressiveTax(ordinaryTable, taxableIncome)
		return ordinaryTax, ordinaryTax, decimal.Zero, breakdown, err
	}

	ordinaryIncome := taxableIncome.Sub(preferential)
	ordinaryTax, breakdown, err = progressiveTax(ordinaryTable, ordinaryIncome)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, nil, err
	}
	if err = preferentialTable.Validate(); err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, nil, err
	}

	// Stack position starts where ordinary income ends.
	position := ordinaryIncome
	remaining := preferential
	for _, br := range preferentialTable {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		room := remaining
		if !br.Top {
			room = decimal.Max(br.Upper.Sub(position), decimal.Zero)
		}
		slice := decimal.Min(remaining, room)
		if slice.GreaterThan(decimal.Zero) {
			sliceTax := slice.Mul(br.Rate)
			preferentialTax = preferentialTax.Add(sliceTax)
			upper := position.Add(slice)
			breakdown = append(breakdown, domain.BracketLine{
				Lower:        position,
				Upper:        &upper,
				Rate:         br.Rate,
				Income:       slice,
				Tax:          sliceTax,
				Preferential: true,
			})
			position = position.Add(slice)
			remaining = remaining.Sub(slice)
		}
	}

	total = ordinaryTax.Add(preferentialTax)
	return total, ordinaryTax, preferentialTax, breakdown, nil
}
