// Package rates holds the versioned regulatory tables: progressive bracket
// schedules, standard deductions, credit parameters, and surtax thresholds
// keyed by tax year and filing status. Tables are immutable package data;
// lookups for unsupported years fail loudly instead of defaulting.
package rates

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/taxprep/taxengine/internal/domain"
)

// Bracket is one row of a progressive schedule: income up to Upper is
// taxed at Rate. The final row of every table has Top set and an ignored
// Upper, making it open-ended.
type Bracket struct {
	Upper decimal.Decimal
	Rate  decimal.Decimal
	Top   bool
}

// Table is an ordered progressive bracket schedule.
type Table []Bracket

// Validate checks the structural invariants: at least one bracket, upper
// bounds strictly increasing, rates within [0, 1], and exactly one
// open-ended bracket in the final position.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("bracket table is empty")
	}
	prev := decimal.Zero
	for i, b := range t {
		if b.Rate.LessThan(decimal.Zero) || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("bracket %d: rate %s out of range", i, b.Rate)
		}
		if b.Top {
			if i != len(t)-1 {
				return fmt.Errorf("bracket %d: open-ended bracket before end of table", i)
			}
			continue
		}
		if i == len(t)-1 {
			return fmt.Errorf("bracket table missing a final open-ended bracket")
		}
		if b.Upper.LessThanOrEqual(prev) {
			return fmt.Errorf("bracket %d: upper bound %s not increasing", i, b.Upper)
		}
		prev = b.Upper
	}
	return nil
}

// TopRate is the rate of the final open-ended bracket.
func (t Table) TopRate() decimal.Decimal {
	if len(t) == 0 {
		return decimal.Zero
	}
	return t[len(t)-1].Rate
}

// BottomRate is the rate of the first bracket.
func (t Table) BottomRate() decimal.Decimal {
	if len(t) == 0 {
		return decimal.Zero
	}
	return t[0].Rate
}

func d(i int64) decimal.Decimal { return decimal.NewFromInt(i) }

func r(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func b(upper int64, rate float64) Bracket {
	return Bracket{Upper: d(upper), Rate: r(rate)}
}

func top(rate float64) Bracket {
	return Bracket{Rate: r(rate), Top: true}
}

type yearStatusKey struct {
	year   int
	status domain.FilingStatus
}

func lookupTable(kind string, tables map[yearStatusKey]Table, year int, status domain.FilingStatus) (Table, error) {
	t, ok := tables[yearStatusKey{year, status}]
	if !ok {
		return nil, fmt.Errorf("no %s bracket table for year %d filing status %s", kind, year, status)
	}
	return t, nil
}

func unsupportedYear(kind string, year int) error {
	return fmt.Errorf("no %s for year %d", kind, year)
}

func lookupAmount(kind string, amounts map[yearStatusKey]decimal.Decimal, year int, status domain.FilingStatus) (decimal.Decimal, error) {
	a, ok := amounts[yearStatusKey{year, status}]
	if !ok {
		return decimal.Zero, fmt.Errorf("no %s amount for year %d filing status %s", kind, year, status)
	}
	return a, nil
}

// SupportedYears lists the tax years every table in this package covers.
var SupportedYears = []int{2024, 2025}

// YearSupported reports whether year has a complete table set.
func YearSupported(year int) bool {
	for _, y := range SupportedYears {
		if y == year {
			return true
		}
	}
	return false
}
