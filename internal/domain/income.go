package domain

import "github.com/shopspring/decimal"

// TaxableIncome is the normalized income profile a calculation run starts
// from. Rental income is signed; everything else is non-negative by
// construction of the source forms.
type TaxableIncome struct {
	Wages                 decimal.Decimal
	InterestIncome        decimal.Decimal
	DividendIncome        decimal.Decimal
	QualifiedDividends    decimal.Decimal
	ShortTermCapitalGains decimal.Decimal
	LongTermCapitalGains  decimal.Decimal
	SelfEmploymentIncome  decimal.Decimal
	RetirementIncome      decimal.Decimal
	RentalIncome          decimal.Decimal
	OtherIncome           decimal.Decimal
}

// TotalIncome is the sum of every income component. QualifiedDividends is
// a subset of DividendIncome and is not added separately.
func (ti TaxableIncome) TotalIncome() decimal.Decimal {
	return ti.Wages.
		Add(ti.InterestIncome).
		Add(ti.DividendIncome).
		Add(ti.ShortTermCapitalGains).
		Add(ti.LongTermCapitalGains).
		Add(ti.SelfEmploymentIncome).
		Add(ti.RetirementIncome).
		Add(ti.RentalIncome).
		Add(ti.OtherIncome)
}

// CapitalGains is the combined short- and long-term gain (signed).
func (ti TaxableIncome) CapitalGains() decimal.Decimal {
	return ti.ShortTermCapitalGains.Add(ti.LongTermCapitalGains)
}

// IncomeContribution is one source document's additive contribution to the
// income profile. Assembling income as a fold over contributions keeps the
// result independent of document order.
type IncomeContribution struct {
	Wages                 decimal.Decimal
	InterestIncome        decimal.Decimal
	DividendIncome        decimal.Decimal
	QualifiedDividends    decimal.Decimal
	ShortTermCapitalGains decimal.Decimal
	LongTermCapitalGains  decimal.Decimal
	SelfEmploymentIncome  decimal.Decimal
	RetirementIncome      decimal.Decimal
	OtherIncome           decimal.Decimal
}

// Add returns a new TaxableIncome with the contribution applied.
func (ti TaxableIncome) Add(c IncomeContribution) TaxableIncome {
	ti.Wages = ti.Wages.Add(c.Wages)
	ti.InterestIncome = ti.InterestIncome.Add(c.InterestIncome)
	ti.DividendIncome = ti.DividendIncome.Add(c.DividendIncome)
	ti.QualifiedDividends = ti.QualifiedDividends.Add(c.QualifiedDividends)
	ti.ShortTermCapitalGains = ti.ShortTermCapitalGains.Add(c.ShortTermCapitalGains)
	ti.LongTermCapitalGains = ti.LongTermCapitalGains.Add(c.LongTermCapitalGains)
	ti.SelfEmploymentIncome = ti.SelfEmploymentIncome.Add(c.SelfEmploymentIncome)
	ti.RetirementIncome = ti.RetirementIncome.Add(c.RetirementIncome)
	ti.OtherIncome = ti.OtherIncome.Add(c.OtherIncome)
	return ti
}

// AccumulateIncome folds a sequence of contributions into one income
// profile. The fold is commutative, so document order does not matter.
func AccumulateIncome(contributions []IncomeContribution) TaxableIncome {
	var income TaxableIncome
	for _, c := range contributions {
		income = income.Add(c)
	}
	return income
}

// WithRentalIncome returns a copy with net rental income set from a
// computed Schedule E summary.
func (ti TaxableIncome) WithRentalIncome(net decimal.Decimal) TaxableIncome {
	ti.RentalIncome = net
	return ti
}

// ApplyCapitalLossCarryover reduces long-term capital gains by a prior-year
// loss carryover, limited to the annual deduction cap ($3,000, or $1,500
// for married filing separately). Returns the adjusted income.
func (ti TaxableIncome) ApplyCapitalLossCarryover(carryover decimal.Decimal, status FilingStatus) TaxableIncome {
	if carryover.LessThanOrEqual(decimal.Zero) {
		return ti
	}
	cap := decimal.NewFromInt(3000)
	if status == FilingMarriedFilingSeparately {
		cap = decimal.NewFromInt(1500)
	}
	loss := decimal.Min(carryover, cap)
	ti.LongTermCapitalGains = ti.LongTermCapitalGains.Sub(loss)
	return ti
}
