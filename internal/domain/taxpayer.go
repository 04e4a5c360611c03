package domain

import "github.com/shopspring/decimal"

// Dependent is one claimed dependent. Children under 17 qualify for the
// Child Tax Credit.
type Dependent struct {
	Name         string
	Age          int
	Relationship string
}

// QualifiesForChildTaxCredit reports CTC eligibility by age.
func (d Dependent) QualifiesForChildTaxCredit() bool {
	return d.Age < 17
}

// TaxpayerInfo is the taxpayer metadata a calculation run needs.
type TaxpayerInfo struct {
	Name         string
	FilingStatus FilingStatus
	Age          int
	SpouseAge    int
	IsBlind      bool
	State        string
	IsRenter     bool
	Dependents   []Dependent
}

// NumQualifyingChildren counts CTC-eligible dependents.
func (t TaxpayerInfo) NumQualifyingChildren() int {
	n := 0
	for _, d := range t.Dependents {
		if d.QualifiesForChildTaxCredit() {
			n++
		}
	}
	return n
}

// NumExemptions is the taxpayer, spouse when filing jointly, and each
// dependent (state exemption-credit basis).
func (t TaxpayerInfo) NumExemptions() int {
	n := 1
	if t.FilingStatus == FilingMarriedFilingJointly {
		n++
	}
	return n + len(t.Dependents)
}

// TaxReturn is the full input snapshot for one calculation run plus its
// computed results. A run never mutates the source forms; it only fills
// the calculation fields.
type TaxReturn struct {
	Taxpayer TaxpayerInfo
	TaxYear  int
	Income   TaxableIncome

	W2Forms      []W2
	Forms1099Int []Form1099Int
	Forms1099Div []Form1099Div
	Forms1099Nec []Form1099Nec
	Forms1099Misc []Form1099Misc
	Forms1099R   []Form1099R
	Forms1099B   []Form1099B
	Forms1098    []Form1098

	RentalProperties []RentalProperty
	ScheduleAData    *ScheduleAData
	EstimatedPayments []EstimatedTaxPayment

	CapitalLossCarryover decimal.Decimal
	USTreasuryInterest   decimal.Decimal
	WithheldAdjustment   decimal.Decimal

	FederalCalculation *TaxCalculation
	StateCalculation   *TaxCalculation
}

// IncomeContributions collects every form's contribution in one slice,
// ready for AccumulateIncome.
func (tr TaxReturn) IncomeContributions() []IncomeContribution {
	var cs []IncomeContribution
	for _, f := range tr.W2Forms {
		cs = append(cs, f.Contribution())
	}
	for _, f := range tr.Forms1099Int {
		cs = append(cs, f.Contribution())
	}
	for _, f := range tr.Forms1099Div {
		cs = append(cs, f.Contribution())
	}
	for _, f := range tr.Forms1099Nec {
		cs = append(cs, f.Contribution())
	}
	for _, f := range tr.Forms1099Misc {
		cs = append(cs, f.Contribution())
	}
	for _, f := range tr.Forms1099R {
		cs = append(cs, f.Contribution())
	}
	for _, f := range tr.Forms1099B {
		cs = append(cs, f.Contribution())
	}
	return cs
}

// TotalFederalWithheld sums federal withholding from all sources, plus any
// manual correction.
func (tr TaxReturn) TotalFederalWithheld() decimal.Decimal {
	total := tr.WithheldAdjustment
	for _, f := range tr.W2Forms {
		total = total.Add(f.FederalWithheld)
	}
	for _, f := range tr.Forms1099Int {
		total = total.Add(f.FederalWithheld)
	}
	for _, f := range tr.Forms1099Div {
		total = total.Add(f.FederalWithheld)
	}
	for _, f := range tr.Forms1099Nec {
		total = total.Add(f.FederalWithheld)
	}
	for _, f := range tr.Forms1099Misc {
		total = total.Add(f.FederalWithheld)
	}
	for _, f := range tr.Forms1099R {
		total = total.Add(f.FederalWithheld)
	}
	return total
}

// TotalStateWithheld sums state withholding from W-2s and 1099-Rs.
func (tr TaxReturn) TotalStateWithheld() decimal.Decimal {
	total := decimal.Zero
	for _, f := range tr.W2Forms {
		total = total.Add(f.StateWithheld)
	}
	for _, f := range tr.Forms1099R {
		total = total.Add(f.StateWithheld)
	}
	return total
}

// TotalMedicareWages sums W-2 Box 5 wages; the orchestrator prefers these
// over Box 1 wages for the Additional Medicare computation.
func (tr TaxReturn) TotalMedicareWages() decimal.Decimal {
	total := decimal.Zero
	for _, f := range tr.W2Forms {
		total = total.Add(f.MedicareWages)
	}
	return total
}

// TotalPersonalMortgageInterest sums 1098 interest for non-rental loans.
func (tr TaxReturn) TotalPersonalMortgageInterest() decimal.Decimal {
	total := decimal.Zero
	for _, f := range tr.Forms1098 {
		if !f.IsRental {
			total = total.Add(f.MortgageInterest)
		}
	}
	return total
}

// TotalRentalMortgageInterest sums 1098 interest flagged as rental.
func (tr TaxReturn) TotalRentalMortgageInterest() decimal.Decimal {
	total := decimal.Zero
	for _, f := range tr.Forms1098 {
		if f.IsRental {
			total = total.Add(f.MortgageInterest)
		}
	}
	return total
}

// EstimatedPaymentsFor sums estimated payments for one jurisdiction key.
func (tr TaxReturn) EstimatedPaymentsFor(jurisdiction string) decimal.Decimal {
	total := decimal.Zero
	for _, p := range tr.EstimatedPayments {
		if p.Jurisdiction == jurisdiction {
			total = total.Add(p.Amount)
		}
	}
	return total
}
