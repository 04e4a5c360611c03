package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/taxprep/taxengine/internal/domain"
	"github.com/taxprep/taxengine/internal/rates"
)

// Engine orchestrates one full calculation run: income accumulation from
// source forms, Schedule E, federal, and state. It is stateless between
// runs; a run reads the return's inputs and fills its calculation fields
// without touching the source forms.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger replaces the engine's logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// accumulateIncome folds every source form's contribution into the
// return's base income, applies the capital-loss carryover, and routes
// Schedule E net income.
func (e *Engine) accumulateIncome(tr *domain.TaxReturn, scheduleE *domain.ScheduleESummary) domain.TaxableIncome {
	income := tr.Income
	for _, c := range tr.IncomeContributions() {
		income = income.Add(c)
	}
	if !tr.CapitalLossCarryover.IsZero() {
		income = income.ApplyCapitalLossCarryover(tr.CapitalLossCarryover, tr.Taxpayer.FilingStatus)
	}
	if scheduleE != nil {
		income = income.WithRentalIncome(scheduleE.AllowedNetIncome())
	}
	return income
}

// treasuryInterest sums the return-level override with per-form US
// Treasury interest; the total is exempt from state tax.
func treasuryInterest(tr *domain.TaxReturn) decimal.Decimal {
	total := tr.USTreasuryInterest
	for _, f := range tr.Forms1099Int {
		total = total.Add(f.USTreasuryInterest)
	}
	return total
}

// scheduleAData returns the return's itemized inputs with 1098 mortgage
// interest filled in when the extraction left the field empty.
func scheduleAData(tr *domain.TaxReturn) *domain.ScheduleAData {
	data := tr.ScheduleAData
	if data == nil {
		return nil
	}
	if data.MortgageInterest.IsZero() {
		filled := *data
		filled.MortgageInterest = tr.TotalPersonalMortgageInterest()
		return &filled
	}
	return data
}

// Calculate runs the full pipeline and fills tr.FederalCalculation and
// tr.StateCalculation. The state calculation stays nil for no-income-tax
// states and unimplemented codes.
func (e *Engine) Calculate(tr *domain.TaxReturn) error {
	if !rates.YearSupported(tr.TaxYear) {
		return fmt.Errorf("tax year %d is not supported (have %v)", tr.TaxYear, rates.SupportedYears)
	}
	status := tr.Taxpayer.FilingStatus
	if !status.IsValid() {
		return fmt.Errorf("invalid filing status %q", status)
	}

	var scheduleE *domain.ScheduleESummary
	if len(tr.RentalProperties) > 0 {
		summary, err := NewScheduleECalculator(tr.TaxYear).CalculateSummary(tr.RentalProperties, decimal.Zero)
		if err != nil {
			return fmt.Errorf("schedule e: %w", err)
		}
		scheduleE = summary
		e.Logger.Debugf("schedule e: %d properties, net income %s",
			len(summary.Properties), summary.TotalNetIncome())
	}

	income := e.accumulateIncome(tr, scheduleE)
	itemized := scheduleAData(tr)

	federalCalc, err := NewFederalTaxCalculator(status, tr.TaxYear)
	if err != nil {
		return err
	}
	federal, err := federalCalc.Calculate(FederalInput{
		Income:             income,
		Deductions:         domain.Deductions{UseStandard: true},
		Credits:            domain.TaxCredits{},
		FederalWithheld:    tr.TotalFederalWithheld(),
		EstimatedPayments:  tr.EstimatedPaymentsFor("federal"),
		Age:                tr.Taxpayer.Age,
		SpouseAge:          tr.Taxpayer.SpouseAge,
		IsBlind:            tr.Taxpayer.IsBlind,
		QualifyingChildren: tr.Taxpayer.NumQualifyingChildren(),
		MedicareWages:      tr.TotalMedicareWages(),
		ScheduleAData:      itemized,
		ScheduleE:          scheduleE,
	})
	if err != nil {
		return fmt.Errorf("federal: %w", err)
	}
	tr.FederalCalculation = federal
	e.Logger.Infof("federal: taxable income %s, tax after credits %s",
		federal.TaxableIncome, federal.TaxAfterCredits)

	state, err := CalculateStateTax(tr.Taxpayer.State, status, tr.TaxYear, StateInput{
		Income:             income,
		Deductions:         domain.Deductions{UseStandard: true},
		Credits:            domain.TaxCredits{},
		StateWithheld:      tr.TotalStateWithheld(),
		EstimatedPayments:  tr.EstimatedPaymentsFor("state"),
		NumExemptions:      tr.Taxpayer.NumExemptions(),
		IsRenter:           tr.Taxpayer.IsRenter,
		ScheduleAData:      itemized,
		ScheduleE:          scheduleE,
		USTreasuryInterest: treasuryInterest(tr),
		FederalAGI:         federal.AdjustedGrossIncome,
	})
	if err != nil {
		return fmt.Errorf("state %s: %w", tr.Taxpayer.State, err)
	}
	tr.StateCalculation = state
	if state == nil {
		e.Logger.Infof("state %s: no calculation", tr.Taxpayer.State)
	} else {
		e.Logger.Infof("%s: taxable income %s, tax after credits %s",
			state.Jurisdiction, state.TaxableIncome, state.TaxAfterCredits)
	}

	return nil
}
