package calculation

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/taxprep/taxengine/internal/domain"
	"github.com/taxprep/taxengine/internal/rates"
)

// StateInput is the snapshot one state calculation run consumes. Every
// state calculator produces the same TaxCalculation shape as the federal
// path so downstream consumers stay jurisdiction-agnostic.
type StateInput struct {
	Income            domain.TaxableIncome
	Deductions        domain.Deductions
	Credits           domain.TaxCredits
	StateWithheld     decimal.Decimal
	EstimatedPayments decimal.Decimal

	NumExemptions int
	IsRenter      bool

	ScheduleAData *domain.ScheduleAData
	ScheduleE     *domain.ScheduleESummary

	// USTreasuryInterest is exempt from state tax and subtracted from
	// gross income on every state path.
	USTreasuryInterest decimal.Decimal

	// FederalAGI drives California's exemption-credit phase-out.
	FederalAGI decimal.Decimal
}

// StateCalculator is the shared contract every implemented state fulfils.
type StateCalculator interface {
	Calculate(in StateInput) (*domain.TaxCalculation, error)
}

// stateConstructors enumerates the implemented states. Adding a state
// means adding one entry and one calculator type.
var stateConstructors = map[string]func(domain.FilingStatus, int) (StateCalculator, error){
	"CA": newCaliforniaCalculator,
	"NY": newNewYorkCalculator,
	"NJ": newNewJerseyCalculator,
	"PA": newPennsylvaniaCalculator,
}

// SupportedStates returns state code to display name for every state with
// an implemented calculator.
func SupportedStates() map[string]string {
	return map[string]string{
		"CA": "California (Form 540)",
		"NY": "New York (IT-201)",
		"NJ": "New Jersey (NJ-1040)",
		"PA": "Pennsylvania (PA-40)",
	}
}

// CalculateStateTax dispatches on the two-letter state code. No-income-tax
// states and unimplemented codes return (nil, nil): "not computed" is a
// valid outcome, not an error.
func CalculateStateTax(stateCode string, status domain.FilingStatus, taxYear int, in StateInput) (*domain.TaxCalculation, error) {
	code := strings.ToUpper(strings.TrimSpace(stateCode))
	if len(code) != 2 {
		return nil, nil
	}
	if rates.StateHasNoIncomeTax(code) {
		return nil, nil
	}
	construct, ok := stateConstructors[code]
	if !ok {
		return nil, nil
	}
	calc, err := construct(status, taxYear)
	if err != nil {
		return nil, err
	}
	return calc.Calculate(in)
}
