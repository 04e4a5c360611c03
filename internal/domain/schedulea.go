package domain

import "github.com/shopspring/decimal"

// VehicleRegistration is one vehicle's registration billing. Only the
// license-fee portion is deductible as personal property tax; weight and
// service fees are not.
type VehicleRegistration struct {
	Description          string
	TotalRegistrationFee decimal.Decimal
	VehicleLicenseFee    decimal.Decimal
	WeightFee            decimal.Decimal
	OtherFees            decimal.Decimal
}

// ScheduleAData is the raw itemizable input set. It is immutable input to
// the itemized deduction calculator; both the federal and state paths read
// the same data.
type ScheduleAData struct {
	MedicalExpenses       decimal.Decimal
	StateIncomeTaxPaid    decimal.Decimal
	RealEstateTaxes       decimal.Decimal
	PersonalPropertyTaxes decimal.Decimal
	VehicleRegistrations  []VehicleRegistration
	MortgageInterest      decimal.Decimal
	MortgagePoints        decimal.Decimal
	MortgageBalance       decimal.Decimal
	InvestmentInterest    decimal.Decimal
	CashContributions     decimal.Decimal
	NoncashContributions  decimal.Decimal
	CasualtyLosses        decimal.Decimal
	OtherDeductions       decimal.Decimal
	// State-only miscellaneous deductions, gross of the 2% AGI floor.
	StateMiscDeductions decimal.Decimal
}

// TotalVehicleLicenseFees sums the deductible license-fee portion across
// all registrations.
func (d ScheduleAData) TotalVehicleLicenseFees() decimal.Decimal {
	total := decimal.Zero
	for _, reg := range d.VehicleRegistrations {
		total = total.Add(reg.VehicleLicenseFee)
	}
	return total
}

// ScheduleAResult is the computed itemized deduction breakdown for one
// jurisdiction. Created once per return per jurisdiction and never mutated.
type ScheduleAResult struct {
	MedicalDeduction          decimal.Decimal
	SALTDeduction             decimal.Decimal
	SALTUncapped              decimal.Decimal
	MortgageInterestDeduction decimal.Decimal
	CharitableDeduction       decimal.Decimal
	OtherDeductions           decimal.Decimal
	// MiscDeduction is the state-only misc line after its AGI floor.
	MiscDeduction decimal.Decimal
	// ItemizedLimitation is the high-income phase-out already subtracted
	// from TotalItemized (California path only).
	ItemizedLimitation decimal.Decimal
	TotalItemized      decimal.Decimal
	StandardDeduction  decimal.Decimal
	UseItemized        bool
	DeductionAmount    decimal.Decimal
}
