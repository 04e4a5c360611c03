package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentalProperty is one rental real-estate record. PurchaseDate may be nil
// when unknown; the depreciation calculator then assumes a full year in
// service.
type RentalProperty struct {
	Address      string
	PropertyType string

	PurchasePrice decimal.Decimal
	PurchaseDate  *time.Time
	LandValue     decimal.Decimal

	DaysRented      int
	PersonalUseDays int

	RentalIncome decimal.Decimal

	Advertising      decimal.Decimal
	CleaningMaint    decimal.Decimal
	ManagementFees   decimal.Decimal
	MortgageInterest decimal.Decimal
	Repairs          decimal.Decimal
	Supplies         decimal.Decimal
	PropertyTax      decimal.Decimal
	Insurance        decimal.Decimal
	Utilities        decimal.Decimal
	OtherExpenses    decimal.Decimal
}

// DepreciableBasis is purchase price less land value, floored at zero.
func (p RentalProperty) DepreciableBasis() decimal.Decimal {
	return decimal.Max(p.PurchasePrice.Sub(p.LandValue), decimal.Zero)
}

// TotalExpenses sums every operating expense line (before any personal-use
// proration).
func (p RentalProperty) TotalExpenses() decimal.Decimal {
	return p.Advertising.
		Add(p.CleaningMaint).
		Add(p.ManagementFees).
		Add(p.MortgageInterest).
		Add(p.Repairs).
		Add(p.Supplies).
		Add(p.PropertyTax).
		Add(p.Insurance).
		Add(p.Utilities).
		Add(p.OtherExpenses)
}

// ScheduleEResult is the per-property computation. NetIncome may be
// negative.
type ScheduleEResult struct {
	Address       string
	GrossIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Depreciation  decimal.Decimal
	NetIncome     decimal.Decimal
}

// ScheduleESummary aggregates per-property results. PassiveLossDisallowed
// is a precomputed Form 8582-style disallowance supplied by the caller;
// this package only carries it.
type ScheduleESummary struct {
	Properties            []ScheduleEResult
	PassiveLossDisallowed decimal.Decimal
}

// TotalGrossIncome sums gross rents across properties.
func (s ScheduleESummary) TotalGrossIncome() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Properties {
		total = total.Add(p.GrossIncome)
	}
	return total
}

// TotalExpenses sums prorated operating expenses across properties.
func (s ScheduleESummary) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Properties {
		total = total.Add(p.TotalExpenses)
	}
	return total
}

// TotalDepreciation sums prorated depreciation across properties.
func (s ScheduleESummary) TotalDepreciation() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Properties {
		total = total.Add(p.Depreciation)
	}
	return total
}

// TotalNetIncome sums per-property net income (signed).
func (s ScheduleESummary) TotalNetIncome() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Properties {
		total = total.Add(p.NetIncome)
	}
	return total
}

// AllowedNetIncome is total net income with the disallowed passive loss
// added back.
func (s ScheduleESummary) AllowedNetIncome() decimal.Decimal {
	return s.TotalNetIncome().Add(s.PassiveLossDisallowed)
}
