package domain

import "github.com/shopspring/decimal"

// Source-form records as produced by the document-extraction collaborator.
// Each form knows its additive contribution to the income profile, so a
// return's income is a fold over its forms.

// W2 is a W-2 wage statement.
type W2 struct {
	EmployerName          string
	EmployerEIN           string
	Wages                 decimal.Decimal
	FederalWithheld       decimal.Decimal
	SocialSecurityWages   decimal.Decimal
	SocialSecurityTax     decimal.Decimal
	MedicareWages         decimal.Decimal
	MedicareTax           decimal.Decimal
	DependentCareBenefits decimal.Decimal
	State                 string
	StateWages            decimal.Decimal
	StateWithheld         decimal.Decimal
}

// Contribution returns the W-2's income contribution.
func (f W2) Contribution() IncomeContribution {
	return IncomeContribution{Wages: f.Wages}
}

// Form1099Int is a 1099-INT interest statement.
type Form1099Int struct {
	PayerName          string
	InterestIncome     decimal.Decimal
	USTreasuryInterest decimal.Decimal
	FederalWithheld    decimal.Decimal
}

func (f Form1099Int) Contribution() IncomeContribution {
	return IncomeContribution{InterestIncome: f.InterestIncome}
}

// Form1099Div is a 1099-DIV dividend statement. Capital gain distributions
// are long-term by definition.
type Form1099Div struct {
	PayerName                string
	OrdinaryDividends        decimal.Decimal
	QualifiedDividends       decimal.Decimal
	CapitalGainDistributions decimal.Decimal
	FederalWithheld          decimal.Decimal
}

func (f Form1099Div) Contribution() IncomeContribution {
	return IncomeContribution{
		DividendIncome:       f.OrdinaryDividends,
		QualifiedDividends:   f.QualifiedDividends,
		LongTermCapitalGains: f.CapitalGainDistributions,
	}
}

// Form1099Nec is a 1099-NEC non-employee compensation statement.
type Form1099Nec struct {
	PayerName               string
	NonemployeeCompensation decimal.Decimal
	FederalWithheld         decimal.Decimal
}

func (f Form1099Nec) Contribution() IncomeContribution {
	return IncomeContribution{SelfEmploymentIncome: f.NonemployeeCompensation}
}

// Form1099Misc is a 1099-MISC statement (Box 3 other income).
type Form1099Misc struct {
	PayerName       string
	OtherIncome     decimal.Decimal
	FederalWithheld decimal.Decimal
}

func (f Form1099Misc) Contribution() IncomeContribution {
	return IncomeContribution{OtherIncome: f.OtherIncome}
}

// Form1099R is a 1099-R retirement distribution statement.
type Form1099R struct {
	PayerName                  string
	GrossDistribution          decimal.Decimal
	TaxableAmount              decimal.Decimal
	TaxableAmountNotDetermined bool
	DistributionCode           string
	FederalWithheld            decimal.Decimal
	StateWithheld              decimal.Decimal
}

func (f Form1099R) Contribution() IncomeContribution {
	return IncomeContribution{RetirementIncome: f.TaxableAmount}
}

// Form1099B is a 1099-B broker statement with aggregated proceeds.
type Form1099B struct {
	BrokerName        string
	Proceeds          decimal.Decimal
	CostBasis         decimal.Decimal
	ShortTermGainLoss decimal.Decimal
	LongTermGainLoss  decimal.Decimal
}

func (f Form1099B) Contribution() IncomeContribution {
	return IncomeContribution{
		ShortTermCapitalGains: f.ShortTermGainLoss,
		LongTermCapitalGains:  f.LongTermGainLoss,
	}
}

// Form1098 is a 1098 mortgage interest statement. IsRental routes the
// interest to Schedule E instead of Schedule A.
type Form1098 struct {
	LenderName       string
	MortgageInterest decimal.Decimal
	PropertyTaxes    decimal.Decimal
	IsRental         bool
}

// EstimatedTaxPayment is one quarterly payment toward a jurisdiction.
type EstimatedTaxPayment struct {
	Period       string
	Jurisdiction string // "federal" or "state"
	Amount       decimal.Decimal
}
