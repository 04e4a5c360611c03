// Package config loads taxpayer profiles from YAML files and converts
// them into calculation-ready tax returns.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/taxprep/taxengine/internal/domain"
)

// DependentConfig is one claimed dependent.
type DependentConfig struct {
	Name         string `yaml:"name" json:"name"`
	Age          int    `yaml:"age" json:"age"`
	Relationship string `yaml:"relationship" json:"relationship"`
}

// TaxpayerConfig holds taxpayer metadata.
type TaxpayerConfig struct {
	Name         string            `yaml:"name" json:"name"`
	FilingStatus string            `yaml:"filing_status" json:"filing_status"`
	Age          int               `yaml:"age" json:"age"`
	SpouseAge    int               `yaml:"spouse_age" json:"spouse_age"`
	IsBlind      bool              `yaml:"is_blind" json:"is_blind"`
	State        string            `yaml:"state" json:"state"`
	IsRenter     bool              `yaml:"is_renter" json:"is_renter"`
	Dependents   []DependentConfig `yaml:"dependents" json:"dependents"`
}

// IncomeConfig is the direct income profile for amounts not carried on a
// source form.
type IncomeConfig struct {
	Wages                 decimal.Decimal `yaml:"wages" json:"wages"`
	InterestIncome        decimal.Decimal `yaml:"interest_income" json:"interest_income"`
	DividendIncome        decimal.Decimal `yaml:"dividend_income" json:"dividend_income"`
	QualifiedDividends    decimal.Decimal `yaml:"qualified_dividends" json:"qualified_dividends"`
	ShortTermCapitalGains decimal.Decimal `yaml:"short_term_capital_gains" json:"short_term_capital_gains"`
	LongTermCapitalGains  decimal.Decimal `yaml:"long_term_capital_gains" json:"long_term_capital_gains"`
	SelfEmploymentIncome  decimal.Decimal `yaml:"self_employment_income" json:"self_employment_income"`
	RetirementIncome      decimal.Decimal `yaml:"retirement_income" json:"retirement_income"`
	OtherIncome           decimal.Decimal `yaml:"other_income" json:"other_income"`
}

// W2Config is one W-2 wage statement.
type W2Config struct {
	EmployerName    string          `yaml:"employer_name" json:"employer_name"`
	Wages           decimal.Decimal `yaml:"wages" json:"wages"`
	FederalWithheld decimal.Decimal `yaml:"federal_withheld" json:"federal_withheld"`
	MedicareWages   decimal.Decimal `yaml:"medicare_wages" json:"medicare_wages"`
	State           string          `yaml:"state" json:"state"`
	StateWages      decimal.Decimal `yaml:"state_wages" json:"state_wages"`
	StateWithheld   decimal.Decimal `yaml:"state_withheld" json:"state_withheld"`
}

// Form1099Config is a simplified 1099 entry; Kind selects the form type.
type Form1099Config struct {
	Kind               string          `yaml:"kind" json:"kind"` // int, div, nec, misc, r, b
	PayerName          string          `yaml:"payer_name" json:"payer_name"`
	Amount             decimal.Decimal `yaml:"amount" json:"amount"`
	QualifiedDividends decimal.Decimal `yaml:"qualified_dividends" json:"qualified_dividends"`
	CapitalGains       decimal.Decimal `yaml:"capital_gains" json:"capital_gains"`
	USTreasuryInterest decimal.Decimal `yaml:"us_treasury_interest" json:"us_treasury_interest"`
	ShortTermGainLoss  decimal.Decimal `yaml:"short_term_gain_loss" json:"short_term_gain_loss"`
	LongTermGainLoss   decimal.Decimal `yaml:"long_term_gain_loss" json:"long_term_gain_loss"`
	FederalWithheld    decimal.Decimal `yaml:"federal_withheld" json:"federal_withheld"`
	StateWithheld      decimal.Decimal `yaml:"state_withheld" json:"state_withheld"`
}

// ItemizedConfig holds Schedule A inputs.
type ItemizedConfig struct {
	MedicalExpenses       decimal.Decimal `yaml:"medical_expenses" json:"medical_expenses"`
	StateIncomeTaxPaid    decimal.Decimal `yaml:"state_income_tax_paid" json:"state_income_tax_paid"`
	RealEstateTaxes       decimal.Decimal `yaml:"real_estate_taxes" json:"real_estate_taxes"`
	PersonalPropertyTaxes decimal.Decimal `yaml:"personal_property_taxes" json:"personal_property_taxes"`
	VehicleLicenseFees    decimal.Decimal `yaml:"vehicle_license_fees" json:"vehicle_license_fees"`
	MortgageInterest      decimal.Decimal `yaml:"mortgage_interest" json:"mortgage_interest"`
	MortgagePoints        decimal.Decimal `yaml:"mortgage_points" json:"mortgage_points"`
	MortgageBalance       decimal.Decimal `yaml:"mortgage_balance" json:"mortgage_balance"`
	InvestmentInterest    decimal.Decimal `yaml:"investment_interest" json:"investment_interest"`
	CashContributions     decimal.Decimal `yaml:"cash_contributions" json:"cash_contributions"`
	NoncashContributions  decimal.Decimal `yaml:"noncash_contributions" json:"noncash_contributions"`
	CasualtyLosses        decimal.Decimal `yaml:"casualty_losses" json:"casualty_losses"`
	OtherDeductions       decimal.Decimal `yaml:"other_deductions" json:"other_deductions"`
	StateMiscDeductions   decimal.Decimal `yaml:"state_misc_deductions" json:"state_misc_deductions"`
}

// RentalPropertyConfig is one rental property.
type RentalPropertyConfig struct {
	Address          string          `yaml:"address" json:"address"`
	PropertyType     string          `yaml:"property_type" json:"property_type"`
	PurchasePrice    decimal.Decimal `yaml:"purchase_price" json:"purchase_price"`
	PurchaseDate     string          `yaml:"purchase_date" json:"purchase_date"` // YYYY-MM-DD
	LandValue        decimal.Decimal `yaml:"land_value" json:"land_value"`
	RentalIncome     decimal.Decimal `yaml:"rental_income" json:"rental_income"`
	MortgageInterest decimal.Decimal `yaml:"mortgage_interest" json:"mortgage_interest"`
	PropertyTax      decimal.Decimal `yaml:"property_tax" json:"property_tax"`
	Insurance        decimal.Decimal `yaml:"insurance" json:"insurance"`
	Repairs          decimal.Decimal `yaml:"repairs" json:"repairs"`
	Utilities        decimal.Decimal `yaml:"utilities" json:"utilities"`
	ManagementFees   decimal.Decimal `yaml:"management_fees" json:"management_fees"`
	HOAFees          decimal.Decimal `yaml:"hoa_fees" json:"hoa_fees"`
	OtherExpenses    decimal.Decimal `yaml:"other_expenses" json:"other_expenses"`
	DaysRented       int             `yaml:"days_rented" json:"days_rented"`
	PersonalUseDays  int             `yaml:"personal_use_days" json:"personal_use_days"`
}

// TaxProfile is the complete YAML profile for one return.
type TaxProfile struct {
	TaxYear  int            `yaml:"tax_year" json:"tax_year"`
	Taxpayer TaxpayerConfig `yaml:"taxpayer" json:"taxpayer"`

	Income IncomeConfig     `yaml:"income" json:"income"`
	W2s    []W2Config       `yaml:"w2_forms" json:"w2_forms"`
	Forms  []Form1099Config `yaml:"forms_1099" json:"forms_1099"`

	Itemized         *ItemizedConfig        `yaml:"itemized" json:"itemized"`
	RentalProperties []RentalPropertyConfig `yaml:"rental_properties" json:"rental_properties"`

	CapitalLossCarryover      decimal.Decimal `yaml:"capital_loss_carryover" json:"capital_loss_carryover"`
	USTreasuryInterest        decimal.Decimal `yaml:"us_treasury_interest" json:"us_treasury_interest"`
	FederalWithheldAdjustment decimal.Decimal `yaml:"federal_withheld_adjustment" json:"federal_withheld_adjustment"`
	FederalEstimatedPayments  decimal.Decimal `yaml:"federal_estimated_payments" json:"federal_estimated_payments"`
	StateEstimatedPayments    decimal.Decimal `yaml:"state_estimated_payments" json:"state_estimated_payments"`
}

// InputParser handles parsing of taxpayer profile files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a profile from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*TaxProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile TaxProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateProfile(&profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &profile, nil
}

// ValidateProfile validates the loaded profile. A zero tax year defaults
// to 2025.
func (ip *InputParser) ValidateProfile(profile *TaxProfile) error {
	if profile.TaxYear == 0 {
		profile.TaxYear = 2025
	}
	if profile.Taxpayer.FilingStatus == "" {
		return fmt.Errorf("taxpayer filing status is required")
	}
	if _, err := domain.ParseFilingStatus(profile.Taxpayer.FilingStatus); err != nil {
		return err
	}
	if profile.Taxpayer.Age < 0 {
		return fmt.Errorf("taxpayer age cannot be negative")
	}
	for i, d := range profile.Taxpayer.Dependents {
		if d.Age < 0 {
			return fmt.Errorf("dependent %d (%s): age cannot be negative", i, d.Name)
		}
	}
	for i, rp := range profile.RentalProperties {
		if rp.PurchasePrice.LessThan(decimal.Zero) {
			return fmt.Errorf("rental property %d (%s): purchase price cannot be negative", i, rp.Address)
		}
		if rp.DaysRented < 0 || rp.PersonalUseDays < 0 {
			return fmt.Errorf("rental property %d (%s): day counts cannot be negative", i, rp.Address)
		}
		if rp.PurchaseDate != "" {
			if _, err := time.Parse("2006-01-02", rp.PurchaseDate); err != nil {
				return fmt.Errorf("rental property %d (%s): invalid purchase date %q", i, rp.Address, rp.PurchaseDate)
			}
		}
	}
	for i, f := range profile.Forms {
		switch f.Kind {
		case "int", "div", "nec", "misc", "r", "b":
		default:
			return fmt.Errorf("form 1099 entry %d: unknown kind %q", i, f.Kind)
		}
	}
	return nil
}

// ToTaxReturn converts the profile into a calculation-ready return.
func (profile *TaxProfile) ToTaxReturn() (*domain.TaxReturn, error) {
	status, err := domain.ParseFilingStatus(profile.Taxpayer.FilingStatus)
	if err != nil {
		return nil, err
	}

	taxpayer := domain.TaxpayerInfo{
		Name:         profile.Taxpayer.Name,
		FilingStatus: status,
		Age:          profile.Taxpayer.Age,
		SpouseAge:    profile.Taxpayer.SpouseAge,
		IsBlind:      profile.Taxpayer.IsBlind,
		State:        profile.Taxpayer.State,
		IsRenter:     profile.Taxpayer.IsRenter,
	}
	for _, d := range profile.Taxpayer.Dependents {
		taxpayer.Dependents = append(taxpayer.Dependents, domain.Dependent{
			Name:         d.Name,
			Age:          d.Age,
			Relationship: d.Relationship,
		})
	}

	tr := &domain.TaxReturn{
		Taxpayer: taxpayer,
		TaxYear:  profile.TaxYear,
		Income: domain.TaxableIncome{
			Wages:                 profile.Income.Wages,
			InterestIncome:        profile.Income.InterestIncome,
			DividendIncome:        profile.Income.DividendIncome,
			QualifiedDividends:    profile.Income.QualifiedDividends,
			ShortTermCapitalGains: profile.Income.ShortTermCapitalGains,
			LongTermCapitalGains:  profile.Income.LongTermCapitalGains,
			SelfEmploymentIncome:  profile.Income.SelfEmploymentIncome,
			RetirementIncome:      profile.Income.RetirementIncome,
			OtherIncome:           profile.Income.OtherIncome,
		},
		CapitalLossCarryover: profile.CapitalLossCarryover,
		USTreasuryInterest:   profile.USTreasuryInterest,
		WithheldAdjustment:   profile.FederalWithheldAdjustment,
	}

	for _, w := range profile.W2s {
		tr.W2Forms = append(tr.W2Forms, domain.W2{
			EmployerName:    w.EmployerName,
			Wages:           w.Wages,
			FederalWithheld: w.FederalWithheld,
			MedicareWages:   w.MedicareWages,
			State:           w.State,
			StateWages:      w.StateWages,
			StateWithheld:   w.StateWithheld,
		})
	}

	for _, f := range profile.Forms {
		switch f.Kind {
		case "int":
			tr.Forms1099Int = append(tr.Forms1099Int, domain.Form1099Int{
				PayerName:          f.PayerName,
				InterestIncome:     f.Amount,
				USTreasuryInterest: f.USTreasuryInterest,
				FederalWithheld:    f.FederalWithheld,
			})
		case "div":
			tr.Forms1099Div = append(tr.Forms1099Div, domain.Form1099Div{
				PayerName:                f.PayerName,
				OrdinaryDividends:        f.Amount,
				QualifiedDividends:       f.QualifiedDividends,
				CapitalGainDistributions: f.CapitalGains,
				FederalWithheld:          f.FederalWithheld,
			})
		case "nec":
			tr.Forms1099Nec = append(tr.Forms1099Nec, domain.Form1099Nec{
				PayerName:               f.PayerName,
				NonemployeeCompensation: f.Amount,
				FederalWithheld:         f.FederalWithheld,
			})
		case "misc":
			tr.Forms1099Misc = append(tr.Forms1099Misc, domain.Form1099Misc{
				PayerName:       f.PayerName,
				OtherIncome:     f.Amount,
				FederalWithheld: f.FederalWithheld,
			})
		case "r":
			tr.Forms1099R = append(tr.Forms1099R, domain.Form1099R{
				PayerName:       f.PayerName,
				TaxableAmount:   f.Amount,
				FederalWithheld: f.FederalWithheld,
				StateWithheld:   f.StateWithheld,
			})
		case "b":
			tr.Forms1099B = append(tr.Forms1099B, domain.Form1099B{
				BrokerName:        f.PayerName,
				ShortTermGainLoss: f.ShortTermGainLoss,
				LongTermGainLoss:  f.LongTermGainLoss,
			})
		}
	}

	if it := profile.Itemized; it != nil {
		tr.ScheduleAData = &domain.ScheduleAData{
			MedicalExpenses:       it.MedicalExpenses,
			StateIncomeTaxPaid:    it.StateIncomeTaxPaid,
			RealEstateTaxes:       it.RealEstateTaxes,
			PersonalPropertyTaxes: it.PersonalPropertyTaxes,
			MortgageInterest:      it.MortgageInterest,
			MortgagePoints:        it.MortgagePoints,
			MortgageBalance:       it.MortgageBalance,
			InvestmentInterest:    it.InvestmentInterest,
			CashContributions:     it.CashContributions,
			NoncashContributions:  it.NoncashContributions,
			CasualtyLosses:        it.CasualtyLosses,
			OtherDeductions:       it.OtherDeductions,
			StateMiscDeductions:   it.StateMiscDeductions,
		}
		if !it.VehicleLicenseFees.IsZero() {
			tr.ScheduleAData.VehicleRegistrations = append(tr.ScheduleAData.VehicleRegistrations, domain.VehicleRegistration{
				VehicleLicenseFee: it.VehicleLicenseFees,
			})
		}
	}

	for _, rp := range profile.RentalProperties {
		property := domain.RentalProperty{
			Address:          rp.Address,
			PropertyType:     rp.PropertyType,
			PurchasePrice:    rp.PurchasePrice,
			LandValue:        rp.LandValue,
			RentalIncome:     rp.RentalIncome,
			MortgageInterest: rp.MortgageInterest,
			PropertyTax:      rp.PropertyTax,
			Insurance:        rp.Insurance,
			Repairs:          rp.Repairs,
			Utilities:        rp.Utilities,
			ManagementFees:   rp.ManagementFees,
			OtherExpenses:    rp.OtherExpenses.Add(rp.HOAFees),
			DaysRented:       rp.DaysRented,
			PersonalUseDays:  rp.PersonalUseDays,
		}
		if rp.PurchaseDate != "" {
			when, err := time.Parse("2006-01-02", rp.PurchaseDate)
			if err != nil {
				return nil, fmt.Errorf("rental property %s: invalid purchase date %q", rp.Address, rp.PurchaseDate)
			}
			property.PurchaseDate = &when
		}
		if property.DaysRented == 0 && property.PersonalUseDays == 0 {
			property.DaysRented = 365
		}
		tr.RentalProperties = append(tr.RentalProperties, property)
	}

	if !profile.FederalEstimatedPayments.IsZero() {
		tr.EstimatedPayments = append(tr.EstimatedPayments, domain.EstimatedTaxPayment{
			Jurisdiction: "federal",
			Amount:       profile.FederalEstimatedPayments,
		})
	}
	if !profile.StateEstimatedPayments.IsZero() {
		tr.EstimatedPayments = append(tr.EstimatedPayments, domain.EstimatedTaxPayment{
			Jurisdiction: "state",
			Amount:       profile.StateEstimatedPayments,
		})
	}

	return tr, nil
}
