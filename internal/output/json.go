package output

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxprep/taxengine/internal/domain"
)

// jurisdictionJSON is the serialized form of one TaxCalculation.
type jurisdictionJSON struct {
	Jurisdiction        string          `json:"jurisdiction"`
	TaxYear             int             `json:"tax_year"`
	GrossIncome         decimal.Decimal `json:"gross_income"`
	Adjustments         decimal.Decimal `json:"adjustments"`
	AdjustedGrossIncome decimal.Decimal `json:"adjusted_gross_income"`
	Deductions          decimal.Decimal `json:"deductions"`
	DeductionMethod     string          `json:"deduction_method"`
	TaxableIncome       decimal.Decimal `json:"taxable_income"`
	TaxBeforeCredits    decimal.Decimal `json:"tax_before_credits"`
	Credits             decimal.Decimal `json:"credits"`
	TaxAfterCredits     decimal.Decimal `json:"tax_after_credits"`
	TaxWithheld         decimal.Decimal `json:"tax_withheld"`
	EstimatedPayments   decimal.Decimal `json:"estimated_payments"`
	RefundOrOwed        decimal.Decimal `json:"refund_or_owed"`
	EffectiveRate       decimal.Decimal `json:"effective_rate"`

	SelfEmploymentTax     decimal.Decimal `json:"self_employment_tax,omitempty"`
	AdditionalMedicareTax decimal.Decimal `json:"additional_medicare_tax,omitempty"`
	NetInvestmentTax      decimal.Decimal `json:"net_investment_tax,omitempty"`
	ChildTaxCredit        decimal.Decimal `json:"child_tax_credit,omitempty"`
	MentalHealthTax       decimal.Decimal `json:"ca_mental_health_tax,omitempty"`
	ExemptionCredit       decimal.Decimal `json:"ca_exemption_credit,omitempty"`
	RentersCredit         decimal.Decimal `json:"ca_renters_credit,omitempty"`
	SDI                   decimal.Decimal `json:"ca_sdi,omitempty"`

	ScheduleA *domain.ScheduleAResult  `json:"schedule_a,omitempty"`
	ScheduleE *domain.ScheduleESummary `json:"schedule_e,omitempty"`
}

type reportJSON struct {
	Taxpayer     string            `json:"taxpayer"`
	FilingStatus string            `json:"filing_status"`
	TaxYear      int               `json:"tax_year"`
	Federal      *jurisdictionJSON `json:"federal"`
	State        *jurisdictionJSON `json:"state,omitempty"`
	TotalTax     decimal.Decimal   `json:"total_tax"`
	TotalRefund  decimal.Decimal   `json:"total_refund_or_owed"`
}

func toJurisdictionJSON(calc *domain.TaxCalculation) *jurisdictionJSON {
	if calc == nil {
		return nil
	}
	return &jurisdictionJSON{
		Jurisdiction:        calc.Jurisdiction,
		TaxYear:             calc.TaxYear,
		GrossIncome:         calc.GrossIncome,
		Adjustments:         calc.Adjustments,
		AdjustedGrossIncome: calc.AdjustedGrossIncome,
		Deductions:          calc.Deductions,
		DeductionMethod:     calc.DeductionMethod,
		TaxableIncome:       calc.TaxableIncome,
		TaxBeforeCredits:    calc.TaxBeforeCredits,
		Credits:             calc.Credits,
		TaxAfterCredits:     calc.TaxAfterCredits,
		TaxWithheld:         calc.TaxWithheld,
		EstimatedPayments:   calc.EstimatedPayments,
		RefundOrOwed:        calc.RefundOrOwed(),
		EffectiveRate:       calc.EffectiveRate().Round(4),

		SelfEmploymentTax:     calc.SelfEmploymentTax,
		AdditionalMedicareTax: calc.AdditionalMedicareTax,
		NetInvestmentTax:      calc.NetInvestmentTax,
		ChildTaxCredit:        calc.ChildTaxCredit,
		MentalHealthTax:       calc.CAMentalHealthTax,
		ExemptionCredit:       calc.CAExemptionCredit,
		RentersCredit:         calc.CARentersCredit,
		SDI:                   calc.CASDI,

		ScheduleA: calc.ScheduleA,
		ScheduleE: calc.ScheduleE,
	}
}

// GenerateJSONReport writes the full result tree as indented JSON.
func (rg *ReportGenerator) GenerateJSONReport(tr *domain.TaxReturn) error {
	federal := tr.FederalCalculation
	if federal == nil {
		return fmt.Errorf("return has no federal calculation")
	}

	totalTax := federal.TaxAfterCredits
	totalRefund := federal.RefundOrOwed()
	if state := tr.StateCalculation; state != nil {
		totalTax = totalTax.Add(state.TaxAfterCredits)
		totalRefund = totalRefund.Add(state.RefundOrOwed())
	}

	report := reportJSON{
		Taxpayer:     tr.Taxpayer.Name,
		FilingStatus: string(tr.Taxpayer.FilingStatus),
		TaxYear:      tr.TaxYear,
		Federal:      toJurisdictionJSON(federal),
		State:        toJurisdictionJSON(tr.StateCalculation),
		TotalTax:     totalTax,
		TotalRefund:  totalRefund,
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	_, err = rg.Out.Write(append(data, '\n'))
	return err
}
