// Package output renders calculation results as console, JSON, and CSV
// reports.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taxprep/taxengine/internal/domain"
)

// ReportGenerator handles report generation in various formats.
type ReportGenerator struct {
	Out io.Writer
}

// NewReportGenerator creates a report generator writing to out.
func NewReportGenerator(out io.Writer) *ReportGenerator {
	return &ReportGenerator{Out: out}
}

// GenerateReport renders a completed return in the requested format.
func (rg *ReportGenerator) GenerateReport(tr *domain.TaxReturn, format string) error {
	switch format {
	case "console":
		return rg.GenerateConsoleReport(tr)
	case "json":
		return rg.GenerateJSONReport(tr)
	case "csv":
		return rg.GenerateCSVReport(tr)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func (rg *ReportGenerator) printf(format string, args ...interface{}) {
	fmt.Fprintf(rg.Out, format, args...)
}

func (rg *ReportGenerator) line(label string, amount decimal.Decimal) {
	rg.printf("  %-38s %14s\n", label, FormatCurrency(amount))
}

func (rg *ReportGenerator) rule(char string) {
	rg.printf("%s\n", strings.Repeat(char, 72))
}

// GenerateConsoleReport prints the Form-1040-style summary, the state
// summary when present, and a combined bottom line.
func (rg *ReportGenerator) GenerateConsoleReport(tr *domain.TaxReturn) error {
	federal := tr.FederalCalculation
	if federal == nil {
		return fmt.Errorf("return has no federal calculation")
	}

	rg.rule("=")
	rg.printf("TAX CALCULATION SUMMARY - %d\n", tr.TaxYear)
	rg.printf("Taxpayer: %s  (%s)\n", tr.Taxpayer.Name, tr.Taxpayer.FilingStatus.DisplayName())
	rg.rule("=")

	if se := federal.ScheduleE; se != nil && len(se.Properties) > 0 {
		rg.printf("\nSCHEDULE E - RENTAL REAL ESTATE\n")
		rg.rule("-")
		for _, p := range se.Properties {
			rg.printf("  %s\n", p.Address)
			rg.line("Gross rents", p.GrossIncome)
			rg.line("Operating expenses", p.TotalExpenses)
			rg.line("Depreciation", p.Depreciation)
			rg.line("Net income", p.NetIncome)
		}
		rg.line("Total net rental income", se.TotalNetIncome())
		if !se.PassiveLossDisallowed.IsZero() {
			rg.line("Passive loss disallowed", se.PassiveLossDisallowed)
			rg.line("Allowed net income", se.AllowedNetIncome())
		}
	}

	rg.printJurisdiction(federal)
	if state := tr.StateCalculation; state != nil {
		rg.printJurisdiction(state)
	}

	rg.printf("\nCOMBINED SUMMARY\n")
	rg.rule("=")
	totalTax := federal.TaxAfterCredits
	totalPayments := federal.TotalPayments()
	if state := tr.StateCalculation; state != nil {
		totalTax = totalTax.Add(state.TaxAfterCredits)
		totalPayments = totalPayments.Add(state.TotalPayments())
	}
	rg.line("Total tax", totalTax)
	rg.line("Total payments", totalPayments)
	net := totalPayments.Sub(totalTax)
	if net.GreaterThanOrEqual(decimal.Zero) {
		rg.line("TOTAL REFUND", net)
	} else {
		rg.line("TOTAL OWED", net.Neg())
	}
	rg.rule("=")
	return nil
}

func (rg *ReportGenerator) printJurisdiction(calc *domain.TaxCalculation) {
	rg.printf("\n%s - %d\n", strings.ToUpper(calc.Jurisdiction), calc.TaxYear)
	rg.rule("-")
	rg.line("Gross income", calc.GrossIncome)
	rg.line("Adjustments", calc.Adjustments)
	rg.line("Adjusted gross income", calc.AdjustedGrossIncome)
	rg.line(fmt.Sprintf("Deductions (%s)", calc.DeductionMethod), calc.Deductions)
	rg.line("Taxable income", calc.TaxableIncome)

	if sa := calc.ScheduleA; sa != nil && sa.UseItemized {
		rg.printf("\n  Itemized deduction detail:\n")
		rg.line("Medical (after floor)", sa.MedicalDeduction)
		rg.line("Taxes paid (SALT)", sa.SALTDeduction)
		if sa.SALTUncapped.GreaterThan(sa.SALTDeduction) {
			rg.line("SALT before cap", sa.SALTUncapped)
		}
		rg.line("Mortgage and investment interest", sa.MortgageInterestDeduction)
		rg.line("Charitable contributions", sa.CharitableDeduction)
		if !sa.MiscDeduction.IsZero() {
			rg.line("Miscellaneous (after 2% floor)", sa.MiscDeduction)
		}
		if !sa.ItemizedLimitation.IsZero() {
			rg.line("High-income limitation", sa.ItemizedLimitation.Neg())
		}
		rg.line("Total itemized", sa.TotalItemized)
	}

	if len(calc.BracketBreakdown) > 0 {
		rg.printf("\n  Bracket breakdown:\n")
		for _, b := range calc.BracketBreakdown {
			label := fmt.Sprintf("%s+", FormatCurrency(b.Lower))
			if b.Upper != nil {
				label = fmt.Sprintf("%s - %s", FormatCurrency(b.Lower), FormatCurrency(*b.Upper))
			}
			if b.Preferential {
				label += " (preferential)"
			}
			rg.printf("  %-38s %7s  %14s\n", label, FormatPercentage(b.Rate.Mul(decimal.NewFromInt(100))), FormatCurrency(b.Tax))
		}
	}

	rg.printf("\n")
	if !calc.SelfEmploymentTax.IsZero() {
		rg.line("Self-employment tax", calc.SelfEmploymentTax)
	}
	if !calc.AdditionalMedicareTax.IsZero() {
		rg.line("Additional Medicare tax", calc.AdditionalMedicareTax)
	}
	if !calc.NetInvestmentTax.IsZero() {
		rg.line("Net investment income tax", calc.NetInvestmentTax)
	}
	if !calc.CAMentalHealthTax.IsZero() {
		rg.line("Mental health services tax", calc.CAMentalHealthTax)
	}
	rg.line("Tax before credits", calc.TaxBeforeCredits)
	if !calc.ChildTaxCredit.IsZero() {
		rg.line("Child tax credit", calc.ChildTaxCredit)
	}
	if !calc.CAExemptionCredit.IsZero() {
		rg.line("Exemption credit", calc.CAExemptionCredit)
	}
	if !calc.CARentersCredit.IsZero() {
		rg.line("Renter's credit", calc.CARentersCredit)
	}
	rg.line("Total credits", calc.Credits)
	rg.line("Tax after credits", calc.TaxAfterCredits)
	if !calc.CASDI.IsZero() {
		rg.line("SDI withheld (info)", calc.CASDI)
	}
	rg.line("Tax withheld", calc.TaxWithheld)
	if !calc.EstimatedPayments.IsZero() {
		rg.line("Estimated payments", calc.EstimatedPayments)
	}

	refund := calc.RefundOrOwed()
	if refund.GreaterThanOrEqual(decimal.Zero) {
		rg.line("REFUND", refund)
	} else {
		rg.line("AMOUNT OWED", refund.Neg())
	}
	rg.printf("  %-38s %13s%%\n", "Effective rate",
		calc.EffectiveRate().Mul(decimal.NewFromInt(100)).StringFixed(2))
}

// FormatCurrency formats a decimal as currency.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as percentage.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
