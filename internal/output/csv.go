package output

import (
	"encoding/csv"
	"fmt"

	"github.com/taxprep/taxengine/internal/domain"
)

// GenerateCSVReport writes one row per jurisdiction.
func (rg *ReportGenerator) GenerateCSVReport(tr *domain.TaxReturn) error {
	federal := tr.FederalCalculation
	if federal == nil {
		return fmt.Errorf("return has no federal calculation")
	}

	writer := csv.NewWriter(rg.Out)
	defer writer.Flush()

	header := []string{
		"Jurisdiction", "Tax Year", "Gross Income", "AGI", "Deductions",
		"Deduction Method", "Taxable Income", "Tax Before Credits", "Credits",
		"Tax After Credits", "Withheld", "Estimated Payments", "Refund/Owed",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	calcs := []*domain.TaxCalculation{federal}
	if tr.StateCalculation != nil {
		calcs = append(calcs, tr.StateCalculation)
	}
	for _, calc := range calcs {
		row := []string{
			calc.Jurisdiction,
			fmt.Sprintf("%d", calc.TaxYear),
			calc.GrossIncome.StringFixed(2),
			calc.AdjustedGrossIncome.StringFixed(2),
			calc.Deductions.StringFixed(2),
			calc.DeductionMethod,
			calc.TaxableIncome.StringFixed(2),
			calc.TaxBeforeCredits.StringFixed(2),
			calc.Credits.StringFixed(2),
			calc.TaxAfterCredits.StringFixed(2),
			calc.TaxWithheld.StringFixed(2),
			calc.EstimatedPayments.StringFixed(2),
			calc.RefundOrOwed().StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}
