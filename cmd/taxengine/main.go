package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/taxprep/taxengine/internal/calculation"
	"github.com/taxprep/taxengine/internal/config"
	"github.com/taxprep/taxengine/internal/domain"
	"github.com/taxprep/taxengine/internal/output"
	"github.com/taxprep/taxengine/internal/tui"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taxengine",
	Short: "Multi-jurisdiction income tax calculator",
	Long:  "Computes federal and state income tax liability from a taxpayer profile",
}

func loadReturn(inputFile string) (*domain.TaxReturn, error) {
	parser := config.NewInputParser()
	profile, err := parser.LoadFromFile(inputFile)
	if err != nil {
		return nil, err
	}
	return profile.ToTaxReturn()
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [profile-file]",
	Short: "Calculate a complete tax return from a YAML profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := loadReturn(args[0])
		if err != nil {
			return err
		}

		engine := calculation.NewEngine()
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			engine.SetLogger(simpleCLILogger{})
		}
		if err := engine.Calculate(tr); err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		return output.NewReportGenerator(os.Stdout).GenerateReport(tr, format)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [profile-file]",
	Short: "Validate a profile file without calculating",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		profile, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}
		if _, err := profile.ToTaxReturn(); err != nil {
			return err
		}
		fmt.Printf("%s is valid (tax year %d, filing status %s)\n",
			args[0], profile.TaxYear, profile.Taxpayer.FilingStatus)
		return nil
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a sample calculation with built-in data",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr := demoReturn()
		if err := calculation.NewEngine().Calculate(tr); err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return output.NewReportGenerator(os.Stdout).GenerateReport(tr, format)
	},
}

// demoReturn is a California filer with wages, dividends, a rental
// property, and itemized deductions.
func demoReturn() *domain.TaxReturn {
	purchase := mustDate("2018-06-15")
	return &domain.TaxReturn{
		Taxpayer: domain.TaxpayerInfo{
			Name:         "Sample Taxpayer",
			FilingStatus: domain.FilingMarriedFilingJointly,
			Age:          42,
			SpouseAge:    40,
			State:        "CA",
			Dependents: []domain.Dependent{
				{Name: "Dependent A", Age: 9, Relationship: "child"},
				{Name: "Dependent B", Age: 13, Relationship: "child"},
			},
		},
		TaxYear: 2025,
		W2Forms: []domain.W2{{
			EmployerName:    "Acme Corp",
			Wages:           decimal.NewFromInt(185000),
			FederalWithheld: decimal.NewFromInt(24000),
			MedicareWages:   decimal.NewFromInt(192000),
			State:           "CA",
			StateWithheld:   decimal.NewFromInt(9500),
		}},
		Forms1099Div: []domain.Form1099Div{{
			PayerName:          "Brokerage",
			OrdinaryDividends:  decimal.NewFromInt(6200),
			QualifiedDividends: decimal.NewFromInt(5400),
		}},
		Forms1099Int: []domain.Form1099Int{{
			PayerName:          "Bank",
			InterestIncome:     decimal.NewFromInt(1800),
			USTreasuryInterest: decimal.NewFromInt(400),
		}},
		RentalProperties: []domain.RentalProperty{{
			Address:          "123 Rental Ave",
			PropertyType:     "Single Family",
			PurchasePrice:    decimal.NewFromInt(450000),
			PurchaseDate:     &purchase,
			LandValue:        decimal.NewFromInt(120000),
			DaysRented:       365,
			RentalIncome:     decimal.NewFromInt(32400),
			MortgageInterest: decimal.NewFromInt(11200),
			PropertyTax:      decimal.NewFromInt(5600),
			Insurance:        decimal.NewFromInt(1400),
			ManagementFees:   decimal.NewFromInt(2600),
			Repairs:          decimal.NewFromInt(1900),
		}},
		ScheduleAData: &domain.ScheduleAData{
			StateIncomeTaxPaid: decimal.NewFromInt(9500),
			RealEstateTaxes:    decimal.NewFromInt(8200),
			MortgageInterest:   decimal.NewFromInt(16800),
			MortgageBalance:    decimal.NewFromInt(520000),
			CashContributions:  decimal.NewFromInt(4500),
		},
	}
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [profile-file]",
		Short: "Interactive results viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(args[0])
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxengine %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func main() {
	calculateCmd.Flags().String("format", "console", "Output format: console, json, csv")
	calculateCmd.Flags().Bool("verbose", false, "Log calculation progress")
	demoCmd.Flags().String("format", "console", "Output format: console, json, csv")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
