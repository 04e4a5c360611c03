package domain

import "fmt"

// FilingStatus identifies the taxpayer's federal filing status. The same
// status drives bracket and deduction selection for every jurisdiction.
type FilingStatus string

const (
	FilingSingle                  FilingStatus = "single"
	FilingMarriedFilingJointly    FilingStatus = "married_filing_jointly"
	FilingMarriedFilingSeparately FilingStatus = "married_filing_separately"
	FilingHeadOfHousehold         FilingStatus = "head_of_household"
)

// AllFilingStatuses lists every supported status in display order.
var AllFilingStatuses = []FilingStatus{
	FilingSingle,
	FilingMarriedFilingJointly,
	FilingMarriedFilingSeparately,
	FilingHeadOfHousehold,
}

// ParseFilingStatus maps common spellings onto a FilingStatus.
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch s {
	case "single", "":
		return FilingSingle, nil
	case "married_filing_jointly", "married_jointly", "mfj":
		return FilingMarriedFilingJointly, nil
	case "married_filing_separately", "married_separately", "mfs":
		return FilingMarriedFilingSeparately, nil
	case "head_of_household", "hoh":
		return FilingHeadOfHousehold, nil
	}
	return "", fmt.Errorf("unknown filing status %q", s)
}

// IsValid reports whether fs is one of the four supported statuses.
func (fs FilingStatus) IsValid() bool {
	switch fs {
	case FilingSingle, FilingMarriedFilingJointly, FilingMarriedFilingSeparately, FilingHeadOfHousehold:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for reports.
func (fs FilingStatus) DisplayName() string {
	switch fs {
	case FilingSingle:
		return "Single"
	case FilingMarriedFilingJointly:
		return "Married Filing Jointly"
	case FilingMarriedFilingSeparately:
		return "Married Filing Separately"
	case FilingHeadOfHousehold:
		return "Head of Household"
	}
	return string(fs)
}
