package report

// Settings carries the reporting policy knobs shared by the builders.
type Settings struct {
	// YearFrom and YearTo bound the working set, inclusive.
	YearFrom int
	YearTo   int
	// HighDelayDays is the delay threshold for the regional report's
	// high-delay percentage (default: 30).
	HighDelayDays int
	// MinContractorSample excludes contractors with fewer qualifying
	// projects from the ranking entirely (default: 5).
	MinContractorSample int
	// ContractorLimit caps the ranking length (default: 15).
	ContractorLimit int
	// RiskThreshold splits High Risk from Low Risk on the reliability
	// index (default: 50).
	RiskThreshold float64
	// DelayBaselineDays normalizes average delay inside the reliability
	// index (default: 90).
	DelayBaselineDays float64
}

// DefaultSettings returns the published reporting rules.
func DefaultSettings() Settings {
	return Settings{
		YearFrom:            2021,
		YearTo:              2023,
		HighDelayDays:       30,
		MinContractorSample: 5,
		ContractorLimit:     15,
		RiskThreshold:       50,
		DelayBaselineDays:   90,
	}
}
