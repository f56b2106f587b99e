package domain

// RegionEfficiency is one row of the regional efficiency report.
type RegionEfficiency struct {
	Region          string
	MainIsland      string
	TotalBudget     float64
	MedianSavings   float64
	AvgDelay        float64
	HighDelayPct    float64
	EfficiencyScore float64
}

// ContractorPerformance is one row of the contractor ranking report.
// Rank is assigned after sorting and truncation, in presentation order.
type ContractorPerformance struct {
	Rank             int
	Contractor       string
	TotalCost        float64
	NumProjects      int
	AvgDelay         float64
	TotalSavings     float64
	ReliabilityIndex float64
	RiskFlag         string
}

// AnnualTrend is one row of the annual cost overrun trend report,
// keyed by funding year and type of work.
type AnnualTrend struct {
	FundingYear   int
	TypeOfWork    string
	TotalProjects int
	AvgSavings    float64
	OverrunRate   float64
	YoYChange     float64
}

// Summary aggregates the whole working set into a single record.
type Summary struct {
	TotalProjects    int
	TotalContractors int
	GlobalAvgDelay   float64
	TotalSavings     float64
}
