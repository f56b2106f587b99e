package api

// Metric values are rendered as grouped decimal strings (max two fraction
// digits) at this boundary, so non-finite aggregates survive JSON encoding
// the same way they survive CSV export.

type RegionEfficiency struct {
	Region          string `json:"region"`
	MainIsland      string `json:"main_island"`
	TotalBudget     string `json:"total_budget"`
	MedianSavings   string `json:"median_savings"`
	AvgDelay        string `json:"avg_delay"`
	HighDelayPct    string `json:"high_delay_pct"`
	EfficiencyScore string `json:"efficiency_score"`
}

type ContractorPerformance struct {
	Rank             int    `json:"rank"`
	Contractor       string `json:"contractor"`
	TotalCost        string `json:"total_cost"`
	NumProjects      int    `json:"num_projects"`
	AvgDelay         string `json:"avg_delay"`
	TotalSavings     string `json:"total_savings"`
	ReliabilityIndex string `json:"reliability_index"`
	RiskFlag         string `json:"risk_flag"`
}

type AnnualTrend struct {
	FundingYear   int    `json:"funding_year"`
	TypeOfWork    string `json:"type_of_work"`
	TotalProjects int    `json:"total_projects"`
	AvgSavings    string `json:"avg_savings"`
	OverrunRate   string `json:"overrun_rate"`
	YoYChange     string `json:"yoy_change"`
}

type Summary struct {
	TotalProjects    int     `json:"total_projects"`
	TotalContractors int     `json:"total_contractors"`
	GlobalAvgDelay   float64 `json:"global_avg_delay"`
	TotalSavings     float64 `json:"total_savings"`
}
