package report

import (
	"sort"

	"github.com/pw-tools/infra-atlas/pkg/models/domain"
)

// BuildContractorRanking groups the working set by contractor, drops
// every contractor below the minimum sample size, sorts ascending by
// total cost, truncates to the configured limit, and reverses before
// ranking. Rank values are 1..N in the final presentation order.
func BuildContractorRanking(projects []domain.Project, s Settings) []domain.ContractorPerformance {
	var rows []domain.ContractorPerformance

	for _, g := range GroupBy(projects, func(p domain.Project) string { return p.Contractor }) {
		if len(g.Items) < s.MinContractorSample {
			continue
		}

		delays := make([]float64, 0, len(g.Items))
		var totalCost, totalSavings float64
		for _, p := range g.Items {
			delays = append(delays, float64(p.CompletionDayDelays))
			totalCost += p.ContractCost
			totalSavings += p.CostSavings
		}

		avgDelay := Average(delays)
		index := ReliabilityIndex(avgDelay, totalSavings, totalCost, s.DelayBaselineDays)
		risk := "Low Risk"
		if index < s.RiskThreshold {
			risk = "High Risk"
		}

		rows = append(rows, domain.ContractorPerformance{
			Contractor:       g.Key,
			TotalCost:        totalCost,
			NumProjects:      len(g.Items),
			AvgDelay:         avgDelay,
			TotalSavings:     totalSavings,
			ReliabilityIndex: index,
			RiskFlag:         risk,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalCost < rows[j].TotalCost
	})
	if len(rows) > s.ContractorLimit {
		rows = rows[:s.ContractorLimit]
	}
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	for i := range rows {
		rows[i].Rank = i + 1
	}

	return rows
}
