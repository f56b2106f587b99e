package report

import (
	"sort"

	"github.com/pw-tools/infra-atlas/pkg/models/domain"
)

// BuildRegionalEfficiency produces one row per region present in the
// working set, sorted by efficiency score descending. The main-island
// label is taken from the group's first member; it is not validated for
// intra-group consistency.
func BuildRegionalEfficiency(projects []domain.Project, s Settings) []domain.RegionEfficiency {
	var rows []domain.RegionEfficiency

	for _, g := range GroupBy(projects, func(p domain.Project) string { return p.Region }) {
		savings := make([]float64, 0, len(g.Items))
		delays := make([]float64, 0, len(g.Items))
		var totalBudget float64
		for _, p := range g.Items {
			savings = append(savings, p.CostSavings)
			delays = append(delays, float64(p.CompletionDayDelays))
			totalBudget += p.ApprovedBudget
		}

		medianSavings := Median(savings)
		avgDelay := Average(delays)
		highDelay := float64(s.HighDelayDays)

		rows = append(rows, domain.RegionEfficiency{
			Region:        g.Key,
			MainIsland:    g.Items[0].MainIsland,
			TotalBudget:   totalBudget,
			MedianSavings: medianSavings,
			AvgDelay:      avgDelay,
			HighDelayPct: PctWhere(delays, func(d float64) bool {
				return d > highDelay
			}),
			EfficiencyScore: EfficiencyScore(medianSavings, avgDelay),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].EfficiencyScore > rows[j].EfficiencyScore
	})

	return rows
}
