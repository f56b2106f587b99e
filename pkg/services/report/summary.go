package report

import "github.com/pw-tools/infra-atlas/pkg/models/domain"

// BuildSummary aggregates the whole working set into a single record.
// Contractors are counted by distinct non-empty contract id, not by
// contractor name.
func BuildSummary(projects []domain.Project) domain.Summary {
	delays := make([]float64, 0, len(projects))
	contracts := make(map[string]struct{})
	var totalSavings float64

	for _, p := range projects {
		delays = append(delays, float64(p.CompletionDayDelays))
		totalSavings += p.CostSavings
		if p.ContractID != "" {
			contracts[p.ContractID] = struct{}{}
		}
	}

	return domain.Summary{
		TotalProjects:    len(projects),
		TotalContractors: len(contracts),
		GlobalAvgDelay:   Average(delays),
		TotalSavings:     totalSavings,
	}
}
