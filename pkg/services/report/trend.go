package report

import (
	"sort"

	"github.com/pw-tools/infra-atlas/pkg/models/domain"
)

// BuildAnnualTrends produces one row per (funding year, type of work)
// pair, sorted by year ascending and average savings descending within a
// year.
//
// The year-over-year change deliberately reproduces the source policy:
// the previous year's average savings is looked up by year ONLY, taking
// the first row of that year in sorted order regardless of work type.
// Rows in the first covered year, or with no prior-year entry, stay at 0.
func BuildAnnualTrends(projects []domain.Project, s Settings) []domain.AnnualTrend {
	var rows []domain.AnnualTrend

	for _, yg := range GroupBy(projects, func(p domain.Project) int { return p.FundingYear }) {
		for _, tg := range GroupBy(yg.Items, func(p domain.Project) string { return p.TypeOfWork }) {
			savings := make([]float64, 0, len(tg.Items))
			for _, p := range tg.Items {
				savings = append(savings, p.CostSavings)
			}

			rows = append(rows, domain.AnnualTrend{
				FundingYear:   yg.Key,
				TypeOfWork:    tg.Key,
				TotalProjects: len(tg.Items),
				AvgSavings:    Average(savings),
				OverrunRate: PctWhere(savings, func(v float64) bool {
					return v < 0
				}),
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].FundingYear != rows[j].FundingYear {
			return rows[i].FundingYear < rows[j].FundingYear
		}
		return rows[i].AvgSavings > rows[j].AvgSavings
	})

	// One representative average-savings value per year: the first row
	// of that year after sorting.
	avgSavingsByYear := make(map[int]float64)
	for _, r := range rows {
		if _, ok := avgSavingsByYear[r.FundingYear]; !ok {
			avgSavingsByYear[r.FundingYear] = r.AvgSavings
		}
	}

	for i := range rows {
		if rows[i].FundingYear <= s.YearFrom {
			continue
		}
		prev, ok := avgSavingsByYear[rows[i].FundingYear-1]
		if !ok {
			continue
		}
		rows[i].YoYChange = (rows[i].AvgSavings - prev) / prev * 100
	}

	return rows
}
