package report

import (
	"fmt"
	"testing"

	"github.com/pw-tools/infra-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contractorProjects builds n projects for one contractor with uniform
// per-project cost and delay.
func contractorProjects(name string, n int, budget, cost float64, delayDays int) []domain.Project {
	var out []domain.Project
	for i := 0; i < n; i++ {
		out = append(out, testProject(projectOpts{
			region:     "R1",
			contractor: name,
			year:       2022,
			budget:     budget,
			cost:       cost,
			delayDays:  delayDays,
		}))
	}
	return out
}

func TestBuildContractorRanking(t *testing.T) {
	s := DefaultSettings()

	t.Run("small contractors are excluded entirely", func(t *testing.T) {
		projects := contractorProjects("Four Projects Co", 4, 2000, 1000, 0)
		projects = append(projects, contractorProjects("Five Projects Co", 5, 1100, 1000, 10)...)

		rows := BuildContractorRanking(projects, s)
		require.Len(t, rows, 1)
		assert.Equal(t, "Five Projects Co", rows[0].Contractor)
		assert.Equal(t, 5, rows[0].NumProjects)
	})

	t.Run("metrics and risk flag", func(t *testing.T) {
		// avg delay 9, total savings 500, total cost 5000:
		// (1 - 9/90) * (500/5000) * 100 = 9 -> High Risk
		projects := contractorProjects("Risky Co", 5, 1100, 1000, 9)
		rows := BuildContractorRanking(projects, s)
		require.Len(t, rows, 1)

		r := rows[0]
		assert.InDelta(t, 5000, r.TotalCost, 1e-9)
		assert.InDelta(t, 9, r.AvgDelay, 1e-9)
		assert.InDelta(t, 500, r.TotalSavings, 1e-9)
		assert.InDelta(t, 9, r.ReliabilityIndex, 1e-9)
		assert.Equal(t, "High Risk", r.RiskFlag)
	})

	t.Run("low risk above the threshold", func(t *testing.T) {
		// (1 - 0/90) * (5000/5000) * 100 = 100 -> Low Risk
		projects := contractorProjects("Solid Co", 5, 2000, 1000, 0)
		rows := BuildContractorRanking(projects, s)
		require.Len(t, rows, 1)
		assert.Equal(t, "Low Risk", rows[0].RiskFlag)
	})

	t.Run("truncation keeps the ascending-order head, then reverses", func(t *testing.T) {
		var projects []domain.Project
		for i := 1; i <= 20; i++ {
			name := fmt.Sprintf("C%02d", i)
			projects = append(projects, contractorProjects(name, 5, float64(i)*1100, float64(i)*1000, 10)...)
		}

		rows := BuildContractorRanking(projects, s)
		require.Len(t, rows, s.ContractorLimit)

		// The 15 cheapest contractors qualify; presentation order is
		// descending by total cost among them.
		assert.Equal(t, "C15", rows[0].Contractor)
		assert.Equal(t, "C01", rows[len(rows)-1].Contractor)
		for i := 0; i+1 < len(rows); i++ {
			assert.GreaterOrEqual(t, rows[i].TotalCost, rows[i+1].TotalCost)
		}
	})

	t.Run("rank is the exact sequence 1..N", func(t *testing.T) {
		var projects []domain.Project
		for i := 1; i <= 3; i++ {
			projects = append(projects, contractorProjects(fmt.Sprintf("C%d", i), 5, float64(i)*1100, float64(i)*1000, 10)...)
		}

		rows := BuildContractorRanking(projects, s)
		require.Len(t, rows, 3)
		for i, r := range rows {
			assert.Equal(t, i+1, r.Rank)
		}
	})

	t.Run("empty working set yields no rows", func(t *testing.T) {
		assert.Empty(t, BuildContractorRanking(nil, s))
	})
}
