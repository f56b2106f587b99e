package report

import (
	"testing"

	"github.com/pw-tools/infra-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildSummary(t *testing.T) {
	t.Run("contractors counted by distinct non-empty contract id", func(t *testing.T) {
		projects := []domain.Project{
			testProject(projectOpts{contractor: "A", contractID: "C-1", year: 2021, budget: 1100, cost: 1000, delayDays: 10}),
			testProject(projectOpts{contractor: "B", contractID: "C-1", year: 2021, budget: 1200, cost: 1000, delayDays: 20}),
			testProject(projectOpts{contractor: "A", contractID: "C-2", year: 2022, budget: 900, cost: 1000, delayDays: 30}),
			testProject(projectOpts{contractor: "C", contractID: "", year: 2022, budget: 1000, cost: 1000, delayDays: 40}),
		}

		s := BuildSummary(projects)
		assert.Equal(t, 4, s.TotalProjects)
		assert.Equal(t, 2, s.TotalContractors)
		assert.InDelta(t, 25, s.GlobalAvgDelay, 1e-9)
		assert.InDelta(t, 200, s.TotalSavings, 1e-9)
	})

	t.Run("idempotent over input order", func(t *testing.T) {
		projects := []domain.Project{
			testProject(projectOpts{contractID: "C-1", year: 2021, budget: 1100, cost: 1000, delayDays: 10}),
			testProject(projectOpts{contractID: "C-2", year: 2022, budget: 900, cost: 1000, delayDays: 30}),
		}
		reversed := []domain.Project{projects[1], projects[0]}
		assert.Equal(t, BuildSummary(projects), BuildSummary(reversed))
	})
}
