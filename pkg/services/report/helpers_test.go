package report

import (
	"time"

	"github.com/pw-tools/infra-atlas/pkg/models/domain"
)

type projectOpts struct {
	region     string
	island     string
	contractor string
	contractID string
	typeOfWork string
	year       int
	budget     float64
	cost       float64
	delayDays  int
}

// testProject builds a working-set record with the given metrics. Start
// and completion dates are synthesized so the derived delay matches
// delayDays exactly.
func testProject(o projectOpts) domain.Project {
	start := time.Date(o.year, 3, 1, 0, 0, 0, 0, time.UTC)
	return domain.NewProject(domain.Project{
		MainIsland:           o.island,
		Region:               o.region,
		Contractor:           o.contractor,
		ContractID:           o.contractID,
		TypeOfWork:           o.typeOfWork,
		FundingYear:          o.year,
		ApprovedBudget:       o.budget,
		ContractCost:         o.cost,
		StartDate:            start,
		ActualCompletionDate: start.AddDate(0, 0, o.delayDays),
	})
}
