package domain

import (
	"math"
	"time"
)

// Project is one validated row of the infrastructure dataset. The two
// derived fields are filled in by NewProject and never change afterwards.
type Project struct {
	MainIsland                string
	Region                    string
	Province                  string
	LegislativeDistrict       string
	Municipality              string
	DistrictEngineeringOffice string
	ProjectID                 string
	ProjectName               string
	TypeOfWork                string
	FundingYear               int
	ContractID                string
	ApprovedBudget            float64
	ContractCost              float64
	Contractor                string
	StartDate                 time.Time
	ActualCompletionDate      time.Time
	Latitude                  float64
	Longitude                 float64
	ProvincialCapital         string
	CapitalLatitude           float64
	CapitalLongitude          float64

	// CostSavings is ApprovedBudget minus ContractCost; negative means
	// the contract overran its budget.
	CostSavings float64
	// CompletionDayDelays is the whole-day difference between the actual
	// completion date and the start date; negative means early completion.
	CompletionDayDelays int
}

// NewProject computes the derived fields and returns the finished record.
// Field validation happens upstream, in the normalizer; a Project that
// exists is final.
func NewProject(p Project) Project {
	p.CostSavings = p.ApprovedBudget - p.ContractCost
	p.CompletionDayDelays = int(math.Round(p.ActualCompletionDate.Sub(p.StartDate).Hours() / 24))
	return p
}
