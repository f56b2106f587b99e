package store

import "time"

// ArchiveStats describes the state of the project archive.
type ArchiveStats struct {
	RecordsCount  int64
	EarliestStart *time.Time
}

// ProjectRecord is the archive-level shape of a dataset row. Derived
// metrics are not stored; they are recomputed when records are mapped
// back to the domain.
type ProjectRecord struct {
	ProjectID                 string
	ProjectName               string
	ContractID                string
	Contractor                string
	MainIsland                string
	Region                    string
	Province                  string
	LegislativeDistrict       string
	Municipality              string
	DistrictEngineeringOffice string
	TypeOfWork                string
	FundingYear               int
	ApprovedBudget            float64
	ContractCost              float64
	StartDate                 time.Time
	ActualCompletionDate      time.Time
	Latitude                  float64
	Longitude                 float64
	ProvincialCapital         string
	CapitalLatitude           float64
	CapitalLongitude          float64
}
