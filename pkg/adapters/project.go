package adapters

import (
	"github.com/pw-tools/infra-atlas/pkg/export"
	"github.com/pw-tools/infra-atlas/pkg/models/api"
	"github.com/pw-tools/infra-atlas/pkg/models/domain"
	"github.com/pw-tools/infra-atlas/pkg/models/store"
)

// MapStoreProjectToDomain rebuilds a domain record from the archive.
// Derived fields are recomputed; the archive never stores them.
func MapStoreProjectToDomain(r store.ProjectRecord) domain.Project {
	return domain.NewProject(domain.Project{
		MainIsland:                r.MainIsland,
		Region:                    r.Region,
		Province:                  r.Province,
		LegislativeDistrict:       r.LegislativeDistrict,
		Municipality:              r.Municipality,
		DistrictEngineeringOffice: r.DistrictEngineeringOffice,
		ProjectID:                 r.ProjectID,
		ProjectName:               r.ProjectName,
		TypeOfWork:                r.TypeOfWork,
		FundingYear:               r.FundingYear,
		ContractID:                r.ContractID,
		ApprovedBudget:            r.ApprovedBudget,
		ContractCost:              r.ContractCost,
		Contractor:                r.Contractor,
		StartDate:                 r.StartDate,
		ActualCompletionDate:      r.ActualCompletionDate,
		Latitude:                  r.Latitude,
		Longitude:                 r.Longitude,
		ProvincialCapital:         r.ProvincialCapital,
		CapitalLatitude:           r.CapitalLatitude,
		CapitalLongitude:          r.CapitalLongitude,
	})
}

func MapDomainProjectToStore(p domain.Project) store.ProjectRecord {
	return store.ProjectRecord{
		MainIsland:                p.MainIsland,
		Region:                    p.Region,
		Province:                  p.Province,
		LegislativeDistrict:       p.LegislativeDistrict,
		Municipality:              p.Municipality,
		DistrictEngineeringOffice: p.DistrictEngineeringOffice,
		ProjectID:                 p.ProjectID,
		ProjectName:               p.ProjectName,
		TypeOfWork:                p.TypeOfWork,
		FundingYear:               p.FundingYear,
		ContractID:                p.ContractID,
		ApprovedBudget:            p.ApprovedBudget,
		ContractCost:              p.ContractCost,
		Contractor:                p.Contractor,
		StartDate:                 p.StartDate,
		ActualCompletionDate:      p.ActualCompletionDate,
		Latitude:                  p.Latitude,
		Longitude:                 p.Longitude,
		ProvincialCapital:         p.ProvincialCapital,
		CapitalLatitude:           p.CapitalLatitude,
		CapitalLongitude:          p.CapitalLongitude,
	}
}

func MapRegionEfficiencyDomainToApi(r domain.RegionEfficiency) api.RegionEfficiency {
	return api.RegionEfficiency{
		Region:          r.Region,
		MainIsland:      r.MainIsland,
		TotalBudget:     export.FormatNumber(r.TotalBudget),
		MedianSavings:   export.FormatNumber(r.MedianSavings),
		AvgDelay:        export.FormatNumber(r.AvgDelay),
		HighDelayPct:    export.FormatNumber(r.HighDelayPct),
		EfficiencyScore: export.FormatNumber(r.EfficiencyScore),
	}
}

func MapContractorPerformanceDomainToApi(r domain.ContractorPerformance) api.ContractorPerformance {
	return api.ContractorPerformance{
		Rank:             r.Rank,
		Contractor:       r.Contractor,
		TotalCost:        export.FormatNumber(r.TotalCost),
		NumProjects:      r.NumProjects,
		AvgDelay:         export.FormatNumber(r.AvgDelay),
		TotalSavings:     export.FormatNumber(r.TotalSavings),
		ReliabilityIndex: export.FormatNumber(r.ReliabilityIndex),
		RiskFlag:         r.RiskFlag,
	}
}

func MapAnnualTrendDomainToApi(r domain.AnnualTrend) api.AnnualTrend {
	return api.AnnualTrend{
		FundingYear:   r.FundingYear,
		TypeOfWork:    r.TypeOfWork,
		TotalProjects: r.TotalProjects,
		AvgSavings:    export.FormatNumber(r.AvgSavings),
		OverrunRate:   export.FormatNumber(r.OverrunRate),
		YoYChange:     export.FormatNumber(r.YoYChange),
	}
}

func MapSummaryDomainToApi(s domain.Summary) api.Summary {
	return api.Summary{
		TotalProjects:    s.TotalProjects,
		TotalContractors: s.TotalContractors,
		GlobalAvgDelay:   s.GlobalAvgDelay,
		TotalSavings:     s.TotalSavings,
	}
}
