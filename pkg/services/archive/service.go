package archive

import (
	"context"
	"fmt"

	"github.com/pw-tools/infra-atlas/pkg/adapters"
	"github.com/pw-tools/infra-atlas/pkg/models/domain"
	"github.com/pw-tools/infra-atlas/pkg/models/store"
	"github.com/pw-tools/infra-atlas/pkg/services/ingest"
	"github.com/pw-tools/infra-atlas/pkg/services/report"
	"github.com/pw-tools/infra-atlas/pkg/store/duckdb/project"
)

// Service derives reports on demand from the project archive. Every call
// re-reads the archive and re-derives from scratch; nothing is cached
// across report builds.
type Service interface {
	Regional(ctx context.Context) ([]domain.RegionEfficiency, error)
	Contractors(ctx context.Context) ([]domain.ContractorPerformance, error)
	Trends(ctx context.Context) ([]domain.AnnualTrend, error)
	Summary(ctx context.Context) (domain.Summary, error)
	Stats(ctx context.Context) (*store.ArchiveStats, error)
	Ingest(ctx context.Context, src ingest.Source) (ingest.Stats, error)
}

type service struct {
	store    project.Store
	settings report.Settings
}

func NewService(store project.Store, settings report.Settings) Service {
	return &service{store: store, settings: settings}
}

// workingSet loads the archive and applies the funding-year filter.
func (s *service) workingSet(ctx context.Context) ([]domain.Project, error) {
	records, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load archive: %w", err)
	}

	var projects []domain.Project
	for _, r := range records {
		p := adapters.MapStoreProjectToDomain(r)
		if p.FundingYear < s.settings.YearFrom || p.FundingYear > s.settings.YearTo {
			continue
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (s *service) Regional(ctx context.Context) ([]domain.RegionEfficiency, error) {
	projects, err := s.workingSet(ctx)
	if err != nil {
		return nil, err
	}
	return report.BuildRegionalEfficiency(projects, s.settings), nil
}

func (s *service) Contractors(ctx context.Context) ([]domain.ContractorPerformance, error) {
	projects, err := s.workingSet(ctx)
	if err != nil {
		return nil, err
	}
	return report.BuildContractorRanking(projects, s.settings), nil
}

func (s *service) Trends(ctx context.Context) ([]domain.AnnualTrend, error) {
	projects, err := s.workingSet(ctx)
	if err != nil {
		return nil, err
	}
	return report.BuildAnnualTrends(projects, s.settings), nil
}

func (s *service) Summary(ctx context.Context) (domain.Summary, error) {
	projects, err := s.workingSet(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return report.BuildSummary(projects), nil
}

func (s *service) Stats(ctx context.Context) (*store.ArchiveStats, error) {
	return s.store.GetStats(ctx)
}

// Ingest normalizes the source and stores the surviving records.
func (s *service) Ingest(ctx context.Context, src ingest.Source) (ingest.Stats, error) {
	projects, stats, err := ingest.Normalize(ctx, src, s.settings.YearFrom, s.settings.YearTo)
	if err != nil {
		return stats, err
	}

	records := make([]store.ProjectRecord, 0, len(projects))
	for _, p := range projects {
		records = append(records, adapters.MapDomainProjectToStore(p))
	}

	if err := s.store.Add(ctx, records); err != nil {
		return stats, fmt.Errorf("store projects: %w", err)
	}
	return stats, nil
}
