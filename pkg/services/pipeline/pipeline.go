package pipeline

import (
	"context"

	"github.com/pw-tools/infra-atlas/pkg/models/domain"
	"github.com/pw-tools/infra-atlas/pkg/services/ingest"
	"github.com/pw-tools/infra-atlas/pkg/services/report"
	"github.com/rs/zerolog"
)

// Result bundles the four report outputs of one run together with the
// ingestion stats. When the working set is empty the report fields are
// left zero-valued and Empty reports true; callers skip serialization.
type Result struct {
	Regional    []domain.RegionEfficiency
	Contractors []domain.ContractorPerformance
	Trends      []domain.AnnualTrend
	Summary     domain.Summary
	Stats       ingest.Stats
	WorkingSet  []domain.Project
}

// Empty reports whether the run had nothing to do.
func (r *Result) Empty() bool {
	return len(r.WorkingSet) == 0
}

// Run drains the source and derives all four reports from one shared,
// read-only working set. Builders run sequentially and independently;
// none of them mutates the working set.
func Run(ctx context.Context, src ingest.Source, s report.Settings) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	projects, stats, err := ingest.Normalize(ctx, src, s.YearFrom, s.YearTo)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("rows_read", stats.RowsRead).
		Int("dropped", stats.Dropped).
		Int("in_range", stats.InRange).
		Msg("dataset processed")

	res := &Result{
		Stats:      stats,
		WorkingSet: projects,
	}
	if len(projects) == 0 {
		logger.Info().Msg("no projects in the covered years, nothing to report")
		return res, nil
	}

	res.Regional = report.BuildRegionalEfficiency(projects, s)
	res.Contractors = report.BuildContractorRanking(projects, s)
	res.Trends = report.BuildAnnualTrends(projects, s)
	res.Summary = report.BuildSummary(projects)

	return res, nil
}

// Derive runs the four builders over an already-normalized working set.
// Used when records come from the archive instead of a dataset file.
func Derive(projects []domain.Project, s report.Settings) *Result {
	res := &Result{WorkingSet: projects}
	if len(projects) == 0 {
		return res
	}

	res.Regional = report.BuildRegionalEfficiency(projects, s)
	res.Contractors = report.BuildContractorRanking(projects, s)
	res.Trends = report.BuildAnnualTrends(projects, s)
	res.Summary = report.BuildSummary(projects)
	return res
}
