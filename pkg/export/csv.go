package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pw-tools/infra-atlas/pkg/models/domain"
)

// Report file names follow the published naming scheme.
const (
	RegionalFileName   = "report1_regional_summary.csv"
	ContractorFileName = "report2_contractor_ranking.csv"
	TrendFileName      = "report3_annual_trends.csv"
	SummaryFileName    = "summary.json"
	WorkbookFileName   = "reports.xlsx"
)

var (
	regionalHeader   = []string{"Region", "MainIsland", "TotalBudget", "MedianSavings", "AvgDelay", "HighDelayPct", "EfficiencyScore"}
	contractorHeader = []string{"Rank", "Contractor", "TotalCost", "NumProjects", "AvgDelay", "TotalSavings", "ReliabilityIndex", "RiskFlag"}
	trendHeader      = []string{"FundingYear", "TypeOfWork", "TotalProjects", "AvgSavings", "OverrunRate", "YoYChange"}
)

// CSVWriter writes the tabular reports into a target directory, one file
// per report. Row order is whatever the builders produced; the writer
// never reorders.
type CSVWriter struct {
	dir string
}

func NewCSVWriter(dir string) *CSVWriter {
	return &CSVWriter{dir: dir}
}

// WriteRegional writes the regional efficiency report and returns the
// file path.
func (w *CSVWriter) WriteRegional(rows []domain.RegionEfficiency) (string, error) {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, regionalRow(r))
	}
	return w.writeFile(RegionalFileName, regionalHeader, records)
}

// WriteContractors writes the contractor ranking report and returns the
// file path.
func (w *CSVWriter) WriteContractors(rows []domain.ContractorPerformance) (string, error) {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, contractorRow(r))
	}
	return w.writeFile(ContractorFileName, contractorHeader, records)
}

// WriteTrends writes the annual trend report and returns the file path.
func (w *CSVWriter) WriteTrends(rows []domain.AnnualTrend) (string, error) {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, trendRow(r))
	}
	return w.writeFile(TrendFileName, trendHeader, records)
}

func regionalRow(r domain.RegionEfficiency) []string {
	return []string{
		r.Region,
		r.MainIsland,
		FormatNumber(r.TotalBudget),
		FormatNumber(r.MedianSavings),
		FormatNumber(r.AvgDelay),
		FormatNumber(r.HighDelayPct),
		FormatNumber(r.EfficiencyScore),
	}
}

func contractorRow(r domain.ContractorPerformance) []string {
	return []string{
		strconv.Itoa(r.Rank),
		r.Contractor,
		FormatNumber(r.TotalCost),
		FormatCount(r.NumProjects),
		FormatNumber(r.AvgDelay),
		FormatNumber(r.TotalSavings),
		FormatNumber(r.ReliabilityIndex),
		r.RiskFlag,
	}
}

func trendRow(r domain.AnnualTrend) []string {
	return []string{
		strconv.Itoa(r.FundingYear),
		r.TypeOfWork,
		FormatCount(r.TotalProjects),
		FormatNumber(r.AvgSavings),
		FormatNumber(r.OverrunRate),
		FormatNumber(r.YoYChange),
	}
}

func (w *CSVWriter) writeFile(name string, header []string, records [][]string) (string, error) {
	path := filepath.Join(w.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	if err := cw.WriteAll(records); err != nil {
		return "", fmt.Errorf("write rows: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush %s: %w", name, err)
	}

	return path, nil
}
