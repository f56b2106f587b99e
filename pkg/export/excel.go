package export

import (
	"fmt"
	"path/filepath"

	"github.com/pw-tools/infra-atlas/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

const (
	sheetRegional    = "Regional Efficiency"
	sheetContractors = "Contractor Ranking"
	sheetTrends      = "Annual Trends"
	sheetSummary     = "Summary"
)

// WriteWorkbook bundles all four reports into a single XLSX workbook,
// one sheet per report, and returns the file path. Cell values match the
// CSV output exactly.
func WriteWorkbook(dir string, regional []domain.RegionEfficiency, contractors []domain.ContractorPerformance, trends []domain.AnnualTrend, summary domain.Summary) (string, error) {
	path := filepath.Join(dir, WorkbookFileName)

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetRegional)
	if err := writeSheet(f, sheetRegional, regionalHeader, regionalRows(regional)); err != nil {
		return "", err
	}

	for _, sheet := range []string{sheetContractors, sheetTrends, sheetSummary} {
		if _, err := f.NewSheet(sheet); err != nil {
			return "", fmt.Errorf("create sheet %s: %w", sheet, err)
		}
	}

	if err := writeSheet(f, sheetContractors, contractorHeader, contractorRows(contractors)); err != nil {
		return "", err
	}
	if err := writeSheet(f, sheetTrends, trendHeader, trendRows(trends)); err != nil {
		return "", err
	}

	summaryRows := [][]string{
		{"TotalProjects", FormatCount(summary.TotalProjects)},
		{"TotalContractors", FormatCount(summary.TotalContractors)},
		{"GlobalAvgDelay", FormatNumber(summary.GlobalAvgDelay)},
		{"TotalSavings", FormatNumber(summary.TotalSavings)},
	}
	if err := writeSheet(f, sheetSummary, []string{"Metric", "Value"}, summaryRows); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}

	return path, nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]string) error {
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d of %s: %w", rowNum, sheet, err)
	}
	return nil
}

func regionalRows(rows []domain.RegionEfficiency) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, regionalRow(r))
	}
	return out
}

func contractorRows(rows []domain.ContractorPerformance) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, contractorRow(r))
	}
	return out
}

func trendRows(rows []domain.AnnualTrend) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, trendRow(r))
	}
	return out
}
