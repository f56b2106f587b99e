package export

import (
	"testing"

	"github.com/pw-tools/infra-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteWorkbook(dir,
		[]domain.RegionEfficiency{{Region: "Region III", MainIsland: "Luzon", TotalBudget: 1000000}},
		[]domain.ContractorPerformance{{Rank: 1, Contractor: "ACME", TotalCost: 5000, NumProjects: 5, RiskFlag: "Low Risk"}},
		[]domain.AnnualTrend{{FundingYear: 2021, TypeOfWork: "Flood Control", TotalProjects: 3}},
		domain.Summary{TotalProjects: 9, TotalContractors: 2, GlobalAvgDelay: 12.5, TotalSavings: 300},
	)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{sheetRegional, sheetContractors, sheetTrends, sheetSummary}, f.GetSheetList())

	region, err := f.GetCellValue(sheetRegional, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Region III", region)

	budget, err := f.GetCellValue(sheetRegional, "C2")
	require.NoError(t, err)
	assert.Equal(t, "1,000,000", budget)

	rank, err := f.GetCellValue(sheetContractors, "A2")
	require.NoError(t, err)
	assert.Equal(t, "1", rank)

	projects, err := f.GetCellValue(sheetSummary, "B2")
	require.NoError(t, err)
	assert.Equal(t, "9", projects)
}
