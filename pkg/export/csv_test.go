package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pw-tools/infra-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVWriter_WriteRegional(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir)

	path, err := w.WriteRegional([]domain.RegionEfficiency{
		{
			Region:          "Region III",
			MainIsland:      "Luzon",
			TotalBudget:     3250750.126,
			MedianSavings:   100,
			AvgDelay:        23.333333,
			HighDelayPct:    33.333333,
			EfficiencyScore: 428.571428,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, RegionalFileName), path)

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, regionalHeader, rows[0])
	assert.Equal(t, []string{"Region III", "Luzon", "3,250,750.13", "100", "23.33", "33.33", "428.57"}, rows[1])
}

func TestCSVWriter_WriteContractors(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir)

	path, err := w.WriteContractors([]domain.ContractorPerformance{
		{
			Rank:             1,
			Contractor:       "ACME Builders",
			TotalCost:        5000000,
			NumProjects:      5,
			AvgDelay:         9,
			TotalSavings:     500000,
			ReliabilityIndex: 9,
			RiskFlag:         "High Risk",
		},
	})
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, contractorHeader, rows[0])
	assert.Equal(t, []string{"1", "ACME Builders", "5,000,000", "5", "9", "500,000", "9", "High Risk"}, rows[1])
}

func TestCSVWriter_WriteTrends(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir)

	path, err := w.WriteTrends([]domain.AnnualTrend{
		{FundingYear: 2021, TypeOfWork: "Flood Control", TotalProjects: 1200, AvgSavings: 1523.75, OverrunRate: 12.5},
		{FundingYear: 2022, TypeOfWork: "Flood Control", TotalProjects: 900, AvgSavings: 1100, OverrunRate: 20, YoYChange: -27.812},
	})
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, trendHeader, rows[0])
	assert.Equal(t, []string{"2021", "Flood Control", "1,200", "1,523.75", "12.5", "0"}, rows[1])
	assert.Equal(t, []string{"2022", "Flood Control", "900", "1,100", "20", "-27.81"}, rows[2])
}

func TestCSVWriter_EmptyReportStillHasHeader(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir)

	path, err := w.WriteRegional(nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(regionalHeader, ",")+"\n", string(data))
}
