package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pw-tools/infra-atlas/pkg/models/domain"
)

type summaryDocument struct {
	TotalProjects    int     `json:"TotalProjects"`
	TotalContractors int     `json:"TotalContractors"`
	GlobalAvgDelay   float64 `json:"GlobalAvgDelay"`
	TotalSavings     float64 `json:"TotalSavings"`
}

// WriteSummary writes the run summary as pretty-printed JSON with exact
// numeric values, and returns the file path.
func WriteSummary(dir string, s domain.Summary) (string, error) {
	path := filepath.Join(dir, SummaryFileName)

	data, err := json.MarshalIndent(summaryDocument{
		TotalProjects:    s.TotalProjects,
		TotalContractors: s.TotalContractors,
		GlobalAvgDelay:   s.GlobalAvgDelay,
		TotalSavings:     s.TotalSavings,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal summary: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}

	return path, nil
}
