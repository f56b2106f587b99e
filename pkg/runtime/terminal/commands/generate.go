package commands

import (
	"fmt"

	"github.com/pw-tools/infra-atlas/pkg/export"
	console "github.com/pw-tools/infra-atlas/pkg/runtime/terminal/export"
	"github.com/pw-tools/infra-atlas/pkg/services/config"
	"github.com/pw-tools/infra-atlas/pkg/services/pipeline"
	"github.com/pw-tools/infra-atlas/pkg/services/report"
	"github.com/pw-tools/infra-atlas/pkg/store/dataset"

	"github.com/spf13/cobra"
)

type GenerateCmd struct {
	profilePath string
	inputPath   string
	outputDir   string
	workbook    bool
	reporter    *console.Reporter
}

func NewGenerateCmd(reporter *console.Reporter) *cobra.Command {
	gc := &GenerateCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the report files from a dataset",
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.profilePath, "profile", "", "Path to the reporting profile")
	cmd.Flags().StringVar(&gc.inputPath, "input", "", "Path to the dataset CSV file")
	cmd.Flags().StringVar(&gc.outputDir, "out", ".", "Directory to write the report files to")
	cmd.Flags().BoolVar(&gc.workbook, "xlsx", false, "Also write a combined Excel workbook")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	settings := report.DefaultSettings()
	if gc.profilePath != "" {
		cfg, err := config.LoadConfig(gc.profilePath)
		if err != nil {
			return fmt.Errorf("failed to load profile %q: %w", gc.profilePath, err)
		}
		settings = cfg.Settings()
		if gc.inputPath == "" {
			gc.inputPath = cfg.DatasetPath
		}
		if cfg.OutputDir != "" && !cmd.Flags().Changed("out") {
			gc.outputDir = cfg.OutputDir
		}
	}
	if gc.inputPath == "" {
		return fmt.Errorf("no dataset given: set --input or dataset_path in the profile")
	}

	src, err := dataset.Open(gc.inputPath)
	if err != nil {
		return fmt.Errorf("failed to open dataset %q: %w", gc.inputPath, err)
	}
	defer func() { _ = src.Close() }()

	res, err := pipeline.Run(ctx, src, settings)
	if err != nil {
		return fmt.Errorf("failed to process dataset: %w", err)
	}

	if res.Empty() {
		return gc.reporter.Run(res, settings, nil)
	}

	writer := export.NewCSVWriter(gc.outputDir)

	var paths []string
	p, err := writer.WriteRegional(res.Regional)
	if err != nil {
		return fmt.Errorf("failed to write regional report: %w", err)
	}
	paths = append(paths, p)

	p, err = writer.WriteContractors(res.Contractors)
	if err != nil {
		return fmt.Errorf("failed to write contractor report: %w", err)
	}
	paths = append(paths, p)

	p, err = writer.WriteTrends(res.Trends)
	if err != nil {
		return fmt.Errorf("failed to write trend report: %w", err)
	}
	paths = append(paths, p)

	p, err = export.WriteSummary(gc.outputDir, res.Summary)
	if err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	paths = append(paths, p)

	if gc.workbook {
		p, err = export.WriteWorkbook(gc.outputDir, res.Regional, res.Contractors, res.Trends, res.Summary)
		if err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		paths = append(paths, p)
	}

	return gc.reporter.Run(res, settings, paths)
}
