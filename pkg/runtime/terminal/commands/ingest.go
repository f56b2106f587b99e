package commands

import (
	"fmt"

	console "github.com/pw-tools/infra-atlas/pkg/runtime/terminal/export"
	"github.com/pw-tools/infra-atlas/pkg/services/archive"
	"github.com/pw-tools/infra-atlas/pkg/services/config"
	"github.com/pw-tools/infra-atlas/pkg/services/report"
	"github.com/pw-tools/infra-atlas/pkg/store/dataset"
	"github.com/pw-tools/infra-atlas/pkg/store/duckdb"
	"github.com/pw-tools/infra-atlas/pkg/store/duckdb/project"

	"github.com/spf13/cobra"
)

type IngestCmd struct {
	profilePath string
	inputPath   string
	dbPath      string
	reporter    *console.Reporter
}

func NewIngestCmd(reporter *console.Reporter) *cobra.Command {
	ic := &IngestCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Load a dataset into the project archive",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.profilePath, "profile", "", "Path to the reporting profile")
	cmd.Flags().StringVar(&ic.inputPath, "input", "", "Path to the dataset CSV file")
	cmd.Flags().StringVar(&ic.dbPath, "db", "infra-atlas.db", "Path to the archive database")

	return cmd
}

func (ic *IngestCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	settings := report.DefaultSettings()
	if ic.profilePath != "" {
		cfg, err := config.LoadConfig(ic.profilePath)
		if err != nil {
			return fmt.Errorf("failed to load profile %q: %w", ic.profilePath, err)
		}
		settings = cfg.Settings()
		if ic.inputPath == "" {
			ic.inputPath = cfg.DatasetPath
		}
		if cfg.DBPath != "" && !cmd.Flags().Changed("db") {
			ic.dbPath = cfg.DBPath
		}
	}
	if ic.inputPath == "" {
		return fmt.Errorf("no dataset given: set --input or dataset_path in the profile")
	}

	src, err := dataset.Open(ic.inputPath)
	if err != nil {
		return fmt.Errorf("failed to open dataset %q: %w", ic.inputPath, err)
	}
	defer func() { _ = src.Close() }()

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ic.dbPath})
	if err != nil {
		return fmt.Errorf("failed to open archive %q: %w", ic.dbPath, err)
	}
	defer func() { _ = db.Close() }()

	projectStore, err := project.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create project store: %w", err)
	}

	svc := archive.NewService(projectStore, settings)
	stats, err := svc.Ingest(ctx, src)
	if err != nil {
		return fmt.Errorf("failed to ingest dataset: %w", err)
	}

	return ic.reporter.Ingested(stats, settings)
}
