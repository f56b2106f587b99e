package commands

import (
	"fmt"

	console "github.com/pw-tools/infra-atlas/pkg/runtime/terminal/export"
	"github.com/pw-tools/infra-atlas/pkg/services/archive"
	"github.com/pw-tools/infra-atlas/pkg/services/config"
	"github.com/pw-tools/infra-atlas/pkg/services/report"
	"github.com/pw-tools/infra-atlas/pkg/store/duckdb"
	"github.com/pw-tools/infra-atlas/pkg/store/duckdb/project"

	"github.com/spf13/cobra"
)

type StatsCmd struct {
	profilePath string
	dbPath      string
	reporter    *console.Reporter
}

func NewStatsCmd(reporter *console.Reporter) *cobra.Command {
	sc := &StatsCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the archive state and its derived summary",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.profilePath, "profile", "", "Path to the reporting profile")
	cmd.Flags().StringVar(&sc.dbPath, "db", "infra-atlas.db", "Path to the archive database")

	return cmd
}

func (sc *StatsCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	settings := report.DefaultSettings()
	if sc.profilePath != "" {
		cfg, err := config.LoadConfig(sc.profilePath)
		if err != nil {
			return fmt.Errorf("failed to load profile %q: %w", sc.profilePath, err)
		}
		settings = cfg.Settings()
		if cfg.DBPath != "" && !cmd.Flags().Changed("db") {
			sc.dbPath = cfg.DBPath
		}
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: sc.dbPath})
	if err != nil {
		return fmt.Errorf("failed to open archive %q: %w", sc.dbPath, err)
	}
	defer func() { _ = db.Close() }()

	projectStore, err := project.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create project store: %w", err)
	}

	svc := archive.NewService(projectStore, settings)

	archiveStats, err := svc.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to read archive stats: %w", err)
	}
	summary, err := svc.Summary(ctx)
	if err != nil {
		return fmt.Errorf("failed to derive summary: %w", err)
	}

	return sc.reporter.Archive(archiveStats, summary)
}
