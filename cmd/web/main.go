package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/pw-tools/infra-atlas/pkg/server"
	"github.com/pw-tools/infra-atlas/pkg/services/archive"
	"github.com/pw-tools/infra-atlas/pkg/services/config"
	"github.com/pw-tools/infra-atlas/pkg/services/report"
	"github.com/pw-tools/infra-atlas/pkg/store/duckdb"
	"github.com/pw-tools/infra-atlas/pkg/store/duckdb/project"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	dbPath  string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Infra Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the reporting profile")
	rootCmd.Flags().StringVar(&dbPath, "db", "infra-atlas.db",
		"Path to the archive database")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	settings := report.DefaultSettings()
	if cfgPath != "" {
		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load profile %q: %w", cfgPath, err)
		}
		settings = cfg.Settings()
		if cfg.DBPath != "" && !cmd.Flags().Changed("db") {
			dbPath = cfg.DBPath
		}
		logger.Info().Msgf("Profile found at `%s` successfully loaded.", cfgPath)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer func() { _ = db.Close() }()

	projectStore, err := project.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create project store: %w", err)
	}

	archiveService := archive.NewService(projectStore, settings)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Archive: archiveService,
		},
	})

	return api.Start()
}
