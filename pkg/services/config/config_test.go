package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("reads yaml profile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "profile.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"dataset_path: projects.csv\noutput_dir: out\nyear_from: 2020\nyear_to: 2024\n",
		), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "projects.csv", cfg.DatasetPath)
		assert.Equal(t, "out", cfg.OutputDir)

		s := cfg.Settings()
		assert.Equal(t, 2020, s.YearFrom)
		assert.Equal(t, 2024, s.YearTo)
		// Policy knobs keep their defaults.
		assert.Equal(t, 5, s.MinContractorSample)
		assert.Equal(t, 15, s.ContractorLimit)
	})

	t.Run("defaults survive an empty profile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "profile.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output_dir: out\n"), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		s := cfg.Settings()
		assert.Equal(t, 2021, s.YearFrom)
		assert.Equal(t, 2023, s.YearTo)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
