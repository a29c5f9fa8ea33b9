package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.Nil(t, err)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Format)
	require.Equal(t, []string{"magic"}, cfg.Pipes)
	require.Equal(t, 4, cfg.Concurrency)
	require.Equal(t, 1, cfg.Input.HeaderLines)
	require.Equal(t, ',', cfg.InputDelimiter())
	require.Equal(t, ',', cfg.OutputDelimiter())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "piper.yaml")
	require.Nil(t, os.WriteFile(path, []byte(`
log:
  level: debug
input:
  format: csv
  delimiter: ";"
output:
  format: jsonl
  delimiter: '\t'
pipes:
  - drop_rows_that_are_all_null
  - utf8_promotion
concurrency: 2
`), 0644))
	cfg, err := Load(WithConfigFile(path))
	require.Nil(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "csv", cfg.Input.Format)
	require.Equal(t, ';', cfg.InputDelimiter())
	require.Equal(t, '\t', cfg.OutputDelimiter())
	require.Equal(t, []string{"drop_rows_that_are_all_null", "utf8_promotion"}, cfg.Pipes)
	require.Equal(t, 2, cfg.Concurrency)

	_, err = Load(WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml")))
	require.NotNil(t, err)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PIPER_CONCURRENCY", "8")
	t.Setenv("PIPER_LOG_FORMAT", "json")
	envFile := filepath.Join(t.TempDir(), ".env")
	require.Nil(t, os.WriteFile(envFile, []byte("PIPER_CONCURRENCY=3\nPIPER_OUTPUT_DIR=/tmp/out\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("PIPER_OUTPUT_DIR") })

	cfg, err := Load(WithEnvFile(envFile))
	require.Nil(t, err)
	// the environment wins over the .env file
	require.Equal(t, 8, cfg.Concurrency)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, "/tmp/out", cfg.Output.Dir)
}

func TestLoadFlagsViaViper(t *testing.T) {
	v := viper.New()
	v.Set("pipes", []string{"magic", "semicircle_to_degrees"})
	cfg, err := Load(WithViper(v))
	require.Nil(t, err)
	require.Equal(t, []string{"magic", "semicircle_to_degrees"}, cfg.Pipes)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Log:         LogConfig{Level: "info", Format: "console"},
			Input:       InputConfig{Delimiter: ","},
			Output:      OutputConfig{Delimiter: ","},
			Pipes:       []string{"magic"},
			Concurrency: 1,
		}
	}
	require.Nil(t, valid().Validate())

	cfg := valid()
	cfg.Concurrency = 0
	require.NotNil(t, cfg.Validate())

	cfg = valid()
	cfg.Pipes = nil
	require.NotNil(t, cfg.Validate())

	cfg = valid()
	cfg.Input.Format = "parquet"
	require.NotNil(t, cfg.Validate())

	cfg = valid()
	cfg.Log.Format = "xml"
	require.NotNil(t, cfg.Validate())

	cfg = valid()
	cfg.Output.Delimiter = ";;"
	require.NotNil(t, cfg.Validate())
}
