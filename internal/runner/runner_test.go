package runner

import (
	"context"
	goerrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thomascamminady/piper/datasource/snapshot"
	"github.com/thomascamminady/piper/errors"
	"github.com/thomascamminady/piper/internal/config"
	"go.uber.org/goleak"
)

const testActivity = `timestamp,position_lat,heart_rate,empty
2023-02-22 11:56:00,514336120,120,
,,,
2023-02-22 11:57:00,,130,
`

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Log:         config.LogConfig{Level: "info", Format: "console"},
		Input:       config.InputConfig{Delimiter: ",", HeaderLines: 1},
		Output:      config.OutputConfig{Delimiter: ",", Dir: filepath.Join(t.TempDir(), "out")},
		Pipes:       []string{"magic"},
		Concurrency: 2,
	}
}

func writeInputs(t *testing.T, n int, content string) []string {
	dir := t.TempDir()
	var inputs []string
	for i := 0; i < n; i++ {
		path := filepath.Join(dir, string(rune('a'+i))+".csv")
		require.Nil(t, os.WriteFile(path, []byte(content), 0644))
		inputs = append(inputs, path)
	}
	return inputs
}

func TestRun(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := testConfig(t)
	r, err := New(cfg)
	require.Nil(t, err)
	require.NotEmpty(t, r.RunID())
	inputs := writeInputs(t, 5, testActivity)

	results, err := r.Run(context.Background(), inputs)
	require.Nil(t, err)
	require.Len(t, results, 5)
	for i, res := range results {
		require.Equal(t, inputs[i], res.Input)
		require.Equal(t, 3, res.RowsIn)
		require.Equal(t, 2, res.RowsOut)
		require.Equal(t, results[0].Fingerprint, res.Fingerprint)
		out, err := os.ReadFile(res.Output)
		require.Nil(t, err)
		lines := strings.Split(strings.TrimSpace(string(out)), "\n")
		require.Equal(t, []string{
			"timestamp,position_lat,heart_rate",
			"2023-02-22 11:56:00,43.111155554652214,120",
			"2023-02-22 11:57:00,,130",
		}, lines)
	}
	require.Equal(t, filepath.Join(cfg.Output.Dir, "a.csv"), results[0].Output)

	stats := r.Statistics()
	require.Equal(t, int64(5), stats.GetNumFilesProcessed())
	require.Equal(t, int64(15), stats.GetNumRowsRead())
	require.Equal(t, int64(10), stats.GetNumRowsWritten())
	require.Equal(t, []int64{5}, stats.GetPipeRowsRemoved())
}

func TestRunSnapshotOutput(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := testConfig(t)
	cfg.Output.Format = FormatSnapshot
	cfg.Pipes = []string{"drop_rows_that_are_all_null", "convert_times_to_datetime"}
	r, err := New(cfg)
	require.Nil(t, err)
	results, err := r.Run(context.Background(), writeInputs(t, 1, testActivity))
	require.Nil(t, err)
	require.True(t, strings.HasSuffix(results[0].Output, ".snap"))

	f, err := os.Open(results[0].Output)
	require.Nil(t, err)
	defer f.Close()
	df, err := snapshot.Read(f)
	require.Nil(t, err)
	require.Equal(t, 2, df.NumRows())
	require.Equal(t, results[0].Fingerprint, df.Fingerprint())
	require.Equal(t, []string{"timestamp", "position_lat", "heart_rate", "empty"}, df.GetSchema().ColumnNames())
}

func TestRunNextToInput(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := testConfig(t)
	cfg.Output.Dir = ""
	cfg.Output.Format = FormatJSONL
	r, err := New(cfg)
	require.Nil(t, err)
	inputs := writeInputs(t, 1, testActivity)
	results, err := r.Run(context.Background(), inputs)
	require.Nil(t, err)
	require.Equal(t, filepath.Join(filepath.Dir(inputs[0]), "a.piped.jsonl"), results[0].Output)
	out, err := os.ReadFile(results[0].Output)
	require.Nil(t, err)
	require.Equal(t, 2, strings.Count(string(out), "\n"))
}

func TestRunFailure(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := testConfig(t)
	r, err := New(cfg)
	require.Nil(t, err)
	inputs := append(writeInputs(t, 3, testActivity), writeInputs(t, 1, "position_lat\nnorth\n")...)

	_, err = r.Run(context.Background(), inputs)
	require.NotNil(t, err)
	var typeErr errors.ColumnTypeError
	require.True(t, goerrors.As(err, &typeErr))
	require.Contains(t, err.Error(), inputs[3])
	require.Contains(t, err.Error(), "pipe magic")
}

func TestRunCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)
	r, err := New(testConfig(t))
	require.Nil(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx, writeInputs(t, 4, testActivity))
	require.True(t, goerrors.Is(err, context.Canceled))

	_, err = r.Run(context.Background(), nil)
	require.IsType(t, errors.InvalidInputError{}, err)
}

func TestNewUnknownPipe(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pipes = []string{"magic", "no_such_pipe"}
	_, err := New(cfg)
	require.Equal(t, errors.UnknownPipeError{Name: "no_such_pipe"}, err)
}

func TestExpandInputs(t *testing.T) {
	inputs := writeInputs(t, 3, testActivity)
	dir := filepath.Dir(inputs[0])
	expanded, err := ExpandInputs([]string{filepath.Join(dir, "*.csv"), inputs[0]})
	require.Nil(t, err)
	require.Equal(t, inputs, expanded)
	_, err = ExpandInputs([]string{filepath.Join(dir, "*.parquet")})
	require.NotNil(t, err)
}

func TestFormatOf(t *testing.T) {
	cfg := testConfig(t)
	format, err := FormatOf(cfg, "x.NDJSON")
	require.Nil(t, err)
	require.Equal(t, FormatJSONL, format)
	_, err = FormatOf(cfg, "x.parquet")
	require.NotNil(t, err)
	cfg.Input.Format = FormatCSV
	format, err = FormatOf(cfg, "x.parquet")
	require.Nil(t, err)
	require.Equal(t, FormatCSV, format)
}
