package runner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/datasource/parser/dsv"
	"github.com/thomascamminady/piper/datasource/parser/jsonl"
	"github.com/thomascamminady/piper/datasource/snapshot"
	"github.com/thomascamminady/piper/internal/config"
)

// Supported data formats
const (
	FormatCSV      = "csv"
	FormatJSONL    = "jsonl"
	FormatSnapshot = "snapshot"
)

var extensions = map[string]string{
	".csv":    FormatCSV,
	".tsv":    FormatCSV,
	".txt":    FormatCSV,
	".jsonl":  FormatJSONL,
	".ndjson": FormatJSONL,
	".json":   FormatJSONL,
	".snap":   FormatSnapshot,
}

var formatExtensions = map[string]string{
	FormatCSV:      ".csv",
	FormatJSONL:    ".jsonl",
	FormatSnapshot: ".snap",
}

// FormatOf determines the format of an input, preferring the configured one over the file extension
func FormatOf(cfg *config.Config, path string) (string, error) {
	if cfg.Input.Format != "" {
		return cfg.Input.Format, nil
	}
	format, ok := extensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("cannot determine the format of %s, set input.format", path)
	}
	return format, nil
}

// parserFor creates a new parser for a format. Parsers are not shared between goroutines.
func parserFor(cfg *config.Config, format string) (piper.DataSourceParser, error) {
	switch format {
	case FormatCSV:
		return dsv.CreateParser(&dsv.ParserConf{
			HeaderLines: cfg.Input.HeaderLines,
			Delimiter:   cfg.InputDelimiter(),
			NilValue:    cfg.Input.NilValue,
			InferSchema: true,
		}), nil
	case FormatJSONL:
		return jsonl.CreateParser(&jsonl.ParserConf{InferSchema: true}), nil
	case FormatSnapshot:
		return snapshot.CreateSerializer(), nil
	default:
		return nil, fmt.Errorf("unsupported input format %s", format)
	}
}

// writerFor creates a new writer for a format
func writerFor(cfg *config.Config, format string) (piper.DataFrameWriter, error) {
	switch format {
	case FormatCSV:
		return dsv.CreateParser(&dsv.ParserConf{
			Delimiter: cfg.OutputDelimiter(),
			NilValue:  cfg.Input.NilValue,
		}), nil
	case FormatJSONL:
		return jsonl.CreateParser(&jsonl.ParserConf{}), nil
	case FormatSnapshot:
		return snapshot.CreateSerializer(), nil
	default:
		return nil, fmt.Errorf("unsupported output format %s", format)
	}
}

// outputPath places an output in the configured directory, or next to its input with a ".piped" suffix
func outputPath(cfg *config.Config, input string, format string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if cfg.Output.Dir != "" {
		return filepath.Join(cfg.Output.Dir, stem+formatExtensions[format])
	}
	return filepath.Join(filepath.Dir(input), stem+".piped"+formatExtensions[format])
}
