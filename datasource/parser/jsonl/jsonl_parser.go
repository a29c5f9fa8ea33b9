package jsonl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/datasource"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	HeaderLines   int  // The number of lines to ignore from the beginning of each file. Defaults to 0.
	MaxBufferSize int  // Maximum size in bytes of the buffer used to read lines from the file
	InferSchema   bool // When no Schema is supplied, derive one from the top-level keys of every record
}

// Parser produces DataFrames from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. Columns are parsed from each row of JSON using their column name, which should be a gjson path. Values within the JSON which do not correspond to a Schema column are ignored.
func CreateParser(conf *ParserConf) *Parser {
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data to produce a DataFrame. If schema is nil, the Parser must be configured to infer one.
func (p *Parser) Parse(r io.Reader, schema piper.Schema) (piper.DataFrame, error) {
	// start parsing by creating a scanner
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		scanner.Scan()
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}
	var records []gjson.Result
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if !gjson.Valid(line) {
			return nil, fmt.Errorf("Unable to parse line %d as JSON:\n\t%s", len(records)+p.conf.HeaderLines+1, line)
		}
		records = append(records, gjson.Parse(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if schema == nil {
		if !p.conf.InferSchema {
			return nil, fmt.Errorf("JSONL Parser requires a Schema unless InferSchema is set")
		}
		inferred, err := inferSchema(records)
		if err != nil {
			return nil, err
		}
		schema = inferred
	}

	df, err := datasource.CreateBuildableDataFrame(schema)
	if err != nil {
		return nil, err
	}
	colNames := schema.ColumnNames()
	colTypes := schema.ColumnTypes()
	for _, record := range records {
		row, err := df.AppendEmptyRow()
		if err != nil {
			return nil, err
		}
		if err = ParseJSONRow(colNames, colTypes, record, row); err != nil {
			return nil, err
		}
	}
	return df.Build()
}
