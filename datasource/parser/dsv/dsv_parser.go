package dsv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/datasource"
	"github.com/thomascamminady/piper/schema"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	HeaderLines int    // The number of lines to ignore from the beginning of each file. Defaults to 0, or to 1 when inferring a Schema.
	Delimiter   rune   // The delimiter separating columns in the file. Defaults to ,
	Comment     rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue    string // A special string which represents nil values in the dataset. Defaults to "" (the empty string).
	InferSchema bool   // When no Schema is supplied, name columns after the last header line and treat every column as a VarStringColumnType
}

// Parser produces DataFrames from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	if conf.InferSchema && conf.HeaderLines == 0 {
		conf.HeaderLines = 1
	}
	return &Parser{conf: conf}
}

// Parse parses DSV data to produce a DataFrame. If schema is nil, the Parser must be configured to infer one.
func (p *Parser) Parse(r io.Reader, schema piper.Schema) (piper.DataFrame, error) {
	// start parsing by creating a reader
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.ReuseRecord = true
	if schema != nil {
		reader.FieldsPerRecord = schema.NumColumns()
	}

	// ignore header lines, if configured to do so
	var header []string
	for i := 0; i < p.conf.HeaderLines; i++ {
		record, err := reader.Read()
		if err == io.EOF && schema == nil {
			return nil, fmt.Errorf("Cannot infer Schema from DSV data without a header")
		} else if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		header = append(header[:0], record...)
	}
	if schema == nil {
		if !p.conf.InferSchema {
			return nil, fmt.Errorf("DSV Parser requires a Schema unless InferSchema is set")
		}
		inferred, err := inferSchema(header)
		if err != nil {
			return nil, err
		}
		schema = inferred
		reader.FieldsPerRecord = schema.NumColumns()
	}

	df, err := datasource.CreateBuildableDataFrame(schema)
	if err != nil {
		return nil, err
	}
	colNames := schema.ColumnNames()
	colTypes := schema.ColumnTypes()
	for {
		rowStrings, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		// create a new row to place values into
		row, err := df.AppendEmptyRow()
		if err != nil {
			return nil, err
		}
		err = scanRow(p.conf, colNames, colTypes, rowStrings, row)
		if err != nil {
			return nil, err
		}
	}
	return df.Build()
}

// inferSchema produces a Schema of VarStringColumnTypes from a header line
func inferSchema(header []string) (piper.Schema, error) {
	colTypes := make([]piper.ColumnType, len(header))
	for i := range colTypes {
		colTypes[i] = &piper.VarStringColumnType{}
	}
	return schema.CreateSchemaFrom(header, colTypes)
}
