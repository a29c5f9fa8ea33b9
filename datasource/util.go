package datasource

import (
	"fmt"

	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/errors"
	"github.com/thomascamminady/piper/internal/frame"
)

// CreateBuildableDataFrame produces an empty DataFrame which can be populated row by row (useful for the implementation of parsers)
func CreateBuildableDataFrame(schema piper.Schema) (piper.BuildableDataFrame, error) {
	return frame.CreateBuildableDataFrame(schema)
}

// CreateDataFrameFromColumns produces a DataFrame from one slice of values per column, in Schema order.
// Nil values produce nil cells. numRows must match the length of every column, and determines the
// number of rows when there are no columns.
func CreateDataFrameFromColumns(schema piper.Schema, columns [][]interface{}, numRows int) (piper.DataFrame, error) {
	return frame.CreateDataFrame(schema, columns, numRows)
}

// CreateDataFrameFromRows produces a DataFrame from one slice of values per row, in Schema order.
// Nil values produce nil cells.
func CreateDataFrameFromRows(schema piper.Schema, rows [][]interface{}) (piper.DataFrame, error) {
	if schema == nil {
		return nil, errors.InvalidInputError{Reason: "Schema is nil"}
	}
	columns := make([][]interface{}, schema.NumColumns())
	for i := range columns {
		columns[i] = make([]interface{}, len(rows))
	}
	for rowNum, row := range rows {
		if len(row) != schema.NumColumns() {
			return nil, errors.InvalidInputError{Reason: fmt.Sprintf("Row %d has %d values, expected %d", rowNum, len(row), schema.NumColumns())}
		}
		for i, v := range row {
			columns[i][rowNum] = v
		}
	}
	return frame.CreateDataFrame(schema, columns, len(rows))
}

// Concat stacks DataFrames with equal Schemas vertically, in order
func Concat(dfs ...piper.DataFrame) (piper.DataFrame, error) {
	return frame.Concat(dfs...)
}

// Load parses every chunk of a DataSource and concatenates the results, in order. When the DataSource
// has no Schema, the Schema inferred from the first chunk is reused for the remaining chunks.
func Load(source piper.DataSource, parser piper.DataSourceParser) (piper.DataFrame, error) {
	cm, err := source.Analyze()
	if err != nil {
		return nil, err
	}
	schema := source.GetSchema()
	var dfs []piper.DataFrame
	for cm.HasNext() {
		loader := cm.Next()
		df, err := loader.Load(parser, schema)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", loader.Name(), err)
		}
		if schema == nil {
			schema = df.GetSchema()
		}
		dfs = append(dfs, df)
	}
	if len(dfs) == 0 {
		return nil, errors.InvalidInputError{Reason: "DataSource produced no data"}
	}
	return Concat(dfs...)
}
