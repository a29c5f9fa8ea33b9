package frame

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/errors"
)

// frameImpl is piper's internal implementation of DataFrame.
// It stores one series per column, in Schema index order,
// and tracks its row count separately so that DataFrames
// without columns still have a meaningful number of rows.
type frameImpl struct {
	schema  piper.Schema
	series  []*series
	numRows int
}

// createFrameImpl assembles a frame from existing parts, without validation
func createFrameImpl(schema piper.Schema, cols []*series, numRows int) *frameImpl {
	return &frameImpl{
		schema:  schema,
		series:  cols,
		numRows: numRows,
	}
}

// CreateDataFrame creates a new DataFrame from a Schema and one slice of values per column.
// Nil values produce nil cells. Columns must have equal lengths, and numRows must match them.
// numRows is required so that DataFrames without columns can still have rows.
func CreateDataFrame(schema piper.Schema, columns [][]interface{}, numRows int) (piper.DataFrame, error) {
	if schema == nil {
		return nil, errors.InvalidInputError{Reason: "Schema is nil"}
	}
	if len(columns) != schema.NumColumns() {
		return nil, errors.InvalidInputError{Reason: fmt.Sprintf("Schema has %d columns but %d were supplied", schema.NumColumns(), len(columns))}
	}
	if numRows < 0 {
		return nil, errors.InvalidInputError{Reason: fmt.Sprintf("Row count %d is negative", numRows)}
	}
	names := schema.ColumnNames()
	colTypes := schema.ColumnTypes()
	cols := make([]*series, len(columns))
	var multierr *multierror.Error
	for i, values := range columns {
		if len(values) != numRows {
			multierr = multierror.Append(multierr, fmt.Errorf("Column %s has %d values, expected %d", names[i], len(values), numRows))
			continue
		}
		s := createSeries(numRows)
		for rowNum, v := range values {
			if v == nil {
				continue
			}
			coerced, err := Coerce(names[i], colTypes[i], v)
			if err != nil {
				multierr = multierror.Append(multierr, err)
				break
			}
			s.set(rowNum, copyValue(coerced))
		}
		cols[i] = s
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, errors.InvalidInputError{Reason: err.Error()}
	}
	return createFrameImpl(schema.Clone(), cols, numRows), nil
}

// GetSchema returns a read-only copy of the Schema of this DataFrame
func (f *frameImpl) GetSchema() piper.Schema {
	return f.schema.Clone()
}

// NumRows returns the number of rows in this DataFrame
func (f *frameImpl) NumRows() int {
	return f.numRows
}

// NumColumns returns the number of columns in this DataFrame
func (f *frameImpl) NumColumns() int {
	return len(f.series)
}

// GetRow returns a read-only view of a single row
func (f *frameImpl) GetRow(rowNum int) piper.Row {
	return &rowImpl{
		schema:   f.schema,
		series:   f.series,
		rowNum:   rowNum,
		readOnly: true,
	}
}

// ForEachRow iterates over the rows of this DataFrame, in order, stopping at the first error
func (f *frameImpl) ForEachRow(fn func(row piper.Row) error) error {
	row := &rowImpl{schema: f.schema, series: f.series, readOnly: true}
	for i := 0; i < f.numRows; i++ {
		row.rowNum = i
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}

// NullCount returns the number of nil cells in the given column
func (f *frameImpl) NullCount(colName string) (int, error) {
	col, err := f.schema.GetColumn(colName)
	if err != nil {
		return 0, err
	}
	return f.series[col.Index()].nullCount(), nil
}

// GetColumnValues returns a copy of a column, with nil cells represented by nil
func (f *frameImpl) GetColumnValues(colName string) ([]interface{}, error) {
	col, err := f.schema.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	s := f.series[col.Index()]
	values := make([]interface{}, f.numRows)
	for i := range values {
		values[i] = copyValue(s.get(i))
	}
	return values, nil
}

// Pipe applies a chain of Pipes to this DataFrame
func (f *frameImpl) Pipe(pipes ...piper.Pipe) (piper.DataFrame, error) {
	return piper.Apply(f, pipes...)
}

// Validate checks that this DataFrame is well-formed: one series per column, each with one
// cell per row, holding values of the Go type matching the column type.
func (f *frameImpl) Validate() error {
	if f.schema == nil {
		return errors.InvalidInputError{Reason: "Schema is nil"}
	}
	if len(f.series) != f.schema.NumColumns() {
		return errors.InvalidInputError{Reason: fmt.Sprintf("Schema has %d columns but DataFrame has %d", f.schema.NumColumns(), len(f.series))}
	}
	var multierr *multierror.Error
	f.schema.ForEachColumn(func(name string, col piper.Column) error {
		s := f.series[col.Index()]
		if s.len() != f.numRows || len(s.meta) != f.numRows {
			multierr = multierror.Append(multierr, fmt.Errorf("Column %s has %d cells, expected %d", name, s.len(), f.numRows))
			return nil
		}
		for i := 0; i < f.numRows; i++ {
			if v := s.get(i); v != nil && !matchesType(col.Type(), v) {
				multierr = multierror.Append(multierr, fmt.Errorf("Column %s of type %s contains a %T in row %d", name, col.Type().Name(), v, i))
				return nil
			}
		}
		return nil
	})
	if err := multierr.ErrorOrNil(); err != nil {
		return errors.InvalidInputError{Reason: err.Error()}
	}
	return nil
}

// ToString returns a string representation of this DataFrame: its Schema, followed by one row per line
func (f *frameImpl) ToString() string {
	var res strings.Builder
	fmt.Fprintf(&res, "shape: (%d, %d)\n", f.numRows, len(f.series))
	fmt.Fprintln(&res, f.schema.ToString())
	f.ForEachRow(func(row piper.Row) error {
		fmt.Fprintln(&res, row.ToString())
		return nil
	})
	return res.String()
}
