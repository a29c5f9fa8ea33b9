package frame

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/errors"
	"github.com/thomascamminady/piper/schema"
)

// MapRows runs a MapOperation on each row of a copy of this DataFrame. Errors from
// every row are collected, and if any occur no DataFrame is produced.
func (f *frameImpl) MapRows(fn piper.MapOperation) (piper.DataFrame, error) {
	cols := make([]*series, len(f.series))
	for i, s := range f.series {
		cols[i] = s.clone()
	}
	result := createFrameImpl(f.schema, cols, f.numRows)
	var multierr *multierror.Error
	row := &rowImpl{schema: result.schema, series: result.series}
	for i := 0; i < result.numRows; i++ {
		row.rowNum = i
		if err := fn(row); err != nil {
			multierr = multierror.Append(multierr, err)
		}
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return result, nil
}

// FilterRows produces a new DataFrame containing the rows for which fn returns true, in their original order
func (f *frameImpl) FilterRows(fn piper.FilterOperation) (piper.DataFrame, error) {
	var multierr *multierror.Error
	keep := make([]int, 0, f.numRows)
	err := f.ForEachRow(func(row piper.Row) error {
		shouldKeep, err := fn(row)
		if err != nil {
			multierr = multierror.Append(multierr, err)
		} else if shouldKeep {
			keep = append(keep, row.(*rowImpl).rowNum)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	// nothing was filtered, so the (immutable) columns can be shared
	if len(keep) == f.numRows {
		return createFrameImpl(f.schema, f.series, f.numRows), nil
	}
	cols := make([]*series, len(f.series))
	for i, s := range f.series {
		cols[i] = s.take(keep)
	}
	return createFrameImpl(f.schema, cols, len(keep)), nil
}

// SelectColumns produces a new DataFrame containing only the given columns, in the given order
func (f *frameImpl) SelectColumns(colNames ...string) (piper.DataFrame, error) {
	newSchema := schema.CreateSchema()
	cols := make([]*series, 0, len(colNames))
	for _, name := range colNames {
		col, err := f.schema.GetColumn(name)
		if err != nil {
			return nil, err
		}
		newSchema, err = newSchema.CreateColumn(name, col.Type())
		if err != nil {
			return nil, err
		}
		cols = append(cols, f.series[col.Index()])
	}
	return createFrameImpl(newSchema, cols, f.numRows), nil
}

// RemoveColumns produces a new DataFrame without the given columns
func (f *frameImpl) RemoveColumns(colNames ...string) (piper.DataFrame, error) {
	toRemove := make(map[string]bool, len(colNames))
	for _, name := range colNames {
		if !f.schema.HasColumn(name) {
			return nil, errors.MissingColumnError{Name: name}
		}
		toRemove[name] = true
	}
	remaining := make([]string, 0, f.schema.NumColumns())
	for _, name := range f.schema.ColumnNames() {
		if !toRemove[name] {
			remaining = append(remaining, name)
		}
	}
	return f.SelectColumns(remaining...)
}

// RenameColumn produces a new DataFrame in which a column has been renamed
func (f *frameImpl) RenameColumn(oldName string, newName string) (piper.DataFrame, error) {
	newSchema, err := f.schema.RenameColumn(oldName, newName)
	if err != nil {
		return nil, err
	}
	return createFrameImpl(newSchema, f.series, f.numRows), nil
}

// WithColumn produces a new DataFrame in which a column has been added (at the end) or replaced (in place).
// Each value is computed from a read-only view of the corresponding row of this DataFrame.
func (f *frameImpl) WithColumn(colName string, colType piper.ColumnType, fn piper.ColumnOperation) (piper.DataFrame, error) {
	if colType == nil {
		return nil, fmt.Errorf("Column %s must have a type", colName)
	}
	s := createSeries(f.numRows)
	var multierr *multierror.Error
	err := f.ForEachRow(func(row piper.Row) error {
		rowNum := row.(*rowImpl).rowNum
		v, err := fn(row)
		if err != nil {
			multierr = multierror.Append(multierr, err)
			return nil
		}
		if v == nil {
			return nil
		}
		coerced, err := Coerce(colName, colType, v)
		if err != nil {
			multierr = multierror.Append(multierr, err)
			return nil
		}
		s.set(rowNum, copyValue(coerced))
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}

	cols := make([]*series, len(f.series), len(f.series)+1)
	copy(cols, f.series)
	var newSchema piper.Schema
	if col, err := f.schema.GetColumn(colName); err == nil {
		newSchema, err = f.schema.ReplaceColumnType(colName, colType)
		if err != nil {
			return nil, err
		}
		cols[col.Index()] = s
	} else {
		newSchema, err = f.schema.CreateColumn(colName, colType)
		if err != nil {
			return nil, err
		}
		cols = append(cols, s)
	}
	return createFrameImpl(newSchema, cols, f.numRows), nil
}
