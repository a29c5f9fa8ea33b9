package util

import (
	"fmt"

	"github.com/thomascamminady/piper"
)

// SafeMapOperation wraps a MapOperation such that panics are recovered and nice error messages are constructed
func SafeMapOperation(mapOp piper.MapOperation) (safeMapOp piper.MapOperation) {
	return func(row piper.Row) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Map Panic: %w\nRow: %s\n%s", anErr, row.ToString(), GetTrace())
				} else {
					err = fmt.Errorf("Map Panic: %v\nRow: %s\n%s", r, row.ToString(), GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Map Error: %w\nRow: %s", err, row.ToString())
			}
		}()
		err = mapOp(row)
		return
	}
}

// SafeFilterOperation wraps a FilterOperation such that panics are recovered and nice error messages are constructed
func SafeFilterOperation(filterOp piper.FilterOperation) (safeFilterOp piper.FilterOperation) {
	return func(row piper.Row) (shouldKeep bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				shouldKeep = false
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Filter Panic: %w\nRow: %s\n%s", anErr, row.ToString(), GetTrace())
				} else {
					err = fmt.Errorf("Filter Panic: %v\nRow: %s\n%s", r, row.ToString(), GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Filter Error: %w\nRow: %s", err, row.ToString())
			}
		}()
		shouldKeep, err = filterOp(row)
		return
	}
}

// SafeColumnOperation wraps a ColumnOperation such that panics are recovered and nice error messages are constructed
func SafeColumnOperation(colName string, columnOp piper.ColumnOperation) (safeColumnOp piper.ColumnOperation) {
	return func(row piper.Row) (value interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				value = nil
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Column %s Panic: %w\nRow: %s\n%s", colName, anErr, row.ToString(), GetTrace())
				} else {
					err = fmt.Errorf("Column %s Panic: %v\nRow: %s\n%s", colName, r, row.ToString(), GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Column %s Error: %w\nRow: %s", colName, err, row.ToString())
			}
		}()
		value, err = columnOp(row)
		return
	}
}
