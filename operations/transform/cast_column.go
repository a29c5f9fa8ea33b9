package transform

import (
	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/errors"
	iutil "github.com/thomascamminady/piper/internal/util"
)

// CastFunction converts a single non-nil value of a column into a value of the target type
type CastFunction func(v interface{}) (interface{}, error)

// CastColumn produces a Pipe which converts every non-nil value of an existing column with fn,
// storing the results as a column of type colType in the same position. Nil cells remain nil.
func CastColumn(colName string, colType piper.ColumnType, fn CastFunction) piper.Pipe {
	return func(df piper.DataFrame) (piper.DataFrame, error) {
		if err := CheckDataFrame(df); err != nil {
			return nil, err
		}
		if !df.GetSchema().HasColumn(colName) {
			return nil, errors.MissingColumnError{Name: colName}
		}
		return df.WithColumn(colName, colType, castOperation(colName, fn))
	}
}

// TryCastColumn behaves like CastColumn, except that a failing conversion leaves the DataFrame
// unchanged and reports false instead of an error. Structural problems are still returned as errors.
func TryCastColumn(df piper.DataFrame, colName string, colType piper.ColumnType, fn CastFunction) (piper.DataFrame, bool, error) {
	if err := CheckDataFrame(df); err != nil {
		return nil, false, err
	}
	if !df.GetSchema().HasColumn(colName) {
		return nil, false, errors.MissingColumnError{Name: colName}
	}
	result, err := df.WithColumn(colName, colType, castOperation(colName, fn))
	if err != nil {
		return df, false, nil
	}
	return result, true, nil
}

func castOperation(colName string, fn CastFunction) piper.ColumnOperation {
	return iutil.SafeColumnOperation(colName, func(row piper.Row) (interface{}, error) {
		if row.IsNil(colName) {
			return nil, nil
		}
		v, err := row.Get(colName)
		if err != nil {
			return nil, err
		}
		return fn(v)
	})
}
