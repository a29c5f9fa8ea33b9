package transform

import (
	"github.com/thomascamminady/piper"
	iutil "github.com/thomascamminady/piper/internal/util"
)

// AddColumn produces a Pipe which declares a new column, in which every cell is nil
func AddColumn(colName string, colType piper.ColumnType) piper.Pipe {
	return func(df piper.DataFrame) (piper.DataFrame, error) {
		if err := CheckDataFrame(df); err != nil {
			return nil, err
		}
		if df.GetSchema().HasColumn(colName) {
			_, err := df.GetSchema().CreateColumn(colName, colType)
			return nil, err
		}
		return df.WithColumn(colName, colType, func(row piper.Row) (interface{}, error) {
			return nil, nil
		})
	}
}

// WithColumn produces a Pipe which adds or replaces a column, computing each value with fn
func WithColumn(colName string, colType piper.ColumnType, fn piper.ColumnOperation) piper.Pipe {
	safeFn := iutil.SafeColumnOperation(colName, fn)
	return func(df piper.DataFrame) (piper.DataFrame, error) {
		if err := CheckDataFrame(df); err != nil {
			return nil, err
		}
		return df.WithColumn(colName, colType, safeFn)
	}
}
