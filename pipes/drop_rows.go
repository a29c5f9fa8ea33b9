package pipes

import (
	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/operations/transform"
)

// DropRowsThatAreAllNull removes every row in which all cells are nil. The columns and the
// relative order of the remaining rows are unchanged. A DataFrame without columns has no
// cell which could be non-nil, so none of its rows are considered all-null and all are kept.
func DropRowsThatAreAllNull(df piper.DataFrame) (piper.DataFrame, error) {
	if err := transform.CheckDataFrame(df); err != nil {
		return nil, err
	}
	names := df.GetSchema().ColumnNames()
	return transform.Filter(func(row piper.Row) (bool, error) {
		if len(names) == 0 {
			return true, nil
		}
		for _, name := range names {
			if !row.IsNil(name) {
				return true, nil
			}
		}
		return false, nil
	})(df)
}
