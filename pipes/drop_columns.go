package pipes

import (
	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/logging"
	"github.com/thomascamminady/piper/operations/transform"
	"go.uber.org/zap"
)

// DropColumnsThatAreAllNull removes every column in which all cells are nil. A DataFrame
// without rows keeps all of its columns.
func DropColumnsThatAreAllNull(df piper.DataFrame) (piper.DataFrame, error) {
	if err := transform.CheckDataFrame(df); err != nil {
		return nil, err
	}
	var toDrop []string
	if df.NumRows() > 0 {
		for _, name := range df.GetSchema().ColumnNames() {
			nulls, err := df.NullCount(name)
			if err != nil {
				return nil, err
			}
			if nulls == df.NumRows() {
				toDrop = append(toDrop, name)
			}
		}
	}
	if len(toDrop) > 0 {
		logging.Logger().Debug("dropping columns that are all null", zap.Strings("columns", toDrop))
	}
	return transform.RemoveColumn(toDrop...)(df)
}
