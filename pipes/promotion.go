package pipes

import (
	"strconv"
	"strings"

	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/errors"
	"github.com/thomascamminady/piper/logging"
	"github.com/thomascamminady/piper/operations/transform"
	"go.uber.org/zap"
)

// TryToNumeric attempts to parse a string column into an int64 or float64 column, after removing
// "," thousands separators. It succeeds iff the column holds at least one non-nil value and every
// non-nil value parses. Otherwise, the DataFrame is returned unchanged along with false.
func TryToNumeric(df piper.DataFrame, colName string, colType piper.ColumnType) (piper.DataFrame, bool, error) {
	if err := requireVarString(df, colName, "numeric conversion"); err != nil {
		return nil, false, err
	}
	var parse transform.CastFunction
	switch colType.(type) {
	case *piper.Int64ColumnType:
		parse = func(v interface{}) (interface{}, error) {
			return strconv.ParseInt(strings.ReplaceAll(v.(string), ",", ""), 10, 64)
		}
	case *piper.Float64ColumnType:
		parse = func(v interface{}) (interface{}, error) {
			return strconv.ParseFloat(strings.ReplaceAll(v.(string), ",", ""), 64)
		}
	default:
		typeName := "nil"
		if colType != nil {
			typeName = colType.Name()
		}
		return nil, false, errors.ColumnTypeError{Name: colName, Type: typeName, Operation: "use as a numeric conversion target"}
	}
	if !hasValues(df, colName) {
		return df, false, nil
	}
	return transform.TryCastColumn(df, colName, colType, parse)
}

// Utf8Promotion attempts to convert every string column into a more specific type,
// trying datetime, then int64, then float64. Columns which fit none remain strings.
func Utf8Promotion(df piper.DataFrame) (piper.DataFrame, error) {
	if err := transform.CheckDataFrame(df); err != nil {
		return nil, err
	}
	result := df
	schema := df.GetSchema()
	for _, name := range schema.ColumnNames() {
		col, err := schema.GetColumn(name)
		if err != nil {
			return nil, err
		}
		if _, ok := col.Type().(*piper.VarStringColumnType); !ok {
			continue
		}
		next, ok, err := TryToDatetime(result, name)
		if err != nil {
			return nil, err
		}
		if !ok {
			next, ok, err = TryToNumeric(result, name, &piper.Int64ColumnType{})
			if err != nil {
				return nil, err
			}
		}
		if !ok {
			next, ok, err = TryToNumeric(result, name, &piper.Float64ColumnType{})
			if err != nil {
				return nil, err
			}
		}
		if ok {
			newCol, err := next.GetSchema().GetColumn(name)
			if err != nil {
				return nil, err
			}
			logging.Logger().Debug("promoted string column", zap.String("column", name), zap.String("type", newCol.Type().Name()))
		}
		result = next
	}
	return result, nil
}

// TryConvertDtypesToFloatIfPossible converts every column which can be losslessly cast to float64:
// numeric columns, bool columns (as 1 and 0) and string columns in which every value parses as a
// number. Other columns are left as they are.
func TryConvertDtypesToFloatIfPossible(df piper.DataFrame) (piper.DataFrame, error) {
	if err := transform.CheckDataFrame(df); err != nil {
		return nil, err
	}
	result := df
	schema := df.GetSchema()
	for _, name := range schema.ColumnNames() {
		col, err := schema.GetColumn(name)
		if err != nil {
			return nil, err
		}
		var cast transform.CastFunction
		switch col.Type().(type) {
		case *piper.Float64ColumnType:
			continue
		case *piper.Int32ColumnType, *piper.Int64ColumnType, *piper.Float32ColumnType:
			cast = func(v interface{}) (interface{}, error) {
				f, _ := toFloat64(v)
				return f, nil
			}
		case *piper.BoolColumnType:
			cast = func(v interface{}) (interface{}, error) {
				if v.(bool) {
					return 1.0, nil
				}
				return 0.0, nil
			}
		case *piper.VarStringColumnType:
			cast = func(v interface{}) (interface{}, error) {
				return strconv.ParseFloat(v.(string), 64)
			}
		default:
			continue
		}
		next, _, err := transform.TryCastColumn(result, name, &piper.Float64ColumnType{}, cast)
		if err != nil {
			return nil, err
		}
		result = next
	}
	return result, nil
}

// requireVarString checks that df is well-formed and that colName names a string column
func requireVarString(df piper.DataFrame, colName string, operation string) error {
	if err := transform.CheckDataFrame(df); err != nil {
		return err
	}
	col, err := df.GetSchema().GetColumn(colName)
	if err != nil {
		return err
	}
	if _, ok := col.Type().(*piper.VarStringColumnType); !ok {
		return errors.ColumnTypeError{Name: colName, Type: col.Type().Name(), Operation: operation}
	}
	return nil
}

// hasValues returns true iff the column holds at least one non-nil value
func hasValues(df piper.DataFrame, colName string) bool {
	nulls, err := df.NullCount(colName)
	return err == nil && nulls < df.NumRows()
}
