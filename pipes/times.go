package pipes

import (
	"time"

	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/errors"
	"github.com/thomascamminady/piper/logging"
	"github.com/thomascamminady/piper/operations/transform"
	"go.uber.org/zap"
)

// DefaultTimeColumns are the columns converted by ConvertTimesToDatetime when none are named
var DefaultTimeColumns = []string{"timestamp", "start_time", "created_at", "updated_at"}

// datetimeLayouts are the layouts attempted by TryToDatetime, in order.
// Fractional seconds are accepted after the seconds field of any layout.
var datetimeLayouts = []string{
	"January 2, 2006, 3:04 PM",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
}

// inferableLayouts are the layouts ConvertTimesToDatetime may infer from a column's first value
var inferableLayouts = append(append([]string{}, datetimeLayouts...),
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
)

// ConvertTimesToDatetime produces a Pipe which parses string columns into datetime columns. The layout of
// each column is inferred from its first non-nil value. Columns which are absent are ignored, and columns
// which are already datetimes are left untouched. With no arguments, DefaultTimeColumns are converted.
func ConvertTimesToDatetime(cols ...string) piper.Pipe {
	if len(cols) == 0 {
		cols = DefaultTimeColumns
	}
	return func(df piper.DataFrame) (piper.DataFrame, error) {
		if err := transform.CheckDataFrame(df); err != nil {
			return nil, err
		}
		schema := df.GetSchema()
		var converted []string
		var casts []piper.Pipe
		for _, name := range cols {
			col, err := schema.GetColumn(name)
			if err != nil {
				continue
			}
			switch col.Type().(type) {
			case *piper.TimeColumnType:
				continue
			case *piper.VarStringColumnType:
			default:
				return nil, errors.ColumnTypeError{Name: name, Type: col.Type().Name(), Operation: "datetime conversion"}
			}
			layout, err := inferLayout(df, name)
			if err != nil {
				return nil, err
			}
			converted = append(converted, name)
			casts = append(casts, transform.CastColumn(name, &piper.TimeColumnType{Format: layout}, parseTimeWith(name, layout)))
		}
		if len(converted) > 0 {
			logging.Logger().Info("converting columns to datetime", zap.Strings("columns", converted))
		}
		return piper.Apply(df, casts...)
	}
}

// TryToDatetime attempts to parse a string column into a datetime column, using each of a fixed set of
// layouts in turn. It succeeds iff the column holds at least one non-nil value and every non-nil value
// parses with the same layout. Otherwise, the DataFrame is returned unchanged along with false.
func TryToDatetime(df piper.DataFrame, colName string) (piper.DataFrame, bool, error) {
	if err := requireVarString(df, colName, "datetime conversion"); err != nil {
		return nil, false, err
	}
	if !hasValues(df, colName) {
		return df, false, nil
	}
	for _, layout := range datetimeLayouts {
		result, ok, err := transform.TryCastColumn(df, colName, &piper.TimeColumnType{Format: layout}, parseTimeWith(colName, layout))
		if err != nil {
			return nil, false, err
		}
		if ok {
			return result, true, nil
		}
	}
	return df, false, nil
}

// inferLayout finds a layout which parses the first non-nil value of a column. Columns without
// values are given the RFC3339 layout.
func inferLayout(df piper.DataFrame, colName string) (string, error) {
	values, err := df.GetColumnValues(colName)
	if err != nil {
		return "", err
	}
	for _, v := range values {
		if v == nil {
			continue
		}
		s := v.(string)
		for _, layout := range inferableLayouts {
			if _, err := time.Parse(layout, s); err == nil {
				return layout, nil
			}
		}
		return "", errors.ConversionError{Name: colName, Value: s, Target: "datetime"}
	}
	return time.RFC3339Nano, nil
}

func parseTimeWith(colName string, layout string) transform.CastFunction {
	return func(v interface{}) (interface{}, error) {
		s := v.(string)
		t, err := time.Parse(layout, s)
		if err != nil {
			return nil, errors.ConversionError{Name: colName, Value: s, Target: "datetime"}
		}
		return t, nil
	}
}
