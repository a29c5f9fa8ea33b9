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

// DefaultZoneColumns are the columns converted by CastTimeInZoneStringToListOfFloat when none are named
var DefaultZoneColumns = []string{"time_in_hr_zone_sec", "time_in_pwr_zone_sec"}

// CastTimeInZoneStringToListOfFloat produces a Pipe which splits "|"-separated strings, such as
// "10.5|20|30", into lists of float64 values. Columns which are absent are ignored, and columns which
// already hold lists are left untouched. With no arguments, DefaultZoneColumns are converted.
func CastTimeInZoneStringToListOfFloat(cols ...string) piper.Pipe {
	if len(cols) == 0 {
		cols = DefaultZoneColumns
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
			case *piper.VarFloat64ListColumnType:
				continue
			case *piper.VarStringColumnType:
			default:
				return nil, errors.ColumnTypeError{Name: name, Type: col.Type().Name(), Operation: "list conversion"}
			}
			converted = append(converted, name)
			casts = append(casts, transform.CastColumn(name, &piper.VarFloat64ListColumnType{}, splitFloats(name)))
		}
		if len(converted) > 0 {
			logging.Logger().Info("converting zone strings to lists", zap.Strings("columns", converted))
		}
		return piper.Apply(df, casts...)
	}
}

func splitFloats(colName string) transform.CastFunction {
	return func(v interface{}) (interface{}, error) {
		s := v.(string)
		if len(s) == 0 {
			return []float64{}, nil
		}
		parts := strings.Split(s, "|")
		list := make([]float64, len(parts))
		for i, part := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return nil, errors.ConversionError{Name: colName, Value: s, Target: "list[float64]"}
			}
			list[i] = f
		}
		return list, nil
	}
}
