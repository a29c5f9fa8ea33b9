package pipes

import (
	"math"
	"strings"

	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/errors"
	"github.com/thomascamminady/piper/logging"
	"github.com/thomascamminady/piper/operations/transform"
	"go.uber.org/zap"
)

const semicirclesPerHalfTurn = 1 << 31

// SemicircleToDegrees converts every column whose name contains "_lat" or "_lon" from semicircles
// to degrees, as v * 180 / 2^31, producing float64 columns. Matching columns must be numeric,
// unless they contain only nil values.
func SemicircleToDegrees(df piper.DataFrame) (piper.DataFrame, error) {
	if err := transform.CheckDataFrame(df); err != nil {
		return nil, err
	}
	var cols []string
	var casts []piper.Pipe
	err := df.GetSchema().ForEachColumn(func(name string, col piper.Column) error {
		if !strings.Contains(name, "_lat") && !strings.Contains(name, "_lon") {
			return nil
		}
		if !piper.IsNumeric(col.Type()) {
			nulls, err := df.NullCount(name)
			if err != nil {
				return err
			}
			if nulls < df.NumRows() {
				return errors.ColumnTypeError{Name: name, Type: col.Type().Name(), Operation: "semicircle to degree conversion"}
			}
		}
		cols = append(cols, name)
		casts = append(casts, transform.CastColumn(name, &piper.Float64ColumnType{}, func(v interface{}) (interface{}, error) {
			f, ok := toFloat64(v)
			if !ok {
				return nil, errors.ColumnTypeError{Name: name, Type: col.Type().Name(), Operation: "semicircle to degree conversion"}
			}
			return f * 180 / semicirclesPerHalfTurn, nil
		}))
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(cols) > 0 {
		logging.Logger().Info("converting semicircles to degrees", zap.Strings("columns", cols))
	}
	return piper.Apply(df, casts...)
}

// toFloat64 widens any numeric value to a float64
func toFloat64(v interface{}) (float64, bool) {
	switch tv := v.(type) {
	case int32:
		return float64(tv), true
	case int64:
		return float64(tv), true
	case float32:
		return float64(tv), true
	case float64:
		return tv, true
	default:
		return math.NaN(), false
	}
}
