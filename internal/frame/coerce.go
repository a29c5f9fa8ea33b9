package frame

import (
	"fmt"
	"math"
	"time"

	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/errors"
)

// Coerce converts a Go value into the representation stored for the given ColumnType.
// Lossless conversions between Go numeric types are permitted; anything else produces a ColumnTypeError.
func Coerce(colName string, colType piper.ColumnType, value interface{}) (interface{}, error) {
	fail := errors.ColumnTypeError{Name: colName, Type: colType.Name(), Operation: fmt.Sprintf("storing a %T", value)}
	switch colType.(type) {
	case *piper.BoolColumnType:
		if v, ok := value.(bool); ok {
			return v, nil
		}
	case *piper.Int32ColumnType:
		switch v := value.(type) {
		case int32:
			return v, nil
		case int:
			if v >= math.MinInt32 && v <= math.MaxInt32 {
				return int32(v), nil
			}
		}
	case *piper.Int64ColumnType:
		switch v := value.(type) {
		case int64:
			return v, nil
		case int:
			return int64(v), nil
		case int32:
			return int64(v), nil
		}
	case *piper.Float32ColumnType:
		switch v := value.(type) {
		case float32:
			return v, nil
		case float64:
			return float32(v), nil
		}
	case *piper.Float64ColumnType:
		switch v := value.(type) {
		case float64:
			return v, nil
		case float32:
			return float64(v), nil
		case int:
			return float64(v), nil
		case int32:
			return float64(v), nil
		case int64:
			return float64(v), nil
		}
	case *piper.TimeColumnType:
		if v, ok := value.(time.Time); ok {
			return v, nil
		}
	case *piper.VarStringColumnType:
		if v, ok := value.(string); ok {
			return v, nil
		}
	case *piper.VarFloat64ListColumnType:
		if v, ok := value.([]float64); ok {
			return v, nil
		}
	default:
		return nil, fmt.Errorf("Cannot store values for unknown column type %T", colType)
	}
	return nil, fail
}

// matchesType returns true iff a stored value has the Go type used to represent colType
func matchesType(colType piper.ColumnType, value interface{}) bool {
	switch colType.(type) {
	case *piper.BoolColumnType:
		_, ok := value.(bool)
		return ok
	case *piper.Int32ColumnType:
		_, ok := value.(int32)
		return ok
	case *piper.Int64ColumnType:
		_, ok := value.(int64)
		return ok
	case *piper.Float32ColumnType:
		_, ok := value.(float32)
		return ok
	case *piper.Float64ColumnType:
		_, ok := value.(float64)
		return ok
	case *piper.TimeColumnType:
		_, ok := value.(time.Time)
		return ok
	case *piper.VarStringColumnType:
		_, ok := value.(string)
		return ok
	case *piper.VarFloat64ListColumnType:
		_, ok := value.([]float64)
		return ok
	default:
		return false
	}
}
