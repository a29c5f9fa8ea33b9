package piper

import (
	"fmt"
	"time"
)

// IsNumeric returns true iff colType stores integer or floating-point values
func IsNumeric(colType ColumnType) bool {
	switch colType.(type) {
	case *Int32ColumnType, *Int64ColumnType, *Float32ColumnType, *Float64ColumnType:
		return true
	default:
		return false
	}
}

// ColumnType is an interface which is implemented to define supported column types.
// piper provides a variety of built-in types.
type ColumnType interface {
	Name() string                  // returns the name of a column type, as used in Schema representations and snapshots
	ToString(v interface{}) string // produces a string representation of a value of this type
}

// ParseColumnType produces the built-in ColumnType with the given name. The format is only relevant for TimeColumnTypes.
func ParseColumnType(name string, format string) (ColumnType, error) {
	switch name {
	case "bool":
		return &BoolColumnType{}, nil
	case "int32":
		return &Int32ColumnType{}, nil
	case "int64":
		return &Int64ColumnType{}, nil
	case "float32":
		return &Float32ColumnType{}, nil
	case "float64":
		return &Float64ColumnType{}, nil
	case "datetime":
		if format == "" {
			format = time.RFC3339Nano
		}
		return &TimeColumnType{Format: format}, nil
	case "varstring":
		return &VarStringColumnType{}, nil
	case "list[float64]":
		return &VarFloat64ListColumnType{}, nil
	default:
		return nil, fmt.Errorf("Unknown column type %s", name)
	}
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Name of a BoolColumnType
func (b *BoolColumnType) Name() string {
	return "bool"
}

// ToString produces a string representation of a value of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%t", v.(bool))
}

// Int32ColumnType is a column type which stores a int32 value
type Int32ColumnType struct{}

// Name of a Int32ColumnType
func (b *Int32ColumnType) Name() string {
	return "int32"
}

// ToString produces a string representation of a value of a Int32ColumnType value
func (b *Int32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int32))
}

// Int64ColumnType is a column type which stores a int64 value
type Int64ColumnType struct{}

// Name of a Int64ColumnType
func (b *Int64ColumnType) Name() string {
	return "int64"
}

// ToString produces a string representation of a value of a Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int64))
}

// Float32ColumnType is a column type which stores a float32 value
type Float32ColumnType struct{}

// Name of a Float32ColumnType
func (b *Float32ColumnType) Name() string {
	return "float32"
}

// ToString produces a string representation of a value of a Float32ColumnType value
func (b *Float32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%g", v.(float32))
}

// Float64ColumnType is a column type which stores a float64 value
type Float64ColumnType struct{}

// Name of a Float64ColumnType
func (b *Float64ColumnType) Name() string {
	return "float64"
}

// ToString produces a string representation of a value of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%g", v.(float64))
}

// TimeColumnType is a column type which stores a time.Time value. Format is the layout
// the values were parsed from, and is used when producing string representations.
type TimeColumnType struct {
	Format string
}

// Name of a TimeColumnType
func (b *TimeColumnType) Name() string {
	return "datetime"
}

// ToString produces a string representation of a value of a TimeColumnType value
func (b *TimeColumnType) ToString(v interface{}) string {
	format := b.Format
	if format == "" {
		format = time.RFC3339Nano
	}
	return v.(time.Time).Format(format)
}
