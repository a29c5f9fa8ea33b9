package piper

import (
	"strconv"
	"strings"
)

// VarStringColumnType is a column type which stores a variable-length string value
type VarStringColumnType struct{}

// Name of a VarStringColumnType
func (b *VarStringColumnType) Name() string {
	return "varstring"
}

// ToString produces a string representation of a value of a VarStringColumnType value
func (b *VarStringColumnType) ToString(v interface{}) string {
	return v.(string)
}

// VarFloat64ListColumnType is a column type which stores variable-length lists of float64 values
type VarFloat64ListColumnType struct{}

// Name of a VarFloat64ListColumnType
func (b *VarFloat64ListColumnType) Name() string {
	return "list[float64]"
}

// ToString produces a string representation of a value of a VarFloat64ListColumnType value.
// Elements are separated by "|".
func (b *VarFloat64ListColumnType) ToString(v interface{}) string {
	list := v.([]float64)
	var res strings.Builder
	for i, f := range list {
		if i > 0 {
			res.WriteByte('|')
		}
		res.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return res.String()
}
