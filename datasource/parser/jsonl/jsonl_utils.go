package jsonl

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/schema"
	"github.com/tidwall/gjson"
)

// ParseJSONRow locates the value of each column within a JSON record and stores it in row.
// A column name matches a top-level key verbatim, or failing that is used as a gjson path (e.g. "meta.index").
// Missing and null values leave the column nil.
func ParseJSONRow(names []string, colTypes []piper.ColumnType, record gjson.Result, row piper.Row) error {
	for i, name := range names {
		val := lookup(record, name)
		if !val.Exists() || val.Type == gjson.Null {
			continue // rows start out nil
		}
		if err := parseValue(val, name, colTypes[i], row); err != nil {
			return err
		}
	}
	return nil
}

func lookup(record gjson.Result, name string) gjson.Result {
	if val := record.Get(gjson.Escape(name)); val.Exists() {
		return val
	}
	return record.Get(name)
}

// nonFinite recognizes the strings written for NaN and infinite floats
func nonFinite(val gjson.Result) (float64, bool) {
	if val.Type != gjson.String {
		return 0, false
	}
	switch val.Str {
	case "NaN":
		return math.NaN(), true
	case "Inf":
		return math.Inf(1), true
	case "-Inf":
		return math.Inf(-1), true
	}
	return 0, false
}

// floatValue reads a JSON number, or one of the strings written for non-finite floats
func floatValue(val gjson.Result) (float64, bool) {
	if val.Type == gjson.Number {
		return val.Num, true
	}
	return nonFinite(val)
}

func parseValue(val gjson.Result, colName string, colType piper.ColumnType, row piper.Row) error {
	switch ct := colType.(type) {
	case *piper.BoolColumnType:
		if val.Type != gjson.True && val.Type != gjson.False {
			return fmt.Errorf("Column %s was not a boolean. Was: %s", colName, val.Raw)
		}
		return row.SetBool(colName, val.Bool())
	case *piper.Int32ColumnType:
		if val.Type != gjson.Number || val.Num != math.Trunc(val.Num) || val.Num > math.MaxInt32 || val.Num < math.MinInt32 {
			return fmt.Errorf("Column %s was not a 32-bit integer. Was: %s", colName, val.Raw)
		}
		return row.SetInt32(colName, int32(val.Int()))
	case *piper.Int64ColumnType:
		if val.Type != gjson.Number || val.Num != math.Trunc(val.Num) {
			return fmt.Errorf("Column %s was not an integer. Was: %s", colName, val.Raw)
		}
		return row.SetInt64(colName, val.Int())
	case *piper.Float32ColumnType:
		f, ok := floatValue(val)
		if !ok {
			return fmt.Errorf("Column %s was not a number. Was: %s", colName, val.Raw)
		}
		return row.SetFloat32(colName, float32(f))
	case *piper.Float64ColumnType:
		f, ok := floatValue(val)
		if !ok {
			return fmt.Errorf("Column %s was not a number. Was: %s", colName, val.Raw)
		}
		return row.SetFloat64(colName, f)
	case *piper.TimeColumnType:
		if val.Type != gjson.String {
			return fmt.Errorf("Column %s was not a string. Was: %s", colName, val.Raw)
		}
		format := ct.Format
		if format == "" {
			format = time.RFC3339Nano
		}
		tval, err := time.Parse(format, val.Str)
		if err != nil {
			return fmt.Errorf("Column %s could not be parsed as datetime with format %s. Was: %s", colName, format, val.Raw)
		}
		return row.SetTime(colName, tval)
	case *piper.VarStringColumnType:
		if val.Type == gjson.String {
			return row.SetVarString(colName, val.Str)
		}
		// nested objects, arrays and scalars are kept as raw JSON
		return row.SetVarString(colName, val.Raw)
	case *piper.VarFloat64ListColumnType:
		if !val.IsArray() {
			return fmt.Errorf("Column %s was not an array. Was: %s", colName, val.Raw)
		}
		elems := val.Array()
		list := make([]float64, len(elems))
		for j, elem := range elems {
			f, ok := floatValue(elem)
			if !ok {
				return fmt.Errorf("Column %s was not an array of numbers. Was: %s", colName, val.Raw)
			}
			list[j] = f
		}
		return row.SetFloat64List(colName, list)
	default:
		return fmt.Errorf("JSONL parsing does not support column type %T", colType)
	}
}

// inferSchema derives a Schema from the top-level keys of a set of records, in order of first appearance.
// Keys are used verbatim as column names. Integral numbers become int64 columns, other numbers
// (and the strings "NaN", "Inf" and "-Inf") float64, booleans bool, arrays of numbers
// list[float64], and everything else varstring. Columns whose values disagree fall back to varstring,
// except for a mix of integral and fractional numbers, which becomes float64.
func inferSchema(records []gjson.Result) (piper.Schema, error) {
	var keys []string
	inferred := make(map[string]piper.ColumnType)
	for _, record := range records {
		if !record.IsObject() {
			return nil, fmt.Errorf("Cannot infer Schema from a JSON record which is not an object: %s", record.Raw)
		}
		record.ForEach(func(key, value gjson.Result) bool {
			name := key.Str
			current, seen := inferred[name]
			if !seen {
				keys = append(keys, name)
			}
			next := inferType(value)
			if next == nil {
				if !seen {
					inferred[name] = nil
				}
				return true
			}
			inferred[name] = mergeTypes(current, next)
			return true
		})
	}
	colTypes := make([]piper.ColumnType, len(keys))
	for i, key := range keys {
		colTypes[i] = inferred[key]
		if colTypes[i] == nil {
			// only nulls were seen
			colTypes[i] = &piper.VarStringColumnType{}
		}
	}
	return schema.CreateSchemaFrom(keys, colTypes)
}

func inferType(value gjson.Result) piper.ColumnType {
	switch value.Type {
	case gjson.Null:
		return nil
	case gjson.True, gjson.False:
		return &piper.BoolColumnType{}
	case gjson.Number:
		if strings.ContainsAny(value.Raw, ".eE") {
			return &piper.Float64ColumnType{}
		}
		return &piper.Int64ColumnType{}
	case gjson.String:
		if _, ok := nonFinite(value); ok {
			return &piper.Float64ColumnType{}
		}
		return &piper.VarStringColumnType{}
	}
	if value.IsArray() {
		for _, elem := range value.Array() {
			if _, ok := floatValue(elem); !ok {
				return &piper.VarStringColumnType{}
			}
		}
		return &piper.VarFloat64ListColumnType{}
	}
	return &piper.VarStringColumnType{}
}

func mergeTypes(current piper.ColumnType, next piper.ColumnType) piper.ColumnType {
	if current == nil || current.Name() == next.Name() {
		return next
	}
	if piper.IsNumeric(current) && piper.IsNumeric(next) {
		return &piper.Float64ColumnType{}
	}
	return &piper.VarStringColumnType{}
}
