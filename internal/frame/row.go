package frame

import (
	"fmt"
	"strings"
	"time"

	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/errors"
)

// rowImpl is a view over a single row of a DataFrame. Rows
// handed out by a built DataFrame are read-only; rows handed
// to MapOperations and builders are writable.
type rowImpl struct {
	schema   piper.Schema
	series   []*series
	rowNum   int
	readOnly bool
}

// Schema returns a read-only copy of the schema for a row
func (r *rowImpl) Schema() piper.Schema {
	return r.schema.Clone()
}

// ToString returns a string representation of this row
func (r *rowImpl) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	r.schema.ForEachColumn(func(name string, col piper.Column) error {
		if col.Index() > 0 {
			fmt.Fprint(&res, ", ")
		}
		val := "nil"
		if v := r.series[col.Index()].get(r.rowNum); v != nil {
			val = col.Type().ToString(v)
		}
		fmt.Fprintf(&res, "\"%s\": %s", name, val)
		return nil
	})
	fmt.Fprint(&res, "}")
	return res.String()
}

// IsNil returns true iff the given column value is nil in this row. If the column does not exist, this function will return false.
func (r *rowImpl) IsNil(colName string) bool {
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return false
	}
	return r.series[col.Index()].isNil(r.rowNum)
}

// SetNil sets the given column value to nil within this row
func (r *rowImpl) SetNil(colName string) error {
	if r.readOnly {
		return fmt.Errorf("Cannot modify read-only row")
	}
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return err
	}
	r.series[col.Index()].setNil(r.rowNum)
	return nil
}

// getValue retrieves the value of a column, producing a NilValueError for nil cells
func (r *rowImpl) getValue(colName string) (interface{}, piper.Column, error) {
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return nil, nil, err
	}
	s := r.series[col.Index()]
	if s.isNil(r.rowNum) {
		return nil, col, errors.NilValueError{Name: colName}
	}
	return s.values[r.rowNum], col, nil
}

// setValue stores a value in a column, if accepts approves of the column's type
func (r *rowImpl) setValue(colName string, operation string, value interface{}, accepts func(piper.ColumnType) bool) error {
	if r.readOnly {
		return fmt.Errorf("Cannot modify read-only row")
	}
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return err
	}
	if !accepts(col.Type()) {
		return errors.ColumnTypeError{Name: colName, Type: col.Type().Name(), Operation: operation}
	}
	r.series[col.Index()].set(r.rowNum, value)
	return nil
}

func typeError(colName string, col piper.Column, operation string) error {
	return errors.ColumnTypeError{Name: colName, Type: col.Type().Name(), Operation: operation}
}

// Get returns the value of any column as an interface{}, if it exists
func (r *rowImpl) Get(colName string) (col interface{}, err error) {
	v, _, err := r.getValue(colName)
	if err != nil {
		return nil, err
	}
	return copyValue(v), nil
}

// Set stores a value of the Go type matching the column's type. A nil value sets the column to nil.
func (r *rowImpl) Set(colName string, value interface{}) error {
	if value == nil {
		return r.SetNil(colName)
	}
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return err
	}
	coerced, err := Coerce(colName, col.Type(), value)
	if err != nil {
		return err
	}
	return r.setValue(colName, "Set", copyValue(coerced), func(piper.ColumnType) bool { return true })
}

// GetBool retrieves a single bool from the column with the given name.
func (r *rowImpl) GetBool(colName string) (col bool, err error) {
	v, offset, err := r.getValue(colName)
	if err != nil {
		return
	}
	col, ok := v.(bool)
	if !ok {
		err = typeError(colName, offset, "GetBool")
	}
	return
}

// GetInt32 retrieves a single int32 from the column with the given name
func (r *rowImpl) GetInt32(colName string) (col int32, err error) {
	v, offset, err := r.getValue(colName)
	if err != nil {
		return
	}
	col, ok := v.(int32)
	if !ok {
		err = typeError(colName, offset, "GetInt32")
	}
	return
}

// GetInt64 retrieves a single int64 from the column with the given name
func (r *rowImpl) GetInt64(colName string) (col int64, err error) {
	v, offset, err := r.getValue(colName)
	if err != nil {
		return
	}
	col, ok := v.(int64)
	if !ok {
		err = typeError(colName, offset, "GetInt64")
	}
	return
}

// GetFloat32 retrieves a single float32 from the column with the given name
func (r *rowImpl) GetFloat32(colName string) (col float32, err error) {
	v, offset, err := r.getValue(colName)
	if err != nil {
		return
	}
	col, ok := v.(float32)
	if !ok {
		err = typeError(colName, offset, "GetFloat32")
	}
	return
}

// GetFloat64 retrieves a single float64 from the column with the given name
func (r *rowImpl) GetFloat64(colName string) (col float64, err error) {
	v, offset, err := r.getValue(colName)
	if err != nil {
		return
	}
	col, ok := v.(float64)
	if !ok {
		err = typeError(colName, offset, "GetFloat64")
	}
	return
}

// GetTime retrieves a single Time from the column with the given name
func (r *rowImpl) GetTime(colName string) (col time.Time, err error) {
	v, offset, err := r.getValue(colName)
	if err != nil {
		return
	}
	col, ok := v.(time.Time)
	if !ok {
		err = typeError(colName, offset, "GetTime")
	}
	return
}

// GetVarString retrieves a single string from the column with the given name
func (r *rowImpl) GetVarString(colName string) (col string, err error) {
	v, offset, err := r.getValue(colName)
	if err != nil {
		return
	}
	col, ok := v.(string)
	if !ok {
		err = typeError(colName, offset, "GetVarString")
	}
	return
}

// GetFloat64List retrieves a copy of a list of float64 values from the column with the given name
func (r *rowImpl) GetFloat64List(colName string) (col []float64, err error) {
	v, offset, err := r.getValue(colName)
	if err != nil {
		return
	}
	list, ok := v.([]float64)
	if !ok {
		err = typeError(colName, offset, "GetFloat64List")
		return
	}
	col = copyValue(list).([]float64)
	return
}

// SetBool modifies a single bool from the column with the given name.
func (r *rowImpl) SetBool(colName string, value bool) (err error) {
	return r.setValue(colName, "SetBool", value, func(t piper.ColumnType) bool {
		_, ok := t.(*piper.BoolColumnType)
		return ok
	})
}

// SetInt32 modifies a single int32 from the column with the given name.
func (r *rowImpl) SetInt32(colName string, value int32) (err error) {
	return r.setValue(colName, "SetInt32", value, func(t piper.ColumnType) bool {
		_, ok := t.(*piper.Int32ColumnType)
		return ok
	})
}

// SetInt64 modifies a single int64 from the column with the given name.
func (r *rowImpl) SetInt64(colName string, value int64) (err error) {
	return r.setValue(colName, "SetInt64", value, func(t piper.ColumnType) bool {
		_, ok := t.(*piper.Int64ColumnType)
		return ok
	})
}

// SetFloat32 modifies a single float32 from the column with the given name.
func (r *rowImpl) SetFloat32(colName string, value float32) (err error) {
	return r.setValue(colName, "SetFloat32", value, func(t piper.ColumnType) bool {
		_, ok := t.(*piper.Float32ColumnType)
		return ok
	})
}

// SetFloat64 modifies a single float64 from the column with the given name.
func (r *rowImpl) SetFloat64(colName string, value float64) (err error) {
	return r.setValue(colName, "SetFloat64", value, func(t piper.ColumnType) bool {
		_, ok := t.(*piper.Float64ColumnType)
		return ok
	})
}

// SetTime modifies a single Time from the column with the given name.
func (r *rowImpl) SetTime(colName string, value time.Time) (err error) {
	return r.setValue(colName, "SetTime", value, func(t piper.ColumnType) bool {
		_, ok := t.(*piper.TimeColumnType)
		return ok
	})
}

// SetVarString modifies a single string from the column with the given name.
func (r *rowImpl) SetVarString(colName string, value string) (err error) {
	return r.setValue(colName, "SetVarString", value, func(t piper.ColumnType) bool {
		_, ok := t.(*piper.VarStringColumnType)
		return ok
	})
}

// SetFloat64List stores a copy of a list of float64 values in the column with the given name.
func (r *rowImpl) SetFloat64List(colName string, value []float64) (err error) {
	if value == nil {
		return r.SetNil(colName)
	}
	return r.setValue(colName, "SetFloat64List", copyValue(value), func(t piper.ColumnType) bool {
		_, ok := t.(*piper.VarFloat64ListColumnType)
		return ok
	})
}
