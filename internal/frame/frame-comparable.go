package frame

import (
	"fmt"
	"math"
	"reflect"
	"time"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/thomascamminady/piper"
)

// Equals returns nil iff this and another DataFrame have equal Schemas, equal row counts and equal cells
func (f *frameImpl) Equals(other piper.DataFrame) error {
	if other == nil {
		return fmt.Errorf("DataFrame is nil")
	}
	if err := f.schema.Equals(other.GetSchema()); err != nil {
		return err
	}
	if f.numRows != other.NumRows() {
		return fmt.Errorf("DataFrames have unequal numbers of rows: %d and %d", f.numRows, other.NumRows())
	}
	names := f.schema.ColumnNames()
	for i := 0; i < f.numRows; i++ {
		row := f.GetRow(i)
		otherRow := other.GetRow(i)
		for _, name := range names {
			if row.IsNil(name) != otherRow.IsNil(name) {
				return fmt.Errorf("Row %d differs in column %s: %s vs %s", i, name, row.ToString(), otherRow.ToString())
			}
			if row.IsNil(name) {
				continue
			}
			v, err := row.Get(name)
			if err != nil {
				return err
			}
			otherV, err := otherRow.Get(name)
			if err != nil {
				return err
			}
			if !valuesEqual(v, otherV) {
				return fmt.Errorf("Row %d differs in column %s: %s vs %s", i, name, row.ToString(), otherRow.ToString())
			}
		}
	}
	return nil
}

// valuesEqual compares two cell values. NaN equals NaN, so that a DataFrame always equals itself.
func valuesEqual(a interface{}, b interface{}) bool {
	switch ta := a.(type) {
	case time.Time:
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	case float64:
		tb, ok := b.(float64)
		return ok && floatsEqual(ta, tb)
	case float32:
		tb, ok := b.(float32)
		return ok && floatsEqual(float64(ta), float64(tb))
	case []float64:
		tb, ok := b.([]float64)
		if !ok || len(ta) != len(tb) {
			return false
		}
		for i := range ta {
			if !floatsEqual(ta[i], tb[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

func floatsEqual(a float64, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// Fingerprint returns an xxhash digest of the Schema and cells of this DataFrame.
// Equal DataFrames have equal fingerprints.
func (f *frameImpl) Fingerprint() uint64 {
	hasher := xxhash.New()
	f.schema.ForEachColumn(func(name string, col piper.Column) error {
		hasher.WriteString(name)
		hasher.Write([]byte{0})
		hasher.WriteString(col.Type().Name())
		hasher.Write([]byte{0})
		return nil
	})
	fmt.Fprintf(hasher, "%d\x00", f.numRows)
	for _, s := range f.series {
		for i := 0; i < f.numRows; i++ {
			v := s.get(i)
			if v == nil {
				hasher.Write([]byte{colValueIsNilFlag})
				continue
			}
			hasher.Write([]byte{0})
			switch tv := v.(type) {
			case time.Time:
				fmt.Fprintf(hasher, "%d", tv.UnixNano())
			default:
				fmt.Fprintf(hasher, "%v", tv)
			}
			hasher.Write([]byte{0})
		}
	}
	return hasher.Sum64()
}
