package frame

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/errors"
	"github.com/thomascamminady/piper/schema"
)

func createRowTestRow(t *testing.T, names []string, colTypes []piper.ColumnType) piper.Row {
	schema, err := schema.CreateSchemaFrom(names, colTypes)
	require.Nil(t, err)
	b, err := CreateBuildableDataFrame(schema)
	require.Nil(t, err)
	row, err := b.AppendEmptyRow()
	require.Nil(t, err)
	return row
}

func TestGetSetInt64(t *testing.T) {
	row := createRowTestRow(t, []string{"col1"}, []piper.ColumnType{&piper.Int64ColumnType{}})
	require.Nil(t, row.SetInt64("col1", math.MaxInt64))
	data, err := row.GetInt64("col1")
	require.Nil(t, err)
	require.Equal(t, int64(math.MaxInt64), data)
}

func TestGetSetInt32(t *testing.T) {
	row := createRowTestRow(t, []string{"col1"}, []piper.ColumnType{&piper.Int32ColumnType{}})
	for i := int32(-5); i < int32(5); i++ {
		require.Nil(t, row.SetInt32("col1", i))
		v, err := row.GetInt32("col1")
		require.Nil(t, err)
		require.Equal(t, i, v)
	}
}

func TestTime(t *testing.T) {
	row := createRowTestRow(t, []string{"col1"}, []piper.ColumnType{&piper.TimeColumnType{}})
	v := time.Now()
	require.Nil(t, row.SetTime("col1", v))
	v2, err := row.GetTime("col1")
	require.Nil(t, err)
	require.EqualValues(t, v.UnixNano(), v2.UnixNano())
}

func TestFloat64ListIsCopied(t *testing.T) {
	row := createRowTestRow(t, []string{"col1"}, []piper.ColumnType{&piper.VarFloat64ListColumnType{}})
	list := []float64{1, 2, 3}
	require.Nil(t, row.SetFloat64List("col1", list))
	list[0] = 100
	got, err := row.GetFloat64List("col1")
	require.Nil(t, err)
	require.Equal(t, []float64{1, 2, 3}, got)
	got[1] = 200
	again, err := row.GetFloat64List("col1")
	require.Nil(t, err)
	require.Equal(t, []float64{1, 2, 3}, again)
	require.Equal(t, `{"col1": 1|2|3}`, row.ToString())
}

func TestSetNil(t *testing.T) {
	row := createRowTestRow(t, []string{"col1", "col2"}, []piper.ColumnType{&piper.Float64ColumnType{}, &piper.VarStringColumnType{}})
	require.True(t, row.IsNil("col1"))
	require.Nil(t, row.SetFloat64("col1", 1.5))
	require.False(t, row.IsNil("col1"))
	require.Nil(t, row.SetNil("col1"))
	require.True(t, row.IsNil("col1"))
	_, err := row.GetFloat64("col1")
	require.IsType(t, errors.NilValueError{}, err)
	require.False(t, row.IsNil("missing"))
	require.Equal(t, `{"col1": nil, "col2": nil}`, row.ToString())
}

func TestSetWrongType(t *testing.T) {
	row := createRowTestRow(t, []string{"col1"}, []piper.ColumnType{&piper.BoolColumnType{}})
	err := row.SetVarString("col1", "true")
	require.IsType(t, errors.ColumnTypeError{}, err)
	require.Nil(t, row.SetBool("col1", true))
	_, err = row.GetInt64("col1")
	require.IsType(t, errors.ColumnTypeError{}, err)
	_, err = row.GetBool("missing")
	require.IsType(t, errors.MissingColumnError{}, err)
}

func TestGenericSetCoerces(t *testing.T) {
	row := createRowTestRow(t,
		[]string{"i32", "i64", "f64", "s"},
		[]piper.ColumnType{&piper.Int32ColumnType{}, &piper.Int64ColumnType{}, &piper.Float64ColumnType{}, &piper.VarStringColumnType{}},
	)
	require.Nil(t, row.Set("i32", 7))
	require.Nil(t, row.Set("i64", 8))
	require.Nil(t, row.Set("f64", 9))
	require.Nil(t, row.Set("s", "ten"))
	v, err := row.Get("i32")
	require.Nil(t, err)
	require.Equal(t, int32(7), v)
	v, err = row.Get("i64")
	require.Nil(t, err)
	require.Equal(t, int64(8), v)
	v, err = row.Get("f64")
	require.Nil(t, err)
	require.Equal(t, 9.0, v)
	require.Nil(t, row.Set("s", nil))
	require.True(t, row.IsNil("s"))
	require.NotNil(t, row.Set("i32", math.MaxInt64))
	require.NotNil(t, row.Set("i64", 1.5))
}
