package datasource

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/errors"
	"github.com/thomascamminady/piper/schema"
)

func TestCreateDataFrameFromRows(t *testing.T) {
	schema, err := schema.CreateSchemaFrom([]string{"a", "b"}, []piper.ColumnType{&piper.Int64ColumnType{}, &piper.Int64ColumnType{}})
	require.Nil(t, err)
	df, err := CreateDataFrameFromRows(schema, [][]interface{}{
		{1, nil},
		{nil, nil},
		{2, 3},
	})
	require.Nil(t, err)
	require.Equal(t, 3, df.NumRows())
	values, err := df.GetColumnValues("b")
	require.Nil(t, err)
	require.Equal(t, []interface{}{nil, nil, int64(3)}, values)

	_, err = CreateDataFrameFromRows(schema, [][]interface{}{{1}})
	require.IsType(t, errors.InvalidInputError{}, err)
}

func TestCreateDataFrameFromRowsWithoutColumns(t *testing.T) {
	df, err := CreateDataFrameFromRows(schema.CreateSchema(), [][]interface{}{{}, {}})
	require.Nil(t, err)
	require.Equal(t, 2, df.NumRows())
	require.Equal(t, 0, df.NumColumns())
}

func TestBuildableDataFrame(t *testing.T) {
	schema, err := schema.CreateSchemaFrom([]string{"a"}, []piper.ColumnType{&piper.VarStringColumnType{}})
	require.Nil(t, err)
	b, err := CreateBuildableDataFrame(schema)
	require.Nil(t, err)
	row, err := b.AppendEmptyRow()
	require.Nil(t, err)
	require.Nil(t, row.SetVarString("a", "hello"))
	df, err := b.Build()
	require.Nil(t, err)
	v, err := df.GetRow(0).GetVarString("a")
	require.Nil(t, err)
	require.Equal(t, "hello", v)
}
