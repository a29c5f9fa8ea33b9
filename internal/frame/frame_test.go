package frame

import (
	goerrors "errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/errors"
	"github.com/thomascamminady/piper/schema"
)

func createFrameTestSchema(t *testing.T) piper.Schema {
	schema, err := schema.CreateSchemaFrom(
		[]string{"a", "b"},
		[]piper.ColumnType{&piper.Int64ColumnType{}, &piper.VarStringColumnType{}},
	)
	require.Nil(t, err)
	return schema
}

func createTestFrame(t *testing.T) piper.DataFrame {
	df, err := CreateDataFrame(createFrameTestSchema(t), [][]interface{}{
		{1, nil, 3, nil},
		{"x", nil, nil, "z"},
	}, 4)
	require.Nil(t, err)
	return df
}

func TestCreateDataFrame(t *testing.T) {
	df := createTestFrame(t)
	require.Equal(t, 4, df.NumRows())
	require.Equal(t, 2, df.NumColumns())
	nulls, err := df.NullCount("a")
	require.Nil(t, err)
	require.Equal(t, 2, nulls)
	val, err := df.GetRow(2).GetInt64("a")
	require.Nil(t, err)
	require.Equal(t, int64(3), val)
	_, err = df.GetRow(1).GetInt64("a")
	require.IsType(t, errors.NilValueError{}, err)
	require.Nil(t, df.(piper.Validator).Validate())
}

func TestCreateDataFrameRagged(t *testing.T) {
	_, err := CreateDataFrame(createFrameTestSchema(t), [][]interface{}{
		{1, 2},
		{"x"},
	}, 2)
	require.IsType(t, errors.InvalidInputError{}, err)
}

func TestCreateDataFrameWrongType(t *testing.T) {
	_, err := CreateDataFrame(createFrameTestSchema(t), [][]interface{}{
		{"not a number"},
		{"x"},
	}, 1)
	require.IsType(t, errors.InvalidInputError{}, err)
}

func TestCreateDataFrameNoColumns(t *testing.T) {
	df, err := CreateDataFrame(schema.CreateSchema(), [][]interface{}{}, 3)
	require.Nil(t, err)
	require.Equal(t, 3, df.NumRows())
	require.Equal(t, 0, df.NumColumns())
	require.Equal(t, "{}", df.GetRow(0).ToString())
}

func TestValidateDetectsRaggedColumns(t *testing.T) {
	f := createFrameImpl(createFrameTestSchema(t), []*series{createSeries(2), createSeries(3)}, 2)
	require.IsType(t, errors.InvalidInputError{}, f.Validate())
}

func TestBuildableDataFrame(t *testing.T) {
	b, err := CreateBuildableDataFrame(createFrameTestSchema(t))
	require.Nil(t, err)
	for i := 0; i < 3; i++ {
		row, err := b.AppendEmptyRow()
		require.Nil(t, err)
		require.True(t, row.IsNil("a"))
		if i != 1 {
			require.Nil(t, row.SetInt64("a", int64(i)))
		}
	}
	require.Equal(t, 3, b.NumRows())
	df, err := b.Build()
	require.Nil(t, err)
	require.Equal(t, 3, df.NumRows())
	require.True(t, df.GetRow(1).IsNil("a"))
	require.True(t, df.GetRow(1).IsNil("b"))
	_, err = b.AppendEmptyRow()
	require.NotNil(t, err)
}

func TestReadOnlyRows(t *testing.T) {
	df := createTestFrame(t)
	require.NotNil(t, df.GetRow(0).SetInt64("a", 5))
	require.NotNil(t, df.GetRow(0).SetNil("a"))
}

func TestMapRowsDoesNotModifyInput(t *testing.T) {
	df := createTestFrame(t)
	before := df.Fingerprint()
	mapped, err := df.MapRows(func(row piper.Row) error {
		if row.IsNil("a") {
			return row.SetInt64("a", 0)
		}
		return row.SetNil("b")
	})
	require.Nil(t, err)
	require.Equal(t, before, df.Fingerprint())
	nulls, err := mapped.NullCount("a")
	require.Nil(t, err)
	require.Equal(t, 0, nulls)
	nulls, err = mapped.NullCount("b")
	require.Nil(t, err)
	require.Equal(t, 3, nulls)
}

func TestMapRowsCollectsErrors(t *testing.T) {
	df := createTestFrame(t)
	_, err := df.MapRows(func(row piper.Row) error {
		_, err := row.GetInt64("a")
		return err
	})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "2 errors occurred")
}

func TestFilterRowsIsStable(t *testing.T) {
	df := createTestFrame(t)
	filtered, err := df.FilterRows(func(row piper.Row) (bool, error) {
		return !row.IsNil("b"), nil
	})
	require.Nil(t, err)
	require.Equal(t, 2, filtered.NumRows())
	values, err := filtered.GetColumnValues("b")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"x", "z"}, values)
	values, err = filtered.GetColumnValues("a")
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(1), nil}, values)
}

func TestFilterRowsError(t *testing.T) {
	df := createTestFrame(t)
	_, err := df.FilterRows(func(row piper.Row) (bool, error) {
		return false, fmt.Errorf("nope")
	})
	require.NotNil(t, err)
}

func TestSelectRemoveRenameColumns(t *testing.T) {
	df := createTestFrame(t)
	selected, err := df.SelectColumns("b", "a")
	require.Nil(t, err)
	require.Equal(t, []string{"b", "a"}, selected.GetSchema().ColumnNames())
	v, err := selected.GetRow(0).GetVarString("b")
	require.Nil(t, err)
	require.Equal(t, "x", v)

	removed, err := df.RemoveColumns("a")
	require.Nil(t, err)
	require.Equal(t, []string{"b"}, removed.GetSchema().ColumnNames())
	require.Equal(t, 4, removed.NumRows())

	removedAll, err := df.RemoveColumns("a", "b")
	require.Nil(t, err)
	require.Equal(t, 0, removedAll.NumColumns())
	require.Equal(t, 4, removedAll.NumRows())

	_, err = df.RemoveColumns("missing")
	require.IsType(t, errors.MissingColumnError{}, err)

	renamed, err := df.RenameColumn("a", "alpha")
	require.Nil(t, err)
	require.Equal(t, []string{"alpha", "b"}, renamed.GetSchema().ColumnNames())
	require.Equal(t, []string{"a", "b"}, df.GetSchema().ColumnNames())
}

func TestWithColumn(t *testing.T) {
	df := createTestFrame(t)
	doubled, err := df.WithColumn("a", &piper.Float64ColumnType{}, func(row piper.Row) (interface{}, error) {
		if row.IsNil("a") {
			return nil, nil
		}
		v, err := row.GetInt64("a")
		return float64(v) * 2, err
	})
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b"}, doubled.GetSchema().ColumnNames())
	values, err := doubled.GetColumnValues("a")
	require.Nil(t, err)
	require.Equal(t, []interface{}{2.0, nil, 6.0, nil}, values)

	added, err := df.WithColumn("c", &piper.BoolColumnType{}, func(row piper.Row) (interface{}, error) {
		return row.IsNil("b"), nil
	})
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b", "c"}, added.GetSchema().ColumnNames())
	values, err = added.GetColumnValues("c")
	require.Nil(t, err)
	require.Equal(t, []interface{}{false, true, true, false}, values)

	_, err = df.WithColumn("c", &piper.BoolColumnType{}, func(row piper.Row) (interface{}, error) {
		return "not a bool", nil
	})
	var typeErr errors.ColumnTypeError
	require.True(t, goerrors.As(err, &typeErr))
	require.Equal(t, "c", typeErr.Name)
}

func TestEqualsAndFingerprint(t *testing.T) {
	df1 := createTestFrame(t)
	df2 := createTestFrame(t)
	require.Nil(t, df1.Equals(df2))
	require.Equal(t, df1.Fingerprint(), df2.Fingerprint())

	df3, err := CreateDataFrame(createFrameTestSchema(t), [][]interface{}{
		{1, nil, 3, 4},
		{"x", nil, nil, "z"},
	}, 4)
	require.Nil(t, err)
	require.NotNil(t, df1.Equals(df3))
	require.NotEqual(t, df1.Fingerprint(), df3.Fingerprint())
}

func TestEqualsWithNaN(t *testing.T) {
	schema, err := schema.CreateSchemaFrom(
		[]string{"x", "y", "l"},
		[]piper.ColumnType{&piper.Float64ColumnType{}, &piper.Float32ColumnType{}, &piper.VarFloat64ListColumnType{}},
	)
	require.Nil(t, err)
	df, err := CreateDataFrame(schema, [][]interface{}{
		{math.NaN(), 1.0},
		{float32(math.NaN()), float32(2)},
		{[]float64{math.NaN(), 1}, nil},
	}, 2)
	require.Nil(t, err)
	require.Nil(t, df.Equals(df))

	other, err := CreateDataFrame(schema, [][]interface{}{
		{1.0, 1.0},
		{float32(math.NaN()), float32(2)},
		{[]float64{math.NaN(), 1}, nil},
	}, 2)
	require.Nil(t, err)
	require.NotNil(t, df.Equals(other))
	require.NotNil(t, other.Equals(df))
}

func TestPipe(t *testing.T) {
	df := createTestFrame(t)
	result, err := df.Pipe(func(df piper.DataFrame) (piper.DataFrame, error) {
		return df.RemoveColumns("b")
	})
	require.Nil(t, err)
	require.Equal(t, 1, result.NumColumns())
}

func TestToString(t *testing.T) {
	df := createTestFrame(t)
	require.Equal(t, "shape: (4, 2)\n{\"a\": int64, \"b\": varstring}\n{\"a\": 1, \"b\": x}\n{\"a\": nil, \"b\": nil}\n{\"a\": 3, \"b\": nil}\n{\"a\": nil, \"b\": z}\n", df.ToString())
}

func TestConcat(t *testing.T) {
	df, err := Concat(createTestFrame(t), createTestFrame(t))
	require.Nil(t, err)
	require.Equal(t, 8, df.NumRows())
	values, err := df.GetColumnValues("a")
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(1), nil, int64(3), nil, int64(1), nil, int64(3), nil}, values)
	require.Nil(t, df.(piper.Validator).Validate())

	other, err := df.RemoveColumns("a")
	require.Nil(t, err)
	_, err = Concat(df, other)
	require.NotNil(t, err)
	_, err = Concat()
	require.NotNil(t, err)
}
