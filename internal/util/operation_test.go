package util

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/errors"
	"github.com/thomascamminady/piper/internal/frame"
	"github.com/thomascamminady/piper/schema"
)

func createUtilTestRow(t *testing.T) piper.Row {
	schema, err := schema.CreateSchemaFrom([]string{"col1"}, []piper.ColumnType{&piper.Int64ColumnType{}})
	require.Nil(t, err)
	df, err := frame.CreateDataFrame(schema, [][]interface{}{{nil}}, 1)
	require.Nil(t, err)
	return df.GetRow(0)
}

func TestSafeMapOperationRecoversPanics(t *testing.T) {
	op := SafeMapOperation(func(row piper.Row) error {
		panic(fmt.Errorf("boom"))
	})
	err := op(createUtilTestRow(t))
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "Map Panic: boom")
	require.Contains(t, err.Error(), `Row: {"col1": nil}`)
}

func TestSafeFilterOperationWrapsErrors(t *testing.T) {
	op := SafeFilterOperation(func(row piper.Row) (bool, error) {
		_, err := row.GetInt64("col1")
		return true, err
	})
	_, err := op(createUtilTestRow(t))
	require.NotNil(t, err)
	var nilErr errors.NilValueError
	require.True(t, goerrors.As(err, &nilErr))
	require.Equal(t, "col1", nilErr.Name)
}

func TestSafeColumnOperationRecoversNonErrorPanics(t *testing.T) {
	op := SafeColumnOperation("out", func(row piper.Row) (interface{}, error) {
		panic("plain panic")
	})
	v, err := op(createUtilTestRow(t))
	require.Nil(t, v)
	require.Contains(t, err.Error(), "Column out Panic: plain panic")
}

func TestFormatMultiError(t *testing.T) {
	merr := multierror.Append(nil, fmt.Errorf("a"), fmt.Errorf("b\nRow: {}"))
	require.Equal(t, "1: a\n2: b\n\tRow: {}\n", FormatMultiError(merr))
	require.Equal(t, "", FormatMultiError(nil))
}

func TestGetTrace(t *testing.T) {
	trace := func() string {
		return GetTrace()
	}()
	require.Contains(t, trace, "util.TestGetTrace")
	require.NotContains(t, trace, "util.TestGetTrace.func1")
	require.NotContains(t, trace, "runtime.")
}
