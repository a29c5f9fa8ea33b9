package errors

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("pipe failed: %w", InvalidInputError{Reason: "DataFrame is nil"})
	var invalid InvalidInputError
	require.True(t, goerrors.As(err, &invalid))
	require.Equal(t, "DataFrame is nil", invalid.Reason)
	require.Equal(t, "pipe failed: Invalid input: DataFrame is nil", err.Error())
}

func TestErrorMessages(t *testing.T) {
	require.Equal(t, "Value for column a is nil", NilValueError{Name: "a"}.Error())
	require.Equal(t, "Schema does not contain column with name b", MissingColumnError{Name: "b"}.Error())
	require.Equal(t, "Column c of type bool does not support scaling", ColumnTypeError{Name: "c", Type: "bool", Operation: "scaling"}.Error())
	require.Equal(t, `Column d could not be converted to int64. Was: "x"`, ConversionError{Name: "d", Value: "x", Target: "int64"}.Error())
}
