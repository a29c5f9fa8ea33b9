package transform

import (
	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/errors"
)

// CheckDataFrame verifies that df is a well-formed DataFrame, producing an InvalidInputError if it is not.
// DataFrames implementing piper.Validator are asked to validate themselves as well.
func CheckDataFrame(df piper.DataFrame) error {
	if df == nil {
		return errors.InvalidInputError{Reason: "DataFrame is nil"}
	}
	schema := df.GetSchema()
	if schema == nil {
		return errors.InvalidInputError{Reason: "DataFrame has no Schema"}
	}
	if df.NumRows() < 0 {
		return errors.InvalidInputError{Reason: "DataFrame has a negative number of rows"}
	}
	if schema.NumColumns() != df.NumColumns() {
		return errors.InvalidInputError{Reason: "DataFrame column count does not match its Schema"}
	}
	if v, ok := df.(piper.Validator); ok {
		return v.Validate()
	}
	return nil
}
