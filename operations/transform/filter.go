package transform

import (
	"github.com/thomascamminady/piper"
	iutil "github.com/thomascamminady/piper/internal/util"
)

// Filter produces a Pipe which retains only the Rows for which fn returns true, preserving their order
func Filter(fn piper.FilterOperation) piper.Pipe {
	safeFn := iutil.SafeFilterOperation(fn)
	return func(df piper.DataFrame) (piper.DataFrame, error) {
		if err := CheckDataFrame(df); err != nil {
			return nil, err
		}
		return df.FilterRows(safeFn)
	}
}
