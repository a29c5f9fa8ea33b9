package transform

import (
	"github.com/thomascamminady/piper"
	iutil "github.com/thomascamminady/piper/internal/util"
)

// Map produces a Pipe which transforms a copy of each Row in-place
func Map(fn piper.MapOperation) piper.Pipe {
	safeFn := iutil.SafeMapOperation(fn)
	return func(df piper.DataFrame) (piper.DataFrame, error) {
		if err := CheckDataFrame(df); err != nil {
			return nil, err
		}
		return df.MapRows(safeFn)
	}
}
