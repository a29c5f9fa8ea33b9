package transform

import "github.com/thomascamminady/piper"

// RemoveColumn produces a Pipe which removes existing columns
func RemoveColumn(oldNames ...string) piper.Pipe {
	return func(df piper.DataFrame) (piper.DataFrame, error) {
		if err := CheckDataFrame(df); err != nil {
			return nil, err
		}
		return df.RemoveColumns(oldNames...)
	}
}
