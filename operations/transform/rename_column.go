package transform

import "github.com/thomascamminady/piper"

// RenameColumn produces a Pipe which renames an existing column
func RenameColumn(oldName string, newName string) piper.Pipe {
	return func(df piper.DataFrame) (piper.DataFrame, error) {
		if err := CheckDataFrame(df); err != nil {
			return nil, err
		}
		return df.RenameColumn(oldName, newName)
	}
}
