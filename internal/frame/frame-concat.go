package frame

import (
	"fmt"

	"github.com/thomascamminady/piper"
)

// Concat stacks DataFrames with equal Schemas vertically, in order
func Concat(dfs ...piper.DataFrame) (piper.DataFrame, error) {
	if len(dfs) == 0 {
		return nil, fmt.Errorf("Cannot concatenate zero DataFrames")
	}
	schema := dfs[0].GetSchema()
	numRows := 0
	for i, df := range dfs {
		if err := schema.Equals(df.GetSchema()); err != nil {
			return nil, fmt.Errorf("Cannot concatenate DataFrame %d: %w", i, err)
		}
		numRows += df.NumRows()
	}
	cols := make([]*series, schema.NumColumns())
	for i := range cols {
		cols[i] = &series{
			values: make([]interface{}, 0, numRows),
			meta:   make([]byte, 0, numRows),
		}
	}
	names := schema.ColumnNames()
	for _, df := range dfs {
		for i, name := range names {
			values, err := df.GetColumnValues(name)
			if err != nil {
				return nil, err
			}
			for _, v := range values {
				cols[i].appendNil()
				if v != nil {
					cols[i].set(cols[i].len()-1, v)
				}
			}
		}
	}
	return createFrameImpl(schema, cols, numRows), nil
}
