package frame

import (
	"fmt"

	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/errors"
)

// buildableFrame accumulates rows for a DataFrame under construction
type buildableFrame struct {
	frame *frameImpl
	built bool
}

// CreateBuildableDataFrame creates a new, empty BuildableDataFrame for the given Schema
func CreateBuildableDataFrame(schema piper.Schema) (piper.BuildableDataFrame, error) {
	if schema == nil {
		return nil, errors.InvalidInputError{Reason: "Schema is nil"}
	}
	cols := make([]*series, schema.NumColumns())
	for i := range cols {
		cols[i] = createSeries(0)
	}
	return &buildableFrame{frame: createFrameImpl(schema.Clone(), cols, 0)}, nil
}

// AppendEmptyRow adds a row in which every cell is nil, returning it so that Row methods can be used to populate it
func (b *buildableFrame) AppendEmptyRow() (piper.Row, error) {
	if b.built {
		return nil, fmt.Errorf("DataFrame has already been built")
	}
	for _, s := range b.frame.series {
		s.appendNil()
	}
	b.frame.numRows++
	return &rowImpl{
		schema: b.frame.schema,
		series: b.frame.series,
		rowNum: b.frame.numRows - 1,
	}, nil
}

// NumRows returns the number of rows appended so far
func (b *buildableFrame) NumRows() int {
	return b.frame.numRows
}

// GetSchema returns the Schema of the DataFrame under construction
func (b *buildableFrame) GetSchema() piper.Schema {
	return b.frame.schema.Clone()
}

// Build finalizes this BuildableDataFrame
func (b *buildableFrame) Build() (piper.DataFrame, error) {
	if b.built {
		return nil, fmt.Errorf("DataFrame has already been built")
	}
	b.built = true
	return b.frame, nil
}
