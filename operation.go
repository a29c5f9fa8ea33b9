package piper

// Pipe is a pure transformation from one DataFrame to another. A Pipe must not modify its input.
type Pipe func(df DataFrame) (DataFrame, error)

// MapOperation - A generic function for manipulating a copy of a Row in-place
type MapOperation func(row Row) error

// FilterOperation - A generic function for determining whether or not a Row should be retained
type FilterOperation func(row Row) (bool, error)

// ColumnOperation - A generic function for computing the value of a single cell from a Row. Returning a nil value produces a nil cell.
type ColumnOperation func(row Row) (interface{}, error)
