package piper

// A DataFrame is an immutable, in-memory table of
// named, typed columns of equal length. Every
// operation on a DataFrame produces a new one.
type DataFrame interface {
	GetSchema() Schema                                                                    // GetSchema returns a read-only copy of the Schema of a DataFrame
	NumRows() int                                                                         // NumRows returns the number of rows in a DataFrame, which is meaningful even when there are no columns
	NumColumns() int                                                                      // NumColumns returns the number of columns in a DataFrame
	GetRow(rowNum int) Row                                                                // GetRow returns a read-only view of a single row
	ForEachRow(fn func(row Row) error) error                                              // ForEachRow iterates over the rows of a DataFrame, in order
	NullCount(colName string) (int, error)                                                // NullCount returns the number of nil cells in the given column
	GetColumnValues(colName string) ([]interface{}, error)                                // GetColumnValues returns a copy of a column, with nil cells represented by nil
	MapRows(fn MapOperation) (DataFrame, error)                                           // MapRows produces a new DataFrame by running a MapOperation on a copy of each row
	FilterRows(fn FilterOperation) (DataFrame, error)                                     // FilterRows produces a new DataFrame containing the rows for which fn returns true, in their original order
	SelectColumns(colNames ...string) (DataFrame, error)                                  // SelectColumns produces a new DataFrame containing only the given columns, in the given order
	RemoveColumns(colNames ...string) (DataFrame, error)                                  // RemoveColumns produces a new DataFrame without the given columns
	RenameColumn(oldName string, newName string) (DataFrame, error)                       // RenameColumn produces a new DataFrame in which a column has been renamed
	WithColumn(colName string, colType ColumnType, fn ColumnOperation) (DataFrame, error) // WithColumn produces a new DataFrame in which a column has been added or replaced, computing each value with fn
	Pipe(pipes ...Pipe) (DataFrame, error)                                                // Pipe applies a chain of Pipes to this DataFrame
	Equals(other DataFrame) error                                                         // Equals returns nil iff this and another DataFrame have equal Schemas and equal cells
	Fingerprint() uint64                                                                  // Fingerprint returns a content hash of this DataFrame
	ToString() string                                                                     // ToString returns a string representation of this DataFrame
}

// BuildableDataFrame is a DataFrame which is still under construction. Rows are appended and then
// populated via the Row setters. Build finalizes it, after which it must no longer be modified.
type BuildableDataFrame interface {
	AppendEmptyRow() (Row, error) // AppendEmptyRow adds a row in which every cell is nil, returning it so it can be populated
	NumRows() int                 // NumRows returns the number of rows appended so far
	GetSchema() Schema            // GetSchema returns the Schema of the DataFrame under construction
	Build() (DataFrame, error)    // Build finalizes this BuildableDataFrame
}

// Validator is implemented by DataFrames which can check their own structural integrity.
// Pipes call Validate, when available, before operating on a DataFrame.
type Validator interface {
	Validate() error
}
