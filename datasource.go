package piper

import "io"

// DataSourceParser is an interface defining the parsing of raw
// data into DataFrames. A parser which supports schema inference
// accepts a nil Schema.
type DataSourceParser interface {
	Parse(r io.Reader, schema Schema) (DataFrame, error) // Parse parses an entire stream of data into a DataFrame
}

// DataFrameWriter is an interface defining the serialization of DataFrames
type DataFrameWriter interface {
	Write(w io.Writer, df DataFrame) error // Write serializes an entire DataFrame to a stream
}

// DataSource is a source of data which will be parsed into one or more DataFrames
type DataSource interface {
	Analyze() (ChunkMap, error) // Analyze returns a ChunkMap, describing how the source data will be divided into chunks
	GetSchema() Schema          // GetSchema returns the Schema supplied for this DataSource, which is nil when it will be inferred
}

// ChunkMap is an iterator producing a sequence of ChunkLoaders
type ChunkMap interface {
	HasNext() bool     // HasNext returns true iff there is another ChunkLoader remaining
	Next() ChunkLoader // Next returns the next ChunkLoader
}

// ChunkLoader is capable of loading a single chunk of a DataSource (a file, or an in-memory buffer)
type ChunkLoader interface {
	ToString() string                                               // ToString returns a string representation of this ChunkLoader
	Name() string                                                   // Name identifies the chunk, for example by its path
	Load(parser DataSourceParser, schema Schema) (DataFrame, error) // Load parses this chunk into a DataFrame
}
