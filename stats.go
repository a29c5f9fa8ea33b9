package piper

import "time"

// RuntimeStatistics facilitates the retrieval of statistics about a running piper pipeline
type RuntimeStatistics interface {
	// GetStartTime returns the start time of the pipeline
	GetStartTime() time.Time
	// GetRuntime returns the running time of the pipeline
	GetRuntime() time.Duration
	// GetNumFilesProcessed returns the number of inputs which have been processed so far
	GetNumFilesProcessed() int64
	// GetNumRowsRead returns the number of Rows which have been read from inputs so far
	GetNumRowsRead() int64
	// GetNumRowsWritten returns the number of Rows which have been written to outputs so far
	GetNumRowsWritten() int64
	// GetCurrentFileProcessingTime returns a rolling average of the time taken to process an input
	GetCurrentFileProcessingTime() time.Duration
	// GetPipeRuntimes returns the total time spent in each Pipe, in pipeline order
	GetPipeRuntimes() []time.Duration
	// GetPipeRowsRemoved returns the number of Rows removed by each Pipe, in pipeline order
	GetPipeRowsRemoved() []int64
}
