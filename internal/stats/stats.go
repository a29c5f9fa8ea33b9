package stats

import (
	"sync"
	"time"
)

const statisticRollingWindows = 5

// RunStatistics contains statistics about a running piper pipeline. It is safe for concurrent use.
type RunStatistics struct {
	lock                   sync.Mutex
	started                bool
	finished               bool
	startTime              time.Time
	totalRuntime           time.Duration
	filesProcessed         int64
	rowsRead               int64
	rowsWritten            int64
	recentFileRuntimes     []time.Duration // for rolling average of recent file processing times
	recentFileRuntimesHead int
	pipeRuntimes           []time.Duration // summed over all files
	pipeRowsRemoved        []int64
}

// Start triggers statistics tracking, if it hasn't been started already
func (rs *RunStatistics) Start(numPipes int) {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	if !rs.started {
		rs.started = true
		rs.startTime = time.Now()
		rs.recentFileRuntimes = make([]time.Duration, statisticRollingWindows)
		rs.pipeRuntimes = make([]time.Duration, numPipes)
		rs.pipeRowsRemoved = make([]int64, numPipes)
	}
}

// Finish completes statistics tracking
func (rs *RunStatistics) Finish() {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	rs.totalRuntime = time.Since(rs.startTime)
	rs.finished = true
}

// EndPipe records a single application of the Pipe at index pidx
func (rs *RunStatistics) EndPipe(pidx int, runtime time.Duration, rowsIn int, rowsOut int) {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	rs.pipeRuntimes[pidx] += runtime
	rs.pipeRowsRemoved[pidx] += int64(rowsIn - rowsOut)
}

// EndFile records the processing of a single input
func (rs *RunStatistics) EndFile(runtime time.Duration, rowsRead int, rowsWritten int) {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	rs.recentFileRuntimes[rs.recentFileRuntimesHead] = runtime
	rs.recentFileRuntimesHead = (rs.recentFileRuntimesHead + 1) % len(rs.recentFileRuntimes)
	rs.filesProcessed++
	rs.rowsRead += int64(rowsRead)
	rs.rowsWritten += int64(rowsWritten)
}

// GetStartTime returns the start time of the pipeline
func (rs *RunStatistics) GetStartTime() time.Time {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.startTime
}

// GetRuntime returns the running time of the pipeline
func (rs *RunStatistics) GetRuntime() time.Duration {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	if rs.finished {
		return rs.totalRuntime
	}
	return time.Since(rs.startTime)
}

// GetNumFilesProcessed returns the number of inputs which have been processed so far
func (rs *RunStatistics) GetNumFilesProcessed() int64 {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.filesProcessed
}

// GetNumRowsRead returns the number of Rows which have been read from inputs so far
func (rs *RunStatistics) GetNumRowsRead() int64 {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.rowsRead
}

// GetNumRowsWritten returns the number of Rows which have been written to outputs so far
func (rs *RunStatistics) GetNumRowsWritten() int64 {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.rowsWritten
}

// GetCurrentFileProcessingTime returns a rolling average of file processing time
func (rs *RunStatistics) GetCurrentFileProcessingTime() time.Duration {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	var total time.Duration
	var count int64
	for _, d := range rs.recentFileRuntimes {
		if d > 0 {
			total += d
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / time.Duration(count)
}

// GetPipeRuntimes returns the total time spent in each Pipe, in pipeline order
func (rs *RunStatistics) GetPipeRuntimes() []time.Duration {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	res := make([]time.Duration, len(rs.pipeRuntimes))
	copy(res, rs.pipeRuntimes)
	return res
}

// GetPipeRowsRemoved returns the number of Rows removed by each Pipe, in pipeline order
func (rs *RunStatistics) GetPipeRowsRemoved() []int64 {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	res := make([]int64, len(rs.pipeRowsRemoved))
	copy(res, rs.pipeRowsRemoved)
	return res
}
