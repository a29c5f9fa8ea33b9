package memory

import (
	"bytes"
	"fmt"

	"github.com/thomascamminady/piper"
)

// ChunkLoader is capable of loading a single buffer
type ChunkLoader struct {
	idx    int
	source *DataSource
}

// ToString returns a string representation of this ChunkLoader
func (cl *ChunkLoader) ToString() string {
	return fmt.Sprintf("Memory loader index: %d", cl.idx)
}

// Name identifies the buffer by its index
func (cl *ChunkLoader) Name() string {
	return fmt.Sprintf("buffer %d", cl.idx)
}

// Load parses the buffer into a DataFrame
func (cl *ChunkLoader) Load(parser piper.DataSourceParser, schema piper.Schema) (piper.DataFrame, error) {
	r := bytes.NewReader(cl.source.data[cl.idx])
	return parser.Parse(r, schema)
}
