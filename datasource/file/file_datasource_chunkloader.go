package file

import (
	"fmt"
	"os"

	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/logging"
	"go.uber.org/zap"
)

// ChunkLoader is capable of loading a single file
type ChunkLoader struct {
	path string
}

// CreateChunkLoader returns a ChunkLoader for a single file
func CreateChunkLoader(path string) *ChunkLoader {
	return &ChunkLoader{path: path}
}

// ToString returns a string representation of this ChunkLoader
func (cl *ChunkLoader) ToString() string {
	return fmt.Sprintf("File loader filename: %s", cl.path)
}

// Name returns the path of the file
func (cl *ChunkLoader) Name() string {
	return cl.path
}

// Load parses the file into a DataFrame
func (cl *ChunkLoader) Load(parser piper.DataSourceParser, schema piper.Schema) (piper.DataFrame, error) {
	f, err := os.Open(cl.path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.Logger().Warn("couldn't close file", zap.String("path", cl.path), zap.Error(err))
		}
	}()
	return parser.Parse(f, schema)
}
