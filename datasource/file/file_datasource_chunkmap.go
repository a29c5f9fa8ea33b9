package file

import "github.com/thomascamminady/piper"

// ChunkMap is an iterator producing a sequence of ChunkLoaders, one per file
type ChunkMap struct {
	files  []string
	source *DataSource
}

// HasNext returns true iff there is another ChunkLoader remaining
func (cm *ChunkMap) HasNext() bool {
	return len(cm.files) > 0
}

// Next returns the next ChunkLoader for a file
func (cm *ChunkMap) Next() piper.ChunkLoader {
	result := CreateChunkLoader(cm.files[0])
	cm.files = cm.files[1:]
	return result
}
