package memory

import "github.com/thomascamminady/piper"

// ChunkMap is an iterator producing a sequence of ChunkLoaders, one per buffer
type ChunkMap struct {
	idx    int
	source *DataSource
}

// HasNext returns true iff there is another ChunkLoader remaining
func (cm *ChunkMap) HasNext() bool {
	return cm.idx < len(cm.source.data)
}

// Next returns the next ChunkLoader
func (cm *ChunkMap) Next() piper.ChunkLoader {
	result := &ChunkLoader{idx: cm.idx, source: cm.source}
	cm.idx++
	return result
}
