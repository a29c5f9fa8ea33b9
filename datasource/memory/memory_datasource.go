// Package memory provides a DataSource which parses in-memory buffers
package memory

import (
	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/datasource"
)

// DataSource is a set of buffers containing data which will be parsed into a DataFrame
type DataSource struct {
	data   [][]byte
	schema piper.Schema
}

// CreateDataSource is a factory for DataSources
func CreateDataSource(data [][]byte, schema piper.Schema) *DataSource {
	return &DataSource{data, schema}
}

// CreateDataFrame parses each buffer with the given parser and concatenates the results
func CreateDataFrame(data [][]byte, parser piper.DataSourceParser, schema piper.Schema) (piper.DataFrame, error) {
	return datasource.Load(CreateDataSource(data, schema), parser)
}

// Analyze returns a ChunkMap, describing how the source data will be divided into chunks
func (fs *DataSource) Analyze() (piper.ChunkMap, error) {
	return &ChunkMap{
		source: fs,
	}, nil
}

// GetSchema returns the Schema supplied for this DataSource
func (fs *DataSource) GetSchema() piper.Schema {
	return fs.schema
}
