package file

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/datasource"
)

// DataSource is a set of files containing data which will be parsed into a DataFrame
type DataSource struct {
	glob   string
	schema piper.Schema
}

// CreateDataSource is a factory for DataSources
func CreateDataSource(glob string, schema piper.Schema) *DataSource {
	return &DataSource{glob, schema}
}

// CreateDataFrame parses each file matched by glob with the given parser and concatenates the results
func CreateDataFrame(glob string, parser piper.DataSourceParser, schema piper.Schema) (piper.DataFrame, error) {
	return datasource.Load(CreateDataSource(glob, schema), parser)
}

// Analyze returns a ChunkMap, describing how the source files will be divided into chunks
func (fs *DataSource) Analyze() (piper.ChunkMap, error) {
	matches, err := filepath.Glob(fs.glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("glob %s produced 0 files", fs.glob)
	}
	sort.Strings(matches)
	return &ChunkMap{
		files:  matches,
		source: fs,
	}, nil
}

// GetSchema returns the Schema supplied for this DataSource
func (fs *DataSource) GetSchema() piper.Schema {
	return fs.schema
}
