// Package snapshot reads and writes lz4-compressed binary snapshots of DataFrames.
// A snapshot stores a Schema followed by one typed, gob-encoded slice per column,
// and round trips every built-in column type including nil cells.
package snapshot

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"time"

	"github.com/pierrec/lz4"
	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/datasource"
	"github.com/thomascamminady/piper/schema"
)

const formatVersion = 1

type header struct {
	Version int
	NumRows int
	Names   []string
	Types   []string
	Formats []string
}

// Serializer reads and writes DataFrame snapshots. It implements
// both piper.DataSourceParser and piper.DataFrameWriter.
type Serializer struct {
	compressor         *lz4.Writer
	decompressor       *lz4.Reader
	reusableReadBuffer *bytes.Buffer
}

// CreateSerializer instantiates a new Serializer. A Serializer must not be used concurrently.
func CreateSerializer() *Serializer {
	return &Serializer{
		compressor:         lz4.NewWriter(new(bytes.Buffer)),
		decompressor:       lz4.NewReader(new(bytes.Buffer)),
		reusableReadBuffer: new(bytes.Buffer),
	}
}

// Write serializes and compresses a DataFrame to a write stream
func (s *Serializer) Write(w io.Writer, df piper.DataFrame) error {
	s.compressor.Reset(w)
	e := gob.NewEncoder(s.compressor)
	sch := df.GetSchema()
	h := header{
		Version: formatVersion,
		NumRows: df.NumRows(),
		Names:   sch.ColumnNames(),
	}
	colTypes := sch.ColumnTypes()
	for _, colType := range colTypes {
		h.Types = append(h.Types, colType.Name())
		format := ""
		if tct, ok := colType.(*piper.TimeColumnType); ok {
			format = tct.Format
		}
		h.Formats = append(h.Formats, format)
	}
	if err := e.Encode(h); err != nil {
		return err
	}
	for i, name := range h.Names {
		values, err := df.GetColumnValues(name)
		if err != nil {
			return err
		}
		nils := make([]bool, len(values))
		for j, v := range values {
			nils[j] = v == nil
		}
		if err := e.Encode(nils); err != nil {
			return err
		}
		typed, err := toTypedSlice(colTypes[i], values)
		if err != nil {
			return err
		}
		if err := e.Encode(typed); err != nil {
			return fmt.Errorf("Unable to encode column %s: %w", name, err)
		}
	}
	return s.compressor.Close()
}

// Parse decompresses and deserializes a DataFrame from a read stream. If a Schema is supplied,
// it must match the Schema stored in the snapshot.
func (s *Serializer) Parse(r io.Reader, expected piper.Schema) (piper.DataFrame, error) {
	s.decompressor.Reset(r)
	s.reusableReadBuffer.Reset()
	if _, err := s.reusableReadBuffer.ReadFrom(s.decompressor); err != nil {
		return nil, fmt.Errorf("Unable to decompress snapshot: %w", err)
	}
	d := gob.NewDecoder(s.reusableReadBuffer)
	var h header
	if err := d.Decode(&h); err != nil {
		return nil, err
	}
	if h.Version != formatVersion {
		return nil, fmt.Errorf("Unsupported snapshot version %d", h.Version)
	}
	if len(h.Types) != len(h.Names) || len(h.Formats) != len(h.Names) {
		return nil, fmt.Errorf("Corrupt snapshot header")
	}
	colTypes := make([]piper.ColumnType, len(h.Names))
	for i := range h.Names {
		colType, err := piper.ParseColumnType(h.Types[i], h.Formats[i])
		if err != nil {
			return nil, err
		}
		colTypes[i] = colType
	}
	sch, err := schema.CreateSchemaFrom(h.Names, colTypes)
	if err != nil {
		return nil, err
	}
	if expected != nil {
		if err := expected.Equals(sch); err != nil {
			return nil, fmt.Errorf("Snapshot does not match the expected Schema: %w", err)
		}
	}
	columns := make([][]interface{}, len(h.Names))
	for i, colType := range colTypes {
		var nils []bool
		if err := d.Decode(&nils); err != nil {
			return nil, err
		}
		values, err := decodeTypedSlice(d, colType, h.NumRows)
		if err != nil {
			return nil, fmt.Errorf("Unable to decode column %s: %w", h.Names[i], err)
		}
		if len(values) != h.NumRows || len(nils) != h.NumRows {
			return nil, fmt.Errorf("Column %s has %d values, expected %d", h.Names[i], len(values), h.NumRows)
		}
		for j, isNil := range nils {
			if isNil {
				values[j] = nil
			}
		}
		columns[i] = values
	}
	return datasource.CreateDataFrameFromColumns(sch, columns, h.NumRows)
}

// toTypedSlice converts column values into a slice of the column's Go type, with zero values in nil cells
func toTypedSlice(colType piper.ColumnType, values []interface{}) (interface{}, error) {
	switch colType.(type) {
	case *piper.BoolColumnType:
		res := make([]bool, len(values))
		for i, v := range values {
			if v != nil {
				res[i] = v.(bool)
			}
		}
		return res, nil
	case *piper.Int32ColumnType:
		res := make([]int32, len(values))
		for i, v := range values {
			if v != nil {
				res[i] = v.(int32)
			}
		}
		return res, nil
	case *piper.Int64ColumnType:
		res := make([]int64, len(values))
		for i, v := range values {
			if v != nil {
				res[i] = v.(int64)
			}
		}
		return res, nil
	case *piper.Float32ColumnType:
		res := make([]float32, len(values))
		for i, v := range values {
			if v != nil {
				res[i] = v.(float32)
			}
		}
		return res, nil
	case *piper.Float64ColumnType:
		res := make([]float64, len(values))
		for i, v := range values {
			if v != nil {
				res[i] = v.(float64)
			}
		}
		return res, nil
	case *piper.TimeColumnType:
		res := make([]time.Time, len(values))
		for i, v := range values {
			if v != nil {
				res[i] = v.(time.Time)
			}
		}
		return res, nil
	case *piper.VarStringColumnType:
		res := make([]string, len(values))
		for i, v := range values {
			if v != nil {
				res[i] = v.(string)
			}
		}
		return res, nil
	case *piper.VarFloat64ListColumnType:
		res := make([][]float64, len(values))
		for i, v := range values {
			if v != nil {
				res[i] = v.([]float64)
			}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("Snapshots do not support column type %T", colType)
	}
}

// decodeTypedSlice decodes a slice of the column's Go type, returning its elements as interface{} values
func decodeTypedSlice(d *gob.Decoder, colType piper.ColumnType, numRows int) ([]interface{}, error) {
	res := make([]interface{}, 0, numRows)
	switch colType.(type) {
	case *piper.BoolColumnType:
		var typed []bool
		if err := d.Decode(&typed); err != nil {
			return nil, err
		}
		for _, v := range typed {
			res = append(res, v)
		}
	case *piper.Int32ColumnType:
		var typed []int32
		if err := d.Decode(&typed); err != nil {
			return nil, err
		}
		for _, v := range typed {
			res = append(res, v)
		}
	case *piper.Int64ColumnType:
		var typed []int64
		if err := d.Decode(&typed); err != nil {
			return nil, err
		}
		for _, v := range typed {
			res = append(res, v)
		}
	case *piper.Float32ColumnType:
		var typed []float32
		if err := d.Decode(&typed); err != nil {
			return nil, err
		}
		for _, v := range typed {
			res = append(res, v)
		}
	case *piper.Float64ColumnType:
		var typed []float64
		if err := d.Decode(&typed); err != nil {
			return nil, err
		}
		for _, v := range typed {
			res = append(res, v)
		}
	case *piper.TimeColumnType:
		var typed []time.Time
		if err := d.Decode(&typed); err != nil {
			return nil, err
		}
		for _, v := range typed {
			res = append(res, v)
		}
	case *piper.VarStringColumnType:
		var typed []string
		if err := d.Decode(&typed); err != nil {
			return nil, err
		}
		for _, v := range typed {
			res = append(res, v)
		}
	case *piper.VarFloat64ListColumnType:
		var typed [][]float64
		if err := d.Decode(&typed); err != nil {
			return nil, err
		}
		for _, v := range typed {
			if v == nil {
				v = []float64{}
			}
			res = append(res, v)
		}
	default:
		return nil, fmt.Errorf("Snapshots do not support column type %T", colType)
	}
	return res, nil
}

// Write serializes a DataFrame as a snapshot, using a new Serializer
func Write(w io.Writer, df piper.DataFrame) error {
	return CreateSerializer().Write(w, df)
}

// Read deserializes a DataFrame from a snapshot, using a new Serializer
func Read(r io.Reader) (piper.DataFrame, error) {
	return CreateSerializer().Parse(r, nil)
}
