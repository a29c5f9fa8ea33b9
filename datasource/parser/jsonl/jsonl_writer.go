package jsonl

import (
	"bufio"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/thomascamminady/piper"
)

// Write serializes a DataFrame as JSON lines, one object per row. Column names become top-level keys,
// datetime values are written as strings in their column's format and nil values are written as null.
// Non-finite floats are written as the strings "NaN", "Inf" and "-Inf".
func (p *Parser) Write(w io.Writer, df piper.DataFrame) error {
	out := bufio.NewWriter(w)
	schema := df.GetSchema()
	names := schema.ColumnNames()
	colTypes := schema.ColumnTypes()
	keys := make([][]byte, len(names))
	for i, name := range names {
		key, err := json.Marshal(name)
		if err != nil {
			return err
		}
		keys[i] = key
	}
	err := df.ForEachRow(func(row piper.Row) error {
		out.WriteByte('{')
		for i, name := range names {
			if i > 0 {
				out.WriteByte(',')
			}
			out.Write(keys[i])
			out.WriteByte(':')
			if row.IsNil(name) {
				out.WriteString("null")
				continue
			}
			v, err := row.Get(name)
			if err != nil {
				return err
			}
			encoded, err := encodeValue(colTypes[i], v)
			if err != nil {
				return err
			}
			out.Write(encoded)
		}
		out.WriteString("}\n")
		return nil
	})
	if err != nil {
		return err
	}
	return out.Flush()
}

// encodeValue renders a single non-nil cell as JSON. JSON has no literal for NaN or infinities,
// so non-finite floats are written as the strings "NaN", "Inf" and "-Inf", which the parser reads back.
func encodeValue(colType piper.ColumnType, v interface{}) ([]byte, error) {
	switch tv := v.(type) {
	case time.Time:
		return json.Marshal(colType.ToString(tv))
	case float64:
		return encodeFloat(tv, 64), nil
	case float32:
		return encodeFloat(float64(tv), 32), nil
	case []float64:
		encoded := []byte{'['}
		for i, f := range tv {
			if i > 0 {
				encoded = append(encoded, ',')
			}
			encoded = append(encoded, encodeFloat(f, 64)...)
		}
		return append(encoded, ']'), nil
	}
	return json.Marshal(v)
}

func encodeFloat(f float64, bitSize int) []byte {
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`)
	case math.IsInf(f, 1):
		return []byte(`"Inf"`)
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`)
	}
	return strconv.AppendFloat(nil, f, 'g', -1, bitSize)
}

// WriteDataFrame serializes a DataFrame as JSON lines
func WriteDataFrame(w io.Writer, df piper.DataFrame) error {
	return CreateParser(&ParserConf{}).Write(w, df)
}
