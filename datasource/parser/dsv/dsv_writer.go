package dsv

import (
	"encoding/csv"
	"io"

	"github.com/thomascamminady/piper"
)

// Write serializes a DataFrame as DSV data, with a single header line naming the columns.
// Nil cells are written as the configured NilValue. Empty strings are indistinguishable from nil
// once written, and are read back as nil.
func (p *Parser) Write(w io.Writer, df piper.DataFrame) error {
	writer := csv.NewWriter(w)
	writer.Comma = p.conf.Delimiter
	schema := df.GetSchema()
	names := schema.ColumnNames()
	colTypes := schema.ColumnTypes()
	if err := writer.Write(names); err != nil {
		return err
	}
	record := make([]string, len(names))
	err := df.ForEachRow(func(row piper.Row) error {
		for i, name := range names {
			if row.IsNil(name) {
				record[i] = p.conf.NilValue
				continue
			}
			v, err := row.Get(name)
			if err != nil {
				return err
			}
			record[i] = colTypes[i].ToString(v)
		}
		if len(record) == 1 && record[0] == "" {
			// a blank line would be skipped by readers, losing the row
			writer.Flush()
			if err := writer.Error(); err != nil {
				return err
			}
			_, err := io.WriteString(w, "\"\"\n")
			return err
		}
		return writer.Write(record)
	})
	if err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// WriteDataFrame serializes a DataFrame as DSV data using the given configuration
func WriteDataFrame(w io.Writer, df piper.DataFrame, conf *ParserConf) error {
	return CreateParser(conf).Write(w, df)
}
