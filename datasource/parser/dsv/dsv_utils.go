package dsv

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/thomascamminady/piper"
)

// Parses a slice of strings into a Row, according to a schema
func scanRow(conf *ParserConf, names []string, colTypes []piper.ColumnType, rowStrings []string, row piper.Row) error {
	for i := 0; i < len(rowStrings); i++ {
		colVal := rowStrings[i]
		// check for a nil value
		if len(colVal) == 0 || colVal == conf.NilValue {
			continue // rows start out nil
		}
		var err error
		// otherwise, parse type
		switch colTypes[i].(type) {
		case *piper.BoolColumnType:
			bval, perr := strconv.ParseBool(colVal)
			if perr != nil {
				return perr
			}
			err = row.SetBool(names[i], bval)
		case *piper.Int32ColumnType:
			ival, perr := strconv.ParseInt(colVal, 10, 32)
			if perr != nil {
				return perr
			}
			err = row.SetInt32(names[i], int32(ival))
		case *piper.Int64ColumnType:
			ival, perr := strconv.ParseInt(colVal, 10, 64)
			if perr != nil {
				return perr
			}
			err = row.SetInt64(names[i], ival)
		case *piper.Float32ColumnType:
			fval, perr := strconv.ParseFloat(colVal, 32)
			if perr != nil {
				return perr
			}
			err = row.SetFloat32(names[i], float32(fval))
		case *piper.Float64ColumnType:
			fval, perr := strconv.ParseFloat(colVal, 64)
			if perr != nil {
				return perr
			}
			err = row.SetFloat64(names[i], fval)
		case *piper.TimeColumnType:
			format := colTypes[i].(*piper.TimeColumnType).Format
			if format == "" {
				format = time.RFC3339Nano
			}
			tval, perr := time.Parse(format, colVal)
			if perr != nil {
				return fmt.Errorf("Column %s could not be parsed as datetime with format %s. Was: %#v", names[i], format, colVal)
			}
			err = row.SetTime(names[i], tval)
		case *piper.VarStringColumnType:
			err = row.SetVarString(names[i], colVal)
		case *piper.VarFloat64ListColumnType:
			parts := strings.Split(colVal, "|")
			list := make([]float64, len(parts))
			for j, part := range parts {
				fval, perr := strconv.ParseFloat(part, 64)
				if perr != nil {
					return fmt.Errorf("Column %s could not be parsed as a list of floats. Was: %#v", names[i], colVal)
				}
				list[j] = fval
			}
			err = row.SetFloat64List(names[i], list)
		default:
			return fmt.Errorf("DSV parsing does not support column type %T", colTypes[i])
		}
		if err != nil {
			return err
		}
	}
	return nil
}
