package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/errors"
)

// column describes the index and type of a field in a Row.
type column struct {
	idx     int
	colType piper.ColumnType
}

// Clone returns a copy of this Column
func (c *column) Clone() piper.Column {
	return &column{c.idx, c.colType} // column types are stateless or immutable, so they may be shared
}

// Index returns the index of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// Type returns the ColumnType of this Column
func (c *column) Type() piper.ColumnType {
	return c.colType
}

// schema is an ordered mapping from column names to Columns.
// Every modification produces a fresh copy, so a schema can
// be shared safely between DataFrames.
type schema struct {
	names   []string
	columns map[string]*column
}

// CreateSchema is a factory for Schemas
func CreateSchema() piper.Schema {
	return &schema{
		names:   make([]string, 0),
		columns: make(map[string]*column),
	}
}

// CreateSchemaFrom builds a Schema from parallel slices of names and types
func CreateSchemaFrom(names []string, colTypes []piper.ColumnType) (piper.Schema, error) {
	if len(names) != len(colTypes) {
		return nil, fmt.Errorf("Cannot create Schema from %d names and %d types", len(names), len(colTypes))
	}
	s := CreateSchema()
	var err error
	for i, name := range names {
		s, err = s.CreateColumn(name, colTypes[i])
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Equals returns nil iff this and another Schema are equivalent
func (s *schema) Equals(otherSchema piper.Schema) error {
	if otherSchema == nil {
		return fmt.Errorf("Schema is nil")
	}
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	return s.ForEachColumn(func(name string, col piper.Column) error {
		otherCol, err := otherSchema.GetColumn(name)
		if err != nil {
			return err
		}
		if col.Index() != otherCol.Index() {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		if reflect.TypeOf(col.Type()) != reflect.TypeOf(otherCol.Type()) {
			return fmt.Errorf("Column %s types do not match", name)
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *schema) Clone() piper.Schema {
	newNames := make([]string, len(s.names))
	copy(newNames, s.names)
	newColumns := make(map[string]*column, len(s.columns))
	for k, v := range s.columns {
		newColumns[k] = &column{v.idx, v.colType}
	}
	return &schema{names: newNames, columns: newColumns}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.names)
}

// GetColumn returns the Column with the given name
func (s *schema) GetColumn(colName string) (piper.Column, error) {
	col, ok := s.columns[colName]
	if !ok {
		return nil, errors.MissingColumnError{Name: colName}
	}
	return col, nil
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, ok := s.columns[colName]
	return ok
}

// CreateColumn defines a new column at the end of the Schema
func (s *schema) CreateColumn(colName string, columnType piper.ColumnType) (piper.Schema, error) {
	if columnType == nil {
		return nil, fmt.Errorf("Column %s must have a type", colName)
	}
	if s.HasColumn(colName) {
		return nil, errors.DuplicateColumnError{Name: colName}
	}
	newSchema := s.Clone().(*schema)
	newSchema.columns[colName] = &column{len(newSchema.names), columnType}
	newSchema.names = append(newSchema.names, colName)
	return newSchema, nil
}

// RenameColumn renames a column within the Schema, keeping its position
func (s *schema) RenameColumn(oldName string, newName string) (piper.Schema, error) {
	col, ok := s.columns[oldName]
	if !ok {
		return nil, errors.MissingColumnError{Name: oldName}
	}
	if oldName == newName {
		return s.Clone(), nil
	}
	if s.HasColumn(newName) {
		return nil, errors.DuplicateColumnError{Name: newName}
	}
	newSchema := s.Clone().(*schema)
	delete(newSchema.columns, oldName)
	newSchema.columns[newName] = &column{col.idx, col.colType}
	newSchema.names[col.idx] = newName
	return newSchema, nil
}

// RemoveColumn removes a column from the Schema, shifting the indices of subsequent columns
func (s *schema) RemoveColumn(colName string) (piper.Schema, error) {
	if !s.HasColumn(colName) {
		return nil, errors.MissingColumnError{Name: colName}
	}
	newSchema := CreateSchema().(*schema)
	for _, name := range s.names {
		if name == colName {
			continue
		}
		newSchema.columns[name] = &column{len(newSchema.names), s.columns[name].colType}
		newSchema.names = append(newSchema.names, name)
	}
	return newSchema, nil
}

// ReplaceColumnType changes the type of a column, keeping its position
func (s *schema) ReplaceColumnType(colName string, columnType piper.ColumnType) (piper.Schema, error) {
	if columnType == nil {
		return nil, fmt.Errorf("Column %s must have a type", colName)
	}
	col, ok := s.columns[colName]
	if !ok {
		return nil, errors.MissingColumnError{Name: colName}
	}
	newSchema := s.Clone().(*schema)
	newSchema.columns[colName] = &column{col.idx, columnType}
	return newSchema, nil
}

// ColumnNames returns the names in the schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// ColumnTypes returns the types in the schema, in index order
func (s *schema) ColumnTypes() []piper.ColumnType {
	types := make([]piper.ColumnType, len(s.names))
	for i, name := range s.names {
		types[i] = s.columns[name].colType
	}
	return types
}

// ForEachColumn iterates over the columns in this Schema, in order of column index
func (s *schema) ForEachColumn(fn func(name string, col piper.Column) error) error {
	for _, name := range s.names {
		err := fn(name, s.columns[name])
		if err != nil {
			return err
		}
	}
	return nil
}

// ToString returns a string representation of this Schema
func (s *schema) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	for i, name := range s.names {
		if i > 0 {
			fmt.Fprint(&res, ", ")
		}
		fmt.Fprintf(&res, "%q: %s", name, s.columns[name].colType.Name())
	}
	fmt.Fprint(&res, "}")
	return res.String()
}
