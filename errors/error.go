package errors

import (
	"fmt"
)

// InvalidInputError occurs when a value passed to a Pipe is not a well-formed DataFrame
type InvalidInputError struct{ Reason string }

// Error returns a textual representation of this InvalidInputError
func (e InvalidInputError) Error() string {
	return fmt.Sprintf("Invalid input: %s", e.Reason)
}

// NilValueError occurs when a value in a Row is null
type NilValueError struct{ Name string }

// Error returns a textual representation of this NilValueError
func (e NilValueError) Error() string {
	return fmt.Sprintf("Value for column %s is nil", e.Name)
}

// MissingColumnError occurs when a column is referenced which does not exist in a Schema
type MissingColumnError struct{ Name string }

// Error returns a textual representation of this MissingColumnError
func (e MissingColumnError) Error() string {
	return fmt.Sprintf("Schema does not contain column with name %s", e.Name)
}

// DuplicateColumnError occurs when a column is defined with a name which already exists in a Schema
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Schema already contains column with name %s", e.Name)
}

// ColumnTypeError occurs when an operation is attempted on a column whose type does not support it
type ColumnTypeError struct {
	Name      string
	Type      string
	Operation string
}

// Error returns a textual representation of this ColumnTypeError
func (e ColumnTypeError) Error() string {
	return fmt.Sprintf("Column %s of type %s does not support %s", e.Name, e.Type, e.Operation)
}

// ConversionError occurs when a value cannot be converted to a target type
type ConversionError struct {
	Name   string
	Value  string
	Target string
}

// Error returns a textual representation of this ConversionError
func (e ConversionError) Error() string {
	return fmt.Sprintf("Column %s could not be converted to %s. Was: %q", e.Name, e.Target, e.Value)
}

// UnknownPipeError occurs when a Pipe is requested by a name which has not been registered
type UnknownPipeError struct{ Name string }

// Error returns a textual representation of this UnknownPipeError
func (e UnknownPipeError) Error() string {
	return fmt.Sprintf("No pipe registered with name %s", e.Name)
}
