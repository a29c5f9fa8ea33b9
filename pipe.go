package piper

import (
	"fmt"

	"github.com/thomascamminady/piper/errors"
)

// Apply runs a chain of Pipes against a DataFrame, in order. Evaluation halts at the first
// Pipe which fails, and its error is returned unmodified along with a nil DataFrame.
func Apply(df DataFrame, pipes ...Pipe) (DataFrame, error) {
	if df == nil {
		return nil, errors.InvalidInputError{Reason: "DataFrame is nil"}
	}
	next := df
	for i, p := range pipes {
		if p == nil {
			return nil, errors.InvalidInputError{Reason: fmt.Sprintf("Pipe %d is nil", i)}
		}
		result, err := p(next)
		if err != nil {
			return nil, err
		}
		next = result
	}
	return next, nil
}

// Compose combines a chain of Pipes into a single Pipe
func Compose(pipes ...Pipe) Pipe {
	return func(df DataFrame) (DataFrame, error) {
		return Apply(df, pipes...)
	}
}
