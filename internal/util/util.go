package util

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// GetTrace renders the stack of the function which called GetTrace's caller, omitting runtime frames.
// It is meant to be called from a deferred recover.
func GetTrace() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	var res strings.Builder
	for n > 0 {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			fmt.Fprintf(&res, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return res.String()
}

// FormatMultiError renders the errors collected in a multierror for logging, one numbered entry each.
// Continuation lines of multi-line errors (e.g. those carrying a Row or a trace) are indented.
func FormatMultiError(merr *multierror.Error) string {
	if merr == nil {
		return ""
	}
	var res strings.Builder
	for i, err := range merr.Errors {
		fmt.Fprintf(&res, "%d: %s\n", i+1, strings.ReplaceAll(err.Error(), "\n", "\n\t"))
	}
	return res.String()
}
