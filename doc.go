// Package piper contains the core components of piper, a library of small, composable
// transformations ("pipes") over columnar DataFrames. This root package defines the types
// which are employed when using and extending the library, and is an overview of its key concepts.
//
// A Pipe is a pure function from one DataFrame to another. Pipes are chained with
// DataFrame.Pipe, Apply or Compose, and evaluation halts at the first Pipe which fails.
package piper
