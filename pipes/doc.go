// Package pipes provides a library of Pipes for cleaning up tabular activity data.
// Every Pipe validates its input, never modifies it, and can be chained with
// piper.Apply, piper.Compose or DataFrame.Pipe. Pipes can also be looked up by
// their snake_case names through a registry.
package pipes
