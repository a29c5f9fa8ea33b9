// Package jsonl parses JSON Lines data. This parser uses https://github.com/tidwall/gjson to process data, and supports Schema column names formatted as gjson paths.
// A column name that matches a top-level key verbatim takes precedence over its reading as a path.
package jsonl
