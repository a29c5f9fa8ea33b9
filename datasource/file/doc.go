// Package file provides a DataSource which reads data from a set of files on disk, matched by a glob.
// Files are parsed in their entirety, in lexical order.
package file
