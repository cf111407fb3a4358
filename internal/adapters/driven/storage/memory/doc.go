// Package memory provides in-memory implementations of driven ports for
// tests and dry runs. Nothing touches the filesystem.
package memory
