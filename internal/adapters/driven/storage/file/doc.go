// Package file provides the filesystem FileSink. Inputs are read with a
// scoped handle; outputs are written to a temporary file in the destination
// directory and renamed over the destination only after a complete write.
package file
