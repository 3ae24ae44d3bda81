// Package metadata provides access to embedded image capture dates.
//
// The store keeps a single exiftool process alive for the length of a
// run so per-file reads and writes avoid process startup cost. JPEG and
// TIFF reads short-circuit to an in-process parser.
package metadata
