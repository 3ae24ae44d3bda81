// Package filetimes wraps filesystem timestamp access behind the same
// read and dry-run-aware write shape the metadata store uses.
package filetimes
