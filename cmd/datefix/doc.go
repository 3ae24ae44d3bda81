// Command datefix infers missing image capture dates from filename and
// folder clues and reconciles embedded metadata with filesystem
// timestamps.
package main
