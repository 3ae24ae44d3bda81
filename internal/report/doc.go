// Package report collects run counters and renders the end-of-run
// summary.
package report
