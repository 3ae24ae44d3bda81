// Package logging assembles the structured slog loggers used across datefix.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and standardizes the attribute keys (component, file, extractor,
// value) that per-file decision logging relies on. A no-op logger is provided
// for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits lines with the same shape and routing.
package logging
