// Package walk traverses the target tree and hands each file to the
// reconciliation engine, applying exclusion and hidden-path rules
// along the way.
package walk
