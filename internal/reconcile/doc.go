// Package reconcile decides, per file, which of the embedded capture
// date, the filesystem modification time, and a date inferred from the
// file or folder name should win, and applies the result.
//
// The order is fixed: filesystem sanity corrections first, then an
// existing embedded date wins outright, then filename and folder
// extraction fill the gap. An extracted date whose year matches the
// modification time promotes the modification time into the metadata;
// any other extracted date replaces both values.
package reconcile
