// Package sorter sequences a full sorting run.
//
// A run validates the source directory, takes the single-instance run lock,
// ensures the destination and archive directories exist (skipped under dry
// run), and then executes cleaner → scanner → selector → relocator in order,
// accumulating summary counters. Per-file failures are logged and counted;
// only the fatal startup class (missing source, lock contention) stops a run.
// Every run re-scans from scratch; nothing persists between runs except the
// log file.
package sorter
