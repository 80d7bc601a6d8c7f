// Package relocate performs the gated filesystem mutations of a sorting run.
//
// Mover exposes move and delete operations that report an explicit Outcome
// (moved, planned, skipped, failed) instead of raising: the caller counts
// outcomes and the run never aborts because one file failed. Destination
// collisions are skipped with a warning and the source stays put. Under dry
// run every operation only narrates what it would have done.
//
// Moves are never partial: same-device moves rename atomically, cross-device
// moves copy with SHA256 verification and remove the source only after the
// copy checks out.
package relocate
