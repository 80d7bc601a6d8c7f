// Package scanner enumerates ROM files and groups release variants of the
// same game.
//
// Every regular file under the source directory is visited unless its
// extension or a directory on its path below the source root is excluded.
// Files grouping to the same canonical key (normalized title + extension)
// land in one group, in discovery order; groups are returned in first-seen
// key order so a run's narrative is deterministic.
package scanner
