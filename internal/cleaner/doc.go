// Package cleaner removes uncompressed ROM files shadowed by a compressed
// sibling.
//
// The pass runs before grouping and works one directory listing at a time:
// within each directory, any file whose stem matches a ".zip" sibling and
// whose extension is neither ".zip" nor excluded is deleted. Directories
// without a ".zip" file are left entirely alone, so an uncompressed ROM with
// no compressed counterpart is never removed.
package cleaner
