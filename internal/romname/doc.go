// Package romname derives grouping identity and ranking data from ROM
// filenames.
//
// Normalize reduces a filename stem to the canonical lowercase title used to
// group release variants of the same game, stripping region/version tags in
// brackets, numeric list prefixes, and separator noise. Rank vectors encode
// which configured priority substrings appear in the raw filename so the best
// release of a group can be chosen by lexicographic comparison.
//
// Both operations are pure string transforms: Normalize is the grouping key,
// so any non-determinism here would split or merge groups incorrectly.
package romname
