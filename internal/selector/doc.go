// Package selector picks the best release variant within a group.
//
// A single-member group wins trivially without ranking. Multi-member groups
// are ranked by rank vector in discovery order; a later candidate replaces
// the running best only when its vector is strictly greater, so ties resolve
// to whichever candidate was enumerated first. That tie-break is an
// enumeration-order policy, not a semantic preference.
package selector
