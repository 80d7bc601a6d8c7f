package romname

import "strings"

// RankVector encodes which ranking criteria appear in a filename, one 0/1
// element per criterion in configured order. Vectors built against the same
// criteria list compare lexicographically with element 0 most significant.
type RankVector []int

// Rank builds the rank vector for a raw (non-normalized) filename against the
// ordered criteria list. Each element is 1 iff the criterion occurs as a
// literal substring of the filename.
func Rank(filename string, criteria []string) RankVector {
	vector := make(RankVector, len(criteria))
	for i, criterion := range criteria {
		if strings.Contains(filename, criterion) {
			vector[i] = 1
		}
	}
	return vector
}

// Compare returns -1, 0, or 1 as v orders below, equal to, or above other.
// Both vectors must come from the same criteria list. Equal vectors are an
// explicit tie; callers resolve ties by enumeration order.
func (v RankVector) Compare(other RankVector) int {
	for i := range v {
		if i >= len(other) {
			break
		}
		switch {
		case v[i] > other[i]:
			return 1
		case v[i] < other[i]:
			return -1
		}
	}
	switch {
	case len(v) > len(other):
		return 1
	case len(v) < len(other):
		return -1
	}
	return 0
}

// String renders the vector for debug narration, e.g. "[1 0]".
func (v RankVector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, bit := range v {
		if i > 0 {
			b.WriteByte(' ')
		}
		if bit == 0 {
			b.WriteByte('0')
		} else {
			b.WriteByte('1')
		}
	}
	b.WriteByte(']')
	return b.String()
}
