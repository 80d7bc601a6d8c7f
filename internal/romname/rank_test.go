package romname

import "testing"

func TestRank(t *testing.T) {
	criteria := []string{"[!]", "(USA)", "(Rev 1)"}

	cases := []struct {
		filename string
		want     RankVector
	}{
		{"Game (USA) [!].zip", RankVector{1, 1, 0}},
		{"Game (USA).zip", RankVector{0, 1, 0}},
		{"Game (EU) (Rev 1).zip", RankVector{0, 0, 1}},
		{"Game.zip", RankVector{0, 0, 0}},
	}

	for _, tc := range cases {
		got := Rank(tc.filename, criteria)
		if got.Compare(tc.want) != 0 {
			t.Fatalf("Rank(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}

func TestRankMatchesRawName(t *testing.T) {
	// Criteria match against the raw filename, not the normalized stem.
	got := Rank("Game (USA) [!].zip", []string{"[!]"})
	if got[0] != 1 {
		t.Fatalf("expected tag match in raw filename, got %v", got)
	}
}

func TestRankVectorCompare(t *testing.T) {
	cases := []struct {
		a, b RankVector
		want int
	}{
		{RankVector{1}, RankVector{0}, 1},
		{RankVector{0}, RankVector{1}, -1},
		{RankVector{1, 0}, RankVector{1, 0}, 0},
		// Element 0 dominates later elements.
		{RankVector{1, 0}, RankVector{0, 1}, 1},
		{RankVector{0, 1, 1}, RankVector{1, 0, 0}, -1},
	}
	for _, tc := range cases {
		if got := tc.a.Compare(tc.b); got != tc.want {
			t.Fatalf("%v.Compare(%v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestRankVectorString(t *testing.T) {
	if got := (RankVector{1, 0, 1}).String(); got != "[1 0 1]" {
		t.Fatalf("String() = %q", got)
	}
}
