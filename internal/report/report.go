package report

import (
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"romsort/internal/scanner"
	"romsort/internal/sorter"
)

var titleCaser = cases.Title(language.Und)

// DisplayTitle renders a canonical group name for listings, e.g.
// "super mario bros" becomes "Super Mario Bros".
func DisplayTitle(name string) string {
	if name == "" {
		return "(untitled)"
	}
	return titleCaser.String(name)
}

// SummaryRows flattens run counters into label/value rows for rendering.
func SummaryRows(summary sorter.Summary) [][]string {
	return [][]string{
		{"Groups", strconv.Itoa(summary.Groups)},
		{"Single versions moved", strconv.Itoa(summary.SingleMoved)},
		{"Winners moved", strconv.Itoa(summary.WinnersMoved)},
		{"Losers archived", strconv.Itoa(summary.LosersArchived)},
		{"Duplicates removed", strconv.Itoa(summary.DuplicatesRemoved)},
		{"Collisions skipped", strconv.Itoa(summary.CollisionsSkipped)},
		{"Failures", strconv.Itoa(summary.Failures)},
	}
}

// GroupRows flattens scan groups into rows: display title, extension, member
// count, and the members' base names.
func GroupRows(groups []scanner.Group) [][]string {
	rows := make([][]string, 0, len(groups))
	for _, group := range groups {
		members := make([]string, 0, len(group.Paths))
		for _, path := range group.Paths {
			members = append(members, filepath.Base(path))
		}
		rows = append(rows, []string{
			DisplayTitle(group.Key.Name),
			group.Key.Ext,
			strconv.Itoa(len(group.Paths)),
			strings.Join(members, ", "),
		})
	}
	return rows
}
