package selector

import (
	"log/slog"
	"path/filepath"

	"romsort/internal/logging"
	"romsort/internal/romname"
	"romsort/internal/scanner"
)

// Selection is the outcome for one group: the winner moves to the
// destination, every loser moves to the archive.
type Selection struct {
	Winner string
	Losers []string
	Ranked bool
}

// Selector applies the configured ranking criteria to groups.
type Selector struct {
	logger   *slog.Logger
	criteria []string
}

// New constructs a selector for the given ordered criteria.
func New(logger *slog.Logger, criteria []string) *Selector {
	return &Selector{logger: logging.NewComponentLogger(logger, "selector"), criteria: criteria}
}

// Select picks the winner of a group. ok is false only for an empty group,
// which the scanner never produces; the branch exists as a defensive guard.
func (s *Selector) Select(group scanner.Group) (Selection, bool) {
	if len(group.Paths) == 0 {
		return Selection{}, false
	}
	if len(group.Paths) == 1 {
		return Selection{Winner: group.Paths[0]}, true
	}

	winner := ""
	var best romname.RankVector
	for _, path := range group.Paths {
		vector := romname.Rank(filepath.Base(path), s.criteria)
		s.logger.Debug("ranked candidate",
			logging.String("group", group.Key.String()),
			logging.String("file", filepath.Base(path)),
			logging.String("rank", vector.String()),
		)
		if winner == "" || vector.Compare(best) > 0 {
			winner = path
			best = vector
		}
	}

	selection := Selection{Winner: winner, Ranked: true}
	for _, path := range group.Paths {
		if path != winner {
			selection.Losers = append(selection.Losers, path)
		}
	}
	s.logger.Info("best version selected",
		logging.String("group", group.Key.String()),
		logging.String("winner", filepath.Base(winner)),
		logging.String("rank", best.String()),
	)
	return selection, true
}
