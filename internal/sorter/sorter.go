package sorter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"romsort/internal/cleaner"
	"romsort/internal/config"
	"romsort/internal/logging"
	"romsort/internal/relocate"
	"romsort/internal/scanner"
	"romsort/internal/selector"
)

// Summary carries the counters reported at the end of a run.
type Summary struct {
	Groups            int
	SingleMoved       int
	WinnersMoved      int
	LosersArchived    int
	DuplicatesRemoved int
	DuplicatesPlanned int
	CollisionsSkipped int
	Failures          int
}

// Sorter owns one run of the pipeline.
type Sorter struct {
	cfg    *config.Config
	logger *slog.Logger
	dryRun bool
}

// New constructs a sorter. The logger is stamped with a fresh run ID so every
// line of one run can be correlated in the shared log file.
func New(cfg *config.Config, logger *slog.Logger, dryRun bool) *Sorter {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.String("run_id", uuid.NewString()))
	return &Sorter{cfg: cfg, logger: logger, dryRun: dryRun}
}

// Run executes the pipeline and returns the summary. Errors are only the
// fatal startup class; everything past startup degrades to logged, counted
// per-item failures.
func (s *Sorter) Run() (*Summary, error) {
	s.logger.Info("rom sorter starting", logging.Bool("dry_run", s.dryRun))

	info, err := os.Stat(s.cfg.SourceDir)
	if err != nil || !info.IsDir() {
		s.logger.Error("source directory not found", logging.String("path", s.cfg.SourceDir))
		return nil, fmt.Errorf("source directory not found: %s", s.cfg.SourceDir)
	}

	// Two concurrent runs over one tree would race each other's moves.
	lock := flock.New(s.cfg.LogFile + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another sorting run is already in progress (lock %s)", lock.Path())
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			s.logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	if !s.dryRun {
		for _, dir := range []string{s.cfg.DestinationDir, s.cfg.ArchiveDir} {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create directory %q: %w", dir, err)
			}
		}
	}

	excludedDirs := s.cfg.ExcludedDirSet()
	excludedExts := s.cfg.ExcludedExtensionSet()
	s.logger.Info("scanning for roms",
		logging.String("source", s.cfg.SourceDir),
		logging.Int("excluded_dirs", len(excludedDirs)),
		logging.Int("excluded_extensions", len(excludedExts)),
	)

	mover := relocate.NewMover(s.logger, s.dryRun)
	summary := &Summary{}

	cleanStats, err := cleaner.New(s.logger, mover).Run(s.cfg.SourceDir, excludedExts)
	if err != nil {
		return nil, fmt.Errorf("duplicate cleanup: %w", err)
	}
	summary.DuplicatesRemoved = cleanStats.Removed
	summary.DuplicatesPlanned = cleanStats.Planned
	summary.Failures += cleanStats.Failed

	groups, err := scanner.New(s.logger).Scan(s.cfg.SourceDir, excludedDirs, excludedExts)
	if err != nil {
		return nil, fmt.Errorf("scan source: %w", err)
	}
	summary.Groups = len(groups)

	sel := selector.New(s.logger, s.cfg.RankingCriteria)
	for _, group := range groups {
		s.processGroup(group, sel, mover, summary)
	}

	s.logger.Info("rom sorter finished",
		logging.Int("groups", summary.Groups),
		logging.Int("single_moved", summary.SingleMoved),
		logging.Int("winners_moved", summary.WinnersMoved),
		logging.Int("losers_archived", summary.LosersArchived),
		logging.Int("duplicates_removed", summary.DuplicatesRemoved),
		logging.Int("collisions_skipped", summary.CollisionsSkipped),
		logging.Int("failures", summary.Failures),
	)
	return summary, nil
}

func (s *Sorter) processGroup(group scanner.Group, sel *selector.Selector, mover *relocate.Mover, summary *Summary) {
	selection, ok := sel.Select(group)
	if !ok {
		// Unreachable for groups the scanner builds; kept as a guard.
		s.logger.Warn("could not determine a best version, skipping group",
			logging.String("group", group.Key.String()))
		return
	}

	if !selection.Ranked {
		s.logger.Info("found single version, moving to destination",
			logging.String("group", group.Key.String()))
	}

	target := filepath.Join(s.cfg.DestinationDir, filepath.Base(selection.Winner))
	switch mover.Move(selection.Winner, target, false) {
	case relocate.OutcomeDone, relocate.OutcomePlanned:
		if selection.Ranked {
			summary.WinnersMoved++
		} else {
			summary.SingleMoved++
		}
	case relocate.OutcomeSkipped:
		summary.CollisionsSkipped++
	case relocate.OutcomeFailed:
		summary.Failures++
	}

	for _, loser := range selection.Losers {
		archive := filepath.Join(s.cfg.ArchiveDir, filepath.Base(loser))
		switch mover.Move(loser, archive, true) {
		case relocate.OutcomeDone, relocate.OutcomePlanned:
			summary.LosersArchived++
		case relocate.OutcomeSkipped:
			summary.CollisionsSkipped++
		case relocate.OutcomeFailed:
			summary.Failures++
		}
	}
}
