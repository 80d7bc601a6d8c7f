package relocate

import (
	"errors"
	"log/slog"
	"os"
	"syscall"

	"romsort/internal/fileutil"
	"romsort/internal/logging"
)

// Outcome reports how a single move or delete ended.
type Outcome int

const (
	// OutcomeDone means the mutation was performed.
	OutcomeDone Outcome = iota
	// OutcomePlanned means dry run suppressed the mutation.
	OutcomePlanned
	// OutcomeSkipped means the destination was already occupied.
	OutcomeSkipped
	// OutcomeFailed means the underlying filesystem operation failed; the
	// failure is logged and the run continues.
	OutcomeFailed
)

// Mover performs (or, under dry run, narrates) file moves and deletes.
type Mover struct {
	logger *slog.Logger
	dryRun bool
}

// NewMover constructs a mover. A nil logger falls back to a no-op logger.
func NewMover(logger *slog.Logger, dryRun bool) *Mover {
	return &Mover{logger: logging.NewComponentLogger(logger, "relocate"), dryRun: dryRun}
}

// Move relocates src to dst. archive selects the action label used in log
// lines ("ARCHIVE" for losers, "MOVE" for winners). An occupied destination
// is skipped with a warning and src is left untouched.
func (m *Mover) Move(src, dst string, archive bool) Outcome {
	action := "MOVE"
	if archive {
		action = "ARCHIVE"
	}

	if _, err := os.Stat(dst); err == nil {
		m.logger.Warn("skipping relocation: destination already exists",
			logging.String("action", action),
			logging.String("source", src),
			logging.String("destination", dst),
		)
		return OutcomeSkipped
	}

	if m.dryRun {
		m.logger.Info("dry run: relocation planned",
			logging.String("action", action),
			logging.String("source", src),
			logging.String("destination", dst),
		)
		return OutcomePlanned
	}

	m.logger.Info("relocating file",
		logging.String("action", action),
		logging.String("source", src),
		logging.String("destination", dst),
	)
	if err := m.move(src, dst); err != nil {
		m.logger.Error("relocation failed",
			logging.String("action", action),
			logging.String("source", src),
			logging.String("destination", dst),
			logging.Error(err),
		)
		return OutcomeFailed
	}
	return OutcomeDone
}

// Remove deletes path. reason appears in the log line so the narrative
// explains why the file went away.
func (m *Mover) Remove(path, reason string) Outcome {
	if m.dryRun {
		m.logger.Info("dry run: delete planned",
			logging.String("path", path),
			logging.String("reason", reason),
		)
		return OutcomePlanned
	}

	m.logger.Info("deleting file",
		logging.String("path", path),
		logging.String("reason", reason),
	)
	if err := os.Remove(path); err != nil {
		m.logger.Error("delete failed",
			logging.String("path", path),
			logging.Error(err),
		)
		return OutcomeFailed
	}
	return OutcomeDone
}

// move renames src to dst, falling back to verified copy + source removal
// when the rename crosses filesystems.
func (m *Mover) move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return err
	}
	if err := fileutil.CopyFileVerified(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		// The destination is complete; a lingering source is only noise.
		m.logger.Warn("failed to remove source after cross-device copy",
			logging.String("source", src),
			logging.Error(err),
		)
	}
	return nil
}
