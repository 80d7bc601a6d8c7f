package cleaner

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"romsort/internal/logging"
	"romsort/internal/relocate"
)

const zipExt = ".zip"

// Stats summarizes one cleanup pass.
type Stats struct {
	Removed int
	Planned int
	Failed  int
}

// Cleaner deletes uncompressed duplicates of zipped ROMs.
type Cleaner struct {
	logger *slog.Logger
	mover  *relocate.Mover
}

// New constructs a cleaner that deletes through the given mover, inheriting
// its dry-run behavior.
func New(logger *slog.Logger, mover *relocate.Mover) *Cleaner {
	return &Cleaner{logger: logging.NewComponentLogger(logger, "cleaner"), mover: mover}
}

// Run walks sourceDir and removes every uncompressed file that shadows a
// ".zip" sibling in the same directory, except files with excluded
// extensions. Failures on individual files are logged and counted; they never
// abort the pass.
func (c *Cleaner) Run(sourceDir string, excludedExts map[string]struct{}) (Stats, error) {
	c.logger.Info("starting cleanup of unzipped duplicates")

	var stats Stats
	err := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.logger.Error("cleanup cannot read path", logging.String("path", path), logging.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		c.cleanDirectory(path, excludedExts, &stats)
		return nil
	})
	if err != nil {
		return stats, err
	}

	c.logger.Info("finished cleanup",
		logging.Int("removed", stats.Removed),
		logging.Int("planned", stats.Planned),
		logging.Int("failed", stats.Failed),
	)
	return stats, nil
}

// cleanDirectory handles one directory listing: no recursion, so duplicates
// only shadow zips within the same level of the tree.
func (c *Cleaner) cleanDirectory(dir string, excludedExts map[string]struct{}, stats *Stats) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		c.logger.Error("cleanup cannot list directory", logging.String("path", dir), logging.Error(err))
		return
	}

	zipStems := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.EqualFold(filepath.Ext(name), zipExt) {
			zipStems[strings.TrimSuffix(name, filepath.Ext(name))] = struct{}{}
		}
	}
	if len(zipStems) == 0 {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == zipExt {
			continue
		}
		if _, excluded := excludedExts[ext]; excluded {
			continue
		}
		if _, shadowed := zipStems[strings.TrimSuffix(name, filepath.Ext(name))]; !shadowed {
			continue
		}
		switch c.mover.Remove(filepath.Join(dir, name), "duplicate of .zip") {
		case relocate.OutcomeDone:
			stats.Removed++
		case relocate.OutcomePlanned:
			stats.Planned++
		case relocate.OutcomeFailed:
			stats.Failed++
		}
	}
}
