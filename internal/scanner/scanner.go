package scanner

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"romsort/internal/logging"
	"romsort/internal/romname"
)

// Group is a canonical key plus every file discovered under it, in discovery
// order.
type Group struct {
	Key   romname.Key
	Paths []string
}

// Scanner builds the grouping for one run.
type Scanner struct {
	logger *slog.Logger
}

// New constructs a scanner.
func New(logger *slog.Logger) *Scanner {
	return &Scanner{logger: logging.NewComponentLogger(logger, "scanner")}
}

// Scan walks sourceDir recursively and groups every non-excluded regular file
// by canonical key. Unreadable entries are logged and skipped; only a failure
// on the root itself is returned as an error.
func (s *Scanner) Scan(sourceDir string, excludedDirs, excludedExts map[string]struct{}) ([]Group, error) {
	groups := make(map[romname.Key]int)
	var ordered []Group

	root := filepath.Clean(sourceDir)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			s.logger.Error("scan cannot read path", logging.String("path", path), logging.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && isExcludedDir(d.Name(), excludedDirs) {
				s.logger.Debug("skipping excluded directory", logging.String("path", path))
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if _, excluded := excludedExts[ext]; excluded {
			s.logger.Debug("skipping excluded file type", logging.String("path", path))
			return nil
		}

		key := romname.KeyFor(path)
		idx, seen := groups[key]
		if !seen {
			idx = len(ordered)
			groups[key] = idx
			ordered = append(ordered, Group{Key: key})
		}
		ordered[idx].Paths = append(ordered[idx].Paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("scan complete", logging.Int("unique_games", len(ordered)))
	return ordered, nil
}

// isExcludedDir matches a directory name against the exclusion set
// case-insensitively. Exclusion applies per path segment below the source
// root, so pruning the directory prunes everything beneath it.
func isExcludedDir(name string, excludedDirs map[string]struct{}) bool {
	_, excluded := excludedDirs[strings.ToLower(name)]
	return excluded
}
