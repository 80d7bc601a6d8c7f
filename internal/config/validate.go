package config

import (
	"errors"
	"fmt"
	"strings"

	"romsort/internal/logging"
)

// Validate ensures the configuration is usable before any traversal starts.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SourceDir) == "" {
		return errors.New("rom_source_dir must be set")
	}
	if strings.TrimSpace(c.DestinationDir) == "" {
		return errors.New("rom_destination_dir must be set")
	}
	if strings.TrimSpace(c.ArchiveDir) == "" {
		return errors.New("archive_dir must be set")
	}
	if strings.TrimSpace(c.LogFile) == "" {
		return errors.New("log_file must be set")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	for _, criterion := range c.RankingCriteria {
		if criterion == "" {
			return errors.New("ranking_criteria entries must be non-empty")
		}
	}
	for _, ext := range c.ExcludedExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("excluded_extensions entry %q must include the leading dot", ext)
		}
	}
	return nil
}
