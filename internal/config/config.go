package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed sample_config.yaml
var sampleConfig string

// DefaultPath is where configuration is looked up when no --config flag is
// given.
const DefaultPath = "config.yaml"

// Config encapsulates every knob of a sorting run. Loaded once per run and
// never mutated afterwards.
type Config struct {
	SourceDir          string   `yaml:"rom_source_dir"`
	DestinationDir     string   `yaml:"rom_destination_dir"`
	ArchiveDir         string   `yaml:"archive_dir"`
	LogFile            string   `yaml:"log_file"`
	LogLevel           string   `yaml:"log_level"`
	RankingCriteria    []string `yaml:"ranking_criteria"`
	ExcludedDirs       []string `yaml:"excluded_dirs"`
	ExcludedExtensions []string `yaml:"excluded_extensions"`
}

// Load reads and validates the configuration at path. A missing file
// self-heals: the default configuration is written to that path and used.
// The returned created flag reports whether that happened.
func Load(path string) (*Config, string, bool, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		return nil, "", false, err
	}

	created := false
	file, err := os.Open(resolved)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		if err := CreateSample(resolved); err != nil {
			return nil, "", false, err
		}
		created = true
		cfg := Default()
		if err := cfg.Validate(); err != nil {
			return nil, "", false, err
		}
		return &cfg, resolved, created, nil
	}
	defer file.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, "", false, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolved, created, nil
}

// CreateSample writes the annotated default configuration to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}

// ExcludedDirSet returns the excluded directory names lowercased for
// case-insensitive matching.
func (c *Config) ExcludedDirSet() map[string]struct{} {
	return lowerSet(c.ExcludedDirs)
}

// ExcludedExtensionSet returns the excluded extensions lowercased for
// case-insensitive matching.
func (c *Config) ExcludedExtensionSet() map[string]struct{} {
	return lowerSet(c.ExcludedExtensions)
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}

func expandPath(pathValue string) (string, error) {
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
