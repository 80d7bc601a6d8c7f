package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg, resolved, created, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Fatal("expected created flag for missing config")
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}

	want := Default()
	if cfg.SourceDir != want.SourceDir || cfg.LogLevel != want.LogLevel {
		t.Fatalf("config does not match defaults: %+v", cfg)
	}
	if len(cfg.RankingCriteria) != 1 || cfg.RankingCriteria[0] != "[!]" {
		t.Fatalf("unexpected ranking criteria: %v", cfg.RankingCriteria)
	}
}

func TestLoadWrittenDefaultsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if _, _, _, err := Load(path); err != nil {
		t.Fatal(err)
	}
	// Second load parses the file the first load wrote.
	cfg, _, created, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Fatal("second load must not rewrite the config")
	}
	want := Default()
	if cfg.DestinationDir != want.DestinationDir || cfg.ArchiveDir != want.ArchiveDir {
		t.Fatalf("round-tripped config mismatch: %+v", cfg)
	}
}

func TestLoadParsesValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := strings.Join([]string{
		"rom_source_dir: /data/roms",
		"rom_destination_dir: /data/sorted",
		"archive_dir: /data/archive",
		"log_file: /tmp/sorter.log",
		"log_level: DEBUG",
		"ranking_criteria: ['[!]', '(USA)']",
		"excluded_dirs: [images, manuals]",
		"excluded_extensions: [.png, .jpg, .txt]",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SourceDir != "/data/roms" {
		t.Fatalf("SourceDir = %q", cfg.SourceDir)
	}
	if len(cfg.RankingCriteria) != 2 || cfg.RankingCriteria[1] != "(USA)" {
		t.Fatalf("RankingCriteria = %v", cfg.RankingCriteria)
	}
	if len(cfg.ExcludedExtensions) != 3 {
		t.Fatalf("ExcludedExtensions = %v", cfg.ExcludedExtensions)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("rom_source_dir: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("rom_sourc_dir: ./roms\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing source", func(c *Config) { c.SourceDir = "" }},
		{"missing destination", func(c *Config) { c.DestinationDir = "" }},
		{"missing archive", func(c *Config) { c.ArchiveDir = "" }},
		{"missing log file", func(c *Config) { c.LogFile = "" }},
		{"invalid log level", func(c *Config) { c.LogLevel = "LOUD" }},
		{"empty criterion", func(c *Config) { c.RankingCriteria = []string{""} }},
		{"extension without dot", func(c *Config) { c.ExcludedExtensions = []string{"png"} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	valid := Default()
	if err := valid.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestExclusionSets(t *testing.T) {
	cfg := Config{
		ExcludedDirs:       []string{"Images", "MANUALS"},
		ExcludedExtensions: []string{".PNG", ".jpg"},
	}
	dirs := cfg.ExcludedDirSet()
	if _, ok := dirs["images"]; !ok {
		t.Fatalf("dir set not lowercased: %v", dirs)
	}
	exts := cfg.ExcludedExtensionSet()
	if _, ok := exts[".png"]; !ok {
		t.Fatalf("extension set not lowercased: %v", exts)
	}
}
