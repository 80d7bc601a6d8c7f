package sorter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"

	"romsort/internal/config"
	"romsort/internal/logging"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.SourceDir = filepath.Join(dir, "roms")
	cfg.DestinationDir = filepath.Join(dir, "sorted")
	cfg.ArchiveDir = filepath.Join(dir, "archive")
	cfg.LogFile = filepath.Join(dir, "rom_sorter.log")
	if err := os.MkdirAll(cfg.SourceDir, 0o755); err != nil {
		t.Fatal(err)
	}
	return &cfg
}

func writeRoms(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("rom"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestRunEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	writeRoms(t, cfg.SourceDir, "Game (USA).zip", "Game (USA).bin", "Game [!].zip")

	summary, err := New(cfg, logging.NewNop(), false).Run()
	if err != nil {
		t.Fatal(err)
	}

	// The .bin duplicate of a zip is removed by the cleaner.
	if summary.DuplicatesRemoved != 1 {
		t.Fatalf("duplicates removed = %d, want 1", summary.DuplicatesRemoved)
	}
	if exists(filepath.Join(cfg.SourceDir, "Game (USA).bin")) {
		t.Fatal("duplicate .bin survived the cleaner")
	}

	// The [!] dump outranks (USA) and wins the remaining group.
	if !exists(filepath.Join(cfg.DestinationDir, "Game [!].zip")) {
		t.Fatal("winner not moved to destination")
	}
	if !exists(filepath.Join(cfg.ArchiveDir, "Game (USA).zip")) {
		t.Fatal("loser not moved to archive")
	}
	if summary.WinnersMoved != 1 || summary.LosersArchived != 1 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestRunSingleVersionGoesToDestination(t *testing.T) {
	cfg := testConfig(t)
	writeRoms(t, cfg.SourceDir, "Lonely Game.zip")

	summary, err := New(cfg, logging.NewNop(), false).Run()
	if err != nil {
		t.Fatal(err)
	}
	if summary.SingleMoved != 1 || summary.WinnersMoved != 0 || summary.LosersArchived != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	if !exists(filepath.Join(cfg.DestinationDir, "Lonely Game.zip")) {
		t.Fatal("single version not in destination")
	}
	entries, err := os.ReadDir(cfg.ArchiveDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatal("single version must never reach the archive")
	}
}

func TestRunMissingSourceFails(t *testing.T) {
	cfg := testConfig(t)
	if err := os.RemoveAll(cfg.SourceDir); err != nil {
		t.Fatal(err)
	}

	if _, err := New(cfg, logging.NewNop(), false).Run(); err == nil {
		t.Fatal("expected error for missing source")
	}
	// Fatal startup: no directories are created.
	if exists(cfg.DestinationDir) || exists(cfg.ArchiveDir) {
		t.Fatal("directories created despite startup failure")
	}
}

func TestRunDryRunMutatesNothing(t *testing.T) {
	cfg := testConfig(t)
	writeRoms(t, cfg.SourceDir, "Game (USA).zip", "Game (USA).bin", "Game [!].zip")

	summary, err := New(cfg, logging.NewNop(), true).Run()
	if err != nil {
		t.Fatal(err)
	}

	// Same narrative counters as a live run, zero mutations.
	if summary.DuplicatesPlanned != 1 {
		t.Fatalf("duplicates planned = %d, want 1", summary.DuplicatesPlanned)
	}
	if summary.WinnersMoved != 1 || summary.LosersArchived != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	for _, name := range []string{"Game (USA).zip", "Game (USA).bin", "Game [!].zip"} {
		if !exists(filepath.Join(cfg.SourceDir, name)) {
			t.Fatalf("dry run touched %s", name)
		}
	}
	if exists(cfg.DestinationDir) || exists(cfg.ArchiveDir) {
		t.Fatal("dry run created output directories")
	}
}

func TestRunCollisionLeavesSource(t *testing.T) {
	cfg := testConfig(t)
	writeRoms(t, cfg.SourceDir, "Game.zip")
	if err := os.MkdirAll(cfg.DestinationDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.DestinationDir, "Game.zip"), []byte("occupied"), 0o644); err != nil {
		t.Fatal(err)
	}

	summary, err := New(cfg, logging.NewNop(), false).Run()
	if err != nil {
		t.Fatal(err)
	}
	if summary.CollisionsSkipped != 1 {
		t.Fatalf("collisions skipped = %d, want 1", summary.CollisionsSkipped)
	}
	if !exists(filepath.Join(cfg.SourceDir, "Game.zip")) {
		t.Fatal("source moved despite collision")
	}
	data, err := os.ReadFile(filepath.Join(cfg.DestinationDir, "Game.zip"))
	if err != nil || string(data) != "occupied" {
		t.Fatalf("destination overwritten: %q, %v", data, err)
	}
}

func TestRunExclusions(t *testing.T) {
	cfg := testConfig(t)
	writeRoms(t, cfg.SourceDir,
		"Game.zip",
		"cover.png",
		filepath.Join("images", "art.zip"),
	)

	summary, err := New(cfg, logging.NewNop(), false).Run()
	if err != nil {
		t.Fatal(err)
	}
	if summary.Groups != 1 {
		t.Fatalf("groups = %d, want 1", summary.Groups)
	}
	if !exists(filepath.Join(cfg.SourceDir, "cover.png")) {
		t.Fatal("excluded extension moved")
	}
	if !exists(filepath.Join(cfg.SourceDir, "images", "art.zip")) {
		t.Fatal("file in excluded directory moved")
	}
}

func TestRunLockContention(t *testing.T) {
	cfg := testConfig(t)
	writeRoms(t, cfg.SourceDir, "Game.zip")

	// Hold the lock the way a concurrent run would.
	held := flock.New(cfg.LogFile + ".lock")
	locked, err := held.TryLock()
	if err != nil {
		t.Fatal(err)
	}
	if !locked {
		t.Fatal("could not take the lock for the test")
	}

	if _, err := New(cfg, logging.NewNop(), true).Run(); err == nil {
		t.Fatal("expected error while another run holds the lock")
	}

	if err := held.Unlock(); err != nil {
		t.Fatal(err)
	}
	if _, err := New(cfg, logging.NewNop(), true).Run(); err != nil {
		t.Fatalf("run failed after lock release: %v", err)
	}
}
