package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WEBGEN_HOME", dir)

	if got := Dir(); got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestSetAndGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "home")
	t.Setenv("WEBGEN_HOME", dir)

	Load()
	if got := Get(KeyFrontendGenerator); got != DefaultFrontendGenerator {
		t.Errorf("default %s = %q, want %q", KeyFrontendGenerator, got, DefaultFrontendGenerator)
	}

	if err := Set(KeyFrontendGenerator, "create-vite"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := Get(KeyFrontendGenerator); got != "create-vite" {
		t.Errorf("Get after Set = %q, want %q", got, "create-vite")
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatalf("settings file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("settings file is empty")
	}
}
