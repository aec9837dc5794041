package scaffold

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRelocateMovesEntries(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "demo")
	dst := filepath.Join(tmp, "frontend")

	writeTree(t, src, map[string]string{
		"package.json":        "{}",
		"src/App.jsx":         "app",
		"src/components/a.js": "a",
	})

	if err := relocate(src, dst); err != nil {
		t.Fatalf("relocate: %v", err)
	}

	for _, rel := range []string{"package.json", "src/App.jsx", "src/components/a.js"} {
		if _, err := os.Stat(filepath.Join(dst, filepath.FromSlash(rel))); err != nil {
			t.Errorf("%s not relocated: %v", rel, err)
		}
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("staging directory should be removed")
	}
}

func TestRelocateMergesAndOverwrites(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "demo")
	dst := filepath.Join(tmp, "backend")

	writeTree(t, dst, map[string]string{
		"app/existing.py": "keep",
		"app/main.py":     "old",
	})
	writeTree(t, src, map[string]string{
		"app/main.py":  "new",
		"app/extra.py": "extra",
	})

	if err := relocate(src, dst); err != nil {
		t.Fatalf("relocate: %v", err)
	}

	tests := map[string]string{
		"app/existing.py": "keep",
		"app/main.py":     "new",
		"app/extra.py":    "extra",
	}
	for rel, want := range tests {
		data, err := os.ReadFile(filepath.Join(dst, filepath.FromSlash(rel)))
		if err != nil {
			t.Errorf("reading %s: %v", rel, err)
			continue
		}
		if string(data) != want {
			t.Errorf("%s = %q, want %q", rel, data, want)
		}
	}
}

func TestRelocateMissingSource(t *testing.T) {
	tmp := t.TempDir()
	err := relocate(filepath.Join(tmp, "never-generated"), filepath.Join(tmp, "frontend"))
	if err == nil {
		t.Fatal("expected error for missing generator output")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should be a not-exist error, got: %v", err)
	}
}

func TestRelocateSkipsDSStore(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "demo")
	dst := filepath.Join(tmp, "frontend")
	writeTree(t, src, map[string]string{
		".DS_Store":     "",
		"src/.DS_Store": "",
		"src/App.jsx":   "app",
	})

	if err := relocate(src, dst); err != nil {
		t.Fatalf("relocate: %v", err)
	}

	for _, rel := range []string{".DS_Store", "src/.DS_Store"} {
		if _, err := os.Stat(filepath.Join(dst, filepath.FromSlash(rel))); err == nil {
			t.Errorf("%s should not be copied", rel)
		}
	}
}

func TestRelocatePreservesPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not supported on Windows")
	}
	tmp := t.TempDir()
	src := filepath.Join(tmp, "demo")
	dst := filepath.Join(tmp, "backend")

	writeTree(t, src, map[string]string{"scripts/start.sh": "#!/bin/sh\n"})
	if err := os.Chmod(filepath.Join(src, "scripts", "start.sh"), 0755); err != nil {
		t.Fatal(err)
	}
	// An existing non-executable file at the destination gets the new mode.
	writeTree(t, dst, map[string]string{"scripts/start.sh": "old"})

	if err := relocate(src, dst); err != nil {
		t.Fatalf("relocate: %v", err)
	}

	info, err := os.Stat(filepath.Join(dst, "scripts", "start.sh"))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0755 {
		t.Errorf("permissions = %o, want %o", perm, 0755)
	}
}

func TestRelocatePreservesSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require developer mode on Windows")
	}
	tmp := t.TempDir()
	src := filepath.Join(tmp, "demo")
	dst := filepath.Join(tmp, "frontend")

	target := filepath.Join("..", "vite", "bin", "vite.js")
	generate := func() {
		writeTree(t, src, map[string]string{"node_modules/vite/bin/vite.js": "run()"})
		binDir := filepath.Join(src, "node_modules", ".bin")
		if err := os.MkdirAll(binDir, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.Symlink(target, filepath.Join(binDir, "vite")); err != nil {
			t.Fatal(err)
		}
	}

	// The second run replaces the link left by the first.
	for run := 1; run <= 2; run++ {
		generate()
		if err := relocate(src, dst); err != nil {
			t.Fatalf("relocate (run %d): %v", run, err)
		}
	}

	link := filepath.Join(dst, "node_modules", ".bin", "vite")
	got, err := os.Readlink(link)
	if err != nil {
		t.Fatalf("relocated entry is not a symlink: %v", err)
	}
	if got != target {
		t.Errorf("link target = %q, want %q", got, target)
	}
	data, err := os.ReadFile(link)
	if err != nil {
		t.Fatalf("reading through link: %v", err)
	}
	if string(data) != "run()" {
		t.Errorf("link content = %q, want %q", data, "run()")
	}
}

func TestCopySymlinkReplacesExisting(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require developer mode on Windows")
	}
	tmp := t.TempDir()
	src := filepath.Join(tmp, "link")
	if err := os.Symlink("target.txt", src); err != nil {
		t.Fatal(err)
	}

	file := filepath.Join(tmp, "file")
	writeTree(t, tmp, map[string]string{"file": "regular"})
	if err := copySymlink(src, file); err != nil {
		t.Fatalf("replacing a regular file: %v", err)
	}
	if got, err := os.Readlink(file); err != nil || got != "target.txt" {
		t.Errorf("Readlink = %q, %v; want target.txt", got, err)
	}

	dir := filepath.Join(tmp, "dir")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := copySymlink(src, dir); err == nil {
		t.Error("replacing a directory with a link should fail")
	}
	if info, err := os.Lstat(dir); err != nil || !info.IsDir() {
		t.Errorf("directory should be left in place: %v", err)
	}
}
