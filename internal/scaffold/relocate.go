package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xylo-dev/webgen/internal/platform"
)

// skippedNames are never carried over from generator output.
var skippedNames = map[string]bool{
	".DS_Store": true,
}

// relocate moves every entry of src into dst, merging directories and
// overwriting files that already exist, then removes src.
func relocate(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("reading generator output %s: %w", src, err)
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}

	for _, entry := range entries {
		if err := copyEntry(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name()), entry); err != nil {
			return err
		}
	}

	if err := os.RemoveAll(src); err != nil {
		return fmt.Errorf("removing staging directory %s: %w", src, err)
	}
	return nil
}

// copyDir recursively merges src into dst.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := copyEntry(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name()), entry); err != nil {
			return err
		}
	}
	return nil
}

func copyEntry(srcPath, dstPath string, entry os.DirEntry) error {
	if skippedNames[entry.Name()] {
		return nil
	}

	switch {
	case entry.Type()&os.ModeSymlink != 0:
		return copySymlink(srcPath, dstPath)
	case entry.IsDir():
		return copyDir(srcPath, dstPath)
	case entry.Type().IsRegular():
		return copyFile(srcPath, dstPath)
	}
	// Sockets, devices and pipes are not project content.
	return nil
}

// copyFile copies a single file, replacing dst and carrying src's
// permissions.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := removeLink(dst); err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, srcInfo.Mode().Perm()); err != nil {
		return err
	}
	// WriteFile keeps the mode of a file it overwrites.
	return platform.Chmod(dst, srcInfo.Mode())
}

// copySymlink recreates the link at src as dst with the same target.
func copySymlink(src, dst string) error {
	target, err := platform.ReadSymlinkTarget(src)
	if err != nil {
		return fmt.Errorf("reading link %s: %w", src, err)
	}
	info, err := os.Lstat(dst)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return err
	case info.IsDir():
		return fmt.Errorf("cannot replace directory %s with a link", dst)
	case info.Mode()&os.ModeSymlink != 0:
		if err := platform.RemoveSymlink(dst); err != nil {
			return err
		}
	default:
		if err := os.Remove(dst); err != nil {
			return err
		}
	}
	return platform.CreateSymlink(target, dst)
}

// removeLink removes dst if it is a symlink so writes do not follow it.
func removeLink(dst string) error {
	info, err := os.Lstat(dst)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return nil
	}
	return platform.RemoveSymlink(dst)
}
