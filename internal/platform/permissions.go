package platform

import (
	"os"
	"runtime"
)

// Chmod applies the permission bits of mode to path, ignoring type bits so
// a mode taken from os.Stat of another file can be passed through. On
// Windows this is a no-op.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode.Perm())
}
