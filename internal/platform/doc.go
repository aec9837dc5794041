// Package platform provides cross-platform filesystem operations used when
// relocating generator output: permission changes and symlink handling. On
// Windows, symlinks fall back to file copies with a .target sidecar when
// developer mode is unavailable.
package platform
