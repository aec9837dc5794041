// Package templates provides the template files the stager overlays onto
// generated projects, the default project configuration, and the README
// template. They are embedded in the binary; an on-disk directory with the
// same layout can replace them.
package templates

import (
	"embed"
	"errors"
	"io/fs"
	"os"
)

//go:embed frontend backend default_config.json README.md.tmpl
var embedded embed.FS

// Template-relative paths of the non-overlay files.
const (
	DefaultConfigPath = "default_config.json"
	ReadmePath        = "README.md.tmpl"
)

// File describes one overlay file: where it lives in the template set and
// where it lands relative to the project base directory.
type File struct {
	Source  string // e.g., "frontend/src/styles/index.css"
	Dest    string // e.g., "frontend/src/index.css"
	Branded bool   // placeholder brand is replaced after copy
}

// FrontendFiles is the fixed frontend overlay set.
var FrontendFiles = []File{
	{Source: "frontend/src/styles/index.css", Dest: "frontend/src/index.css"},
	{Source: "frontend/src/components/layout/Header.jsx", Dest: "frontend/src/components/layout/Header.jsx", Branded: true},
	{Source: "frontend/src/components/layout/Header.css", Dest: "frontend/src/components/layout/Header.css"},
	{Source: "frontend/src/components/layout/Footer.jsx", Dest: "frontend/src/components/layout/Footer.jsx", Branded: true},
	{Source: "frontend/src/components/layout/Footer.css", Dest: "frontend/src/components/layout/Footer.css"},
}

// BackendEntrypoint is the CORS-enabled fallback for the generated backend
// entrypoint.
var BackendEntrypoint = File{Source: "backend/app/main.py", Dest: "backend/app/main.py"}

// Embedded returns the template set compiled into the binary.
func Embedded() fs.FS {
	return embedded
}

// Open returns the template set rooted at dir, or the embedded set when dir
// is empty.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return embedded, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: errors.New("not a directory")}
	}
	return os.DirFS(dir), nil
}

// All returns every file the stager reads from a template set.
func All() []string {
	paths := make([]string, 0, len(FrontendFiles)+2)
	for _, f := range FrontendFiles {
		paths = append(paths, f.Source)
	}
	return append(paths, BackendEntrypoint.Source, ReadmePath)
}

// Verify returns the template files missing from fsys, in All order.
func Verify(fsys fs.FS) []string {
	var missing []string
	for _, p := range All() {
		if _, err := fs.Stat(fsys, p); err != nil {
			missing = append(missing, p)
		}
	}
	return missing
}
