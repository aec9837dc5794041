package doctor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"time"

	"github.com/xylo-dev/webgen/internal/config"
	"github.com/xylo-dev/webgen/internal/generator"
	"github.com/xylo-dev/webgen/internal/platform"
	"github.com/xylo-dev/webgen/internal/templates"
)

// versionTimeout bounds a `<generator> --version` probe.
const versionTimeout = 10 * time.Second

// Requirement names a generator executable and an optional minimum version.
type Requirement struct {
	Role       string // "frontend" or "backend"
	Command    string
	MinVersion string
}

// Requirements returns the generator requirements from the user settings.
func Requirements() []Requirement {
	return []Requirement{
		{Role: "frontend", Command: config.Get(config.KeyFrontendGenerator), MinVersion: config.Get(config.KeyFrontendMinVersion)},
		{Role: "backend", Command: config.Get(config.KeyBackendGenerator), MinVersion: config.Get(config.KeyBackendMinVersion)},
	}
}

// CheckGenerators verifies each generator is on PATH and, when a minimum
// version is set, new enough. It returns the number of problems found.
func CheckGenerators(ctx context.Context, w io.Writer, reqs []Requirement) int {
	fmt.Fprintln(w, "Generator check:")

	problems := 0
	for _, req := range reqs {
		path, err := exec.LookPath(req.Command)
		if err != nil {
			fmt.Fprintf(w, "  [MISS] %s (%s generator) not found on PATH\n", req.Command, req.Role)
			problems++
			continue
		}
		if req.MinVersion == "" {
			fmt.Fprintf(w, "  [ OK ] %s found at %s\n", req.Command, path)
			continue
		}

		probeCtx, cancel := context.WithTimeout(ctx, versionTimeout)
		v, err := generator.Version(probeCtx, req.Command)
		cancel()
		if err != nil {
			fmt.Fprintf(w, "  [WARN] %s found at %s, version unknown: %v\n", req.Command, path, err)
			continue
		}

		ok, err := generator.MeetsMinimum(v, req.MinVersion)
		switch {
		case err != nil:
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", req.Command, err)
			problems++
		case !ok:
			fmt.Fprintf(w, "  [FAIL] %s %s is older than required %s\n", req.Command, v, req.MinVersion)
			problems++
		default:
			fmt.Fprintf(w, "  [ OK ] %s %s (>= %s)\n", req.Command, v, req.MinVersion)
		}
	}
	return problems
}

// CheckTemplates reports template files missing from fsys.
func CheckTemplates(w io.Writer, fsys fs.FS) int {
	fmt.Fprintln(w, "Template check:")

	missing := templates.Verify(fsys)
	for _, m := range missing {
		fmt.Fprintf(w, "  [MISS] %s\n", m)
	}
	if len(missing) == 0 {
		fmt.Fprintf(w, "  [ OK ] All %d template files present\n", len(templates.All()))
	}
	return len(missing)
}

// CheckProject validates the project configuration at path, or the
// default configuration in fsys when path is empty.
func CheckProject(w io.Writer, fsys fs.FS, path string) int {
	fmt.Fprintln(w, "Project config check:")

	var (
		p   *config.Project
		err error
	)
	if path == "" {
		p, err = config.DefaultProject(fsys)
	} else {
		p, err = config.LoadProject(path)
	}

	var ve *config.ValidationError
	switch {
	case errors.As(err, &ve):
		for _, issue := range ve.Issues {
			fmt.Fprintf(w, "  [FAIL] %s\n", issue)
		}
		return len(ve.Issues)
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		return 1
	case err != nil:
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 1
	}

	fmt.Fprintf(w, "  [ OK ] %s (brand %q)\n", p.Source, p.Branding.Name)
	return 0
}

// CheckSettings reports on the settings directory. When fix is true a
// missing directory is created.
func CheckSettings(w io.Writer, fix bool) int {
	fmt.Fprintln(w, "Settings check:")

	dir := config.Dir()
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist (defaults in use)\n", dir)
		if fix {
			if mkErr := config.EnsureDir(); mkErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not create %s: %v\n", dir, mkErr)
				return 1
			}
			fmt.Fprintf(w, "  [FIX ] Created %s\n", dir)
		}
		return 0
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", dir, err)
		return 1
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [WARN] %s exists but is not a directory\n", dir)
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", dir)
	return 0
}

// CheckSymlinks reports whether generator symlinks can be preserved.
func CheckSymlinks(w io.Writer) {
	fmt.Fprintln(w, "Platform check:")
	if platform.IsSymlinkSupported() {
		fmt.Fprintln(w, "  [ OK ] Symlinks supported")
		return
	}
	fmt.Fprintln(w, "  [WARN] Symlinks unavailable; generator links will be copied")
}
