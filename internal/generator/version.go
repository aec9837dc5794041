package generator

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var versionPattern = regexp.MustCompile(`v?\d+\.\d+(\.\d+)?([-+][0-9A-Za-z.-]+)?`)

// Version runs `<name> --version` and returns the first version number in
// its output.
func Version(ctx context.Context, name string) (*semver.Version, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("generator %q not found on PATH: %w", name, err)
	}

	out, err := exec.CommandContext(ctx, bin, "--version").CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("running %s --version: %w", name, err)
	}
	return ParseVersion(string(out))
}

// ParseVersion extracts the first version number from s. A leading "v" is
// tolerated.
func ParseVersion(s string) (*semver.Version, error) {
	match := versionPattern.FindString(s)
	if match == "" {
		return nil, fmt.Errorf("no version number in %q", strings.TrimSpace(s))
	}
	return semver.NewVersion(strings.TrimPrefix(match, "v"))
}

// MeetsMinimum reports whether found satisfies the minimum version min.
func MeetsMinimum(found *semver.Version, min string) (bool, error) {
	c, err := semver.NewConstraint(">= " + strings.TrimPrefix(min, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", min, err)
	}
	return c.Check(found), nil
}
