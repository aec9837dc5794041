package scaffold

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xylo-dev/webgen/internal/config"
	"github.com/xylo-dev/webgen/internal/generator"
	"go.uber.org/zap"
)

// Project subdirectories.
const (
	FrontendDir = "frontend"
	BackendDir  = "backend"
)

// Result holds the outcome of a staging run.
type Result struct {
	BaseDir  string
	Files    []string // written by the stager, relative to BaseDir
	Warnings []string
}

func (r *Result) merge(other *Result) {
	if other == nil {
		return
	}
	r.Files = append(r.Files, other.Files...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

func (r *Result) warn(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Stager builds a project from generator output and a template set.
type Stager struct {
	templates fs.FS
	frontend  generator.Generator
	backend   generator.Generator
	logger    *zap.Logger
}

// New returns a Stager. A nil logger is replaced with a no-op logger.
func New(templates fs.FS, frontend, backend generator.Generator, logger *zap.Logger) *Stager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stager{
		templates: templates,
		frontend:  frontend,
		backend:   backend,
		logger:    logger,
	}
}

// CreateStructure creates appName and its frontend and backend
// subdirectories. Existing directories are not an error. It returns the
// absolute base directory.
func CreateStructure(appName string) (string, error) {
	baseDir, err := filepath.Abs(appName)
	if err != nil {
		return "", fmt.Errorf("resolving project directory %q: %w", appName, err)
	}

	for _, dir := range []string{baseDir, filepath.Join(baseDir, FrontendDir), filepath.Join(baseDir, BackendDir)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return baseDir, nil
}

// Run stages a complete project: structure, frontend, backend, README.
// Steps run in order and a failure leaves earlier steps' output in place.
func (s *Stager) Run(ctx context.Context, appName string, p *config.Project) (*Result, error) {
	baseDir, err := CreateStructure(appName)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Created project structure", zap.String("app", appName), zap.String("dir", baseDir))

	result := &Result{BaseDir: baseDir}

	fr, err := s.StageFrontend(ctx, baseDir, p)
	result.merge(fr)
	if err != nil {
		return result, fmt.Errorf("staging frontend: %w", err)
	}
	s.logger.Info("Frontend setup completed")

	br, err := s.StageBackend(ctx, baseDir, p)
	result.merge(br)
	if err != nil {
		return result, fmt.Errorf("staging backend: %w", err)
	}
	s.logger.Info("Backend setup completed")

	if err := s.WriteReadme(baseDir, p); err != nil {
		return result, err
	}
	result.Files = append(result.Files, ReadmeFile)

	return result, nil
}

// stagingPattern names the per-generator working directory created inside
// the project base directory.
const stagingPattern = ".stage-*"

// generate runs g inside a fresh staging directory under baseDir and moves
// its output into destDir. The staging directory never coincides with
// frontend/ or backend/, whatever the project is named, and is removed
// afterwards.
func (s *Stager) generate(ctx context.Context, g generator.Generator, baseDir, destDir string, result *Result) error {
	name := filepath.Base(baseDir)

	workDir, err := os.MkdirTemp(baseDir, stagingPattern)
	if err != nil {
		return fmt.Errorf("creating staging directory in %s: %w", baseDir, err)
	}
	defer os.RemoveAll(workDir)

	s.logger.Debug("Running generator", zap.String("dir", workDir), zap.String("name", name))
	out, err := g.Generate(ctx, workDir, name)
	if err != nil {
		return err
	}
	if out.Failed() {
		s.logger.Warn("Generator exited with non-zero status",
			zap.String("command", out.Command),
			zap.Int("exit_code", out.ExitCode))
		result.warn("%s exited with status %d", out.Command, out.ExitCode)
	}

	staging := filepath.Join(workDir, name)
	if err := relocate(staging, destDir); err != nil {
		return fmt.Errorf("relocating generator output: %w", err)
	}
	s.logger.Debug("Relocated generator output", zap.String("from", staging), zap.String("to", destDir))
	return nil
}

// overlay copies one template file to baseDir/dest.
func (s *Stager) overlay(source, dest, baseDir string) error {
	data, err := fs.ReadFile(s.templates, source)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", source, err)
	}

	outPath := filepath.Join(baseDir, filepath.FromSlash(dest))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
