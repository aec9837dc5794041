package scaffold

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xylo-dev/webgen/internal/config"
	"github.com/xylo-dev/webgen/internal/templates"
	"go.uber.org/zap"
)

// CORSMarker must appear in the backend entrypoint; without it the
// entrypoint is replaced by the template.
const CORSMarker = "CORSMiddleware"

// StageBackend runs the backend generator and moves its output into
// baseDir/backend. If the generated entrypoint does not configure CORS it
// is overwritten wholesale with the template entrypoint.
func (s *Stager) StageBackend(ctx context.Context, baseDir string, _ *config.Project) (*Result, error) {
	result := &Result{BaseDir: baseDir}

	if err := s.generate(ctx, s.backend, baseDir, filepath.Join(baseDir, BackendDir), result); err != nil {
		return result, err
	}

	entry := templates.BackendEntrypoint
	mainPath := filepath.Join(baseDir, filepath.FromSlash(entry.Dest))

	content, err := os.ReadFile(mainPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		result.warn("generator did not produce %s; wrote template entrypoint", entry.Dest)
	case err != nil:
		return result, fmt.Errorf("reading %s: %w", mainPath, err)
	case bytes.Contains(content, []byte(CORSMarker)):
		s.logger.Debug("Backend entrypoint already configures CORS", zap.String("file", entry.Dest))
		return result, nil
	}

	if err := s.overlay(entry.Source, entry.Dest, baseDir); err != nil {
		return result, err
	}
	s.logger.Info("Replaced backend entrypoint with CORS-enabled template", zap.String("file", entry.Dest))
	result.Files = append(result.Files, entry.Dest)

	return result, nil
}
