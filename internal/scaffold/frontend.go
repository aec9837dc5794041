package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xylo-dev/webgen/internal/branding"
	"github.com/xylo-dev/webgen/internal/config"
	"github.com/xylo-dev/webgen/internal/templates"
	"go.uber.org/zap"
)

// StageFrontend runs the frontend generator, moves its output into
// baseDir/frontend, overlays the stylesheet and layout components, and
// brands the components with the project's brand name.
func (s *Stager) StageFrontend(ctx context.Context, baseDir string, p *config.Project) (*Result, error) {
	result := &Result{BaseDir: baseDir}

	if err := s.generate(ctx, s.frontend, baseDir, filepath.Join(baseDir, FrontendDir), result); err != nil {
		return result, err
	}

	for _, f := range templates.FrontendFiles {
		if err := s.overlay(f.Source, f.Dest, baseDir); err != nil {
			return result, err
		}
		result.Files = append(result.Files, f.Dest)

		if !f.Branded {
			continue
		}
		if err := ApplyBranding(filepath.Join(baseDir, filepath.FromSlash(f.Dest)), p.Branding.Name); err != nil {
			return result, err
		}
		s.logger.Debug("Applied branding", zap.String("file", f.Dest), zap.String("brand", p.Branding.Name))
	}

	return result, nil
}

// ApplyBranding replaces every occurrence of the placeholder brand in the
// file at path with brand.
func ApplyBranding(path, brand string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	content := strings.ReplaceAll(string(data), branding.PlaceholderBrand(), brand)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
