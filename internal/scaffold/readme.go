package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/xylo-dev/webgen/internal/branding"
	"github.com/xylo-dev/webgen/internal/config"
	"github.com/xylo-dev/webgen/internal/templates"
)

// ReadmeFile is the README path relative to the project base directory.
const ReadmeFile = "README.md"

// ReadmeData holds the variables available to the README template.
type ReadmeData struct {
	BrandName string // e.g., "Acme"
	Generator string // e.g., "XyLo.Dev Web App Generator"
}

// WriteReadme renders the README template into baseDir/README.md,
// replacing any existing file.
func (s *Stager) WriteReadme(baseDir string, p *config.Project) error {
	tmplBytes, err := fs.ReadFile(s.templates, templates.ReadmePath)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", templates.ReadmePath, err)
	}

	tmpl, err := template.New(templates.ReadmePath).Parse(string(tmplBytes))
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", templates.ReadmePath, err)
	}

	data := ReadmeData{
		BrandName: p.Branding.Name,
		Generator: branding.DisplayName(),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template %s: %w", templates.ReadmePath, err)
	}

	outPath := filepath.Join(baseDir, ReadmeFile)
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
