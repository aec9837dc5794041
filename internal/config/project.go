package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/xylo-dev/webgen/internal/branding"
	"github.com/xylo-dev/webgen/internal/templates"
)

// Project is the configuration for one generation run. Only the brand name
// is interpreted; every other field is carried in Raw untouched.
type Project struct {
	Source   string
	Branding Branding
	Raw      map[string]interface{}
}

// Branding holds the recognized branding fields.
type Branding struct {
	Name string
}

// LoadProject reads, validates, and parses the project configuration at
// path. A missing file yields an error wrapping fs.ErrNotExist.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project config %s: %w", path, err)
	}
	return ParseProject(data, path)
}

// DefaultProject returns the project configuration shipped in the
// template set.
func DefaultProject(fsys fs.FS) (*Project, error) {
	data, err := fs.ReadFile(fsys, templates.DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("reading default project config: %w", err)
	}
	return ParseProject(data, templates.DefaultConfigPath)
}

// ParseProject validates data against the project schema and loads it.
// WEBGEN_BRANDING_NAME in the environment overrides branding.name.
func ParseProject(data []byte, source string) (*Project, error) {
	issues, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", source, err)
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Source: source, Issues: issues}
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}

	p := &Project{
		Source: source,
		Raw:    v.AllSettings(),
	}
	p.Branding.Name = v.GetString("branding.name")
	return p, nil
}
