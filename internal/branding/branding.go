// Package branding provides compile-time identity values for the generator.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes it into the binary. The placeholder brand is the literal token the
// shipped templates carry and that the stager replaces with the project's
// configured brand name.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	EnvPrefix        string `yaml:"env_prefix"`
	PlaceholderBrand string `yaml:"placeholder_brand"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:          "webgen",
			DisplayName:      "XyLo.Dev Web App Generator",
			Description:      "Generate a fullstack web application with XyLo.Dev branding",
			HomeDir:          ".webgen",
			EnvPrefix:        "WEBGEN",
			PlaceholderBrand: "XyLo.Dev",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "webgen").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".webgen").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "WEBGEN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// PlaceholderBrand returns the token shipped templates use in place of the
// project's brand name (e.g., "XyLo.Dev").
func PlaceholderBrand() string { load(); return defaults.PlaceholderBrand }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("config") → "WEBGEN_CONFIG".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
