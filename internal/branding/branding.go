// Package branding provides compile-time identity values for the CLI.
//
// Values come from the embedded branding.yaml; hard defaults cover a missing
// or empty file.
package branding

import (
	_ "embed"
	"fmt"
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
	CLIName        string   `yaml:"cli_name"`
	DisplayName    string   `yaml:"display_name"`
	Description    string   `yaml:"description"`
	HomeDir        string   `yaml:"home_dir"`
	EnvPrefix      string   `yaml:"env_prefix"`
	GoModule       string   `yaml:"go_module"`
	RuntimeVersion string   `yaml:"runtime_version"`
	VueVersion     string   `yaml:"vue_version"`
	VueURLTemplate string   `yaml:"vue_url_template"`
	Modules        []string `yaml:"modules"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:        "baylang",
			DisplayName:    "BayLang",
			Description:    "Project scaffolding and runtime glue for BayLang applications",
			HomeDir:        ".baylang",
			EnvPrefix:      "BAYLANG",
			GoModule:       "github.com/bayrell/baylang-cli",
			RuntimeVersion: "0.0.1",
			VueVersion:     "3",
			VueURLTemplate: "https://unpkg.com/vue@%s/dist/vue.runtime.global.prod.js",
			Modules:        []string{"App", "Runtime.Web", "Runtime.Widget"},
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "baylang").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "BayLang").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".baylang").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "BAYLANG").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// RuntimeVersion returns the version of the bundled runtime assets. It is
// appended to runtime script URLs as a cache buster.
func RuntimeVersion() string { load(); return defaults.RuntimeVersion }

// VueVersion returns the default Vue version constraint used in the runtime URL.
func VueVersion() string { load(); return defaults.VueVersion }

// VueURL returns the pinned Vue runtime URL for the given version constraint.
func VueURL(version string) string {
	load()
	return fmt.Sprintf(defaults.VueURLTemplate, version)
}

// Modules returns the default module list loaded into the runtime context.
func Modules() []string {
	load()
	return append([]string(nil), defaults.Modules...)
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "BAYLANG_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
