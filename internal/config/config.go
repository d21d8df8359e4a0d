package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/bayrell/baylang-cli/internal/branding"
	"github.com/bayrell/baylang-cli/internal/fetch"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyVueVersion    = "vue_version"
	KeyRuntimeURL    = "runtime_url"
	KeyFetchPolicy   = "fetch_policy"
	KeyPackageAssets = "package_assets"
)

// DefaultPackageAssets is where the runtime package ships its static assets,
// relative to the project root.
const DefaultPackageAssets = "vendor/bayrell/runtime/assets"

// Keys lists every key accepted by Set.
var Keys = []string{KeyVueVersion, KeyRuntimeURL, KeyFetchPolicy, KeyPackageAssets}

// Dir returns the path to the config directory. BAYLANG_HOME overrides the
// default of ~/.baylang/.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.baylang/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyVueVersion, branding.VueVersion())
	viper.SetDefault(KeyFetchPolicy, string(fetch.DefaultPolicy))
	viper.SetDefault(KeyPackageAssets, DefaultPackageAssets)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set validates and writes a config key-value pair, then saves the config file.
func Set(key, value string) error {
	if err := validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// RuntimeURL returns the URL of the vendored Vue runtime. An explicit
// runtime_url wins; otherwise the URL is built from vue_version.
func RuntimeURL() (string, error) {
	if u := Get(KeyRuntimeURL); u != "" {
		return u, nil
	}
	v := Get(KeyVueVersion)
	if v == "" {
		v = branding.VueVersion()
	}
	if err := ValidateVueVersion(v); err != nil {
		return "", err
	}
	return branding.VueURL(v), nil
}

// ValidateVueVersion checks that v is a semver version or constraint that
// unpkg can resolve (e.g. "3", "3.4", "^3.4.0", "3.4.21").
func ValidateVueVersion(v string) error {
	if _, err := semver.NewConstraint(v); err != nil {
		return fmt.Errorf("invalid %s %q: %w", KeyVueVersion, v, err)
	}
	return nil
}

func validate(key, value string) error {
	switch key {
	case KeyVueVersion:
		return ValidateVueVersion(value)
	case KeyFetchPolicy:
		if _, err := fetch.ParsePolicy(value); err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		return nil
	case KeyRuntimeURL, KeyPackageAssets:
		return nil
	}
	return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys, ", "))
}
