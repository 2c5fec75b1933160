// Package config loads operator preferences from .mvsform/config.yaml.
//
// The directory is discovered by walking up from the working directory, so a
// league's shared folder can carry its own settings; otherwise the config
// lives under the user's home directory. Environment variables with the
// MVSFORM_ prefix override file values (MVSFORM_BACKUPS_ENABLED=false, etc).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DirName is the dot-directory holding config.yaml, catalog.yaml and
	// metadata.json.
	DirName        = ".mvsform"
	ConfigFileName = "config.yaml"
)

// Known keys.
const (
	KeyBackupsEnabled = "backups.enabled"
	KeyBackupsDir     = "backups.dir"
	KeyAutosave       = "ui.autosave"
	KeyTheme          = "ui.theme"
)

var knownKeys = []string{
	KeyBackupsEnabled,
	KeyBackupsDir,
	KeyAutosave,
	KeyTheme,
}

// Config is the loaded configuration.
type Config struct {
	v   *viper.Viper
	dir string // directory holding (or destined to hold) config.yaml
}

// Load reads config.yaml from the nearest .mvsform directory, falling back
// to defaults when no file exists. Load never fails on a missing file; a
// malformed file is an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault(KeyBackupsEnabled, true)
	v.SetDefault(KeyBackupsDir, "")
	v.SetDefault(KeyAutosave, true)
	v.SetDefault(KeyTheme, "ayu")
	v.SetEnvPrefix("MVSFORM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	dir := findConfigDir()
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	return &Config{v: v, dir: dir}, nil
}

// Dir returns the active .mvsform directory.
func (c *Config) Dir() string { return c.dir }

// CatalogOverridePath is the expected location of the season price list.
func (c *Config) CatalogOverridePath() string {
	return filepath.Join(c.dir, "catalog.yaml")
}

func (c *Config) BackupsEnabled() bool { return c.v.GetBool(KeyBackupsEnabled) }
func (c *Config) BackupDir() string    { return c.v.GetString(KeyBackupsDir) }
func (c *Config) Autosave() bool       { return c.v.GetBool(KeyAutosave) }
func (c *Config) Theme() string        { return c.v.GetString(KeyTheme) }

// Get returns the string form of a key's value, and whether the key is
// known.
func (c *Config) Get(key string) (string, bool) {
	if !isKnownKey(key) {
		return "", false
	}
	return c.v.GetString(key), true
}

// All returns every known key and its effective value.
func (c *Config) All() map[string]string {
	out := make(map[string]string, len(knownKeys))
	for _, k := range knownKeys {
		out[k] = c.v.GetString(k)
	}
	return out
}

// Set stores a value and writes config.yaml, creating the .mvsform
// directory on first use.
func (c *Config) Set(key, value string) error {
	if !isKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(knownKeys, ", "))
	}
	c.v.Set(key, value)

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", c.dir, err)
	}
	path := filepath.Join(c.dir, ConfigFileName)
	c.v.SetConfigFile(path)
	if err := c.v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func isKnownKey(key string) bool {
	for _, k := range knownKeys {
		if k == key {
			return true
		}
	}
	return false
}

// findConfigDir walks up from the working directory looking for an existing
// .mvsform directory; when none exists it settles on $HOME/.mvsform.
func findConfigDir() string {
	if cwd, err := os.Getwd(); err == nil {
		for dir := cwd; ; dir = filepath.Dir(dir) {
			candidate := filepath.Join(dir, DirName)
			if info, err := os.Stat(candidate); err == nil && info.IsDir() {
				return candidate
			}
			if dir == filepath.Dir(dir) {
				break
			}
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DirName // relative fallback
	}
	return filepath.Join(home, DirName)
}
