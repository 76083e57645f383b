// Package config handles loading and validation of the shelf config file.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/tailscale/hujson"

	"github.com/NielsdaWheelz/shelf/internal/errors"
	"github.com/NielsdaWheelz/shelf/internal/fs"
)

// EnvPrefix is the prefix of environment overrides (SHELF_SVN, ...).
const EnvPrefix = "SHELF"

// Config represents the parsed and validated configuration.
type Config struct {
	Version    int    `mapstructure:"version"`
	Svn        string `mapstructure:"svn"`         // svn executable
	Diffstat   string `mapstructure:"diffstat"`    // diffstat executable; empty disables
	Editor     string `mapstructure:"editor"`      // log message editor command
	ShelvesDir string `mapstructure:"shelves_dir"` // relative to the wc root
}

// Default returns the built-in configuration used when config.json is missing.
func Default() Config {
	return Config{
		Version:    1,
		Svn:        "svn",
		Diffstat:   "diffstat",
		ShelvesDir: ".svn/shelves",
	}
}

// defaultValues returns Default keyed by config file field name.
func defaultValues() map[string]any {
	d := Default()
	return map[string]any{
		"version":     d.Version,
		"svn":         d.Svn,
		"diffstat":    d.Diffstat,
		"editor":      d.Editor,
		"shelves_dir": d.ShelvesDir,
	}
}

// Path returns the config file location.
//
// Resolution order:
//  1. flagPath (--config)
//  2. $SHELF_CONFIG
//  3. $XDG_CONFIG_HOME/shelf/config.json
//  4. ~/.config/shelf/config.json
func Path(getenv func(string) string, flagPath, homeDir string) string {
	if flagPath != "" {
		return flagPath
	}
	if p := getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p
	}
	if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "shelf", "config.json")
	}
	return filepath.Join(homeDir, ".config", "shelf", "config.json")
}

// Load reads the config file at path (JSON with comments and trailing commas
// allowed), then applies SHELF_* environment overrides.
// If the file is missing, returns defaults (plus env) with found=false.
// If the file exists but is invalid, returns E_INVALID_CONFIG.
func Load(filesystem fs.FS, path string) (Config, bool, error) {
	v := viper.New()
	for key, val := range defaultValues() {
		v.SetDefault(key, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	found := false
	data, err := filesystem.ReadFile(path)
	switch {
	case err == nil:
		found = true
		standardized, err := standardize(data, path)
		if err != nil {
			return Config{}, false, err
		}
		v.SetConfigType("json")
		if err := v.ReadConfig(bytes.NewReader(standardized)); err != nil {
			return Config{}, false, errors.WrapWithDetails(errors.EInvalidConfig, "failed to parse config", err,
				map[string]string{"path": path})
		}
	case os.IsNotExist(err):
	default:
		return Config{}, false, errors.WrapWithDetails(errors.EInvalidConfig, "failed to read config", err,
			map[string]string{"path": path})
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, false, errors.WrapWithDetails(errors.EInvalidConfig, "invalid config value", err,
			map[string]string{"path": path})
	}

	if err := Validate(cfg); err != nil {
		return Config{}, false, errors.WithDetail(err, "path", path)
	}
	return cfg, found, nil
}

// standardize converts JSONC to JSON and checks keys and value types.
func standardize(data []byte, path string) ([]byte, error) {
	details := map[string]string{"path": path}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, errors.NewWithDetails(errors.EInvalidConfig, "invalid json: "+err.Error(), details)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(standardized, &raw); err != nil {
		return nil, errors.NewWithDetails(errors.EInvalidConfig, "config must be a JSON object", details)
	}

	known := defaultValues()
	for key, val := range raw {
		if _, ok := known[key]; !ok {
			return nil, errors.NewWithDetails(errors.EInvalidConfig, "unknown field: "+key, details)
		}
		if string(bytes.TrimSpace(val)) == "null" {
			return nil, errors.NewWithDetails(errors.EInvalidConfig, key+" must not be null", details)
		}
		if key == "version" {
			var version float64
			if json.Unmarshal(val, &version) != nil || version != float64(int(version)) {
				return nil, errors.NewWithDetails(errors.EInvalidConfig, "version must be an integer", details)
			}
			continue
		}
		var s string
		if err := json.Unmarshal(val, &s); err != nil {
			return nil, errors.NewWithDetails(errors.EInvalidConfig, key+" must be a string", details)
		}
	}
	return standardized, nil
}

// Validate checks a loaded config and returns E_INVALID_CONFIG on failure.
func Validate(cfg Config) error {
	if cfg.Version != 1 {
		return errors.New(errors.EInvalidConfig, "version must be 1")
	}
	if cfg.Svn == "" {
		return errors.New(errors.EInvalidConfig, "svn must be a non-empty string")
	}
	if containsWhitespace(cfg.Svn) {
		return errors.New(errors.EInvalidConfig, "svn must be a single executable (no args); use a wrapper script")
	}
	if containsWhitespace(cfg.Diffstat) {
		return errors.New(errors.EInvalidConfig, "diffstat must be a single executable (no args); use a wrapper script")
	}

	dir := cfg.ShelvesDir
	if dir == "" {
		return errors.New(errors.EInvalidConfig, "shelves_dir must be a non-empty string")
	}
	if filepath.IsAbs(dir) || strings.HasPrefix(dir, "/") {
		return errors.New(errors.EInvalidConfig, "shelves_dir must be relative to the working copy root")
	}
	clean := filepath.ToSlash(filepath.Clean(dir))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return errors.New(errors.EInvalidConfig, "shelves_dir must stay inside the working copy")
	}
	return nil
}

func containsWhitespace(s string) bool {
	return strings.ContainsAny(s, " \t\n\r")
}
