package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig marks a config file whose contents fail validation.
var ErrInvalidConfig = errors.New("invalid config")

// LoadError wraps a config failure with the file it came from.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load config %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads the config file at path and applies its values over the
// defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &LoadError{Path: path, Err: err}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &LoadError{Path: path, Err: err}
	}

	if err := applyConfig(&cfg, path, y); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// DefaultPath returns the per-user config location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "badgewire", "badgewire.yaml"), nil
}

// Resolve loads the explicit path when one is given; failures there
// always surface. Otherwise it probes the default location, where a
// missing file simply yields the defaults.
func Resolve(explicit string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}

	path, err := DefaultPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return loadOptional(path)
}

// loadOptional treats a missing file as "use defaults". Any other
// failure, a broken file included, is reported.
func loadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}
