// Package config loads badgewire.yaml, the per-user file carrying
// default output preferences for the converter surfaces.
package config

import (
	"fmt"
	"strings"
)

// Config represents the badgewire configuration loaded from
// badgewire.yaml.
type Config struct {
	Output OutputConfig
	Strict bool
}

type OutputConfig struct {
	Format    OutputFormat
	Uppercase bool
	Binary    bool
}

// DefaultConfig provides the values used when badgewire.yaml is absent
// or partial.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{Format: FormatPretty},
	}
}

// OutputFormat selects how conversion results are printed.
type OutputFormat string

const (
	FormatPretty OutputFormat = "pretty"
	FormatJSON   OutputFormat = "json"
)

// ParseFormat normalizes and validates a format name.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPretty:
		return FormatPretty, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected pretty or json)", s)
	}
}
