package config

import "fmt"

// applyConfig lays parsed values on top of the defaults already in cfg.
func applyConfig(cfg *Config, path string, y yamlConfig) error {
	out := y.Badgewire.Output

	if out.Format != "" {
		format, err := ParseFormat(out.Format)
		if err != nil {
			return invalidField(path, "output.format", err.Error())
		}
		cfg.Output.Format = format
	}
	if out.Uppercase != nil {
		cfg.Output.Uppercase = *out.Uppercase
	}
	if out.Binary != nil {
		cfg.Output.Binary = *out.Binary
	}
	if y.Badgewire.Strict != nil {
		cfg.Strict = *y.Badgewire.Strict
	}

	return nil
}

func invalidField(path, field, msg string) error {
	return &LoadError{
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, ErrInvalidConfig),
	}
}
