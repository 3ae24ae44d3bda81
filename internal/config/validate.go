package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFix(); err != nil {
		return err
	}
	if err := c.validateExiftool(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateFix() error {
	if c.Fix.FutureDays < 0 {
		return errors.New("fix.future_days must be zero or positive")
	}
	return nil
}

func (c *Config) validateExiftool() error {
	if c.Exiftool.Binary == "" {
		return errors.New("exiftool.binary must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
