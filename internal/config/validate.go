package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEncoding(); err != nil {
		return err
	}
	if err := c.validateRecents(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateEncoding() error {
	if c.Encoding.EncodeTimeout < 0 {
		return errors.New("encoding.encode_timeout must be >= 0 (seconds, 0 disables)")
	}
	if c.Encoding.ProbeTimeout < 0 {
		return errors.New("encoding.probe_timeout must be >= 0 (seconds, 0 disables)")
	}
	if c.Encoding.DefaultCRF < 0 || c.Encoding.DefaultCRF > 51 {
		return errors.New("encoding.default_crf must be between 0 and 51")
	}
	return nil
}

func (c *Config) validateRecents() error {
	if c.Recents.PerDirectoryLimit <= 0 {
		return errors.New("recents.per_directory_limit must be positive")
	}
	if c.Recents.ThumbnailWidth <= 0 {
		return errors.New("recents.thumbnail_width must be positive")
	}
	if c.Recents.ThumbnailTimeout < 0 {
		return errors.New("recents.thumbnail_timeout must be >= 0 (seconds, 0 disables)")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
