package config

import "strings"

// normalize expands path fields and backfills empty strings with defaults.
// Numeric fields are left alone: Load decodes on top of Default(), so an
// absent key already carries its default and an explicit zero in the file
// (lossless default_crf, a disabled timeout) must survive.
func (c *Config) normalize() error {
	defaults := Default()

	if strings.TrimSpace(c.Paths.CacheDir) == "" {
		c.Paths.CacheDir = defaults.Paths.CacheDir
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaults.Paths.StateDir
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaults.Paths.LogDir
	}

	for _, field := range []*string{&c.Paths.CacheDir, &c.Paths.StateDir, &c.Paths.LogDir} {
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}

	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	c.Tools.FFprobe = strings.TrimSpace(c.Tools.FFprobe)

	if strings.TrimSpace(c.Logging.Format) == "" {
		c.Logging.Format = defaults.Logging.Format
	}
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = defaults.Logging.Level
	}

	return nil
}
