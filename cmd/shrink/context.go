package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"shrink/internal/api"
	"shrink/internal/config"
	"shrink/internal/encode"
	"shrink/internal/logging"
	"shrink/internal/media/ffprobe"
	"shrink/internal/recents"
	"shrink/internal/services/ffmpeg"
	"shrink/internal/store"
	"shrink/internal/thumbs"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withService builds the full service stack for one command invocation and
// tears it down afterwards.
func (c *commandContext) withService(fn func(*api.Service) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	settings, err := store.Open(cfg.StorePath())
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	defer settings.Close()

	engine := ffmpeg.NewCLI(ffmpeg.WithBinary(cfg.FFmpegBinary()))
	prober := ffprobe.Prober{Binary: cfg.FFprobeBinary()}

	index := recents.NewIndex(settings, cfg.LockPath(), logger)
	cache := thumbs.NewCache(engine, cfg.Paths.CacheDir, cfg.Recents.ThumbnailWidth, logger,
		thumbs.WithTimeout(time.Duration(cfg.Recents.ThumbnailTimeout)*time.Second))
	scanner := recents.NewScanner(index, cache, cfg.Recents.PerDirectoryLimit, logger)

	runner := encode.NewRunner(engine, prober, index, logger,
		encode.WithEncodeTimeout(time.Duration(cfg.Encoding.EncodeTimeout)*time.Second),
		encode.WithProbeTimeout(time.Duration(cfg.Encoding.ProbeTimeout)*time.Second))

	return fn(api.NewService(runner, scanner, index, logger))
}

// newLogger writes to the configured log file so command output stays
// machine-parseable on stdout.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	output, err := logging.OpenLogFile(cfg.LogPath())
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: output,
	})
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
