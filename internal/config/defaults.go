package config

const (
	defaultCacheDir          = "~/.cache/shrink"
	defaultStateDir          = "~/.local/state/shrink"
	defaultLogDir            = "~/.local/state/shrink/logs"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultEncodeTimeout     = 7200
	defaultProbeTimeout      = 60
	defaultCRF               = 23
	defaultPerDirectoryLimit = 3
	defaultThumbnailWidth    = 1280
	defaultThumbnailTimeout  = 30
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CacheDir: defaultCacheDir,
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Encoding: Encoding{
			EncodeTimeout: defaultEncodeTimeout,
			ProbeTimeout:  defaultProbeTimeout,
			DefaultCRF:    defaultCRF,
		},
		Recents: Recents{
			PerDirectoryLimit: defaultPerDirectoryLimit,
			ThumbnailWidth:    defaultThumbnailWidth,
			ThumbnailTimeout:  defaultThumbnailTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
