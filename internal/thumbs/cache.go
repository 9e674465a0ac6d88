package thumbs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"shrink/internal/logging"
	"shrink/internal/services"
)

// Engine runs the external video tool. Satisfied by ffmpeg.CLI.
type Engine interface {
	Run(ctx context.Context, args []string) error
}

// Cache extracts and caches one thumbnail frame per video. A cached file is
// trusted forever; regeneration requires deleting the cache directory.
type Cache struct {
	engine  Engine
	dir     string
	width   int
	timeout time.Duration
	logger  *slog.Logger

	mu       sync.Mutex
	inflight map[string]*call
}

type call struct {
	done chan struct{}
	err  error
}

// Option adjusts cache construction.
type Option func(*Cache)

// WithTimeout bounds each extraction. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Cache) { c.timeout = timeout }
}

// NewCache builds a thumbnail cache rooted at dir, scaling frames to the
// given width.
func NewCache(engine Engine, dir string, width int, logger *slog.Logger, opts ...Option) *Cache {
	cache := &Cache{
		engine:   engine,
		dir:      dir,
		width:    width,
		logger:   logging.WithComponent(logger, "thumbs"),
		inflight: make(map[string]*call),
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache
}

// ThumbnailFor returns the cached thumbnail path for videoPath, extracting
// the first frame if no cached file exists yet. Concurrent requests for the
// same video share a single extraction.
func (c *Cache) ThumbnailFor(ctx context.Context, videoPath string) (string, error) {
	target, err := c.pathFor(videoPath)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(target); err == nil {
		return target, nil
	}

	c.mu.Lock()
	if pending, ok := c.inflight[target]; ok {
		c.mu.Unlock()
		select {
		case <-pending.done:
			if pending.err != nil {
				return "", pending.err
			}
			return target, nil
		case <-ctx.Done():
			return "", services.Wrap(services.ErrThumbnail, "thumbs", "await extraction", videoPath, ctx.Err())
		}
	}
	pending := &call{done: make(chan struct{})}
	c.inflight[target] = pending
	c.mu.Unlock()

	pending.err = c.extract(ctx, videoPath, target)
	close(pending.done)

	c.mu.Lock()
	delete(c.inflight, target)
	c.mu.Unlock()

	if pending.err != nil {
		return "", pending.err
	}
	return target, nil
}

// pathFor derives the cache file name for a video. The name keeps the
// human-readable stem and appends a hash of the absolute path, so two
// videos with the same basename in different directories never collide.
func (c *Cache) pathFor(videoPath string) (string, error) {
	abs, err := filepath.Abs(videoPath)
	if err != nil {
		return "", services.Wrap(services.ErrThumbnail, "thumbs", "resolve path", videoPath, err)
	}
	base := filepath.Base(abs)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(c.dir, fmt.Sprintf("%s-%s.jpg", stem, hex.EncodeToString(sum[:4]))), nil
}

func (c *Cache) extract(ctx context.Context, videoPath, target string) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return services.Wrap(services.ErrThumbnail, "thumbs", "create cache dir", c.dir, err)
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	// Extract to a temp name first so a half-written frame never becomes a
	// trusted cache entry.
	tmp := target + ".tmp"
	args := []string{
		"-ss", "0",
		"-i", videoPath,
		"-frames:v", "1",
		"-vf", fmt.Sprintf("scale=%d:-2", c.width),
		"-y",
		tmp,
	}
	started := time.Now()
	if err := c.engine.Run(ctx, args); err != nil {
		_ = os.Remove(tmp)
		return services.Wrap(services.ErrThumbnail, "thumbs", "extract frame", videoPath, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return services.Wrap(services.ErrThumbnail, "thumbs", "publish thumbnail", target, err)
	}
	c.logger.Debug("thumbnail extracted",
		logging.String("video", videoPath),
		logging.String("thumbnail", target),
		logging.Duration("elapsed", time.Since(started)))
	return nil
}
