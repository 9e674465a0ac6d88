package recents

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"shrink/internal/logging"
	"shrink/internal/services"
)

// directoriesKey is the single settings-store key holding the index.
const directoriesKey = "recent_dirs"

const lockRetryDelay = 25 * time.Millisecond

// Settings is the persistence boundary for the index. Satisfied by
// store.Store.
type Settings interface {
	Get(ctx context.Context, key string, out any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// Index is the deduplicated, insertion-ordered set of directories the user
// has compressed from. Every read goes through the settings store; there
// is no in-memory copy to lose. Mutations are serialized by a process
// mutex plus a cross-process file lock, so two jobs finishing at once
// cannot drop each other's append.
type Index struct {
	settings Settings
	lock     *flock.Flock
	logger   *slog.Logger
	mu       sync.Mutex
}

// NewIndex wires the index to its settings store and lock file.
func NewIndex(settings Settings, lockPath string, logger *slog.Logger) *Index {
	return &Index{
		settings: settings,
		lock:     flock.New(lockPath),
		logger:   logging.WithComponent(logger, "recents"),
	}
}

// Record appends dir to the index if it is not already present.
// Membership is exact string equality on the absolute directory path; no
// normalization of trailing slashes or symlinks is attempted.
func (i *Index) Record(ctx context.Context, dir string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	locked, err := i.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return services.Wrap(services.ErrStore, "recents", "acquire index lock", "", err)
	}
	if !locked {
		return services.Wrap(services.ErrStore, "recents", "acquire index lock", "lock unavailable", nil)
	}
	defer func() {
		if unlockErr := i.lock.Unlock(); unlockErr != nil {
			i.logger.Warn("failed to release index lock", logging.Error(unlockErr))
		}
	}()

	dirs, err := i.load(ctx)
	if err != nil {
		return err
	}
	for _, existing := range dirs {
		if existing == dir {
			return nil
		}
	}
	dirs = append(dirs, dir)
	if err := i.settings.Set(ctx, directoriesKey, dirs); err != nil {
		return services.Wrap(services.ErrStore, "recents", "persist index", "", err)
	}
	i.logger.Debug("directory recorded", logging.String("dir", dir), logging.Int("total", len(dirs)))
	return nil
}

// Directories returns the indexed directories in insertion order. An index
// that has never been written reads as empty.
func (i *Index) Directories(ctx context.Context) ([]string, error) {
	return i.load(ctx)
}

// Clear irreversibly empties the index.
func (i *Index) Clear(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.settings.Set(ctx, directoriesKey, []string{}); err != nil {
		return services.Wrap(services.ErrStore, "recents", "clear index", "", err)
	}
	i.logger.Info("recent directories cleared")
	return nil
}

func (i *Index) load(ctx context.Context) ([]string, error) {
	var dirs []string
	if _, err := i.settings.Get(ctx, directoriesKey, &dirs); err != nil {
		return nil, services.Wrap(services.ErrStore, "recents", "load index", "", err)
	}
	return dirs, nil
}
