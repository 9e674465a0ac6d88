package recents

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"shrink/internal/logging"
)

// videoExtensions lists the container extensions the scanner recognizes,
// matched case-insensitively.
var videoExtensions = map[string]struct{}{
	".mp4": {},
	".mov": {},
	".avi": {},
	".mkv": {},
}

// compressedMarker excludes shrink's own outputs from scans so compressed
// files do not reappear as fresh sources.
const compressedMarker = "compressed"

// Thumbnailer resolves a thumbnail image path for a video. Satisfied by
// thumbs.Cache.
type Thumbnailer interface {
	ThumbnailFor(ctx context.Context, videoPath string) (string, error)
}

// Scanner lists the most recently modified videos across all indexed
// directories.
type Scanner struct {
	index       *Index
	thumbs      Thumbnailer
	perDirLimit int
	logger      *slog.Logger
}

// NewScanner builds a scanner over the given index. perDirLimit bounds how
// many files each directory contributes, keeping thumbnail generation cost
// proportional to the number of directories rather than their size.
func NewScanner(index *Index, thumbs Thumbnailer, perDirLimit int, logger *slog.Logger) *Scanner {
	if perDirLimit <= 0 {
		perDirLimit = 3
	}
	return &Scanner{
		index:       index,
		thumbs:      thumbs,
		perDirLimit: perDirLimit,
		logger:      logging.WithComponent(logger, "recents"),
	}
}

// Scan returns recent video entries sorted most-recently-modified first,
// globally across all indexed directories. A directory that cannot be read
// is logged and skipped; the remaining directories still contribute.
// Thumbnail failures degrade to entries without a thumbnail.
func (s *Scanner) Scan(ctx context.Context) ([]FileEntry, error) {
	dirs, err := s.index.Directories(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]FileEntry, 0, len(dirs)*s.perDirLimit)
	for _, dir := range dirs {
		found, err := s.scanDirectory(dir)
		if err != nil {
			s.logger.Warn("skipping unreadable directory",
				logging.String("dir", dir),
				logging.Error(err))
			continue
		}
		entries = append(entries, found...)
	}

	sort.SliceStable(entries, func(a, b int) bool {
		if !entries[a].ModTime.Equal(entries[b].ModTime) {
			return entries[a].ModTime.After(entries[b].ModTime)
		}
		return entries[a].Path < entries[b].Path
	})

	s.resolveThumbnails(ctx, entries)

	for idx := range entries {
		entries[idx].ID = idx + 1
	}
	return entries, nil
}

func (s *Scanner) scanDirectory(dir string) ([]FileEntry, error) {
	listing, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	found := make([]FileEntry, 0, len(listing))
	for _, entry := range listing {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, ok := videoExtensions[strings.ToLower(filepath.Ext(name))]; !ok {
			continue
		}
		if strings.Contains(name, compressedMarker) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			s.logger.Warn("skipping unreadable file",
				logging.String("path", filepath.Join(dir, name)),
				logging.Error(err))
			continue
		}
		found = append(found, FileEntry{
			Path:     filepath.Join(dir, name),
			Folder:   filepath.Base(dir),
			Filename: name,
			Size:     info.Size(),
			ModTime:  info.ModTime(),
		})
	}

	sort.SliceStable(found, func(a, b int) bool {
		if !found[a].ModTime.Equal(found[b].ModTime) {
			return found[a].ModTime.After(found[b].ModTime)
		}
		return found[a].Path < found[b].Path
	})
	if len(found) > s.perDirLimit {
		found = found[:s.perDirLimit]
	}
	return found, nil
}

// resolveThumbnails fills in thumbnail paths for all entries. Generation
// for distinct videos is independent, so it runs in parallel; each write
// targets a distinct entry slot.
func (s *Scanner) resolveThumbnails(ctx context.Context, entries []FileEntry) {
	if s.thumbs == nil {
		return
	}
	var wg sync.WaitGroup
	for idx := range entries {
		wg.Add(1)
		go func(slot *FileEntry) {
			defer wg.Done()
			thumb, err := s.thumbs.ThumbnailFor(ctx, slot.Path)
			if err != nil {
				s.logger.Warn("thumbnail unavailable",
					logging.String("path", slot.Path),
					logging.Error(err))
				return
			}
			slot.Thumbnail = thumb
		}(&entries[idx])
	}
	wg.Wait()
}
