// Package api exposes the application-level operations the CLI drives:
// compressing a video, listing recent files, and revealing outputs.
package api

import (
	"context"
	"log/slog"
	"time"

	"shrink/internal/encode"
	"shrink/internal/logging"
	"shrink/internal/recents"
	"shrink/internal/reveal"
)

// CompressResult is the terminal report for a compression request.
type CompressResult struct {
	JobID       string
	Success     bool
	Output      string
	BitrateKbps int
	Elapsed     time.Duration
}

// Service bundles the collaborators behind the user-facing operations.
type Service struct {
	runner  *encode.Runner
	scanner *recents.Scanner
	index   *recents.Index
	logger  *slog.Logger
}

// NewService wires the facade from its collaborators.
func NewService(runner *encode.Runner, scanner *recents.Scanner, index *recents.Index, logger *slog.Logger) *Service {
	return &Service{
		runner:  runner,
		scanner: scanner,
		index:   index,
		logger:  logging.WithComponent(logger, "api"),
	}
}

// Compress runs one compression job to completion. The error carries the
// failure cause; the result reports outcome details either way.
func (s *Service) Compress(ctx context.Context, intent encode.Intent) (CompressResult, error) {
	result, err := s.runner.Run(ctx, intent)
	return CompressResult{
		JobID:       result.JobID,
		Success:     err == nil && result.State == encode.StateSucceeded,
		Output:      result.Output,
		BitrateKbps: result.BitrateKbps,
		Elapsed:     result.Elapsed,
	}, err
}

// RecentFiles lists the most recently modified videos across all recorded
// directories, newest first, with thumbnails resolved.
func (s *Service) RecentFiles(ctx context.Context) ([]recents.FileEntry, error) {
	return s.scanner.Scan(ctx)
}

// RecentDirectories lists the recorded directories in insertion order.
func (s *Service) RecentDirectories(ctx context.Context) ([]string, error) {
	return s.index.Directories(ctx)
}

// ClearRecentDirectories empties the recent-directory index.
func (s *Service) ClearRecentDirectories(ctx context.Context) error {
	return s.index.Clear(ctx)
}

// Reveal shows path in the platform file browser.
func (s *Service) Reveal(ctx context.Context, path string) error {
	return reveal.InFileBrowser(ctx, path)
}
