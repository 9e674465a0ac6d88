package recents

import "time"

// FileEntry describes one recently modified video surfaced to the caller.
// Entries are produced fresh on every scan and never persisted; only the
// directory index survives restarts.
type FileEntry struct {
	// ID is a dense ordinal (1..N) assigned after the final cross-directory
	// sort. It keys UI rows and carries no identity across scans.
	ID       int       `json:"id"`
	Path     string    `json:"path"`
	Folder   string    `json:"folder"`
	Filename string    `json:"filename"`
	Size     int64     `json:"size"`
	ModTime  time.Time `json:"mtime"`
	// Thumbnail is empty when generation failed for this file.
	Thumbnail string `json:"thumbnail,omitempty"`
}
