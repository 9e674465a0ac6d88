// Package recents maintains the persisted index of directories the user
// compresses from and scans them for the most recently modified videos.
package recents
