package main

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const timeRounding = 100 * time.Millisecond

var sizePrinter = message.NewPrinter(language.English)

// formatSize renders a byte count for table output. Megabytes and up get a
// unit suffix; small files show a grouped byte count.
func formatSize(bytes int64) string {
	const (
		kilobyte = 1 << 10
		megabyte = 1 << 20
		gigabyte = 1 << 30
	)
	switch {
	case bytes >= gigabyte:
		return fmt.Sprintf("%.2f GiB", float64(bytes)/float64(gigabyte))
	case bytes >= megabyte:
		return fmt.Sprintf("%.1f MiB", float64(bytes)/float64(megabyte))
	case bytes >= kilobyte:
		return fmt.Sprintf("%.1f KiB", float64(bytes)/float64(kilobyte))
	default:
		return sizePrinter.Sprintf("%d B", bytes)
	}
}
