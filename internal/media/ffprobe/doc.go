// Package ffprobe performs metadata-only inspections of media files via
// the external ffprobe binary. The job runner uses it to look up durations
// for size-targeted encodes without decoding content.
package ffprobe
