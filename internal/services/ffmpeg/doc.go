// Package ffmpeg wraps the external ffmpeg binary behind the Engine
// interface used by the job runner and the thumbnail cache.
package ffmpeg
