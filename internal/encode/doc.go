// Package encode translates user compression intent into ffmpeg
// invocations and runs them: a pure command builder, a bitrate planner for
// size-targeted jobs, and the single-job-at-a-time runner that drives the
// external engine.
package encode
