package encode

import (
	"fmt"
	"strconv"
)

// Command is a fully resolved, engine-ready invocation. It is built once
// per job and never mutated afterwards; the runner appends rate-control
// options for size-targeted jobs before handing it to the engine.
type Command struct {
	Input   string
	Output  string
	Options []string
}

// Args flattens the command into the argument list passed to ffmpeg.
// Options sit between input and output so they apply to the output file.
func (c Command) Args() []string {
	args := make([]string, 0, len(c.Options)+3)
	args = append(args, "-i", c.Input)
	args = append(args, c.Options...)
	args = append(args, c.Output)
	return args
}

// withOptions returns a copy of the command with extra options appended.
func (c Command) withOptions(extra ...string) Command {
	options := make([]string, 0, len(c.Options)+len(extra))
	options = append(options, c.Options...)
	options = append(options, extra...)
	c.Options = options
	return c
}

// BuildCommand deterministically translates an intent into an encoder
// invocation. Each option is appended independently:
//
//   - resolution cap becomes a scale filter; -2 lets the engine derive an
//     even height that preserves aspect ratio
//   - frame rate cap becomes -r
//   - codec selection becomes -c:v
//   - constant quality becomes -crf
//
// Size-targeted rate control is deliberately absent here: the bitrate
// depends on a probed duration, so the job runner adds it (see Runner).
func BuildCommand(intent Intent) Command {
	cmd := Command{Input: intent.SourcePath, Output: intent.OutputPath}

	if intent.Width > 0 {
		height := "-2"
		if intent.Height > 0 {
			height = strconv.Itoa(intent.Height)
		}
		cmd = cmd.withOptions("-vf", fmt.Sprintf("scale=%d:%s", intent.Width, height))
	}
	if intent.FPS > 0 {
		cmd = cmd.withOptions("-r", strconv.Itoa(intent.FPS))
	}
	if intent.Codec != "" {
		cmd = cmd.withOptions("-c:v", string(intent.Codec))
	}
	if intent.Quality.Mode == RateConstantQuality {
		cmd = cmd.withOptions("-crf", strconv.Itoa(intent.Quality.CRF))
	}

	return cmd
}
