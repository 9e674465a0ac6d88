package ffmpeg

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"shrink/internal/services"
)

var commandContext = exec.CommandContext

// Engine runs fully resolved encoder invocations. The production
// implementation shells out to ffmpeg; tests substitute fakes.
type Engine interface {
	Run(ctx context.Context, args []string) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if strings.TrimSpace(binary) != "" {
			c.binary = binary
		}
	}
}

// CLI wraps the ffmpeg command-line encoder.
type CLI struct {
	binary string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "ffmpeg"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Run executes ffmpeg with the given arguments and waits for completion.
// Engine output is folded into the returned error on failure so callers can
// surface it verbatim.
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return services.Wrap(services.ErrValidation, "ffmpeg", "run", "empty argument list", nil)
	}

	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
			return services.Wrap(services.ErrTimeout, "ffmpeg", "run", "invocation exceeded deadline", ctxErr)
		}
		return services.Wrap(services.ErrEncode, "ffmpeg", "run", tail(output), err)
	}
	return nil
}

// tail keeps the last few lines of engine output; ffmpeg prints the actual
// failure reason at the end of a long banner.
func tail(output []byte) string {
	text := strings.TrimSpace(string(output))
	if text == "" {
		return "ffmpeg reported an error"
	}
	lines := strings.Split(text, "\n")
	if len(lines) > 4 {
		lines = lines[len(lines)-4:]
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}

var _ Engine = (*CLI)(nil)
