package encode

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"shrink/internal/logging"
	"shrink/internal/services"
)

// State tracks a compression job through its lifecycle.
type State int

const (
	StateBuilt State = iota
	StateRunning
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateBuilt:
		return "built"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Engine runs fully resolved encoder invocations.
type Engine interface {
	Run(ctx context.Context, args []string) error
}

// Prober looks up media duration without decoding content.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// DirectoryRecorder records a source directory for later recents scans.
// Satisfied by recents.Index.
type DirectoryRecorder interface {
	Record(ctx context.Context, dir string) error
}

// Result reports the terminal outcome of a compression job.
type Result struct {
	JobID  string
	State  State
	Output string
	// BitrateKbps is the planned rate-control target; zero for
	// constant-quality jobs.
	BitrateKbps int
	Elapsed     time.Duration
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithEncodeTimeout bounds each engine invocation. Zero disables the
// deadline.
func WithEncodeTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) { r.encodeTimeout = d }
}

// WithProbeTimeout bounds the duration probe. Zero disables the deadline.
func WithProbeTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) { r.probeTimeout = d }
}

// Runner drives compression jobs against the external engine. A single
// runner executes at most one job at a time; a second request while one is
// in flight fails with services.ErrBusy rather than queueing.
type Runner struct {
	engine  Engine
	prober  Prober
	recents DirectoryRecorder
	logger  *slog.Logger

	encodeTimeout time.Duration
	probeTimeout  time.Duration

	mu      sync.Mutex
	running bool
}

// NewRunner wires a job runner from its collaborators.
func NewRunner(engine Engine, prober Prober, recents DirectoryRecorder, logger *slog.Logger, opts ...RunnerOption) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &Runner{
		engine:  engine,
		prober:  prober,
		recents: recents,
		logger:  logging.WithComponent(logger, "encoder"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes a single compression job to completion or failure.
//
// The source directory is recorded in the recents index on every attempt,
// before the terminal state is reported, so a failed encode still marks
// the directory as one the user works in. A store failure there is logged
// and does not fail the job.
func (r *Runner) Run(ctx context.Context, intent Intent) (Result, error) {
	if err := intent.Normalize(); err != nil {
		return Result{State: StateFailed}, err
	}
	if err := intent.Validate(); err != nil {
		return Result{State: StateFailed}, err
	}

	if !r.acquire() {
		return Result{State: StateFailed}, services.Wrap(services.ErrBusy, "encoder", "start job", "", nil)
	}
	defer r.release()

	jobID := uuid.NewString()
	logger := r.logger.With(logging.String("job_id", jobID))
	result := Result{JobID: jobID, State: StateBuilt, Output: intent.OutputPath}

	cmd := BuildCommand(intent)
	r.recordDirectory(ctx, logger, intent.SourcePath)

	started := time.Now()
	logger.Info("compression started",
		logging.String("source", intent.SourcePath),
		logging.String("output", intent.OutputPath),
		logging.String("mode", modeLabel(intent.Quality.Mode)))

	if intent.Quality.Mode == RateTargetSize {
		kbps, err := r.planTargetBitrate(ctx, logger, intent)
		if err != nil {
			result.State = StateFailed
			return result, err
		}
		result.BitrateKbps = kbps
		// -y matches the original behaviour of overwriting a previous
		// size-targeted output in place.
		cmd = cmd.withOptions("-b:v", fmt.Sprintf("%dk", kbps), "-y")
	}

	result.State = StateRunning
	if err := r.invoke(ctx, cmd); err != nil {
		result.State = StateFailed
		result.Elapsed = time.Since(started)
		logger.Error("compression failed", logging.Error(err), logging.Duration("elapsed", result.Elapsed))
		return result, err
	}

	result.State = StateSucceeded
	result.Elapsed = time.Since(started)
	logger.Info("compression finished",
		logging.String("output", intent.OutputPath),
		logging.Duration("elapsed", result.Elapsed))
	return result, nil
}

func (r *Runner) planTargetBitrate(ctx context.Context, logger *slog.Logger, intent Intent) (int, error) {
	probeCtx := ctx
	if r.probeTimeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, r.probeTimeout)
		defer cancel()
	}

	duration, err := r.prober.Duration(probeCtx, intent.SourcePath)
	if err != nil {
		logger.Error("duration probe failed", logging.Error(err))
		return 0, err
	}

	kbps, err := PlanBitrate(duration, intent.Quality.TargetMegabytes)
	if err != nil {
		return 0, err
	}
	logger.Debug("bitrate planned",
		logging.Float64("duration_seconds", duration),
		logging.Float64("target_megabytes", intent.Quality.TargetMegabytes),
		logging.Int("bitrate_kbps", kbps))
	return kbps, nil
}

func (r *Runner) invoke(ctx context.Context, cmd Command) error {
	runCtx := ctx
	if r.encodeTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.encodeTimeout)
		defer cancel()
	}
	return r.engine.Run(runCtx, cmd.Args())
}

func (r *Runner) recordDirectory(ctx context.Context, logger *slog.Logger, sourcePath string) {
	if r.recents == nil {
		return
	}
	dir := filepath.Dir(sourcePath)
	if err := r.recents.Record(ctx, dir); err != nil {
		logger.Warn("failed to record recent directory",
			logging.String("dir", dir),
			logging.Error(err))
	}
}

func (r *Runner) acquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return false
	}
	r.running = true
	return true
}

func (r *Runner) release() {
	r.mu.Lock()
	r.running = false
	r.mu.Unlock()
}

func modeLabel(mode RateMode) string {
	if mode == RateTargetSize {
		return "target-size"
	}
	return "constant-quality"
}
