// Package reveal opens the platform file browser at a given file.
package reveal

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"shrink/internal/services"
)

// commandContext allows tests to intercept command construction.
var commandContext = exec.CommandContext

// goos allows tests to exercise each platform branch.
var goos = runtime.GOOS

// InFileBrowser shows path in the OS file browser. On macOS and Windows the
// file itself is selected; Linux file managers lack a portable selection
// flag, so the containing directory is opened instead. The browser process
// is detached; its exit status is not observed.
func InFileBrowser(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return services.Wrap(services.ErrValidation, "reveal", "resolve path", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return services.Wrap(services.ErrValidation, "reveal", "stat path", abs, err)
	}

	var cmd *exec.Cmd
	switch goos {
	case "darwin":
		cmd = commandContext(ctx, "open", "-R", abs)
	case "windows":
		cmd = commandContext(ctx, "explorer", "/select,"+abs)
	default:
		cmd = commandContext(ctx, "xdg-open", filepath.Dir(abs))
	}

	if err := cmd.Start(); err != nil {
		return services.Wrap(services.ErrValidation, "reveal", "launch file browser", abs, err)
	}
	// Reap the process in the background so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}
