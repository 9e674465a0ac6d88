package ffmpeg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"shrink/internal/services"
)

func writeStub(t *testing.T, script string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ffmpeg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestRunSuccess(t *testing.T) {
	cli := NewCLI(WithBinary(writeStub(t, "exit 0\n")))
	if err := cli.Run(context.Background(), []string{"-i", "in.mp4", "out.mp4"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunSurfacesEngineOutput(t *testing.T) {
	cli := NewCLI(WithBinary(writeStub(t, "echo 'in.mp4: No such file or directory' >&2\nexit 1\n")))
	err := cli.Run(context.Background(), []string{"-i", "in.mp4", "out.mp4"})
	if !errors.Is(err, services.ErrEncode) {
		t.Fatalf("expected ErrEncode, got %v", err)
	}
	if !strings.Contains(err.Error(), "No such file or directory") {
		t.Fatalf("engine output missing from error: %v", err)
	}
}

func TestRunTimeout(t *testing.T) {
	cli := NewCLI(WithBinary(writeStub(t, "sleep 5\n")))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := cli.Run(ctx, []string{"-i", "in.mp4", "out.mp4"})
	if !errors.Is(err, services.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestRunRejectsEmptyArgs(t *testing.T) {
	cli := NewCLI()
	if err := cli.Run(context.Background(), nil); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestTailKeepsLastLines(t *testing.T) {
	out := []byte("banner\nconfig\nstream map\nframe info\nActual failure here")
	if got := tail(out); !strings.Contains(got, "Actual failure here") || strings.Contains(got, "banner") {
		t.Fatalf("unexpected tail: %q", got)
	}
	if got := tail(nil); got != "ffmpeg reported an error" {
		t.Fatalf("unexpected empty-output tail: %q", got)
	}
}
