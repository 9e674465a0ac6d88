package reveal

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"

	"shrink/internal/services"
)

func interceptCommands(t *testing.T) *[][]string {
	t.Helper()
	var captured [][]string
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		captured = append(captured, append([]string{name}, args...))
		return exec.CommandContext(ctx, "true")
	}
	t.Cleanup(func() { commandContext = original })
	return &captured
}

func setGOOS(t *testing.T, value string) {
	t.Helper()
	original := goos
	goos = value
	t.Cleanup(func() { goos = original })
}

func TestRevealLinuxOpensContainingDirectory(t *testing.T) {
	captured := interceptCommands(t)
	setGOOS(t, "linux")

	dir := t.TempDir()
	file := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := InFileBrowser(context.Background(), file); err != nil {
		t.Fatalf("InFileBrowser: %v", err)
	}
	want := []string{"xdg-open", dir}
	if len(*captured) != 1 || !reflect.DeepEqual((*captured)[0], want) {
		t.Fatalf("want %v, got %v", want, *captured)
	}
}

func TestRevealDarwinSelectsFile(t *testing.T) {
	captured := interceptCommands(t)
	setGOOS(t, "darwin")

	file := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := InFileBrowser(context.Background(), file); err != nil {
		t.Fatalf("InFileBrowser: %v", err)
	}
	want := []string{"open", "-R", file}
	if !reflect.DeepEqual((*captured)[0], want) {
		t.Fatalf("want %v, got %v", want, (*captured)[0])
	}
}

func TestRevealWindowsSelectsFile(t *testing.T) {
	captured := interceptCommands(t)
	setGOOS(t, "windows")

	file := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := InFileBrowser(context.Background(), file); err != nil {
		t.Fatalf("InFileBrowser: %v", err)
	}
	want := []string{"explorer", "/select," + file}
	if !reflect.DeepEqual((*captured)[0], want) {
		t.Fatalf("want %v, got %v", want, (*captured)[0])
	}
}

func TestRevealMissingPath(t *testing.T) {
	captured := interceptCommands(t)

	err := InFileBrowser(context.Background(), filepath.Join(t.TempDir(), "missing.mp4"))
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(*captured) != 0 {
		t.Fatalf("browser launched for missing path: %v", *captured)
	}
}
