package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckBinariesReportsMissing(t *testing.T) {
	results := CheckBinaries([]Requirement{
		{Name: "Missing", Command: "definitely-not-a-real-binary-7f3a"},
	})
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if results[0].Passed {
		t.Fatalf("missing binary reported as available: %+v", results[0])
	}
	if !strings.Contains(results[0].Detail, "not found") {
		t.Fatalf("unexpected detail: %q", results[0].Detail)
	}
}

func TestCheckBinariesFindsStub(t *testing.T) {
	dir := t.TempDir()
	stub := filepath.Join(dir, "ffmpeg")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", dir)

	results := CheckBinaries([]Requirement{{Name: "FFmpeg", Command: "ffmpeg"}})
	if !results[0].Passed {
		t.Fatalf("stub not found on PATH: %+v", results[0])
	}
	if results[0].Detail != stub {
		t.Fatalf("expected resolved path %q, got %q", stub, results[0].Detail)
	}
}

func TestCheckBinariesEmptyCommand(t *testing.T) {
	results := CheckBinaries([]Requirement{{Name: "Empty"}})
	if results[0].Passed {
		t.Fatal("empty command reported as available")
	}
}

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	if result := CheckDirectoryAccess("Cache directory", dir); !result.Passed {
		t.Fatalf("writable temp dir failed check: %+v", result)
	}

	missing := filepath.Join(dir, "missing")
	result := CheckDirectoryAccess("Cache directory", missing)
	if result.Passed {
		t.Fatalf("missing dir passed check: %+v", result)
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %q", result.Detail)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if result := CheckDirectoryAccess("Cache directory", file); result.Passed {
		t.Fatalf("regular file passed directory check: %+v", result)
	}
}
