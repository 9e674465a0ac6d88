package main

import (
	"strings"
	"testing"
)

func TestRenderTableIncludesHeadersAndCells(t *testing.T) {
	out := renderTable(
		[]string{"#", "File", "Size"},
		[][]string{{"1", "clip.mp4", "5.0 MiB"}},
		"#", "Size",
	)
	for _, want := range []string{"#", "File", "Size", "clip.mp4", "5.0 MiB"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable(
		[]string{"Check", "Status", "Detail"},
		[][]string{{"FFmpeg", "OK"}},
	)
	if !strings.Contains(out, "FFmpeg") {
		t.Fatalf("short row dropped:\n%s", out)
	}
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	if out := renderTable(nil, [][]string{{"x"}}); out != "" {
		t.Fatalf("expected empty render, got %q", out)
	}
}

func TestStatusMark(t *testing.T) {
	if got := statusMark(true, false); got != "OK" {
		t.Fatalf("plain pass mark: %q", got)
	}
	if got := statusMark(false, false); got != "FAIL" {
		t.Fatalf("plain fail mark: %q", got)
	}
	if got := statusMark(true, true); got != ansiGreen+"OK"+ansiReset {
		t.Fatalf("colorized pass mark: %q", got)
	}
	if got := statusMark(false, true); got != ansiRed+"FAIL"+ansiReset {
		t.Fatalf("colorized fail mark: %q", got)
	}
}
