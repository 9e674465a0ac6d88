package ffprobe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"shrink/internal/services"
)

func writeStub(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ffprobe")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestInspectParsesDurationAndDimensions(t *testing.T) {
	stub := writeStub(t, `cat <<'JSON'
{"streams":[{"index":0,"codec_type":"video","codec_name":"h264","width":1920,"height":1080},{"index":1,"codec_type":"audio"}],"format":{"duration":"120.000000","size":"1048576","format_name":"mov,mp4"}}
JSON
`)
	result, err := Inspect(context.Background(), stub, "/videos/in.mp4")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	duration, err := result.DurationSeconds()
	if err != nil {
		t.Fatalf("DurationSeconds: %v", err)
	}
	if duration != 120 {
		t.Fatalf("unexpected duration: %v", duration)
	}
	width, height := result.VideoDimensions()
	if width != 1920 || height != 1080 {
		t.Fatalf("unexpected dimensions: %dx%d", width, height)
	}
}

func TestInspectFailureIsProbeError(t *testing.T) {
	stub := writeStub(t, "echo 'in.mp4: Invalid data found' >&2\nexit 1\n")
	_, err := Inspect(context.Background(), stub, "/videos/in.mp4")
	if !errors.Is(err, services.ErrProbe) {
		t.Fatalf("expected ErrProbe, got %v", err)
	}
}

func TestInspectRejectsEmptyPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "ffprobe", "  "); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDurationSecondsRejectsMissingOrInvalid(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"garbage":      "N/A",
		"non-positive": "0.0",
	}
	for name, value := range cases {
		result := Result{Format: Format{Duration: value}}
		if _, err := result.DurationSeconds(); !errors.Is(err, services.ErrProbe) {
			t.Fatalf("%s: expected ErrProbe, got %v", name, err)
		}
	}
}

func TestVideoDimensionsWithoutVideoStream(t *testing.T) {
	result := Result{Streams: []Stream{{CodecType: "audio"}}}
	if w, h := result.VideoDimensions(); w != 0 || h != 0 {
		t.Fatalf("expected zero dimensions, got %dx%d", w, h)
	}
}

func TestProberDuration(t *testing.T) {
	stub := writeStub(t, `cat <<'JSON'
{"streams":[],"format":{"duration":"42.5"}}
JSON
`)
	duration, err := Prober{Binary: stub}.Duration(context.Background(), "/videos/in.mp4")
	if err != nil {
		t.Fatalf("Duration: %v", err)
	}
	if duration != 42.5 {
		t.Fatalf("unexpected duration: %v", duration)
	}
}
