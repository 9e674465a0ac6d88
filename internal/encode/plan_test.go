package encode

import (
	"errors"
	"testing"

	"shrink/internal/services"
)

func TestPlanBitrate(t *testing.T) {
	cases := []struct {
		duration float64
		target   float64
		want     int
	}{
		{120.0, 50, 3413},
		{1.0, 1, 8192},
		{60.0, 10, 1365},
		{3600.0, 700, 1593},
	}
	for _, tc := range cases {
		got, err := PlanBitrate(tc.duration, tc.target)
		if err != nil {
			t.Fatalf("PlanBitrate(%v, %v): %v", tc.duration, tc.target, err)
		}
		if got != tc.want {
			t.Fatalf("PlanBitrate(%v, %v) = %d, want %d", tc.duration, tc.target, got, tc.want)
		}
	}
}

func TestPlanBitrateRejectsNonPositiveDuration(t *testing.T) {
	for _, duration := range []float64{0, -5} {
		if _, err := PlanBitrate(duration, 10); !errors.Is(err, services.ErrProbe) {
			t.Fatalf("duration %v: expected ErrProbe, got %v", duration, err)
		}
	}
}

func TestPlanBitrateRejectsNonPositiveTarget(t *testing.T) {
	for _, target := range []float64{0, -1} {
		if _, err := PlanBitrate(60, target); !errors.Is(err, services.ErrValidation) {
			t.Fatalf("target %v: expected ErrValidation, got %v", target, err)
		}
	}
}

func TestPlanBitrateRejectsZeroResult(t *testing.T) {
	// A tiny target over a very long duration floors to zero kbps.
	if _, err := PlanBitrate(1e7, 0.001); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation for zero bitrate, got %v", err)
	}
}
