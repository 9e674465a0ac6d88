package encode

import (
	"fmt"
	"math"

	"shrink/internal/services"
)

// kilobitsPerMegabyte converts megabytes to kilobits using the
// kibibyte-based convention ffmpeg expects: 1 MB = 8 * 1024 = 8192
// kilobits. Using 8000 instead would undershoot the requested size.
const kilobitsPerMegabyte = 8192

// PlanBitrate computes the video bitrate, in kilobits per second, that
// fits targetMegabytes of output into durationSeconds of media.
//
// The result covers the video stream only; callers muxing audio must
// reserve a margin themselves.
func PlanBitrate(durationSeconds, targetMegabytes float64) (int, error) {
	if durationSeconds <= 0 {
		return 0, services.Wrap(services.ErrProbe, "planner", "plan bitrate",
			fmt.Sprintf("non-positive duration %.3f", durationSeconds), nil)
	}
	if targetMegabytes <= 0 {
		return 0, services.Wrap(services.ErrValidation, "planner", "plan bitrate",
			fmt.Sprintf("non-positive target size %.3f", targetMegabytes), nil)
	}

	kbps := int(math.Floor(targetMegabytes * kilobitsPerMegabyte / durationSeconds))
	if kbps <= 0 {
		return 0, services.Wrap(services.ErrValidation, "planner", "plan bitrate",
			fmt.Sprintf("target %.2f MB over %.1f s rounds to zero bitrate", targetMegabytes, durationSeconds), nil)
	}
	return kbps, nil
}
